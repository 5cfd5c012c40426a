package huffman

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func makeTestDecoder() Decoder {
	d, err := NewDecoder(CodeToSymbol{
		"0":    'a',
		"101":  'b',
		"100":  'c',
		"111":  'd',
		"1101": 'e',
		"1100": 'f',
	})
	if err != nil {
		panic(err)
	}
	return d
}

var testDecoderDebug = strings.Join([]string{
	"Decoder{\n",
	"\tMinSize() = 1\n",
	"\tMaxSize() = 4\n",
	"\tLookup(\"\") = {-1, 1, 4}\n",
	"\tLookup(\"0\") = {'a', 1, 1}\n",
	"\tLookup(\"1\") = {-1, 3, 4}\n",
	"\tLookup(\"10\") = {-1, 3, 3}\n",
	"\tLookup(\"11\") = {-1, 3, 4}\n",
	"\tLookup(\"100\") = {'c', 3, 3}\n",
	"\tLookup(\"101\") = {'b', 3, 3}\n",
	"\tLookup(\"110\") = {-1, 4, 4}\n",
	"\tLookup(\"111\") = {'d', 3, 3}\n",
	"\tLookup(\"1100\") = {'f', 4, 4}\n",
	"\tLookup(\"1101\") = {'e', 4, 4}\n",
	"}\n",
}, "")

func TestDecoder_Lookup(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		code Code
		min  int
		max  int
		sym  Symbol
	}

	testData := [...]testRow{
		{code: "", min: 1, max: 4, sym: InvalidSymbol},
		{code: "0", min: 1, max: 1, sym: 'a'},
		{code: "1", min: 3, max: 4, sym: InvalidSymbol},
		{code: "10", min: 3, max: 3, sym: InvalidSymbol},
		{code: "11", min: 3, max: 4, sym: InvalidSymbol},
		{code: "100", min: 3, max: 3, sym: 'c'},
		{code: "110", min: 4, max: 4, sym: InvalidSymbol},
		{code: "1101", min: 4, max: 4, sym: 'e'},
		{code: "01", min: 0, max: 0, sym: InvalidSymbol},
		{code: "11011", min: 0, max: 0, sym: InvalidSymbol},
		{code: "1x", min: 0, max: 0, sym: InvalidSymbol},
	}
	for _, row := range testData {
		t.Run(row.code.String(), func(t *testing.T) {
			sym, min, max := d.Lookup(row.code)
			if sym != row.sym {
				t.Errorf("expected symbol %d, got %d", row.sym, sym)
			}
			if min != row.min {
				t.Errorf("expected minimum size %d, got %d", row.min, min)
			}
			if max != row.max {
				t.Errorf("expected maximum size %d, got %d", row.max, max)
			}
		})
	}
}

func TestDecoder_DebugString(t *testing.T) {
	d := makeTestDecoder()

	actualDebug := d.DebugString()
	if testDecoderDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", testDecoderDebug, actualDebug)
	}
}

func TestDecoder_String(t *testing.T) {
	d := makeTestDecoder()

	expectString := "(Huffman decoder with 6 symbols, with coded lengths of 1 .. 4 bits)"
	actualString := d.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestDecoder_MarshalJSON(t *testing.T) {
	d := makeTestDecoder()

	raw, err := json.Marshal(d)
	if err != nil {
		t.Errorf("json.Marshal failed: %v", err)
	}
	expectJSON := `{"0":"a","100":"c","101":"b","111":"d","1100":"f","1101":"e"}`
	actualJSON := string(raw)
	if expectJSON != actualJSON {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectJSON, actualJSON)
	}
}

func TestDecoder_UnmarshalJSON(t *testing.T) {
	raw := []byte(`{"1101":"e","0":"a","1100":"f","100":"c","111":"d","101":"b"}`)

	var d Decoder
	err := json.Unmarshal(raw, &d)
	if err != nil {
		t.Errorf("json.Unmarshal failed: %v", err)
	}

	actualDebug := d.DebugString()
	if testDecoderDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", testDecoderDebug, actualDebug)
	}
}

func TestDecoder_UnmarshalJSON_Invalid(t *testing.T) {
	type testRow struct {
		name string
		raw  string
		err  error
	}
	testData := [...]testRow{
		{name: "empty-code", raw: `{"":"a"}`, err: ErrInvalidCode},
		{name: "bad-digit", raw: `{"02":"a"}`, err: ErrInvalidCode},
		{name: "prefix", raw: `{"0":"a","01":"b","1":"c"}`, err: ErrNotPrefixFree},
		{name: "duplicate", raw: `{"0":"a","1":"a"}`, err: ErrDuplicateSymbol},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var d Decoder
			err := json.Unmarshal([]byte(row.raw), &d)
			if !errors.Is(err, row.err) {
				t.Errorf("expected %v, got %v", row.err, err)
			}
		})
	}

	var d Decoder
	if err := json.Unmarshal([]byte(`{"0":"ab"}`), &d); err == nil {
		t.Errorf("expected an error for a multi-character symbol")
	}
}

func TestDecoder_DecodeString(t *testing.T) {
	d := makeTestDecoder()

	out, err := d.DecodeString("0101100111110111000")
	if err != nil {
		t.Fatalf("DecodeString failed: %v", err)
	}
	if expect := "abcdefa"; out != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, out)
	}
}

func TestDecoder_DecodeString_Corrupt(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		offset int
	}

	// With the single-symbol table {"0": 'a'}, no code begins with '1'.
	single, err := NewDecoder(CodeToSymbol{"0": 'a'})
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}

	testData := [...]testRow{
		{name: "bad-digit", input: "00201", offset: 2},
		{name: "no-match", input: "0001", offset: 3},
		{name: "letters", input: "a", offset: 0},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := single.DecodeString(row.input)
			var corrupt *CorruptStreamError
			if !errors.As(err, &corrupt) {
				t.Fatalf("expected *CorruptStreamError, got %#v", err)
			}
			if corrupt.Offset != row.offset {
				t.Errorf("expected offset %d, got %d", row.offset, corrupt.Offset)
			}
			if !errors.Is(err, ErrCorruptStream) {
				t.Errorf("expected errors.Is(err, ErrCorruptStream)")
			}
		})
	}

	t.Run("truncated", func(t *testing.T) {
		d := makeTestDecoder()
		_, err := d.DecodeString("0110")
		var corrupt *CorruptStreamError
		if !errors.As(err, &corrupt) {
			t.Fatalf("expected *CorruptStreamError, got %#v", err)
		}
		if corrupt.Offset != 1 {
			t.Errorf("expected offset 1, got %d", corrupt.Offset)
		}
	})

	t.Run("empty-table", func(t *testing.T) {
		var d Decoder
		if _, err := d.DecodeString("0"); !errors.Is(err, ErrCorruptStream) {
			t.Errorf("expected ErrCorruptStream, got %v", err)
		}
		out, err := d.DecodeString("")
		if err != nil || out != "" {
			t.Errorf("expected empty success, got %q, %v", out, err)
		}
	})
}
