package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// SymbolToCode maps each symbol of a message to its code.
type SymbolToCode map[Symbol]Code

// CodeToSymbol maps each code back to its symbol.  It is all a Decoder needs,
// and is the form in which a code table is persisted.
type CodeToSymbol map[Code]Symbol

// CodeMaps holds a pair of mutually inverse code maps built from one tree.
type CodeMaps struct {
	SymbolToCode SymbolToCode
	CodeToSymbol CodeToSymbol
}

// Invert returns the CodeToSymbol map with every entry reversed.
func (m SymbolToCode) Invert() CodeToSymbol {
	out := make(CodeToSymbol, len(m))
	for symbol, hc := range m {
		out[hc] = symbol
	}
	return out
}

// Invert returns the SymbolToCode map with every entry reversed.
func (m CodeToSymbol) Invert() SymbolToCode {
	out := make(SymbolToCode, len(m))
	for hc, symbol := range m {
		out[symbol] = hc
	}
	return out
}

// SortedCodes returns the codes of the map ordered by size, then value.
func (m CodeToSymbol) SortedCodes() []Code {
	keys := make(byCode, 0, len(m))
	for hc := range m {
		keys = append(keys, hc)
	}
	keys.Sort()
	return keys
}

// MarshalJSON encodes the map as a JSON object of "code": "symbol" pairs,
// with keys in SortedCodes order.
func (m CodeToSymbol) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for index, hc := range m.SortedCodes() {
		if index > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(string(hc))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m[hc].String())
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of "code": "symbol" pairs.  Every code
// must be a non-empty string of '0' and '1', and every symbol must be a
// string of exactly one character.
func (m *CodeToSymbol) UnmarshalJSON(raw []byte) error {
	var pairs map[string]string
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return err
	}

	out := make(CodeToSymbol, len(pairs))
	for key, value := range pairs {
		hc, err := ParseCode(key)
		if err != nil {
			return err
		}
		if utf8.RuneCountInString(value) != 1 {
			return fmt.Errorf("huffman: code %s maps to %q, which is not exactly one character", hc, value)
		}
		ch, _ := utf8.DecodeRuneInString(value)
		out[hc] = Symbol(ch)
	}
	*m = out
	return nil
}

var (
	_ json.Marshaler   = CodeToSymbol(nil)
	_ json.Unmarshaler = (*CodeToSymbol)(nil)
)
