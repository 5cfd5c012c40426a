package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encoder implements an encoder for the Huffman code of one message.
type Encoder struct {
	codes   SymbolToCode
	minSize int
	maxSize int
}

// NewEncoder builds the Huffman tree for message and returns an Encoder for
// it, together with the frequency table.
func NewEncoder(message string) (Encoder, FrequencyTable) {
	root, table := BuildTree(message)
	var e Encoder
	e.Init(root)
	return e, table
}

// Init initializes this Encoder from the Huffman tree rooted at root.  A nil
// root yields an Encoder with no symbols, which can only encode the empty
// message.
func (e *Encoder) Init(root *Node) {
	codes := make(SymbolToCode, root.NumLeaves())
	Walk(root, EmptyCode, func(symbol Symbol, hc Code) bool {
		_, dupe := codes[symbol]
		assert.Assertf(!dupe, "symbol %q appears in more than one leaf", rune(symbol))
		codes[symbol] = hc
		return true
	})
	e.set(codes)
}

// InitFromCodes initializes this Encoder from an existing code table.  Every
// code must be valid, and no two symbols may share a code.
func (e *Encoder) InitFromCodes(codes SymbolToCode) error {
	seen := make(map[Code]Symbol, len(codes))
	copied := make(SymbolToCode, len(codes))
	for symbol, hc := range codes {
		if err := hc.Validate(); err != nil {
			return err
		}
		if other, found := seen[hc]; found {
			return fmt.Errorf("%w: %q and %q both have code %s", ErrNotPrefixFree, rune(other), rune(symbol), hc)
		}
		seen[hc] = symbol
		copied[symbol] = hc
	}
	e.set(copied)
	return nil
}

func (e *Encoder) set(codes SymbolToCode) {
	var minSize, maxSize int
	first := true
	for _, hc := range codes {
		size := hc.Size()
		if first {
			first = false
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	*e = Encoder{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode returns the Code for a Symbol.  The boolean is false if the Symbol
// is not part of this code.
func (e Encoder) Encode(symbol Symbol) (Code, bool) {
	hc, found := e.codes[symbol]
	return hc, found
}

// EncodeString compresses message, which must consist only of symbols known
// to this Encoder.
func (e Encoder) EncodeString(message string) (string, error) {
	return Compress(message, e.codes)
}

// EncodedSize returns the number of bits that a message with the given
// frequency table compresses to, or an error if the table contains a symbol
// that is not part of this code.
func (e Encoder) EncodedSize(table FrequencyTable) (uint64, error) {
	var sum uint64
	for symbol, freq := range table {
		hc, found := e.codes[symbol]
		if !found {
			return 0, &LookupError{Symbol: symbol, Offset: -1}
		}
		sum += freq * uint64(hc.Size())
	}
	return sum, nil
}

// Codes returns a copy of the symbol-to-code table.
func (e Encoder) Codes() SymbolToCode {
	out := make(SymbolToCode, len(e.codes))
	for symbol, hc := range e.codes {
		out[symbol] = hc
	}
	return out
}

// NumSymbols is the number of symbols in this code.
func (e Encoder) NumSymbols() int {
	return len(e.codes)
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	symbols := make(bySymbol, 0, len(e.codes))
	for symbol := range e.codes {
		symbols = append(symbols, SymbolFrequency{Symbol: symbol})
	}
	symbols.Sort()

	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, item := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", rune(item.Symbol), e.codes[item.Symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (e Encoder) DebugString() string {
	var buf strings.Builder
	_, _ = e.Dump(&buf)
	return buf.String()
}

// String returns a short human-readable description of this Encoder.
func (e Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", len(e.codes), e.minSize, e.maxSize)
}

var _ fmt.Stringer = Encoder{}

// Compress replaces every symbol of message with its code from codes and
// returns the concatenation.  It returns a *LookupError if message contains
// a symbol that codes does not cover.
func Compress(message string, codes SymbolToCode) (string, error) {
	var buf strings.Builder
	for offset, ch := range message {
		hc, found := codes[Symbol(ch)]
		if !found {
			return "", &LookupError{Symbol: Symbol(ch), Offset: offset}
		}
		buf.WriteString(string(hc))
	}
	return buf.String(), nil
}
