package huffman

import (
	"unicode"
)

// Symbol represents one Unicode scalar value of a message.  Negative symbols
// are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol lies within [0, MaxSymbol].
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the symbol as a one-character string.
func (s Symbol) String() string {
	return string(rune(s))
}

// Symbols splits a message into its symbols, in message order.
func Symbols(message string) []Symbol {
	out := make([]Symbol, 0, len(message))
	for _, ch := range message {
		out = append(out, Symbol(ch))
	}
	return out
}
