package huffman

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSymbol   = errors.New("huffman: symbol has no code")
	ErrCorruptStream   = errors.New("huffman: corrupt compressed stream")
	ErrInvalidCode     = errors.New("huffman: invalid code")
	ErrNotPrefixFree   = errors.New("huffman: code table is not prefix-free")
	ErrDuplicateSymbol = errors.New("huffman: symbol assigned more than one code")
)

// LookupError is returned by Compress when the message contains a symbol
// that the code table does not cover.
type LookupError struct {
	Symbol Symbol

	// Offset is the byte offset of Symbol within the message.
	Offset int
}

func (err *LookupError) Error() string {
	return fmt.Sprintf("%v: %q at byte offset %d", ErrUnknownSymbol, rune(err.Symbol), err.Offset)
}

func (err *LookupError) Unwrap() error {
	return ErrUnknownSymbol
}

// CorruptStreamError is returned by Decompress when the compressed text
// cannot be decoded with the given code table.
type CorruptStreamError struct {
	// Offset is the index of the first digit that could not be consumed.
	Offset int
	Reason string
}

func (err *CorruptStreamError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d", ErrCorruptStream, err.Reason, err.Offset)
}

func (err *CorruptStreamError) Unwrap() error {
	return ErrCorruptStream
}

var (
	_ error = (*LookupError)(nil)
	_ error = (*CorruptStreamError)(nil)
)
