// Package huffman implements Huffman coding of text.  A message is split
// into Unicode symbols, their frequencies are counted, and a merge tree is
// built from the frequencies; the path from the root to each leaf is the
// code for that leaf's symbol.
//
// Codes are kept as strings of the characters '0' and '1' rather than as
// packed bits, so the compressed form of a message is itself a string.  The
// CodeToSymbol table is all that is needed to reverse the transformation,
// and it can be persisted as JSON.
//
// Typical use:
//
//     codes := huffman.CodesFor(message)
//     compressed, err := huffman.Compress(message, codes.SymbolToCode)
//     ...
//     original, err := huffman.Decompress(compressed, codes.CodeToSymbol)
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
