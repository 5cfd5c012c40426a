package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Decoder implements a decoder for a Huffman code, given as a CodeToSymbol
// table.  Internally the codes are arranged as a binary prefix tree, which is
// walked one bit at a time.
type Decoder struct {
	nodes   []decoderNode
	codes   CodeToSymbol
	minSize int
	maxSize int
}

// NewDecoder is a convenience function that constructs and initializes a
// Decoder.
func NewDecoder(codes CodeToSymbol) (Decoder, error) {
	var d Decoder
	err := d.Init(codes)
	return d, err
}

// Init initializes this Decoder.  The argument maps each code to the symbol
// it stands for.
//
// Not all inputs are valid.  Every code must be a non-empty string of '0'
// and '1', no code may be a prefix of another, and no symbol may have more
// than one code.  The code does not have to be complete: a table whose only
// entry is {"0": 'a'} is accepted, as it is what a message with a single
// distinct symbol produces.  An empty table is accepted, and decodes only
// the empty string.
//
func (d *Decoder) Init(codes CodeToSymbol) error {
	if len(codes) == 0 {
		*d = Decoder{}
		return nil
	}

	sorted := codes.SortedCodes()
	seen := make(SymbolToCode, len(codes))
	for _, hc := range sorted {
		if err := hc.Validate(); err != nil {
			return err
		}
		symbol := codes[hc]
		if !symbol.IsValid() {
			return fmt.Errorf("%w: code %s maps to invalid symbol %d", ErrInvalidCode, hc, int32(symbol))
		}
		if other, found := seen[symbol]; found {
			return fmt.Errorf("%w: %q has codes %s and %s", ErrDuplicateSymbol, rune(symbol), other, hc)
		}
		seen[symbol] = hc
	}

	// len(nodes) is len(codes)*2 - 1 for a complete code.
	nodes := make([]decoderNode, 1, 2*len(codes))
	nodes[0] = decoderNode{symbol: InvalidSymbol, minSize: sorted[0].Size(), maxSize: sorted[0].Size()}

	copied := make(CodeToSymbol, len(codes))
	for _, hc := range sorted {
		symbol := codes[hc]
		var err error
		nodes, err = insertCode(nodes, hc, symbol)
		if err != nil {
			return err
		}
		copied[hc] = symbol
	}

	*d = Decoder{
		nodes:   nodes,
		codes:   copied,
		minSize: sorted[0].Size(),
		maxSize: sorted[len(sorted)-1].Size(),
	}
	return nil
}

// Lookup attempts to decode a single Huffman code into a Symbol.
//
// If the Lookup is completely successful, symbol >= 0 and minSize == maxSize.
//
// If the Lookup fails because hc is only the start of a code, symbol ==
// InvalidSymbol and the codes that begin with hc are between minSize and
// maxSize bits long in total.
//
// If the Lookup fails because no code begins with hc, symbol ==
// InvalidSymbol and minSize == maxSize == 0.
//
func (d Decoder) Lookup(hc Code) (symbol Symbol, minSize int, maxSize int) {
	if len(d.nodes) == 0 {
		return InvalidSymbol, 0, 0
	}
	index := uint32(0)
	for i := 0; i < hc.Size(); i++ {
		ch := hc[i]
		if ch != '0' && ch != '1' {
			return InvalidSymbol, 0, 0
		}
		index = d.nodes[index].children[ch-'0']
		if index == 0 {
			return InvalidSymbol, 0, 0
		}
	}
	dn := d.nodes[index]
	return dn.symbol, dn.minSize, dn.maxSize
}

// DecodeString decompresses a string of '0' and '1' back into the message it
// was compressed from.  It returns a *CorruptStreamError if the input
// contains any other character, if no code matches at some position, or if
// the input ends in the middle of a code.
func (d Decoder) DecodeString(compressed string) (string, error) {
	if len(compressed) == 0 {
		return "", nil
	}
	if len(d.nodes) == 0 {
		return "", &CorruptStreamError{Offset: 0, Reason: "code table is empty"}
	}

	var buf strings.Builder
	buf.Grow(len(compressed) / d.maxSize)

	index := uint32(0)
	start := 0
	for i := 0; i < len(compressed); i++ {
		ch := compressed[i]
		if ch != '0' && ch != '1' {
			return "", &CorruptStreamError{Offset: i, Reason: fmt.Sprintf("unexpected character %q", ch)}
		}
		index = d.nodes[index].children[ch-'0']
		if index == 0 {
			return "", &CorruptStreamError{Offset: start, Reason: "no code matches"}
		}
		if symbol := d.nodes[index].symbol; symbol != InvalidSymbol {
			buf.WriteRune(rune(symbol))
			index = 0
			start = i + 1
		}
	}
	if index != 0 {
		return "", &CorruptStreamError{Offset: start, Reason: "input ends inside a code"}
	}
	return buf.String(), nil
}

// Codes returns a copy of the code-to-symbol table.
func (d Decoder) Codes() CodeToSymbol {
	out := make(CodeToSymbol, len(d.codes))
	for hc, symbol := range d.codes {
		out[hc] = symbol
	}
	return out
}

// NumSymbols is the number of symbols in this code.
func (d Decoder) NumSymbols() int {
	return len(d.codes)
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Every prefix of every code is listed, along
// with the result of calling Lookup on it.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	if len(d.nodes) != 0 {
		prefixes := make(map[Code]uint32, len(d.nodes))
		d.collectPrefixes(prefixes, 0, EmptyCode)
		keys := make(byCode, 0, len(prefixes))
		for hc := range prefixes {
			keys = append(keys, hc)
		}
		keys.Sort()
		for _, hc := range keys {
			dn := d.nodes[prefixes[hc]]
			fmt.Fprintf(&buf, "\tLookup(%s) = {%s, %d, %d}\n", hc, symbolString(dn.symbol), dn.minSize, dn.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d Decoder) DebugString() string {
	var buf strings.Builder
	_, _ = d.Dump(&buf)
	return buf.String()
}

// String returns a short human-readable description of this Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", len(d.codes), d.minSize, d.maxSize)
}

// MarshalJSON encodes the code table of this Decoder; see
// CodeToSymbol.MarshalJSON.
func (d Decoder) MarshalJSON() ([]byte, error) {
	return d.codes.MarshalJSON()
}

// UnmarshalJSON decodes a code table and initializes this Decoder with it.
func (d *Decoder) UnmarshalJSON(raw []byte) error {
	var codes CodeToSymbol
	if err := json.Unmarshal(raw, &codes); err != nil {
		return err
	}
	return d.Init(codes)
}

var (
	_ fmt.Stringer     = Decoder{}
	_ json.Marshaler   = Decoder{}
	_ json.Unmarshaler = (*Decoder)(nil)
)

func (d Decoder) collectPrefixes(out map[Code]uint32, index uint32, hc Code) {
	out[hc] = index
	for bit, child := range d.nodes[index].children {
		if child != 0 {
			d.collectPrefixes(out, child, hc.Append(byte(bit)))
		}
	}
}

// Decompress decodes compressed using the code table codes.  It returns an
// error if codes cannot drive a Decoder, or a *CorruptStreamError if
// compressed does not match codes.
func Decompress(compressed string, codes CodeToSymbol) (string, error) {
	d, err := NewDecoder(codes)
	if err != nil {
		return "", err
	}
	return d.DecodeString(compressed)
}

// type decoderNode {{{

// decoderNode is one vertex of the prefix tree.  Index 0 is the root, which
// can never be a child, so a child index of 0 means "no child".
type decoderNode struct {
	children [2]uint32
	symbol   Symbol
	minSize  int
	maxSize  int
}

func (dn decoderNode) isLeaf() bool {
	return dn.symbol != InvalidSymbol
}

func (dn decoderNode) hasChildren() bool {
	return dn.children[0] != 0 || dn.children[1] != 0
}

// insertCode adds a leaf for symbol at path hc, creating branch nodes along
// the way, and widens the [minSize, maxSize] range of every node it passes.
func insertCode(nodes []decoderNode, hc Code, symbol Symbol) ([]decoderNode, error) {
	size := hc.Size()
	index := uint32(0)
	widen(&nodes[index], size)
	for i := 0; i < size; i++ {
		if nodes[index].isLeaf() {
			return nodes, fmt.Errorf("%w: %s is a prefix of %s", ErrNotPrefixFree, hc[:i], hc)
		}
		bit := hc.Bit(i)
		child := nodes[index].children[bit]
		if child == 0 {
			assert.Assertf(uint64(len(nodes)) < math.MaxUint32, "prefix tree has too many nodes: %d", len(nodes))
			child = uint32(len(nodes))
			nodes = append(nodes, decoderNode{symbol: InvalidSymbol, minSize: size, maxSize: size})
			nodes[index].children[bit] = child
		}
		index = child
		widen(&nodes[index], size)
	}
	if nodes[index].isLeaf() || nodes[index].hasChildren() {
		return nodes, fmt.Errorf("%w: %s is a prefix of another code", ErrNotPrefixFree, hc)
	}
	nodes[index].symbol = symbol
	return nodes, nil
}

// }}}
