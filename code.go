package huffman

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written out as the characters '0' and
// '1'.  The first character is the first bit.
type Code string

// EmptyCode is the code of zero bits, i.e. the path to the root of a tree.
const EmptyCode = Code("")

// MakeCode is a convenience function that constructs a Code of the given
// size from the low bits of bits.  The most significant of those bits is the
// first bit of the Code.
func MakeCode(size byte, bits uint64) Code {
	if size == 0 {
		return EmptyCode
	}
	format := "%0" + strconv.FormatUint(uint64(size), 10) + "b"
	return Code(fmt.Sprintf(format, bits&(1<<size-1)))
}

// ParseCode checks that str is a well-formed, non-empty Code.
func ParseCode(str string) (Code, error) {
	hc := Code(str)
	if err := hc.Validate(); err != nil {
		return EmptyCode, err
	}
	return hc, nil
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the index'th bit of this Code.
func (hc Code) Bit(index int) byte {
	return hc[index] - '0'
}

// Append returns the Code with one more bit at the end.
func (hc Code) Append(bit byte) Code {
	if bit == 0 {
		return hc + "0"
	}
	return hc + "1"
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// Validate returns a non-nil error if this Code is empty or contains any
// character other than '0' and '1'.
func (hc Code) Validate() error {
	if len(hc) == 0 {
		return fmt.Errorf("%w: empty code", ErrInvalidCode)
	}
	for i := 0; i < len(hc); i++ {
		if ch := hc[i]; ch != '0' && ch != '1' {
			return fmt.Errorf("%w: %s has %q at index %d", ErrInvalidCode, hc, ch, i)
		}
	}
	return nil
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// type byCode {{{

// byCode orders codes by size, then lexically, which for equal sizes is also
// numeric order.
type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
