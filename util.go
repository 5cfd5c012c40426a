package huffman

import (
	"strconv"
)

func symbolString(symbol Symbol) string {
	if symbol == InvalidSymbol {
		return "-1"
	}
	return strconv.QuoteRune(rune(symbol))
}

func widen(dn *decoderNode, size int) {
	if dn.minSize > size {
		dn.minSize = size
	}
	if dn.maxSize < size {
		dn.maxSize = size
	}
}
