package huffman

import (
	"sort"
)

// FrequencyTable maps each Symbol of a message to the number of times it
// occurs.  Every key has a count of at least 1.
type FrequencyTable map[Symbol]uint64

// CountFrequencies builds the FrequencyTable for message.  An empty message
// yields an empty table.
func CountFrequencies(message string) FrequencyTable {
	table := make(FrequencyTable)
	for _, ch := range message {
		table[Symbol(ch)]++
	}
	return table
}

// Total returns the sum of all counts, i.e. the length of the message in
// symbols.
func (table FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range table {
		sum += freq
	}
	return sum
}

// Sorted returns the entries of the table ordered by symbol.
func (table FrequencyTable) Sorted() []SymbolFrequency {
	out := make(bySymbol, 0, len(table))
	for symbol, freq := range table {
		out = append(out, SymbolFrequency{symbol, freq})
	}
	out.Sort()
	return out
}

// SymbolFrequency is one entry of a FrequencyTable.
type SymbolFrequency struct {
	Symbol Symbol
	Freq   uint64
}

// type bySymbol {{{

type bySymbol []SymbolFrequency

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i].Symbol < list[j].Symbol
}

var _ sort.Interface = bySymbol(nil)

// }}}
