package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a vertex of a Huffman merge tree.
//
// A leaf holds a Symbol and has no children.  An internal node has both
// children and holds InvalidSymbol.  Weight is the frequency of a leaf's
// symbol, or the sum of the children's weights for an internal node.
//
// Each internal node is the sole owner of its children.  Nodes are never
// modified after BuildTree returns them.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// NumLeaves returns the number of leaves in the tree rooted at this node.
func (n *Node) NumLeaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.NumLeaves() + n.Right.NumLeaves()
}

// BuildTree counts the symbols of message and builds the Huffman merge tree
// for them.  It returns the root of the tree together with the frequency
// table it was built from.
//
// If message is empty, the root is nil and the table is empty.
//
func BuildTree(message string) (*Node, FrequencyTable) {
	table := CountFrequencies(message)
	return BuildTreeFromTable(table), table
}

// BuildTreeFromTable builds the Huffman merge tree for a frequency table.  It
// returns nil if the table is empty.
//
// Nodes of equal weight are merged in the order they entered the queue:
// leaves in ascending Symbol order, then internal nodes in order of creation.
// Callers should not rely on any particular tie-break, only on the weights.
//
func BuildTreeFromTable(table FrequencyTable) *Node {
	if len(table) == 0 {
		return nil
	}

	// Step 1: build a minheap of leaves.

	entries := table.Sorted()
	h := nodeHeap{list: make([]nodeAndSeq, 0, len(entries))}
	for _, entry := range entries {
		assert.Assertf(entry.Symbol.IsValid(), "invalid symbol %d in frequency table", int32(entry.Symbol))
		assert.Assertf(entry.Freq != 0, "symbol %q has a frequency of 0", rune(entry.Symbol))
		h.push(&Node{Symbol: entry.Symbol, Weight: entry.Freq})
	}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.  The first node popped becomes the left child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq).node
		b := heap.Pop(&h).(nodeAndSeq).node

		sum := a.Weight + b.Weight
		assert.Assertf(sum >= a.Weight, "weight overflow: %d + %d", a.Weight, b.Weight)

		heap.Push(&h, h.wrap(&Node{
			Symbol: InvalidSymbol,
			Weight: sum,
			Left:   a,
			Right:  b,
		}))
	}

	// Step 3: the last node standing is the root.  With a single distinct
	// symbol, the root is that symbol's leaf.

	assert.Assertf(h.Len() == 1, "expected exactly 1 node in heap, got %d", h.Len())
	return heap.Pop(&h).(nodeAndSeq).node
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list    []nodeAndSeq
	nextSeq uint64
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) wrap(node *Node) nodeAndSeq {
	x := nodeAndSeq{node, h.nextSeq}
	h.nextSeq++
	return x
}

func (h *nodeHeap) push(node *Node) {
	h.list = append(h.list, h.wrap(node))
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
