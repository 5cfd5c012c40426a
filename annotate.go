package huffman

// Walk visits every leaf of the tree rooted at root in depth-first order,
// left before right, calling visit with the leaf's symbol and its code.  The
// code of a leaf is prefix followed by one '0' for every left branch and one
// '1' for every right branch on the way down.
//
// A root that is itself a leaf is given the code "0" when prefix is empty, so
// that every code is at least one bit long.
//
// Walk stops early if visit returns false, and returns false in that case.
// A nil root visits nothing.
//
func Walk(root *Node, prefix Code, visit func(Symbol, Code) bool) bool {
	if root == nil {
		return true
	}
	if root.IsLeaf() && prefix == EmptyCode {
		return visit(root.Symbol, prefix.Append(0))
	}
	return walk(root, prefix, visit)
}

func walk(node *Node, path Code, visit func(Symbol, Code) bool) bool {
	if node == nil {
		return true
	}
	if node.IsLeaf() {
		return visit(node.Symbol, path)
	}
	return walk(node.Left, path.Append(0), visit) && walk(node.Right, path.Append(1), visit)
}

// Annotate walks the tree rooted at root and records the code of every leaf
// in both symbolToCode and codeToSymbol.  An entry that is already present in
// either map is left as it is.
//
// Annotate returns false, leaving both maps untouched, if root is nil.
//
func Annotate(symbolToCode SymbolToCode, codeToSymbol CodeToSymbol, root *Node, prefix Code) bool {
	if root == nil {
		return false
	}
	Walk(root, prefix, func(symbol Symbol, hc Code) bool {
		if _, found := symbolToCode[symbol]; !found {
			symbolToCode[symbol] = hc
		}
		if _, found := codeToSymbol[hc]; !found {
			codeToSymbol[hc] = symbol
		}
		return true
	})
	return true
}

// CodesFor builds the tree for message and returns its code maps.  An empty
// message yields empty maps.
func CodesFor(message string) CodeMaps {
	root, _ := BuildTree(message)
	return MakeCodeMaps(root)
}

// MakeCodeMaps returns the code maps for the tree rooted at root.
func MakeCodeMaps(root *Node) CodeMaps {
	numLeaves := root.NumLeaves()
	maps := CodeMaps{
		SymbolToCode: make(SymbolToCode, numLeaves),
		CodeToSymbol: make(CodeToSymbol, numLeaves),
	}
	Annotate(maps.SymbolToCode, maps.CodeToSymbol, root, EmptyCode)
	return maps
}
