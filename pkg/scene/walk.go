package scene

// Walk visits root and every node reachable through owning child edges in
// depth-first pre-order. Parent back-references are never followed, so
// traversal terminates even though USE aliasing makes the structure a graph;
// an aliased node is visited once per tree position. Returning false from fn
// prunes the subtree below the current node.
func Walk(root *Node, fn func(*Node) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, c := range root.Children {
		Walk(c, fn)
	}
}
