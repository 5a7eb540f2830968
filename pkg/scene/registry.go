package scene

// Registry is the per-import definition list backing DEF/USE. It holds a
// non-owning reference to every node created during the session, in creation
// order, and is append-only for the duration of a read pass. Lifetime is
// controlled by the owning tree alone; dropping the registry never destroys
// a node.
type Registry struct {
	elements []*Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a node. Every node is registered exactly once, at creation,
// whether or not its tree attachment is still pending.
func (r *Registry) Add(n *Node) {
	r.elements = append(r.elements, n)
}

// Lookup returns the most recent definition with the given kind and name,
// or nil if the name is unknown under that kind.
func (r *Registry) Lookup(kind Kind, name string) *Node {
	for i := len(r.elements) - 1; i >= 0; i-- {
		if e := r.elements[i]; e.Kind == kind && e.Name == name {
			return e
		}
	}
	return nil
}

// LookupAny returns the most recent definition with the given name under any
// kind. Callers use it to tell a missing name from a kind mismatch.
func (r *Registry) LookupAny(name string) *Node {
	for i := len(r.elements) - 1; i >= 0; i-- {
		if e := r.elements[i]; e.Name != "" && e.Name == name {
			return e
		}
	}
	return nil
}

// Len reports the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.elements)
}

// Elements returns the registered nodes in creation order. The returned
// slice is shared with the registry and must be treated as read-only.
func (r *Registry) Elements() []*Node {
	return r.elements
}
