package graph

// Registry is the arena of all parsed nodes plus the lookup indexes built
// over it. Nodes are appended while compounds are merged in; Reindex is run
// once afterwards, and the registry is read-only from then on. The append
// order reflects completion order of the parallel parse, not input order.
type Registry struct {
	Nodes []Node

	byID      map[string]Node
	byShortID map[string][]Node
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends nodes to the registry. Indexes are not updated; call Reindex
// after the merge completes.
func (r *Registry) Add(nodes ...Node) {
	r.Nodes = append(r.Nodes, nodes...)
}

// Reindex rebuilds the by-id and by-short-id indexes from Nodes. Short ids
// are kind:name and may collide; colliding nodes are kept in append order.
func (r *Registry) Reindex() {
	r.byID = make(map[string]Node, len(r.Nodes))
	r.byShortID = make(map[string][]Node, len(r.Nodes))
	for _, n := range r.Nodes {
		b := n.Base()
		r.byID[b.ID] = n
		r.byShortID[b.ShortID()] = append(r.byShortID[b.ShortID()], n)
	}
}

// Lookup resolves an id to a live node. It fails for ids that were referenced
// but never parsed, such as compounds of a filtered-out kind.
func (r *Registry) Lookup(id string) (Node, bool) {
	n, ok := r.byID[id]
	return n, ok
}

// LookupShort resolves a kind:name key to the nodes sharing it.
func (r *Registry) LookupShort(shortID string) []Node {
	return r.byShortID[shortID]
}

// Len returns the number of nodes in the registry.
func (r *Registry) Len() int {
	return len(r.Nodes)
}
