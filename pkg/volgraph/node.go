package volgraph

// Node is a named, typed translator vertex: one stage of a volfile
// stack (storage, access-control, clustering, caching, protocol...).
// A node exclusively owns its Options map; it does not own its
// children — the Graph does (see Graph for the ownership rationale).
type Node struct {
	// Type is the slash-separated translator category/name, e.g.
	// "cluster/replicate" or "storage/posix".
	Type string

	// Name is graph-unique. Parents reference children by name in the
	// serialised volfile (§6), so collisions are an invariant violation.
	Name string

	// Options is the string->string native option map. Keys are unique;
	// insertion order is irrelevant (it is not reflected in output order,
	// only in presence/absence and value).
	Options map[string]string

	// Children are ordered; order is part of the wire contract (§4.6
	// step 2-3 reverse-linking notes) and must be preserved verbatim.
	Children []*Node

	// Parent is nil only for the graph's root.
	Parent *Node
}

func newNode(typ, name string) *Node {
	return &Node{
		Type:     typ,
		Name:     name,
		Options:  make(map[string]string),
		Children: nil,
		Parent:   nil,
	}
}

// SetOption sets a native option, overwriting any previous value.
func (n *Node) SetOption(key, value string) {
	n.Options[key] = value
}

// Option returns a native option value and whether it was set.
func (n *Node) Option(key string) (string, bool) {
	v, ok := n.Options[key]
	return v, ok
}

// IsRoot reports whether this node has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}
