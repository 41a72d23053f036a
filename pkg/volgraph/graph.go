package volgraph

import "fmt"

// Graph is an ordered collection of translator nodes with a
// designated "top" (First) and the linkage operations that assemble a
// volfile stack. It owns every node reachable through Nodes; Node
// values themselves only borrow references to each other via
// Parent/Children. A graph is created empty at the entry of a build
// function, mutated only by that function, and discarded whole after
// emission (§3 "Graph lifecycle") — it is never persisted in memory
// across builds and never shared between goroutines (§5).
type Graph struct {
	// Nodes holds every node that belongs to this graph, in the order
	// they were added. The last-added non-detached node is
	// conventionally the graph's "first" / top, tracked separately in
	// First so AddDetached can retarget it without reordering Nodes.
	Nodes []*Node

	// First is the current root / entry point of serialisation.
	First *Node

	names map[string]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{names: make(map[string]struct{})}
}

// Count returns the number of nodes currently in the graph.
func (g *Graph) Count() int {
	return len(g.Nodes)
}

// Instantiate creates an unattached node of the given type and name.
// It fails if type or name is empty (the closest this package comes to
// "unknown translator type": volgen has no translator registry of its
// own, so any non-empty slash-form type is accepted and the data-plane
// daemon is the one that ultimately rejects truly unknown types).
func Instantiate(typ, name string) (*Node, error) {
	if typ == "" {
		return nil, fmt.Errorf("instantiate %q: %w", name, ErrUnknownTranslatorType)
	}
	if name == "" {
		return nil, fmt.Errorf("instantiate type %q: %w", typ, ErrUnknownTranslatorType)
	}
	return newNode(typ, name), nil
}

// register adds node to the graph's bookkeeping, checking name
// uniqueness (§3 "every translator name is unique within the graph").
func (g *Graph) register(n *Node) error {
	if g.names == nil {
		g.names = make(map[string]struct{})
	}
	if _, exists := g.names[n.Name]; exists {
		return fmt.Errorf("register %q: %w", n.Name, ErrDuplicateName)
	}
	g.names[n.Name] = struct{}{}
	g.Nodes = append(g.Nodes, n)
	return nil
}

// Link appends child to parent.Children and sets child.Parent. It
// fails if child already has a parent, or if linking would introduce a
// cycle (child is an ancestor of parent, or child == parent).
func Link(parent, child *Node) error {
	if child.Parent != nil {
		return fmt.Errorf("link %q -> %q: %w", parent.Name, child.Name, ErrAlreadyParented)
	}
	for anc := parent; anc != nil; anc = anc.Parent {
		if anc == child {
			return fmt.Errorf("link %q -> %q: %w", parent.Name, child.Name, ErrCycle)
		}
	}
	parent.Children = append(parent.Children, child)
	child.Parent = parent
	return nil
}

// AddAsRoot instantiates a new node and, if the graph is non-empty,
// links it over the current First (the new node becomes First's
// parent); it then becomes the graph's new First. This is the common
// "push a new stage on top" primitive used throughout the topology
// builders (io-threads over locks, a performance translator over the
// client stack, and so on).
func (g *Graph) AddAsRoot(typ, name string) (*Node, error) {
	n, err := Instantiate(typ, name)
	if err != nil {
		return nil, err
	}
	if err := g.register(n); err != nil {
		return nil, err
	}
	if g.First != nil {
		if err := Link(n, g.First); err != nil {
			return nil, err
		}
	}
	g.First = n
	return n, nil
}

// AddDetached instantiates and registers a node in the graph without
// linking it to the existing root, then sets First to the new node so
// a following AddAsRoot stacks onto it. Used to start a sibling
// subtree (e.g. the replace-brick protocol/client leaf for the pump
// subtree, §4.5 step 4) that a later explicit Link call joins to the
// rest of the graph.
func (g *Graph) AddDetached(typ, name string) (*Node, error) {
	n, err := Instantiate(typ, name)
	if err != nil {
		return nil, err
	}
	if err := g.register(n); err != nil {
		return nil, err
	}
	g.First = n
	return n, nil
}

// AddNamed is a convenience wrapper over AddAsRoot that derives name as
// "{volname}-{shortname}", where shortname is the suffix of typ after
// the final '/' (e.g. "cluster/replicate" -> "replicate").
func (g *Graph) AddNamed(typ, volname string) (*Node, error) {
	return g.AddAsRoot(typ, volname+"-"+shortName(typ))
}

// AddDetachedNamed is AddDetached with the same "{volname}-{shortname}"
// naming convention as AddNamed.
func (g *Graph) AddDetachedNamed(typ, volname string) (*Node, error) {
	return g.AddDetached(typ, volname+"-"+shortName(typ))
}

func shortName(typ string) string {
	for i := len(typ) - 1; i >= 0; i-- {
		if typ[i] == '/' {
			return typ[i+1:]
		}
	}
	return typ
}

// Merge links other.First as a new child of into.First, splices
// other's nodes into into's bookkeeping, and drains other. After
// Merge, other must not be reused: its Nodes slice is spliced, not
// copied, and reusing it would double-own nodes across two graphs.
func Merge(into, other *Graph) error {
	if into.First == nil {
		return fmt.Errorf("merge: %w", ErrEmptyGraph)
	}
	if other.First == nil {
		return fmt.Errorf("merge: other graph: %w", ErrEmptyGraph)
	}
	for _, n := range other.Nodes {
		if _, exists := into.names[n.Name]; exists {
			return fmt.Errorf("merge %q: %w", n.Name, ErrDuplicateName)
		}
	}
	if err := Link(into.First, other.First); err != nil {
		return err
	}
	for _, n := range other.Nodes {
		into.names[n.Name] = struct{}{}
	}
	into.Nodes = append(into.Nodes, other.Nodes...)

	other.Nodes = nil
	other.First = nil
	other.names = nil
	return nil
}

// AllOfType returns every node in the graph whose Type matches typ, in
// Nodes order. Used by handlers (basic_copy, log_level) that target
// every instance of a translator type rather than a single node.
func (g *Graph) AllOfType(typ string) []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// PostOrder returns the nodes reachable from First in reverse
// topological order (children before parents) — the order the volfile
// text format requires (§3, §6). Nodes unreachable from First (should
// never happen in a well-formed graph; see Validate) are appended
// after, in Nodes order, so no node is silently dropped from an
// emitted file.
func (g *Graph) PostOrder() []*Node {
	if g.First == nil {
		return nil
	}
	visited := make(map[*Node]bool, len(g.Nodes))
	var order []*Node
	var visit func(n *Node)
	visit = func(n *Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, c := range n.Children {
			visit(c)
		}
		order = append(order, n)
	}
	visit(g.First)
	for _, n := range g.Nodes {
		if !visited[n] {
			visit(n)
		}
	}
	return order
}

// Validate checks the structural invariants from spec §3 and §8:
// exactly one root, every child belongs to this graph, no cycles
// (implied by successful construction via Link, but checked here
// defensively for graphs assembled by hand in tests).
func (g *Graph) Validate() error {
	if len(g.Nodes) == 0 {
		return nil
	}
	roots := 0
	belongs := make(map[*Node]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		belongs[n] = true
	}
	for _, n := range g.Nodes {
		if n.Parent == nil {
			roots++
		}
		for _, c := range n.Children {
			if !belongs[c] {
				return fmt.Errorf("validate %q -> %q: %w", n.Name, c.Name, ErrForeignNode)
			}
		}
	}
	if roots != 1 {
		return fmt.Errorf("validate: graph has %d roots, want 1", roots)
	}
	for _, n := range g.Nodes {
		steps := 0
		for anc := n.Parent; anc != nil; anc = anc.Parent {
			steps++
			if steps > len(g.Nodes) {
				return fmt.Errorf("validate %q: %w", n.Name, ErrCycle)
			}
		}
	}
	if g.First == nil || g.First.Parent != nil {
		return fmt.Errorf("validate: %w", ErrEmptyGraph)
	}
	return nil
}
