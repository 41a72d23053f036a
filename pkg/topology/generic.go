package topology

import (
	"github.com/cuemby/volgen/pkg/dispatch"
	"github.com/cuemby/volgen/pkg/handlers"
	"github.com/cuemby/volgen/pkg/opttable"
	"github.com/cuemby/volgen/pkg/voldesc"
	"github.com/cuemby/volgen/pkg/volgraph"
)

// buildGraphGeneric is the common wrapper spec.md §4.5 step 9 and
// §4.6 step 7 both describe: it runs the role-specific build function
// against a fresh graph, and — only if that succeeds — runs a final
// unconditional basic_copy dispatch pass over the whole table. If
// either the builder or the final dispatch fails, the (possibly
// partially built) graph is returned nil; per §7, the builder's
// caller never holds onto a graph from a failed generation.
func buildGraphGeneric(vol *voldesc.Volume, dict map[string]string, build func(*volgraph.Graph) error) (*volgraph.Graph, error) {
	g := volgraph.New()

	if err := build(g); err != nil {
		return nil, err
	}

	if err := dispatch.Dispatch(g, dict, opttable.Default, vol.Name, handlers.BasicCopy); err != nil {
		return nil, err
	}

	return g, nil
}
