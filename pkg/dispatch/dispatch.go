// Package dispatch implements the option dispatch engine: the
// table-driven mechanism that walks the option table against a user
// dictionary and invokes a pluggable handler per matched entry
// (spec.md §4.3).
package dispatch

import (
	"fmt"

	"github.com/cuemby/volgen/pkg/opttable"
	"github.com/cuemby/volgen/pkg/volgraph"
)

// View is the runtime view of one matched (entry, effective value)
// pair handed to a Handler.
type View struct {
	Key     string
	VolType string
	Option  string
	Value   string
}

// Handler interprets one View against a graph. param is an opaque,
// caller-supplied value (e.g. the volume name for perf_toggle, or the
// caller's role substring for log_level).
type Handler func(g *volgraph.Graph, v View, param any) error

// Dispatch walks table in declaration order. For each entry E:
//
//   - if E.Key is present in dict, handler fires with the user's value;
//   - else if E.Default is set, handler fires with the default value;
//   - else the entry is skipped.
//
// User values always override defaults; defaults fire exactly when the
// user has not set the key. Duplicate-key entries are each processed
// independently, so one user value can fan out to multiple translator
// types (§8 scenario 6). Any handler error aborts immediately and is
// returned wrapped with the entry's key and translator type.
func Dispatch(g *volgraph.Graph, dict map[string]string, table opttable.Table, param any, handler Handler) error {
	for _, e := range table {
		value, found := dict[e.Key]
		switch {
		case found:
		case e.HasDefault:
			value = e.Default
		default:
			continue
		}

		v := View{
			Key:     e.Key,
			VolType: e.VolType,
			Option:  e.EffectiveOption(),
			Value:   value,
		}
		if err := handler(g, v, param); err != nil {
			return fmt.Errorf("dispatch %q on %q: %w", v.Key, v.VolType, err)
		}
	}
	return nil
}
