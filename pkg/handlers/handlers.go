// Package handlers implements the concrete option dispatch handlers
// named by spec.md §4.4: basic_copy, server_auth, log_level,
// perf_toggle, optget, and the server_spec composite.
package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cuemby/volgen/pkg/dispatch"
	"github.com/cuemby/volgen/pkg/opttable"
	"github.com/cuemby/volgen/pkg/volgraph"
)

// LogLevels is the closed, case-insensitive set of valid log-level
// values (spec.md §6).
var LogLevels = map[string]bool{
	"CRITICAL": true,
	"ERROR":    true,
	"WARNING":  true,
	"INFO":     true,
	"DEBUG":    true,
	"TRACE":    true,
	"NONE":     true,
}

// ValidLogLevel reports whether value is a recognised log level,
// case-insensitively.
func ValidLogLevel(value string) bool {
	return LogLevels[strings.ToUpper(value)]
}

// BasicCopy sets options[V.Option] = V.Value on every node of type
// V.VolType. Special ("!"-prefixed) options are ignored — they are
// owned by a dedicated handler.
func BasicCopy(g *volgraph.Graph, v dispatch.View, _ any) error {
	if strings.HasPrefix(v.Option, opttable.SpecialPrefix) {
		return nil
	}
	for _, n := range g.AllOfType(v.VolType) {
		n.SetOption(v.Option, v.Value)
	}
	return nil
}

// ServerAuth fires on V.Option == "!server-auth". It expands a
// whole-volume authorisation rule into one auth.addr.<child>.<suffix>
// option per child of the root (the root being protocol/server),
// where suffix is the substring of V.Key after the first '.'
// (auth.allow -> allow). This is the only handler that writes onto
// the root rather than onto nodes of V.VolType (spec.md §4.4, §8
// scenario 7).
func ServerAuth(g *volgraph.Graph, v dispatch.View, _ any) error {
	if v.Option != "!server-auth" {
		return nil
	}
	if g.First == nil {
		return nil
	}
	suffix := afterFirstDot(v.Key)
	root := g.First
	for _, child := range root.Children {
		root.SetOption(fmt.Sprintf("auth.addr.%s.%s", child.Name, suffix), v.Value)
	}
	return nil
}

func afterFirstDot(key string) string {
	if idx := strings.IndexByte(key, '.'); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

// LogLevel fires on V.Option == "!log-level" when V.Key contains role
// (e.g. "brick" for server graphs, "client" for client graphs).
// Validates V.Value against LogLevels; on mismatch it returns a
// validation error (spec.md §7 "validation" kind). On success it
// behaves like BasicCopy with the option renamed to "log-level",
// targeting nodes of V.VolType (in practice debug/io-stats).
func LogLevel(role string) dispatch.Handler {
	return func(g *volgraph.Graph, v dispatch.View, _ any) error {
		if v.Option != "!log-level" || !strings.Contains(v.Key, role) {
			return nil
		}
		if !ValidLogLevel(v.Value) {
			return fmt.Errorf("%s: invalid log level %q, want one of CRITICAL,ERROR,WARNING,INFO,DEBUG,TRACE,NONE", v.Key, v.Value)
		}
		for _, n := range g.AllOfType(v.VolType) {
			n.SetOption("log-level", strings.ToUpper(v.Value))
		}
		return nil
	}
}

// PerfToggle fires on V.Option == "!perf". It parses V.Value as a
// glusterd-style boolean; when true, it instantiates a node of
// V.VolType named "{volname}-{shortname}" and stacks it atop the
// current graph root via AddAsRoot. param must be the volume name
// (string); a wrong param type is a programmer error and panics, the
// same way a nil map write would.
func PerfToggle(g *volgraph.Graph, v dispatch.View, param any) error {
	if v.Option != "!perf" {
		return nil
	}
	if !parseBool(v.Value) {
		return nil
	}
	volname := param.(string)
	_, err := g.AddNamed(v.VolType, volname)
	if err != nil {
		return fmt.Errorf("perf_toggle %s: %w", v.VolType, err)
	}
	return nil
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "1", "on", "true", "yes", "enable":
		return true
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return false
}

// ServerSpec is the composite handler the server topology builder
// dispatches with: server_auth followed by log_level("brick")
// (spec.md §4.4).
func ServerSpec(g *volgraph.Graph, v dispatch.View, param any) error {
	if err := ServerAuth(g, v, param); err != nil {
		return err
	}
	return LogLevel("brick")(g, v, param)
}

// Optget is the accumulator handler used by Get: it records V.Value
// into *slot each time V.Key matches the requested key, so the last
// matching entry in table order wins (dispatch may still invoke the
// handler for every table entry; only matching ones write).
func Optget(key string, slot *string) dispatch.Handler {
	return func(_ *volgraph.Graph, v dispatch.View, _ any) error {
		if v.Key == key {
			*slot = v.Value
		}
		return nil
	}
}

// Get returns the effective value of key against dict and table: the
// user-set value if present, else the table default if any, else
// empty (spec.md §4.2). Implemented by running Dispatch with Optget,
// against a throwaway graph — Get never needs a real graph since it
// only observes values, never mutates translator options.
func Get(dict map[string]string, table opttable.Table, key string) (string, error) {
	var value string
	g := volgraph.New()
	if err := dispatch.Dispatch(g, dict, table, nil, Optget(key, &value)); err != nil {
		return "", err
	}
	return value, nil
}
