// Package opttable is the static, process-wide option-table registry:
// the mapping from user-visible dotted option keys to the translator
// type and native option they target, with optional defaults and
// "special" handler markers (spec.md §3 "Option-table entry", §4.2).
package opttable

import "strings"

// SpecialPrefix marks an Option field as special: basic_copy does not
// apply to it, a dedicated handler interprets it instead (§4.4).
const SpecialPrefix = "!"

// Entry is one row of the option table. Duplicate Keys are permitted
// and meaningful — e.g. performance.cache-size targets two translator
// types — and must never be deduplicated on load (§9 design note).
type Entry struct {
	// Key is the dotted, user-visible option name, e.g.
	// "performance.cache-size".
	Key string

	// VolType is the translator type this entry targets, e.g.
	// "performance/io-cache".
	VolType string

	// Option is the native option name on that translator. If empty,
	// it is derived as the substring of Key after the final '.'.
	Option string

	// Default is the value applied when the user has not set Key. It
	// is used only when HasDefault is true.
	Default string

	// HasDefault marks Default as set. When false the entry has no
	// default: the handler never fires for it unless the user sets the
	// key.
	HasDefault bool
}

// EffectiveOption returns Option if set, else the derived suffix of Key.
func (e Entry) EffectiveOption() string {
	if e.Option != "" {
		return e.Option
	}
	return suffix(e.Key)
}

// IsSpecial reports whether this entry's option is owned by a
// dedicated handler rather than basic_copy.
func (e Entry) IsSpecial() bool {
	return strings.HasPrefix(e.EffectiveOption(), SpecialPrefix)
}

func suffix(key string) string {
	if idx := strings.LastIndexByte(key, '.'); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

func specifier(key string) string {
	return suffix(key)
}

// Table is an ordered, static list of Entry. The order entries are
// declared in is significant: dispatch walks the table in table order
// (§4.3), so entries targeting the same key fire in the order they
// appear here.
type Table []Entry

// Default is the process-wide option table, built once at init and
// read-only thereafter (§3 "Option-table lifecycle"). It is exported
// as a variable, not a function, so the table can be extended by a
// consumer embedding volgen (e.g. a test injecting extra entries) --
// but production code should treat it as immutable after startup.
var Default Table = BuildDefault()

// Suggestion is the result of CheckOptionExists for a bare
// (non-dotted) key.
type Suggestion struct {
	Exists     bool
	Suggestion string
}

// CheckOptionExists powers "did you mean" CLI completion (§4.2).
//
// If key contains '.', it reports Exists iff some entry's Key matches
// exactly (Suggestion is always empty in that case: the key is already
// fully qualified). If key has no '.', the table is scanned for
// entries whose specifier (substring after the final '.' of the
// entry's Key) equals key; exactly one match returns that entry's
// fully-qualified Key as Suggestion, two or more matches return
// Exists=true with no suggestion, and zero matches returns
// Exists=false.
func (t Table) CheckOptionExists(key string) Suggestion {
	if strings.Contains(key, ".") {
		for _, e := range t {
			if e.Key == key {
				return Suggestion{Exists: true}
			}
		}
		return Suggestion{Exists: false}
	}

	var matches []string
	for _, e := range t {
		if specifier(e.Key) == key {
			matches = append(matches, e.Key)
		}
	}
	switch len(matches) {
	case 0:
		return Suggestion{Exists: false}
	case 1:
		return Suggestion{Exists: true, Suggestion: matches[0]}
	default:
		return Suggestion{Exists: true}
	}
}
