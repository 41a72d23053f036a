package volgraph

import "errors"

// Sentinel errors for the graph primitives (spec §7 "invariant-violation"
// and "resource-exhaustion" kinds). Wrapped with fmt.Errorf("...: %w", ErrX)
// at call sites so callers can still errors.Is() against the kind.
var (
	// ErrUnknownTranslatorType is returned by Instantiate for an empty
	// translator type or an empty node name.
	ErrUnknownTranslatorType = errors.New("volgraph: unknown translator type")

	// ErrAlreadyParented is returned by Link when child already has a parent.
	ErrAlreadyParented = errors.New("volgraph: child already has a parent")

	// ErrCycle is returned by Link when linking would introduce a cycle.
	ErrCycle = errors.New("volgraph: link would introduce a cycle")

	// ErrDuplicateName is returned when a node name collides with an
	// existing node in the same graph. Names must be graph-unique
	// because the volfile format references children by name (§6).
	ErrDuplicateName = errors.New("volgraph: duplicate node name in graph")

	// ErrEmptyGraph is returned by operations that require a non-empty
	// graph (e.g. merging into one with no root yet).
	ErrEmptyGraph = errors.New("volgraph: graph has no root")

	// ErrForeignNode is returned when an operation is given a node that
	// does not belong to the graph it is being applied to.
	ErrForeignNode = errors.New("volgraph: node does not belong to this graph")

	// ErrMixedTopology is returned when a volume's computed topology
	// would require both stripe and replicate clustering layers at
	// once (§4.6, §8 scenario 4).
	ErrMixedTopology = errors.New("volgraph: mixed stripe+replicate topology is not supported")
)
