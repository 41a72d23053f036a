/*
Package volgraph implements the translator-graph data model: the
in-memory representation every volgen topology builder assembles and
every volfile emitter serialises (spec.md §3–§4.1).

# Model

A Graph is an ordered collection of Nodes. Each Node is a typed,
named translator vertex with its own string->string option map and an
ordered list of children. A node owns its Options; it does not own
its Children — the Graph does, by holding every node reachable from
construction in Nodes and by tracking the current root in First.

	┌──────────────────────── GRAPH ────────────────────────┐
	│                                                         │
	│   First ──► protocol/server                            │
	│                   │                                    │
	│             debug/io-stats                              │
	│                   │                                    │
	│           performance/io-threads                        │
	│                   │                                    │
	│            features/locks                               │
	│                   │                                    │
	│         features/access-control                          │
	│                   │                                    │
	│             storage/posix                                │
	│                                                         │
	│   Nodes = [posix, access-control, locks, io-threads,    │
	│            io-stats, server]   (insertion order)         │
	└─────────────────────────────────────────────────────────┘

# Construction primitives

Instantiate creates an unattached node. AddAsRoot is the common
"push a new stage on top" move: it instantiates, links the new node as
parent of the current First, and retargets First. AddDetached starts a
sibling subtree without linking it to the existing root — used for the
pump subtree's replace-brick leaf and for per-brick protocol/client
leaves before they are grouped under a clustering layer. Merge splices
one graph into another, used once, by the NFS builder, to fold a
client subgraph under the shared nfs/server root.

# Invariants

Every node name is unique within a graph (enforced by register, since
parents reference children by name in the serialised volfile). Every
non-root node has exactly one parent. Link refuses to attach a node
that already has a parent or whose attachment would create a cycle.
PostOrder walks from First and returns nodes in reverse-topological
order — children before parents — which is the order the volfile text
format requires.

# Failure policy

Every primitive returns an error instead of panicking; a failure
leaves the graph in a structurally consistent (if incomplete) state,
and the caller is expected to discard the whole graph rather than try
to repair it (spec.md §4.1, §7).
*/
package volgraph
