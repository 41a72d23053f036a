/*
Package topology implements the three graph builders spec.md §4.5–§4.7
describe, plus the build_graph_generic wrapper (§4.5 step 9, §4.6 step 7)
that the server and client builders run through.

# Server graph (one per brick)

	storage/posix
	  -> features/access-control
	    -> features/locks
	      -> [cluster/pump -> {this subtree, protocol/client replace-brick}]  (optional)
	        -> performance/io-threads (thread-count=16, hard default)
	          -> debug/io-stats (named after the brick path)
	            -> protocol/server (transport-type set)

server_spec dispatch (server_auth + log_level("brick")) then runs,
followed by the wrapper's unconditional basic_copy.

# Client graph (one per volume)

	protocol/client leaves (one per brick, "{vol}-client-{i}")
	  -> [cluster/replicate|stripe groups, reverse-insertion order]   (if cluster_count>1)
	    -> [cluster/distribute "{vol}-dht", children in reverse]      (if dist_count>1)
	      -> [performance/* stack, one layer per truthy !perf toggle]
	        -> debug/io-stats (named after the volume)

Topology counts (replicate/stripe/dist) are computed from
(type, brick_count, sub_count) in pkg/topology/compute.go, following
the table in spec.md §4.6 exactly, including the documented
replicate-count clamp for configurations where a naive division would
yield zero distribute subvolumes (spec.md flags this as an open
question; volgen applies it unconditionally).

The reverse-insertion ordering in both the clustering and distribute
layers is not an implementation accident: it is part of the wire
format (§9), and a from-scratch "more natural" ascending rewrite would
silently produce a differently-ordered, differently-hashed volfile.

# NFS graph (one, cluster-wide)

A single nfs/server root aggregates one client subgraph per started
volume, merged in via volgraph.Merge, with per-volume
rpc-auth.addr.*.allow and nfs3.*.volume-id options set on the shared
root.

# build_graph_generic

The server and client builders are each the "build" callback passed to
buildGraphGeneric, which runs it against a fresh graph and then, only
on success, runs one final basic_copy dispatch pass over the whole
option table — guaranteeing basic_copy always sees the finished
topology, never a partially-built one. The NFS builder does not go
through buildGraphGeneric: each client subgraph it merges has had its
own basic_copy pass, and no basic_copy pass runs over the nfs/server
root itself.
*/
package topology
