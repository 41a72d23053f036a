package opttable

// BuildDefault constructs the static option table wired into every
// volgen invocation. It mirrors (a small, illustrative slice of) the
// real glusterd option table: one row per recognised user-visible key,
// some sharing a key across translator types on purpose (§9 "duplicate
// key entries"), some marked special via the "!" sentinel so a
// dedicated handler in pkg/handlers interprets them instead of
// basic_copy.
func BuildDefault() Table {
	return Table{
		// Performance toggles: each defaults to "on" and, when truthy,
		// causes perf_toggle to stack the named translator onto the
		// client graph's root (§4.4, §4.6 step 4, §8 scenario 1).
		{Key: "performance.write-behind", VolType: "performance/write-behind", Option: "!perf", Default: "on", HasDefault: true},
		{Key: "performance.read-ahead", VolType: "performance/read-ahead", Option: "!perf", Default: "on", HasDefault: true},
		{Key: "performance.io-cache", VolType: "performance/io-cache", Option: "!perf", Default: "on", HasDefault: true},
		{Key: "performance.quick-read", VolType: "performance/quick-read", Option: "!perf", Default: "on", HasDefault: true},
		{Key: "performance.stat-prefetch", VolType: "performance/stat-prefetch", Option: "!perf", Default: "on", HasDefault: true},

		// performance.cache-size fans out to two translator types that
		// both happen to call their native option "cache-size" (§8
		// scenario 6). No default: basic_copy only fires when the user
		// sets the key.
		{Key: "performance.cache-size", VolType: "performance/io-cache", Option: "cache-size"},
		{Key: "performance.cache-size", VolType: "performance/quick-read", Option: "cache-size"},

		// performance.io-thread-count overrides the hard 16-thread
		// default the server builder applies before dispatch runs
		// (§4.5 step 5); no table default since the builder already set one.
		{Key: "performance.io-thread-count", VolType: "performance/io-threads", Option: "thread-count"},

		// Whole-volume authorisation, expanded per-subvolume by the
		// server_auth handler (§4.4, §8 scenario 7).
		{Key: "auth.allow", VolType: "protocol/server", Option: "!server-auth", Default: "*", HasDefault: true},
		{Key: "auth.reject", VolType: "protocol/server", Option: "!server-auth"},

		// Log-level routing: same key shape on both the brick and
		// client side, disambiguated by the caller-supplied role
		// substring the log_level handler checks against V.Key (§4.4,
		// §8 scenario 8).
		{Key: "diagnostics.brick-log-level", VolType: "debug/io-stats", Option: "!log-level"},
		{Key: "diagnostics.client-log-level", VolType: "debug/io-stats", Option: "!log-level"},

		// Plain basic_copy entries onto the client transport leaves.
		{Key: "network.ping-timeout", VolType: "protocol/client", Option: "ping-timeout", Default: "42", HasDefault: true},
		{Key: "network.frame-timeout", VolType: "protocol/client", Option: "frame-timeout", Default: "1800", HasDefault: true},

		// NFS-domain basic_copy entries targeting nfs/server. BuildNFSGraph
		// runs no basic_copy pass over its nfs/server root, so no
		// generated graph receives these options.
		{Key: "nfs.nlm", VolType: "nfs/server", Option: "nfs.nlm", Default: "on", HasDefault: true},
		{Key: "nfs.mount-udp", VolType: "nfs/server", Option: "nfs.mount-udp", Default: "off", HasDefault: true},
	}
}
