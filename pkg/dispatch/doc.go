/*
Package dispatch is the option dispatch engine (spec.md §4.3): it
walks the static pkg/opttable.Table against a user dictionary, in
table order, and invokes a pluggable dispatch.Handler once per
(entry, effective value) pair.

	for each entry E in table order:
	    if E.Key in dict:   fire handler(dict[E.Key])
	    else if E.Default:  fire handler(E.Default)
	    else:               skip

User values always win over defaults; a default fires exactly when the
key is unset. Two entries sharing a Key (performance.cache-size
targeting both performance/io-cache and performance/quick-read) each
fire independently, fanning one user value out to both translators.

Dispatch itself never mutates a graph — it only invokes Handler, which
does. This keeps the walk-the-table logic independent of what "apply
an option" means for any given entry, so pkg/handlers can define
basic_copy, server_auth, log_level and perf_toggle without Dispatch
knowing about any of them.
*/
package dispatch
