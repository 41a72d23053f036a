/*
Package log wraps zerolog with the conventions volgen's packages share:
a process-wide Logger, an explicit Init for CLI entry points, and a set
of With* helpers that attach the fields generation code cares about
(component, volume, brick, role) instead of repeating Str() calls.

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true})
	l := log.WithComponent("topology")
	l.Info().Str("volume", "tank").Msg("building client graph")
*/
package log
