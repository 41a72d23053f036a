package main

import (
	"github.com/cuemby/volgen/pkg/emitter"
	"github.com/cuemby/volgen/pkg/metrics"
	"github.com/cuemby/volgen/pkg/registry"
	"github.com/cuemby/volgen/pkg/volgraph"
)

// writeIfChanged renders g, skips the write (and records the skip in
// metrics) when the registry says the digest already matches path,
// and otherwise writes it atomically and records the new digest.
func writeIfChanged(store *registry.Store, g *volgraph.Graph, path, role string) error {
	content := emitter.Render(g)

	unchanged, err := store.Unchanged(path, content)
	if err != nil {
		return err
	}
	if unchanged {
		metrics.VolfilesUnchangedTotal.WithLabelValues(role).Inc()
		return nil
	}

	if err := emitter.Write(g, path); err != nil {
		return err
	}
	metrics.VolfilesWrittenTotal.WithLabelValues(role).Inc()
	return store.Record(path, content)
}
