package main

import (
	"path/filepath"

	"github.com/cuemby/volgen/pkg/log"
	"github.com/cuemby/volgen/pkg/metrics"
	"github.com/cuemby/volgen/pkg/registry"
	"github.com/cuemby/volgen/pkg/topology"
	"github.com/spf13/cobra"
)

var nfsCmd = &cobra.Command{
	Use:   "nfs",
	Short: "Generate the cluster-wide NFS volfile",
	RunE:  runNFS,
}

func runNFS(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	store, err := registry.Open(filepath.Join(cfg.WorkDir, "volgen-registry.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	timer := metrics.NewTimer()
	g, err := topology.BuildNFSGraph(reg)
	timer.ObserveDurationVec(metrics.GraphBuildDuration, "nfs")
	if err != nil {
		metrics.DispatchErrorsTotal.WithLabelValues("nfs").Inc()
		metrics.GraphsBuiltTotal.WithLabelValues("nfs", "error").Inc()
		return err
	}
	metrics.GraphsBuiltTotal.WithLabelValues("nfs", "ok").Inc()
	metrics.GraphNodesTotal.WithLabelValues("nfs").Observe(float64(g.Count()))

	path := cfg.NFSVolfilePath()
	if err := writeIfChanged(store, g, path, "nfs"); err != nil {
		return err
	}
	log.WithRole("nfs").Info().Str("path", path).Msg("nfs volfile generated")
	return nil
}
