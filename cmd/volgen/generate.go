package main

import (
	"fmt"
	"path/filepath"

	"github.com/cuemby/volgen/pkg/emitter"
	"github.com/cuemby/volgen/pkg/log"
	"github.com/cuemby/volgen/pkg/metrics"
	"github.com/cuemby/volgen/pkg/registry"
	"github.com/cuemby/volgen/pkg/topology"
	"github.com/cuemby/volgen/pkg/voldesc"
	"github.com/cuemby/volgen/pkg/volgenconfig"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate server and client volfiles for one or all volumes",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("volume", "", "Generate only this volume (default: every volume in the registry)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	only, _ := cmd.Flags().GetString("volume")
	volumes := reg.Volumes
	if only != "" {
		v, err := findVolume(reg, only)
		if err != nil {
			return err
		}
		volumes = []*voldesc.Volume{v}
	}

	for _, vol := range volumes {
		if err := generateVolume(cfg, store, vol); err != nil {
			return fmt.Errorf("generate %s: %w", vol.Name, err)
		}
	}
	return nil
}

func generateVolume(cfg volgenconfig.Config, store *registry.Store, vol *voldesc.Volume) error {
	logger := log.WithVolume(vol.Name)

	for _, brick := range vol.Bricks {
		timer := metrics.NewTimer()
		g, err := topology.BuildServerGraph(vol, vol.Dict, brick.Path)
		timer.ObserveDurationVec(metrics.GraphBuildDuration, "server")
		if err != nil {
			metrics.DispatchErrorsTotal.WithLabelValues("server").Inc()
			metrics.GraphsBuiltTotal.WithLabelValues("server", "error").Inc()
			return err
		}
		metrics.GraphsBuiltTotal.WithLabelValues("server", "ok").Inc()
		metrics.GraphNodesTotal.WithLabelValues("server").Observe(float64(g.Count()))

		path := cfg.BrickVolfilePath(vol.Name, brick.Hostname, brick.Path)
		if err := writeIfChanged(store, g, path, "server"); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("server volfile generated")
	}

	timer := metrics.NewTimer()
	g, err := topology.BuildClientGraph(vol, vol.Dict)
	timer.ObserveDurationVec(metrics.GraphBuildDuration, "client")
	if err != nil {
		metrics.DispatchErrorsTotal.WithLabelValues("client").Inc()
		metrics.GraphsBuiltTotal.WithLabelValues("client", "error").Inc()
		return err
	}
	metrics.GraphsBuiltTotal.WithLabelValues("client", "ok").Inc()
	metrics.GraphNodesTotal.WithLabelValues("client").Observe(float64(g.Count()))

	path := cfg.ClientVolfilePath(vol.Name)
	if err := writeIfChanged(store, g, path, "client"); err != nil {
		return err
	}
	logger.Info().Str("path", path).Msg("client volfile generated")
	return nil
}
