package main

import (
	"fmt"
	"net/http"

	"github.com/cuemby/volgen/pkg/log"
	"github.com/cuemby/volgen/pkg/metrics"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose /metrics, /health, /ready and /live for the configured volume registry",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:9090", "Address to serve metrics and health endpoints on")
}

func runServe(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	metrics.SetVersion(Version)
	metrics.RegisterComponent("registry", true, "loaded")
	metrics.RegisterComponent("workdir", true, "")

	collector := metrics.NewCollector(reg)
	collector.Start()
	defer collector.Stop()

	addr, _ := cmd.Flags().GetString("addr")
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", metrics.HealthHandler())
	mux.HandleFunc("/ready", metrics.ReadyHandler())
	mux.HandleFunc("/live", metrics.LivenessHandler())

	log.WithComponent("serve").Info().Str("addr", addr).Msg("serving metrics and health endpoints")
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
