package main

import (
	"fmt"

	"github.com/cuemby/volgen/pkg/voldesc"
	"github.com/cuemby/volgen/pkg/volgenconfig"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (volgenconfig.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return volgenconfig.Default(), nil
	}
	return volgenconfig.Load(path)
}

func loadRegistry(cmd *cobra.Command) (*voldesc.StaticRegistry, error) {
	path, _ := cmd.Flags().GetString("volumes")
	volumes, err := voldesc.LoadVolumes(path)
	if err != nil {
		return nil, err
	}
	return &voldesc.StaticRegistry{Volumes: volumes}, nil
}

func findVolume(registry *voldesc.StaticRegistry, name string) (*voldesc.Volume, error) {
	for _, v := range registry.Volumes {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("volume %q not found", name)
}
