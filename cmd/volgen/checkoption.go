package main

import (
	"fmt"

	"github.com/cuemby/volgen/pkg/opttable"
	"github.com/cuemby/volgen/pkg/topology"
	"github.com/spf13/cobra"
)

var checkOptionCmd = &cobra.Command{
	Use:   "check-option KEY",
	Short: "Check whether an option key is known, and optionally validate a volume's option dict",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckOption,
}

func init() {
	checkOptionCmd.Flags().String("volume", "", "Also validate this volume's current option dict")
}

func runCheckOption(cmd *cobra.Command, args []string) error {
	key := args[0]
	suggestion := opttable.Default.CheckOptionExists(key)

	if !suggestion.Exists {
		return fmt.Errorf("unknown option %q", key)
	}
	if suggestion.Suggestion != "" {
		fmt.Printf("%q is not fully qualified; did you mean %q?\n", key, suggestion.Suggestion)
	} else {
		fmt.Printf("%q is a known option\n", key)
	}

	volName, _ := cmd.Flags().GetString("volume")
	if volName == "" {
		return nil
	}
	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	vol, err := findVolume(reg, volName)
	if err != nil {
		return err
	}
	if err := topology.ValidateOptions(vol, vol.Dict); err != nil {
		return fmt.Errorf("validation failed for volume %q: %w", volName, err)
	}
	fmt.Printf("volume %q's current dict validates cleanly\n", volName)
	return nil
}
