package main

import (
	"fmt"

	"github.com/cuemby/volgen/pkg/handlers"
	"github.com/cuemby/volgen/pkg/opttable"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get VOLUME KEY",
	Short: "Print the effective value of an option key for a volume",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	volName, key := args[0], args[1]

	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	vol, err := findVolume(reg, volName)
	if err != nil {
		return err
	}

	value, err := handlers.Get(vol.Dict, opttable.Default, key)
	if err != nil {
		return err
	}
	if value == "" {
		fmt.Printf("%s: (unset, no default)\n", key)
		return nil
	}
	fmt.Println(value)
	return nil
}
