package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/velox-eav/compiler/load"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a starter config file holding eav.fieldTypes, eav.path and eav.baseClass.
An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = DefaultConfigFile
			}
			types, _ := cmd.Flags().GetStringSlice("types")
			if err := load.WriteDefaultConfig(path, types); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", okMark, path)
			return nil
		},
	}
	cmd.Flags().StringSlice("types", nil, "Attribute types to write (default: "+fmt.Sprint(load.DefaultFieldTypes)+")")
	return cmd
}
