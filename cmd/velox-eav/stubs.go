package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/velox-eav/compiler/gen"
)

func newStubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stubs",
		Short: "Inspect or publish the migration stubs",
	}

	publish := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Copy the built-in stubs into dir (default \"stubs\") for customization",
		Long: `Copy the built-in stubs into a directory. Point --stubs or eav.stubs at it
to generate migrations from the customized copies.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "stubs"
			if len(args) == 1 {
				dir = args[0]
			}
			written, err := gen.PublishStubs(gen.OSFileStore{MkdirAll: true}, dir)
			if err != nil {
				return err
			}
			for _, p := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", okMark, p)
			}
			return nil
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print where the built-in stubs are resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := gen.NewCreator()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.StubPath())
			return nil
		},
	}

	cmd.AddCommand(publish, path)
	return cmd
}
