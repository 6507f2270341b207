// velox-eav scaffolds the schema migrations of Entity-Attribute-Value entities.
//
//	velox-eav init
//	velox-eav entity product --path db/migrations
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/velox-eav/compiler/load"
)

// DefaultConfigFile is loaded when --config is not given and the file exists.
const DefaultConfigFile = "eav.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint("Error: ")+err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "velox-eav",
		Short: "Scaffold EAV entity migrations",
		Long: `velox-eav generates the migrations of an Entity-Attribute-Value entity:
a main table migration and one value table per configured attribute type.

Attribute types are read from eav.fieldTypes in the config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Config file (default "+DefaultConfigFile+" when present)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newEntityCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newStubsCmd())
	return root
}

// configPath returns --config, or DefaultConfigFile when it exists.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return path
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	} else if !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("cannot stat default config", "file", DefaultConfigFile, "error", err)
	}
	return ""
}

func loadSettings(cmd *cobra.Command) (*load.Config, error) {
	return load.LoadConfig(configPath(cmd))
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// flagOr returns the named string flag when set, def otherwise.
func flagOr(cmd *cobra.Command, name, def string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return def
}

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	dimStyle = color.New(color.Faint)
)
