package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/velox-eav/compiler/gen"
	"github.com/syssam/velox-eav/compiler/load"
)

func newEntityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity [name]",
		Short: "Generate the main and attribute migrations of an entity",
		Long: `Generate two migrations for an EAV entity:
  - {timestamp}_create_{name}_entity_main_table.go (entity table)
  - {timestamp}_create_{name}_entity_table.go      (one value table per type)

Examples:
  velox-eav entity product
  velox-eav entity product --types string,int,datetime --path db/migrations
  velox-eav entity product --base migrate.EntityMigration --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: runEntity,
	}
	cmd.Flags().String("path", "", `Directory to write migrations to (default eav.path, then "migrations")`)
	cmd.Flags().String("base", "", `Base type the migrations embed (default eav.baseClass, then "EntityMigration")`)
	cmd.Flags().StringSlice("types", nil, "Attribute types, overrides eav.fieldTypes")
	cmd.Flags().String("stubs", "", "Directory with custom stubs (default eav.stubs, then the built-in stubs)")
	cmd.Flags().Bool("dry-run", false, "Print the generated files without writing them")
	cmd.Flags().Bool("no-format", false, "Skip gofmt formatting of the generated files")
	cmd.Flags().Bool("mkdir", false, "Create the target directory when missing")
	return cmd
}

func runEntity(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	dir := flagOr(cmd, "path", cfg.String(load.KeyPath, "migrations"))
	base := flagOr(cmd, "base", cfg.String(load.KeyBaseClass, "EntityMigration"))
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noFormat, _ := cmd.Flags().GetBool("no-format")
	mkdir, _ := cmd.Flags().GetBool("mkdir")

	var settings gen.Settings = cfg
	if cmd.Flags().Changed("types") {
		types, _ := cmd.Flags().GetStringSlice("types")
		settings = gen.StaticSettings{gen.FieldTypesKey: types}
	}

	var stubs gen.StubStore = gen.DefaultStubs()
	if stubDir := flagOr(cmd, "stubs", cfg.String(load.KeyStubs, "")); stubDir != "" {
		stubs = gen.DirStubs(stubDir)
	}

	out := cmd.OutOrStdout()
	var mem *gen.MemFileStore
	var files gen.FileStore = reportingStore{FileStore: gen.OSFileStore{MkdirAll: mkdir}, out: out}
	if dryRun {
		mem = gen.NewMemFileStore()
		files = mem
	}

	creator, err := gen.NewCreator(
		gen.WithStubs(stubs),
		gen.WithFileStore(files),
		gen.WithSettings(settings),
		gen.WithFormat(!noFormat),
		gen.WithLogger(newLogger(cmd)),
	)
	if err != nil {
		return err
	}

	types := gen.FieldTypes(settings)
	fmt.Fprintf(out, "Generating EAV migrations for '%s'", name)
	if len(types) > 0 {
		fmt.Fprintf(out, " with attribute types: %s", strings.Join(types, ", "))
	}
	fmt.Fprintln(out)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = creator.Create(ctx, name, dir, base, func() {
		if dryRun {
			return
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintf(out, "  1. With the built-in stubs, %s must provide ValueType(string) string\n", base)
		fmt.Fprintln(out, "  2. Register both migrations with your migration runner")
	})
	if err != nil {
		return fmt.Errorf("failed to generate entity migrations: %w", err)
	}

	if dryRun {
		printDryRun(out, mem)
	}
	return nil
}

func printDryRun(out io.Writer, mem *gen.MemFileStore) {
	fmt.Fprintln(out, dimStyle.Sprint("(dry-run mode - no files written)"))
	for _, p := range mem.Files() {
		content, _ := mem.Read(p)
		fmt.Fprintf(out, "\n--- %s ---\n%s", p, content)
	}
}

// reportingStore prints every file written through it.
type reportingStore struct {
	gen.FileStore
	out io.Writer
}

func (s reportingStore) WriteFile(path string, data []byte) error {
	if err := s.FileStore.WriteFile(path, data); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s Created %s\n", okMark, path)
	return nil
}
