package gen

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
)

// Creator generates the two migration files of an EAV entity.
type Creator struct {
	cfg *Config
	w   *writer

	mu    sync.Mutex
	hooks []Hook
}

// NewCreator creates a Creator configured by opts.
//
// Example:
//
//	c, err := gen.NewCreator(
//		gen.WithFieldTypes("string", "int"),
//		gen.WithFormat(true),
//	)
//	path, err := c.Create(ctx, "product", "migrations", "EntityMigration")
func NewCreator(opts ...Option) (*Creator, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Creator{
		cfg:   cfg,
		w:     &writer{files: cfg.Files, format: cfg.Format},
		hooks: slices.Clone(cfg.Hooks),
	}, nil
}

// AfterCreate registers a hook fired after every successful Create on c.
func (c *Creator) AfterCreate(h Hook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, h)
}

// StubPath returns the location stubs are read from.
func (c *Creator) StubPath() string {
	return c.cfg.Stubs.Path()
}

// FileStore returns the store generated files are written to.
func (c *Creator) FileStore() FileStore {
	return c.cfg.Files
}

// Create writes the main and attribute migrations of entity name into dir and
// returns the attribute migration path. Both file timestamps are derived from
// one clock reading; the attribute file is stamped TimestampStep later so it
// always sorts after the main file.
//
// Hooks registered on c fire first, then hooks, each exactly once and only
// after both files were written. A failure aborts the call; a main file that
// was already written is left in place.
func (c *Creator) Create(ctx context.Context, name, dir, baseClass string, hooks ...Hook) (string, error) {
	types := FieldTypes(c.cfg.Settings)
	if err := validateInputs(name, baseClass, types); err != nil {
		return "", err
	}
	log := c.cfg.Logger.With("entity", name)

	now := c.cfg.Clock()
	mainPath := filepath.Join(dir, MigrationName(now, name, KindMain, c.cfg.Extension))

	mainStub, err := c.cfg.Stubs.Read(StubMain)
	if err != nil {
		return "", err
	}
	frags, err := loadFragments(c.cfg.Stubs)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.w.write(KindMain, mainPath, render(mainStub, frags, types, name, baseClass, KindMain.suffix())); err != nil {
		return "", err
	}
	log.Debug("migration written", "kind", KindMain, "path", mainPath)

	attrPath := filepath.Join(dir, MigrationName(now.Add(c.cfg.TimestampStep), name, KindAttribute, c.cfg.Extension))
	attrStub, err := c.cfg.Stubs.Read(StubEntity)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.w.write(KindAttribute, attrPath, render(attrStub, frags, types, name, baseClass, KindAttribute.suffix())); err != nil {
		return "", err
	}
	log.Debug("migration written", "kind", KindAttribute, "path", attrPath)

	c.fireHooks(hooks)
	log.Info("entity migrations created", "main", mainPath, "attribute", attrPath, "field_types", len(types))
	return attrPath, nil
}

// Render returns the populated content of one migration without writing it.
func (c *Creator) Render(kind Kind, name, baseClass string) (string, error) {
	types := FieldTypes(c.cfg.Settings)
	if err := validateInputs(name, baseClass, types); err != nil {
		return "", err
	}
	stub := StubMain
	if kind == KindAttribute {
		stub = StubEntity
	}
	tmpl, err := c.cfg.Stubs.Read(stub)
	if err != nil {
		return "", err
	}
	frags, err := loadFragments(c.cfg.Stubs)
	if err != nil {
		return "", err
	}
	return render(tmpl, frags, types, name, baseClass, kind.suffix()), nil
}

// fireHooks runs the registered hooks followed by the per-call ones.
func (c *Creator) fireHooks(extra []Hook) {
	c.mu.Lock()
	registered := slices.Clone(c.hooks)
	c.mu.Unlock()
	for _, h := range append(registered, extra...) {
		if h != nil {
			h()
		}
	}
}

func validateInputs(name, baseClass string, types []string) error {
	if err := ValidateEntityName(name); err != nil {
		return err
	}
	if err := ValidateBaseClass(baseClass); err != nil {
		return err
	}
	if err := ValidateFieldTypes(types); err != nil {
		return fmt.Errorf("%s: %w", FieldTypesKey, err)
	}
	return nil
}
