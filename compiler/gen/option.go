package gen

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

// DefaultTimestampStep separates the main and attribute file timestamps.
const DefaultTimestampStep = 2 * time.Second

// Hook is called after both migration files were written.
type Hook func()

// Config holds the collaborators and settings of a Creator.
type Config struct {
	Stubs         StubStore
	Files         FileStore
	Settings      Settings
	Clock         func() time.Time
	TimestampStep time.Duration
	Extension     string
	Format        bool
	Logger        *slog.Logger
	Hooks         []Hook
}

// Option configures a Creator.
type Option func(*Config) error

// WithStubs sets the stub store.
func WithStubs(s StubStore) Option {
	return func(c *Config) error {
		if s == nil {
			return NewConfigError("Stubs", nil, "stub store cannot be nil")
		}
		c.Stubs = s
		return nil
	}
}

// WithFileStore sets where generated files are written.
func WithFileStore(fs FileStore) Option {
	return func(c *Config) error {
		if fs == nil {
			return NewConfigError("Files", nil, "file store cannot be nil")
		}
		c.Files = fs
		return nil
	}
}

// WithSettings sets the provider of the field type list.
func WithSettings(s Settings) Option {
	return func(c *Config) error {
		if s == nil {
			return NewConfigError("Settings", nil, "settings cannot be nil")
		}
		c.Settings = s
		return nil
	}
}

// WithFieldTypes is a shortcut for static settings holding only types.
func WithFieldTypes(types ...string) Option {
	return WithSettings(StaticSettings{FieldTypesKey: types})
}

// WithClock sets the time source used for file timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) error {
		if clock == nil {
			return NewConfigError("Clock", nil, "clock cannot be nil")
		}
		c.Clock = clock
		return nil
	}
}

// WithTimestampStep sets how far the attribute file timestamp is placed
// after the main file timestamp. Timestamps have second precision.
func WithTimestampStep(d time.Duration) Option {
	return func(c *Config) error {
		if d < time.Second {
			return NewConfigError("TimestampStep", d, "must be at least one second")
		}
		c.TimestampStep = d
		return nil
	}
}

// WithExtension sets the generated file extension.
func WithExtension(ext string) Option {
	return func(c *Config) error {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return NewConfigError("Extension", ext, "must start with a dot")
		}
		c.Extension = ext
		return nil
	}
}

// WithFormat enables gofmt-style formatting of the generated files.
func WithFormat(enabled bool) Option {
	return func(c *Config) error {
		c.Format = enabled
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithHooks registers hooks fired after every successful Create.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a Config with defaults and the given options applied.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Stubs:         DefaultStubs(),
		Files:         OSFileStore{},
		Settings:      StaticSettings{},
		Clock:         time.Now,
		TimestampStep: DefaultTimestampStep,
		Extension:     ".go",
		Logger:        slog.Default(),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
