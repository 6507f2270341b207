// Package load reads the generator settings from configuration files and
// the environment.
package load

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/syssam/velox-eav/compiler/gen"
)

// EnvPrefix prefixes environment overrides: eav.fieldTypes is read from
// VELOX_EAV_EAV_FIELDTYPES (whitespace separated).
const EnvPrefix = "VELOX_EAV"

// Keys read from the config file.
const (
	KeyFieldTypes = gen.FieldTypesKey
	KeyPath       = "eav.path"
	KeyBaseClass  = "eav.baseClass"
	KeyStubs      = "eav.stubs"
)

// DefaultFieldTypes is the type list written by WriteDefaultConfig.
var DefaultFieldTypes = []string{"string", "integer", "decimal", "datetime", "text", "boolean"}

// ErrConfigExists is returned by WriteDefaultConfig when the file exists.
var ErrConfigExists = errors.New("eav: config file already exists")

// Config is a viper-backed settings provider.
type Config struct {
	v    *viper.Viper
	file string
}

var _ gen.Settings = (*Config)(nil)

// LoadConfig reads the config file at path. The format is picked from the
// extension (yaml, json, toml, ...). An empty path loads no file, so only
// environment overrides and defaults apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return &Config{v: v, file: path}, nil
}

// File returns the loaded config file path, or "" when none was read.
func (c *Config) File() string {
	return c.file
}

// Strings returns the list stored under key, or def when unset.
func (c *Config) Strings(key string, def []string) []string {
	if !c.v.IsSet(key) {
		return def
	}
	return slices.Clone(c.v.GetStringSlice(key))
}

// String returns the value stored under key, or def when unset or empty.
func (c *Config) String(key, def string) string {
	if s := c.v.GetString(key); s != "" {
		return s
	}
	return def
}

type fileConfig struct {
	EAV eavSection `yaml:"eav"`
}

type eavSection struct {
	FieldTypes []string `yaml:"fieldTypes"`
	Path       string   `yaml:"path,omitempty"`
	BaseClass  string   `yaml:"baseClass,omitempty"`
	Stubs      string   `yaml:"stubs,omitempty"`
}

// WriteDefaultConfig writes a starter YAML config holding types. It never
// overwrites an existing file.
func WriteDefaultConfig(path string, types []string) error {
	if len(types) == 0 {
		types = DefaultFieldTypes
	}
	data, err := yaml.Marshal(fileConfig{EAV: eavSection{
		FieldTypes: types,
		Path:       "migrations",
		BaseClass:  "EntityMigration",
	}})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
		return fmt.Errorf("create config: %w", err)
	}
	_, err = f.WriteString("# EAV entity migration settings.\n" + string(data))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
