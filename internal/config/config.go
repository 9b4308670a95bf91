// Package config provides reading and writing of rgkit configuration.
// Supports both global (~/.rgkit/config.yaml) and local (.rgkit/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.rgkit/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .rgkit/config.yaml
	ScopeLocal
)

// RG holds settings for locating and invoking the ripgrep binary.
type RG struct {
	Binary string `yaml:"binary,omitempty"`
}

// Limits holds safety limit configuration options applied to searches.
type Limits struct {
	MaxCount    *int   `yaml:"max_count,omitempty"`
	MaxFilesize *int64 `yaml:"max_filesize,omitempty"`
	MaxDepth    *int   `yaml:"max_depth,omitempty"`
}

// Search holds default search behaviour options.
type Search struct {
	CaseSensitive   *bool `yaml:"case_sensitive,omitempty"`
	ExcludeDefaults *bool `yaml:"exclude_defaults,omitempty"`
}

// Default limits applied when not configured. These mirror the safe
// defaults the search builder uses, so config only needs to store
// deviations from them.
const (
	DefaultBinary      = "rg"
	DefaultMaxCount    = 100
	DefaultMaxFilesize = int64(50 * 1024 * 1024) // 50 MB
	DefaultMaxDepth    = 15
)

// Validation bounds for configuration values.
const (
	MinMaxCount    = 1
	MaxMaxCount    = 1_000_000
	MinMaxFilesize = 1
	MaxMaxFilesize = 10 * 1000 * 1000 * 1000 // 10 GB - reasonable upper bound
	MinMaxDepth    = 1
	MaxMaxDepth    = 255
)

// Config contains configuration for rgkit.
type Config struct {
	RG     RG     `yaml:"rg,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`
	Search Search `yaml:"search,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxCount != nil {
		v := *c.Limits.MaxCount
		if v < MinMaxCount || v > MaxMaxCount {
			return fmt.Errorf("%w: max_count must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxCount, MaxMaxCount, v)
		}
	}
	if c.Limits.MaxFilesize != nil {
		v := *c.Limits.MaxFilesize
		if v < MinMaxFilesize || v > MaxMaxFilesize {
			return fmt.Errorf("%w: max_filesize must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxFilesize, MaxMaxFilesize, v)
		}
	}
	if c.Limits.MaxDepth != nil {
		v := *c.Limits.MaxDepth
		if v < MinMaxDepth || v > MaxMaxDepth {
			return fmt.Errorf("%w: max_depth must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxDepth, MaxMaxDepth, v)
		}
	}
	return nil
}

// Binary returns the ripgrep binary to invoke (defaults to "rg" on PATH).
func (c *Config) Binary() string {
	if c.RG.Binary == "" {
		return DefaultBinary
	}
	return c.RG.Binary
}

// MaxCount returns the per-file match limit (defaults to 100).
func (c *Config) MaxCount() int {
	if c.Limits.MaxCount == nil {
		return DefaultMaxCount
	}
	return *c.Limits.MaxCount
}

// MaxFilesize returns the largest file size searched in bytes (defaults to 50 MB).
func (c *Config) MaxFilesize() int64 {
	if c.Limits.MaxFilesize == nil {
		return DefaultMaxFilesize
	}
	return *c.Limits.MaxFilesize
}

// MaxDepth returns the directory traversal depth limit (defaults to 15).
func (c *Config) MaxDepth() int {
	if c.Limits.MaxDepth == nil {
		return DefaultMaxDepth
	}
	return *c.Limits.MaxDepth
}

// CaseSensitive returns whether searches match case by default (defaults to true).
func (c *Config) CaseSensitive() bool {
	if c.Search.CaseSensitive == nil {
		return true
	}
	return *c.Search.CaseSensitive
}

// ExcludeDefaults returns whether the standard binary/lock/data file type
// exclusions are applied to searches (defaults to true).
func (c *Config) ExcludeDefaults() bool {
	if c.Search.ExcludeDefaults == nil {
		return true
	}
	return *c.Search.ExcludeDefaults
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".rgkit", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.rgkit/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rgkit", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	// Check if local config exists
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	// Fall back to global
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
