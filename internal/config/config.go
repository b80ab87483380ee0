// Package config loads utiny settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Output formats accepted by the format key.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// DefaultNames are the file names Find looks for, in order.
var DefaultNames = []string{"utiny.toml", "utiny.yaml", "utiny.yml"}

// Config holds the CLI settings.
type Config struct {
	// Indent is the number of spaces per tree level (default 2).
	Indent int `toml:"indent" yaml:"indent"`

	// Extension is appended to source paths that have none (default ".tny").
	Extension string `toml:"extension" yaml:"extension"`

	// MaxNodes caps the tree size; 0 means unlimited.
	MaxNodes int `toml:"max_nodes" yaml:"max_nodes"`

	// Format is the output format, "text" or "yaml" (default "text").
	Format string `toml:"format" yaml:"format"`

	// Color enables styled diagnostics (default true).
	Color *bool `toml:"color" yaml:"color"`

	path string
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a file, detecting the format from the
// file extension.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML // Default to TOML
	}

	var cfg Config
	if err := parseContent([]byte(content), format, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find returns the first of DefaultNames present in dir.
func Find(dir string) (string, bool) {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// ColorEnabled reports whether styled output is enabled.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("max_nodes must not be negative, got %d", c.MaxNodes)
	}
	switch c.Format {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", c.Format, OutputText, OutputYAML)
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("extension %q must not contain a path separator", c.Extension)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Indent == 0 {
		c.Indent = 2
	}
	if c.Extension == "" {
		c.Extension = ".tny"
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.Format == "" {
		c.Format = OutputText
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatTOML // Default to TOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}
