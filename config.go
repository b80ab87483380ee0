package utiny

import (
	"io"

	"github.com/charmbracelet/log"
)

// Config holds configuration options for parsing.
type Config struct {
	// Indent is the indentation unit written per tree level (default: two
	// spaces).
	Indent string

	// Extension is appended by ParseFile to paths without an extension
	// (default: ".tny").
	Extension string

	// MaxNodes caps the number of tree nodes. Exceeding it aborts the
	// parse with a ResourceError. 0 means unlimited.
	MaxNodes int

	// Logger receives debug records for each parse.
	// If nil, nothing is logged.
	Logger *log.Logger
}

// DefaultExtension is the TINY source file extension.
const DefaultExtension = ".tny"

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Indent == "" {
		c.Indent = "  "
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
}

// resolve returns a defaulted copy of config; the caller's value is
// never modified.
func resolve(config *Config) Config {
	var c Config
	if config != nil {
		c = *config
	}
	c.applyDefaults()
	return c
}
