package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kolkov/utiny"
	"github.com/kolkov/utiny/internal/config"
	"github.com/kolkov/utiny/internal/query"
)

// settings is the merged view of the config file and command line flags.
type settings struct {
	cfg    *config.Config
	match  *query.Regex
	styles styles
	logger *log.Logger
}

// loadSettings reads the config file named by --config, or the first
// default config file in the working directory, and applies the flags
// the user set explicitly on top of it.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, usageError(err)
	}

	flags := cmd.Flags()
	if flags.Changed("indent") {
		if indent < 1 {
			return nil, usageError(fmt.Errorf("--indent must be at least 1, got %d", indent))
		}
		cfg.Indent = indent
	}
	if flags.Changed("max-nodes") {
		cfg.MaxNodes = maxNodes
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if noColor {
		off := false
		cfg.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		return nil, usageError(err)
	}

	s := &settings{
		cfg:    cfg,
		styles: newStyles(cfg.ColorEnabled()),
		logger: newLogger(),
	}
	if matchExpr != "" {
		re, err := query.Compile(matchExpr)
		if err != nil {
			return nil, usageError(fmt.Errorf("invalid --match pattern: %w", err))
		}
		s.match = re
	}
	if p := cfg.Path(); p != "" {
		s.logger.Debug("loaded config", "path", p)
	}
	return s, nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	if path, ok := config.Find("."); ok {
		return config.Load(path)
	}
	return config.Default(), nil
}

func newLogger() *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "utiny",
	})
}

// driverConfig converts the settings to the library configuration.
func (s *settings) driverConfig() *utiny.Config {
	return &utiny.Config{
		Indent:    strings.Repeat(" ", s.cfg.Indent),
		Extension: s.cfg.Extension,
		MaxNodes:  s.cfg.MaxNodes,
		Logger:    s.logger,
	}
}

func usageError(err error) error {
	return &exitError{code: exitFailure, err: err}
}
