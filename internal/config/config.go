// Package config provides YAML run-control loading and validation for the
// pouty CLI. It handles environment variable expansion, default value
// application, and rejects color names the console palette does not know.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jdmonaco/pouty/anybar"
	"github.com/jdmonaco/pouty/console"
)

// Config is the root structure loaded from pouty.yaml.
type Config struct {
	Prefix       string  `yaml:"prefix"`        // Default prefix for console messages
	PrefixColor  string  `yaml:"prefix_color"`  // Color name for the prefix text
	MessageColor string  `yaml:"message_color"` // Color name for the message text
	Quiet        bool    `yaml:"quiet"`         // Suppress normal and debug output
	Debug        bool    `yaml:"debug"`         // Enable debug-severity output
	Logfile      Logfile `yaml:"logfile"`       // Optional log file mirror
	AnyBar       AnyBar  `yaml:"anybar"`        // Menubar signaling settings
}

// Logfile configures the mirrored log file.
type Logfile struct {
	Path       string `yaml:"path"`       // Log file path (supports ${VAR} env expansion)
	Truncate   bool   `yaml:"truncate"`   // Truncate instead of append on open
	Timestamps bool   `yaml:"timestamps"` // Prepend a timestamp tag to each record
}

// AnyBar configures the menubar signaling client.
type AnyBar struct {
	Port       int    `yaml:"port,omitempty"`        // Explicit UDP port (0 = singleton discovery)
	StartColor string `yaml:"start_color,omitempty"` // Color to show on startup
}

// Validate checks color names against the console palette and the menubar
// token set. Zero values are acceptable everywhere; this file only needs to
// be internally consistent.
func (c *Config) Validate() error {
	if c.PrefixColor != "" {
		if _, err := console.Func(c.PrefixColor); err != nil {
			return fmt.Errorf("prefix_color: %w", err)
		}
	}
	if c.MessageColor != "" {
		if _, err := console.Func(c.MessageColor); err != nil {
			return fmt.Errorf("message_color: %w", err)
		}
	}
	if c.AnyBar.Port < 0 {
		return fmt.Errorf("anybar.port must be >= 0")
	}
	if c.AnyBar.StartColor != "" && !anybar.ValidColor(c.AnyBar.StartColor) {
		return fmt.Errorf("anybar.start_color: %w: %q", anybar.ErrInvalidColor, c.AnyBar.StartColor)
	}
	return nil
}

// Default returns the built-in configuration used when no run-control file
// exists.
func Default() *Config {
	return &Config{
		PrefixColor:  console.DefaultPrefixColor,
		MessageColor: console.DefaultMessageColor,
	}
}

// Load reads and parses a YAML run-control file. Environment variables in
// the file body are expanded with ${VAR} syntax before parsing, so log file
// paths can point at per-machine locations.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
