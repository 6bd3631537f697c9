package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/brewdump/pkg/errors"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Brew configures how the Homebrew CLI is invoked
type Brew struct {
	Command string `koanf:"command" toml:"command"`
}

// Output configures how results are printed
type Output struct {
	Format string `koanf:"format" toml:"format"`
	Color  string `koanf:"color" toml:"color"`
}

// Config is the main configuration structure
type Config struct {
	Brew   Brew   `koanf:"brew" toml:"brew"`
	Output Output `koanf:"output" toml:"output"`

	// Source is the user file that was loaded, if any
	Source string `koanf:"-" toml:"-"`
}

// Validate normalizes case and rejects unknown enum values
func (c *Config) Validate() error {
	c.Brew.Command = strings.TrimSpace(c.Brew.Command)
	if c.Brew.Command == "" {
		return errors.New(errors.ErrConfigParse, "brew.command must not be empty")
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown output.format %q", c.Output.Format).
			WithDetail("allowed", []string{FormatText, FormatJSON, FormatYAML})
	}

	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown output.color %q", c.Output.Color).
			WithDetail("allowed", []string{ColorAuto, ColorAlways, ColorNever})
	}

	return nil
}

// TOML renders the effective configuration
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
