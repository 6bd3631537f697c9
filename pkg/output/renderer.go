package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/brewdump/pkg/config"
	"github.com/arthur-debert/brewdump/pkg/errors"
	"github.com/arthur-debert/brewdump/pkg/logging"
)

// DumpResult is the structured form of a cask dump
type DumpResult struct {
	Required   []string `json:"required" yaml:"required"`
	Unrequired []string `json:"unrequired" yaml:"unrequired"`
}

// NewDumpResult splits the newline-joined dump sections into entries
func NewDumpResult(required, unrequired string) DumpResult {
	return DumpResult{
		Required:   splitSection(required),
		Unrequired: splitSection(unrequired),
	}
}

// Renderer writes command results as text, JSON or YAML.
type Renderer struct {
	writer io.Writer
	format string
	header lipgloss.Style
}

// NewRenderer creates a renderer for format. Text output is styled only
// when noColor is false.
func NewRenderer(w io.Writer, format string, noColor bool) (*Renderer, error) {
	switch format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unknown output format %q", format).
			WithDetail("format", format)
	}

	logger := logging.GetLogger("output.Renderer")
	logger.Debug().
		Str("format", format).
		Bool("noColor", noColor).
		Msg("Creating renderer")

	// Color was already decided by the caller, so the profile is forced
	// rather than detected from w.
	lr := lipgloss.NewRenderer(w)
	header := lr.NewStyle()
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	} else {
		lr.SetColorProfile(termenv.ANSI256)
		header = header.Bold(true).Foreground(lipgloss.Color("63"))
	}

	return &Renderer{
		writer: w,
		format: format,
		header: header,
	}, nil
}

// UseColor resolves a color mode against the destination file
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderList writes items one per line, or as a JSON/YAML array
func (r *Renderer) RenderList(items []string) error {
	if items == nil {
		items = []string{}
	}
	switch r.format {
	case config.FormatJSON:
		return r.encodeJSON(items)
	case config.FormatYAML:
		return r.encodeYAML(items)
	}

	for _, item := range items {
		if _, err := fmt.Fprintln(r.writer, item); err != nil {
			return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
		}
	}
	return nil
}

// RenderDump writes the required section before the unrequired one. In
// text mode each non-empty section gets a comment header and sections
// are separated by a blank line, so the output stays a valid Brewfile.
func (r *Renderer) RenderDump(result DumpResult) error {
	switch r.format {
	case config.FormatJSON:
		return r.encodeJSON(result)
	case config.FormatYAML:
		return r.encodeYAML(result)
	}

	var sections []string
	if len(result.Required) > 0 {
		sections = append(sections, r.section("# Required by installed formulae", result.Required))
	}
	if len(result.Unrequired) > 0 {
		sections = append(sections, r.section("# Casks", result.Unrequired))
	}
	if len(sections) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(r.writer, strings.Join(sections, "\n\n")); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
	}
	return nil
}

func (r *Renderer) section(title string, lines []string) string {
	return r.header.Render(title) + "\n" + strings.Join(lines, "\n")
}

func (r *Renderer) encodeJSON(v interface{}) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to encode JSON")
	}
	return nil
}

func (r *Renderer) encodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(r.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to encode YAML")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to encode YAML")
	}
	return nil
}

func splitSection(section string) []string {
	if section == "" {
		return []string{}
	}
	return strings.Split(section, "\n")
}
