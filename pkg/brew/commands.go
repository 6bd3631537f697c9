package brew

import (
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/arthur-debert/brewdump/pkg/logging"
)

// DefaultCommand is the brew executable used when none is configured.
const DefaultCommand = "brew"

// Commands builds brew command lines for a given executable.
type Commands struct {
	brew string
}

// NewCommands returns a builder for the given brew executable.
// An empty executable falls back to DefaultCommand.
func NewCommands(brew string) Commands {
	if strings.TrimSpace(brew) == "" {
		brew = DefaultCommand
	}
	return Commands{brew: brew}
}

// Executable returns the brew executable the builder targets.
func (c Commands) Executable() string {
	return c.brew
}

// ListCasks lists the names of installed casks, one per line.
func (c Commands) ListCasks() string {
	return c.brew + " list --cask"
}

// CaskInfo requests JSON metadata for all names in a single invocation.
func (c Commands) CaskInfo(names []string) string {
	parts := []string{c.brew, "info", "--json=v2", "--cask"}
	parts = append(parts, quoteAll(names)...)
	return strings.Join(parts, " ")
}

// quoteAll shell-quotes each name. Names that cannot be represented in a
// shell word (e.g. containing NUL) are skipped.
func quoteAll(names []string) []string {
	logger := logging.GetLogger("brew.commands")
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		q, err := syntax.Quote(name, syntax.LangPOSIX)
		if err != nil {
			logger.Warn().Err(err).Str("name", name).Msg("Skipping unquotable package name")
			continue
		}
		quoted = append(quoted, q)
	}
	return quoted
}

// LookPathFunc resolves an executable name, as exec.LookPath does.
type LookPathFunc func(file string) (string, error)

// Installed reports whether the brew executable can be resolved.
// A nil lookPath uses exec.LookPath.
func Installed(brew string, lookPath LookPathFunc) bool {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if strings.TrimSpace(brew) == "" {
		brew = DefaultCommand
	}
	_, err := lookPath(brew)
	return err == nil
}
