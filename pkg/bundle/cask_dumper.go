package bundle

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/arthur-debert/brewdump/pkg/brew"
	"github.com/arthur-debert/brewdump/pkg/logging"
)

// InstalledFunc reports whether the cask subsystem is available.
type InstalledFunc func() bool

// CaskDumper lists installed casks and renders them as Brewfile entries.
// The cask list is read from brew once and kept until Reset is called.
// A CaskDumper is not safe for concurrent use.
type CaskDumper struct {
	runner    brew.Runner
	installed InstalledFunc
	commands  brew.Commands

	casks  []string
	loaded bool
}

// NewCaskDumper creates a dumper that runs brew through runner. installed
// gates every listing; a nil installed is treated as always true.
func NewCaskDumper(runner brew.Runner, installed InstalledFunc, commands brew.Commands) *CaskDumper {
	if installed == nil {
		installed = func() bool { return true }
	}
	return &CaskDumper{
		runner:    runner,
		installed: installed,
		commands:  commands,
	}
}

// Reset drops the cached cask list so the next Casks call asks brew again.
func (d *CaskDumper) Reset() {
	d.casks = nil
	d.loaded = false
}

// Casks returns installed cask names in the order brew reports them.
// The result is never nil and is a copy; the cache is only replaced.
func (d *CaskDumper) Casks() []string {
	if !d.loaded {
		d.casks = d.listCasks()
		d.loaded = true
	}
	return slices.Clone(d.casks)
}

func (d *CaskDumper) listCasks() []string {
	if !d.installed() {
		return []string{}
	}
	return splitLines(d.runner.Run(d.commands.ListCasks()))
}

// Dump partitions the installed casks into those named in required and the
// rest, rendering each group as newline-joined `cask "<name>"` lines.
// Both groups keep brew's order. An empty group renders as "".
func (d *CaskDumper) Dump(required []string) (string, string) {
	isRequired := make(map[string]struct{}, len(required))
	for _, name := range required {
		isRequired[name] = struct{}{}
	}

	var requiredLines, unrequiredLines []string
	for _, name := range d.Casks() {
		line := caskLine(name)
		if _, ok := isRequired[name]; ok {
			requiredLines = append(requiredLines, line)
		} else {
			unrequiredLines = append(unrequiredLines, line)
		}
	}

	return strings.Join(requiredLines, "\n"), strings.Join(unrequiredLines, "\n")
}

// FormulaDependencies returns the formulae the given casks depend on, in
// first-seen order without duplicates. Brew is queried once for all casks.
// Output that is not valid JSON yields an empty result.
func (d *CaskDumper) FormulaDependencies(casks []string) []string {
	deps := []string{}
	if len(casks) == 0 {
		return deps
	}

	logger := logging.GetLogger("bundle.cask")
	output := d.runner.Run(d.commands.CaskInfo(casks))

	var doc interface{}
	if err := json.Unmarshal([]byte(output), &doc); err != nil {
		logger.Warn().
			Err(err).
			Strs("casks", casks).
			Msg("Failed to load formula dependencies for casks")
		return deps
	}

	seen := make(map[string]struct{})
	for _, cask := range field(doc, "casks").slice() {
		for _, formula := range field(field(cask, "depends_on"), "formula").slice() {
			name, ok := formula.(string)
			if !ok {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			deps = append(deps, name)
		}
	}

	logger.Debug().Strs("casks", casks).Strs("formulae", deps).Msg("Resolved cask formula dependencies")
	return deps
}

func caskLine(name string) string {
	return `cask "` + name + `"`
}

func splitLines(output string) []string {
	lines := []string{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// node is a decoded JSON value walked without a schema.
type node struct{ v interface{} }

// field returns key of v when v is an object, and an empty node otherwise.
func field(v interface{}, key string) node {
	if n, ok := v.(node); ok {
		v = n.v
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return node{}
	}
	return node{obj[key]}
}

// slice returns the node as an array, or nil when it is anything else.
func (n node) slice() []interface{} {
	arr, _ := n.v.([]interface{})
	return arr
}
