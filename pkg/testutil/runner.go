package testutil

import (
	"errors"

	"github.com/arthur-debert/brewdump/pkg/brew"
)

// MockRunner is a mock implementation of brew.Runner.
type MockRunner struct {
	RunFunc func(command string) string
	Output  string
	Calls   []string
}

// Run records command and returns RunFunc's result, or Output when unset.
func (m *MockRunner) Run(command string) string {
	m.Calls = append(m.Calls, command)
	if m.RunFunc != nil {
		return m.RunFunc(command)
	}
	return m.Output
}

// BrewScript answers known command lines and prints nothing for the rest.
type BrewScript struct {
	Responses map[string]string
	Calls     []string
}

// NewBrewScript creates a script from command -> output pairs.
func NewBrewScript(responses map[string]string) *BrewScript {
	if responses == nil {
		responses = map[string]string{}
	}
	return &BrewScript{Responses: responses}
}

// Run records command and returns the scripted output.
func (s *BrewScript) Run(command string) string {
	s.Calls = append(s.Calls, command)
	return s.Responses[command]
}

// LookPathFound resolves every executable under /usr/local/bin.
func LookPathFound(file string) (string, error) {
	return "/usr/local/bin/" + file, nil
}

// LookPathMissing fails for every executable.
func LookPathMissing(file string) (string, error) {
	return "", errors.New("executable file not found in $PATH: " + file)
}

var (
	_ brew.Runner       = (*MockRunner)(nil)
	_ brew.Runner       = (*BrewScript)(nil)
	_ brew.LookPathFunc = LookPathFound
	_ brew.LookPathFunc = LookPathMissing
)
