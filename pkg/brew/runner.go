package brew

import (
	"os/exec"

	"github.com/arthur-debert/brewdump/pkg/errors"
	"github.com/arthur-debert/brewdump/pkg/logging"
)

// Runner executes a command line and returns its captured standard output.
// A failing command is not distinguished from a successful one; callers only
// ever see the text it printed.
type Runner interface {
	Run(command string) string
}

// ShellRunner runs command lines through sh -c.
type ShellRunner struct {
	// Shell defaults to "sh"
	Shell string
}

// NewShellRunner creates a runner backed by the system shell.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{Shell: "sh"}
}

// Run executes command and returns whatever it wrote to stdout, even when
// the process exits non-zero.
func (r *ShellRunner) Run(command string) string {
	logger := logging.GetLogger("brew.runner")

	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}

	logging.LogCommand(command)
	cmd := exec.Command(shell, "-c", command)
	output, err := cmd.Output()
	if err != nil {
		runErr := errors.Wrap(err, errors.ErrCommandExecute, "command failed").
			WithDetail("command", command)
		event := logger.Debug().Err(runErr).Str("command", command)
		if exitErr, ok := err.(*exec.ExitError); ok {
			event = event.Int("exitCode", exitErr.ExitCode()).Bytes("stderr", exitErr.Stderr)
		}
		event.Msg("Command failed, using captured output")
	}

	return string(output)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(command string) string

// Run calls f(command).
func (f RunnerFunc) Run(command string) string {
	return f(command)
}

var (
	_ Runner = (*ShellRunner)(nil)
	_ Runner = RunnerFunc(nil)
)
