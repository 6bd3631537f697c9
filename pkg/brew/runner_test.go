package brew_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/brewdump/pkg/brew"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestShellRunner_CapturesStdout(t *testing.T) {
	r := brew.NewShellRunner()
	assert.Equal(t, "foo\nbar\n", r.Run("printf 'foo\\nbar\\n'"))
}

func TestShellRunner_FailureReturnsCapturedOutput(t *testing.T) {
	r := brew.NewShellRunner()
	assert.Equal(t, "partial", r.Run("printf partial; exit 3"))
}

func TestShellRunner_IgnoresStderr(t *testing.T) {
	r := &brew.ShellRunner{}
	assert.Equal(t, "", r.Run("echo 'Error: oops' >&2; exit 1"))
}

func TestShellRunner_LogsFailureWithCode(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	brew.NewShellRunner().Run("exit 2")

	assert.Contains(t, buf.String(), "COMMAND_EXECUTE")
	assert.Contains(t, buf.String(), `"exitCode":2`)
}

func TestRunnerFunc(t *testing.T) {
	var got string
	r := brew.RunnerFunc(func(command string) string {
		got = command
		return "ok"
	})

	assert.Equal(t, "ok", r.Run("brew list --cask"))
	assert.Equal(t, "brew list --cask", got)
}
