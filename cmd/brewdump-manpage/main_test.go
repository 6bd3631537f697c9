package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/brewdump/internal/version"
)

func TestRun_Stdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(nil, &buf))

	page := buf.String()
	assert.Contains(t, page, "BREWDUMP")
	assert.Contains(t, page, "Homebrew Cask Dumper")
	assert.Contains(t, page, "brewdump "+version.Version)
}

func TestRun_Tree(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "man1")
	require.NoError(t, run([]string{dir}, &bytes.Buffer{}))

	for _, page := range []string{"brewdump.1", "brewdump-dump.1", "brewdump-deps.1"} {
		_, err := os.Stat(filepath.Join(dir, page))
		assert.NoError(t, err, "missing %s", page)
	}
}

func TestRun_TooManyArgs(t *testing.T) {
	assert.Error(t, run([]string{"a", "b"}, &bytes.Buffer{}))
}

func TestManHeader_Date(t *testing.T) {
	orig := version.Date
	t.Cleanup(func() { version.Date = orig })

	version.Date = "unknown"
	assert.Nil(t, manHeader().Date)

	version.Date = "2026-10-18T12:00:00Z"
	header := manHeader()
	require.NotNil(t, header.Date)
	assert.Equal(t, 2026, header.Date.Year())
}
