package bundle_test

import (
	"testing"

	"github.com/arthur-debert/brewdump/pkg/brew"
	"github.com/arthur-debert/brewdump/pkg/bundle"
	"github.com/arthur-debert/brewdump/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installed(v bool) bundle.InstalledFunc {
	return func() bool { return v }
}

func newDumper(runner brew.Runner, isInstalled bool) *bundle.CaskDumper {
	return bundle.NewCaskDumper(runner, installed(isInstalled), brew.NewCommands("brew"))
}

func TestCaskDumper_NotInstalled(t *testing.T) {
	runner := &testutil.MockRunner{Output: "foo\nbar"}
	dumper := newDumper(runner, false)

	t.Run("returns empty list", func(t *testing.T) {
		dumper.Reset()
		casks := dumper.Casks()
		require.NotNil(t, casks)
		assert.Empty(t, casks)
	})

	t.Run("dumps as empty strings", func(t *testing.T) {
		dumper.Reset()
		required, unrequired := dumper.Dump(nil)
		assert.Equal(t, "", required)
		assert.Equal(t, "", unrequired)
	})

	assert.Empty(t, runner.Calls, "brew must not be consulted when casks are unavailable")
}

func TestCaskDumper_NoCasks(t *testing.T) {
	runner := &testutil.MockRunner{Output: ""}
	dumper := newDumper(runner, true)

	casks := dumper.Casks()
	require.NotNil(t, casks)
	assert.Empty(t, casks)

	required, unrequired := dumper.Dump([]string{})
	assert.Equal(t, "", required)
	assert.Equal(t, "", unrequired)
}

func TestCaskDumper_InstalledCasks(t *testing.T) {
	runner := &testutil.MockRunner{Output: "foo\nbar\nbaz"}
	dumper := newDumper(runner, true)

	t.Run("lists casks in reported order", func(t *testing.T) {
		dumper.Reset()
		assert.Equal(t, []string{"foo", "bar", "baz"}, dumper.Casks())
		assert.Equal(t, []string{"brew list --cask"}, runner.Calls)
	})

	t.Run("dumps required casks separately", func(t *testing.T) {
		dumper.Reset()
		required, unrequired := dumper.Dump([]string{"baz"})
		assert.Equal(t, `cask "baz"`, required)
		assert.Equal(t, "cask \"foo\"\ncask \"bar\"", unrequired)
	})

	t.Run("all required leaves unrequired empty", func(t *testing.T) {
		dumper.Reset()
		required, unrequired := dumper.Dump([]string{"bar", "foo", "baz"})
		assert.Equal(t, "cask \"foo\"\ncask \"bar\"\ncask \"baz\"", required)
		assert.Equal(t, "", unrequired)
	})
}

func TestCaskDumper_TrailingNewlineIgnored(t *testing.T) {
	dumper := newDumper(&testutil.MockRunner{Output: "foo\nbar\n"}, true)
	assert.Equal(t, []string{"foo", "bar"}, dumper.Casks())
}

func TestCaskDumper_CachesUntilReset(t *testing.T) {
	runner := &testutil.MockRunner{Output: "foo"}
	dumper := newDumper(runner, true)

	assert.Equal(t, []string{"foo"}, dumper.Casks())
	runner.Output = "foo\nbar"
	assert.Equal(t, []string{"foo"}, dumper.Casks())
	dumper.Dump(nil)
	assert.Len(t, runner.Calls, 1, "second read should hit the cache")

	dumper.Reset()
	assert.Equal(t, []string{"foo", "bar"}, dumper.Casks())
	assert.Len(t, runner.Calls, 2)
}

func TestCaskDumper_CasksCannotMutateCache(t *testing.T) {
	runner := &testutil.MockRunner{Output: "foo\nbar"}
	dumper := newDumper(runner, true)

	casks := dumper.Casks()
	casks[0] = "changed"

	assert.Equal(t, []string{"foo", "bar"}, dumper.Casks())
	required, _ := dumper.Dump([]string{"foo"})
	assert.Equal(t, `cask "foo"`, required)
	assert.Len(t, runner.Calls, 1)
}

func TestCaskDumper_NilInstalledDefaultsToTrue(t *testing.T) {
	dumper := bundle.NewCaskDumper(&testutil.MockRunner{Output: "foo"}, nil, brew.NewCommands(""))
	assert.Equal(t, []string{"foo"}, dumper.Casks())
}

func TestCaskDumper_FormulaDependencies(t *testing.T) {
	tests := []struct {
		name   string
		output string
		casks  []string
		want   []string
	}{
		{
			name:   "no formula dependencies",
			output: `{"formulae":[],"casks":[]}`,
			casks:  []string{"foo"},
			want:   []string{},
		},
		{
			name:   "truncated json",
			output: `{"formulae":[],"casks":[]`,
			casks:  []string{"foo"},
			want:   []string{},
		},
		{
			name:   "invalid json",
			output: "Error: something from cask!",
			casks:  []string{"foo"},
			want:   []string{},
		},
		{
			name:   "shared dependencies are deduplicated",
			output: `{"formulae":[],"casks":[{"depends_on":{"formula":["baz","qux"]}},{"depends_on":{"formula":["baz"]}}]}`,
			casks:  []string{"foo", "bar"},
			want:   []string{"baz", "qux"},
		},
		{
			name:   "missing and mistyped fields are skipped",
			output: `{"casks":[{"name":"a"},{"depends_on":{}},{"depends_on":{"formula":"x"}},{"depends_on":{"formula":[1,"y"]}},"junk"]}`,
			casks:  []string{"a", "b"},
			want:   []string{"y"},
		},
		{
			name:   "casks key of the wrong type",
			output: `{"casks":{"depends_on":{"formula":["z"]}}}`,
			casks:  []string{"a"},
			want:   []string{},
		},
		{
			name:   "top level array",
			output: `[1,2,3]`,
			casks:  []string{"a"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &testutil.MockRunner{Output: tt.output}
			dumper := newDumper(runner, true)

			assert.Equal(t, tt.want, dumper.FormulaDependencies(tt.casks))
			assert.Len(t, runner.Calls, 1, "casks are queried in one batch")
		})
	}
}

func TestCaskDumper_FormulaDependenciesBatchesCasks(t *testing.T) {
	runner := &testutil.MockRunner{Output: `{"casks":[]}`}
	dumper := newDumper(runner, true)

	dumper.FormulaDependencies([]string{"foo", "bar"})

	assert.Equal(t, []string{"brew info --json=v2 --cask foo bar"}, runner.Calls)
}

func TestCaskDumper_FormulaDependenciesWithoutCasks(t *testing.T) {
	runner := &testutil.MockRunner{Output: `{"casks":[{"depends_on":{"formula":["x"]}}]}`}
	dumper := newDumper(runner, true)

	assert.Equal(t, []string{}, dumper.FormulaDependencies(nil))
	assert.Empty(t, runner.Calls)
}
