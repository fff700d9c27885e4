package commands

import (
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jongio/findprog/binpath"
	"github.com/jongio/findprog/cliout"
	"github.com/jongio/findprog/logutil"
	"github.com/jongio/findprog/testutil"
	"github.com/jongio/findprog/toolchain"
)

// execute runs the CLI with args and returns stdout and the command error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cli := New()
	cli.SetArgs(append([]string{}, args...))
	cli.SetOutput(io.Discard, io.Discard)

	var runErr error
	output := testutil.CaptureOutput(t, func() error {
		runErr = cli.Execute()
		return runErr
	})
	return output, runErr
}

func TestWhich_Found(t *testing.T) {
	bin := testutil.SearchDir(t, "cmake")
	testutil.SetSearchPath(t, bin)

	output, err := execute(t, "which", "cmake")
	require.NoError(t, err)
	assert.Contains(t, output, filepath.Join(bin, "cmake"))
}

func TestWhich_FirstDirectoryWins(t *testing.T) {
	first := testutil.SearchDir(t, "cmake")
	second := testutil.SearchDir(t, "cmake")
	testutil.SetSearchPath(t, first, second)

	output, err := execute(t, "--output", "json", "which", "cmake")
	require.NoError(t, err)

	var got whichOutput
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	require.Len(t, got.Results, 1)
	assert.Equal(t, filepath.Join(first, "cmake"), got.Results[0].Path)
	assert.Nil(t, got.Stats)
}

func TestWhich_MissingReturnsErrNotFound(t *testing.T) {
	testutil.SetSearchPath(t, testutil.SearchDir(t, "cmake"))

	output, err := execute(t, "which", "cmake", "sccache")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, output, "sccache not found")
	assert.Contains(t, output, "mozilla/sccache")
}

func TestWhich_EmptySearchPath(t *testing.T) {
	t.Setenv("PATH", "")

	_, err := execute(t, "which", "sh")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWhich_StatsYAML(t *testing.T) {
	testutil.SetSearchPath(t, testutil.SearchDir(t, "ninja", "make"))

	output, err := execute(t, "-o", "yaml", "which", "--stats", "ninja", "make", "ninja")
	require.NoError(t, err)

	var got whichOutput
	require.NoError(t, yaml.Unmarshal([]byte(output), &got))
	require.NotNil(t, got.Stats)
	assert.Equal(t, 1, got.Stats.Scans)
	assert.Equal(t, 2, got.Stats.Hits)
	assert.Equal(t, 1, got.Stats.Misses)
	assert.Equal(t, 2, got.Stats.Entries)
}

func TestWhich_RequiresName(t *testing.T) {
	_, err := execute(t, "which")
	assert.Error(t, err)
}

func TestInvalidPopulatePolicy(t *testing.T) {
	_, err := execute(t, "--populate", "sometimes", "which", "sh")
	require.Error(t, err)
	assert.True(t, errors.Is(err, binpath.ErrInvalidPolicy))
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := execute(t, "--output", "xml", "which", "sh")
	assert.Error(t, err)
}

func TestPopulatePolicyFromEnv(t *testing.T) {
	t.Setenv(binpath.EnvPopulate, "once")
	testutil.SetSearchPath(t, testutil.SearchDir(t, "ninja"))

	cli := New()
	cli.SetArgs([]string{"which", "ninja"})
	_ = testutil.CaptureOutput(t, cli.Execute)

	require.NotNil(t, cli.cache)
	assert.Equal(t, binpath.PolicyPopulateOnce, cli.cache.Policy())
}

func TestList(t *testing.T) {
	first := testutil.SearchDir(t, "gcc", "g++", "ld")
	second := testutil.SearchDir(t, "gcc", "clang")
	testutil.SetSearchPath(t, first, second)

	output, err := execute(t, "--output", "json", "list")
	require.NoError(t, err)

	var entries []binpath.Entry
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 4)

	byName := make(map[string]string)
	for _, e := range entries {
		byName[e.Name] = e.Path
	}
	assert.Equal(t, filepath.Join(first, "gcc"), byName["gcc"])
	assert.Equal(t, filepath.Join(second, "clang"), byName["clang"])
}

func TestList_Prefix(t *testing.T) {
	testutil.SetSearchPath(t, testutil.SearchDir(t, "ld.lld", "ld.gold", "ninja"))

	output, err := execute(t, "list", "--prefix", "ld.")
	require.NoError(t, err)
	assert.Contains(t, output, "ld.lld")
	assert.Contains(t, output, "ld.gold")
	assert.NotContains(t, output, "ninja")
	assert.Contains(t, output, "2 programs")
}

func TestList_Empty(t *testing.T) {
	t.Setenv("PATH", "")

	output, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, output, "no programs found")
}

func TestToolchain(t *testing.T) {
	testutil.SetSearchPath(t, testutil.SearchDir(t, "ninja", "ld.lld", "ccache"))

	output, err := execute(t, "--populate", "once", "-o", "json", "toolchain")
	require.NoError(t, err)

	var tools []toolchain.Tool
	require.NoError(t, json.Unmarshal([]byte(output), &tools))
	require.Len(t, tools, len(toolchain.Catalog()))

	found := make(map[string]bool)
	for _, tool := range tools {
		found[tool.Name] = tool.Found
	}
	assert.True(t, found["ninja"])
	assert.True(t, found["lld"])
	assert.True(t, found["ccache"])
	assert.False(t, found["sccache"])
}

func TestToolchain_Kind(t *testing.T) {
	testutil.SetSearchPath(t, testutil.SearchDir(t, "mold", "ld"))

	output, err := execute(t, "--populate", "once", "toolchain", "--kind", "linker")
	require.NoError(t, err)
	assert.Contains(t, output, "mold")
	assert.NotContains(t, output, "ninja")

	lines := strings.Split(output, "\n")
	var preferred string
	for _, l := range lines {
		if strings.Contains(l, "linker:") {
			preferred = l
		}
	}
	assert.Contains(t, preferred, "mold")
}

func TestToolchain_UnknownKind(t *testing.T) {
	_, err := execute(t, "toolchain", "--kind", "assembler")
	assert.True(t, errors.Is(err, toolchain.ErrUnknownKind))
}

func TestVersionSubcommand(t *testing.T) {
	output, err := execute(t, "version", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0-dev", strings.TrimSpace(output))
}

func TestToolchain_PreferredReusesResolvedTools(t *testing.T) {
	testutil.SetSearchPath(t, testutil.SearchDir(t, "ninja"))

	cli := New()
	cli.SetArgs([]string{"--populate", "once", "toolchain"})
	cli.SetOutput(io.Discard, io.Discard)
	output := testutil.CaptureOutput(t, cli.Execute)
	assert.Contains(t, output, "Preferred")

	// Each catalog entry looks up its candidates once, stopping at the first hit.
	want := 0
	for _, s := range toolchain.Catalog() {
		if s.Name == "ninja" {
			want++
			continue
		}
		want += len(s.Candidates)
	}
	stats := cli.cache.Stats()
	assert.Equal(t, want, stats.Hits+stats.Misses)
	assert.Equal(t, 1, stats.Scans)
}

func TestPreferredTool(t *testing.T) {
	tools := []toolchain.Tool{
		{Name: "mold", Kind: toolchain.KindLinker},
		{Name: "lld", Kind: toolchain.KindLinker, Found: true, Path: "/usr/bin/ld.lld"},
		{Name: "bfd", Kind: toolchain.KindLinker, Found: true, Path: "/usr/bin/ld"},
		{Name: "ninja", Kind: toolchain.KindBuildTool},
	}

	got, ok := preferredTool(tools, toolchain.KindLinker)
	require.True(t, ok)
	assert.Equal(t, "lld", got.Name)

	_, ok = preferredTool(tools, toolchain.KindBuildTool)
	assert.False(t, ok)

	_, ok = preferredTool(tools, toolchain.KindCompilerCache)
	assert.False(t, ok)
}

func TestLogLevelFlag(t *testing.T) {
	t.Setenv(logutil.EnvDebug, "")
	t.Cleanup(func() { logutil.SetupLogger(false, false) })
	testutil.SetSearchPath(t, testutil.SearchDir(t, "ninja"))

	_, err := execute(t, "--log-level", "warn", "which", "ninja")
	require.NoError(t, err)
	assert.Equal(t, logutil.LevelWarn, logutil.GetLevel())

	_, err = execute(t, "--debug", "--log-level", "error", "which", "ninja")
	require.NoError(t, err)
	assert.Equal(t, logutil.LevelDebug, logutil.GetLevel(), "--debug takes precedence over --log-level")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "verbose", "which", "sh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-level")
}

func TestColorFlag(t *testing.T) {
	t.Cleanup(cliout.AutoColor)
	testutil.SetSearchPath(t, testutil.SearchDir(t, "ninja"))

	output, err := execute(t, "--color", "always", "which", "ninja")
	require.NoError(t, err)
	assert.Contains(t, output, cliout.BrightGreen)

	output, err = execute(t, "--color", "never", "which", "ninja")
	require.NoError(t, err)
	assert.NotContains(t, output, "\033[")
	assert.Contains(t, output, "ninja")
}

func TestInvalidColorMode(t *testing.T) {
	t.Cleanup(cliout.AutoColor)

	_, err := execute(t, "--color", "sometimes", "which", "sh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--color")
}
