package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchShowCommand(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("search", "--show-command", "TODO")
	args := argv(out)

	require.NotEmpty(t, args)
	assert.Equal(t, "rg", args[0])
	assert.Contains(t, args, "--json")
	assert.Contains(t, args, "--regexp=TODO")

	// Safe limits come from config defaults.
	assert.Contains(t, args, "--max-count=100")
	assert.Contains(t, args, "--max-filesize=52428800")
	assert.Contains(t, args, "--max-depth=15")

	// Standard exclusions applied.
	assert.Contains(t, args, "--type-not=lock")
	assert.Contains(t, args, "--type-not=pdf")

	// Case sensitive by default.
	assert.NotContains(t, args, "--ignore-case")
}

func TestSearchShowCommandFlags(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("search", "--show-command",
		"-i", "-C", "2",
		"--type", "go",
		"--glob", "**/*.yaml",
		"--exclude-glob", "vendor/**",
		"--max-count", "5",
		"--sort", "-modified",
		"--hybrid",
		"TODO", "src", "docs")
	args := argv(out)

	assert.Contains(t, args, "--ignore-case")
	assert.Contains(t, args, "--before-context=2")
	assert.Contains(t, args, "--after-context=2")
	assert.Contains(t, args, "--type=go")
	assert.Contains(t, args, "--glob=**/*.yaml")
	assert.Contains(t, args, "--glob=!vendor/**")
	assert.Contains(t, args, "--max-count=5")
	assert.Contains(t, args, "--sortr=modified")
	assert.Contains(t, args, "--auto-hybrid-regex")

	// Targets come last.
	assert.Equal(t, []string{"src", "docs"}, args[len(args)-2:])
}

func TestSearchNoDefaultExcludes(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("search", "--show-command", "--no-default-excludes", "TODO")

	for _, a := range argv(out) {
		assert.NotContains(t, a, "--type-not=")
	}
}

func TestSearchRejectsInvalidGlob(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("search", "--glob", "[bad", "TODO")
	require.Error(t, err)
	env.contains(out, "invalid glob pattern")
}

func TestSearchRejectsNegativeContext(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("search", "-C=-1", "TODO")
	require.Error(t, err)
	env.contains(out, "context lines must be >= 0")
}

func TestFilesShowCommand(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("files", "--show-command", "--type", "md", "--sort", "path")
	args := argv(out)

	require.NotEmpty(t, args)
	assert.Equal(t, "rg", args[0])
	assert.Contains(t, args, "--files")
	assert.Contains(t, args, "--type=md")
	assert.Contains(t, args, "--sort=path")
	assert.Contains(t, args, "--max-depth=15")
	assert.NotContains(t, args, "--json")
}

func TestRGFlagOverridesBinary(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("search", "--show-command", "--rg", "/opt/rg/bin/rg", "TODO")
	args := argv(out)

	require.NotEmpty(t, args)
	assert.Equal(t, "/opt/rg/bin/rg", args[0])
}

func TestConfigSetGet(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "--local", "limits.max_count", "500")
	env.contains(out, "limits.max_count = 500 (local)")

	out = env.run("config", "limits.max_count")
	assert.Equal(t, "500\n", out)

	// Config limits flow into compiled searches.
	out = env.run("search", "--show-command", "TODO")
	assert.Contains(t, argv(out), "--max-count=500")
}

func TestConfigUnknownKey(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("config", "no.such.key")
	require.Error(t, err)
	env.contains(out, "unknown config key")
}

func TestConfigList(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config")
	env.contains(out, "rg.binary: rg")
	env.contains(out, "limits.max_count: 100")
}

func TestConfigListJSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("-o", "json", "config")
	env.contains(out, `"limits.max_count":"100"`)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Platform:")
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("-o", "xml", "version")
	require.Error(t, err)
	env.contains(out, "invalid output format")
}
