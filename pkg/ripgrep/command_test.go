package ripgrep_test

import (
	"testing"

	"github.com/jpl-au/rgkit/pkg/ripgrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_CompileForcesFiles(t *testing.T) {
	argv := ripgrep.NewFind().Compile()
	assert.Equal(t, []string{"rg", "--files"}, argv)
}

func TestFind_CompileOrdering(t *testing.T) {
	argv := ripgrep.NewFind().
		OneFileSystem().
		IncludeTypes("go").
		ExcludeGlobs("vendor/**").
		MaxDepth(3).
		Targets("src", "docs").
		Compile()

	assert.Equal(t, []string{
		"rg",
		"--files", "--one-file-system", // singular, sorted
		"--type=go", "--glob=!vendor/**", "--max-depth=3", // multiple, insertion order
		"src", "docs", // targets last
	}, argv)
}

func TestFind_CompileIsDeterministic(t *testing.T) {
	build := func() []string {
		return ripgrep.NewFind().
			OneFileSystem().
			IncludeGlobs("*.go").
			Compile()
	}
	first := build()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, build())
	}
}

func TestFind_CompileIsRepeatable(t *testing.T) {
	// Compiling twice must not duplicate the forced --files flag.
	f := ripgrep.NewFind().IncludeTypes("go")
	first := f.Compile()
	second := f.Compile()
	assert.Equal(t, first, second)
}

func TestSearch_CompileForcesJSON(t *testing.T) {
	argv := ripgrep.NewSearch().Pattern("hello").Compile()
	assert.Equal(t, []string{"rg", "--json", "--regexp=hello"}, argv)
}

func TestSearch_Compile(t *testing.T) {
	argv := ripgrep.NewSearch().
		Pattern("hello").
		CaseSensitive(false).
		BeforeContext(2).
		AfterContext(3).
		Targets("src").
		Compile()

	assert.Equal(t, []string{
		"rg", "--json",
		"--regexp=hello", "--ignore-case", "--before-context=2", "--after-context=3",
		"src",
	}, argv)
}

func TestSearch_PatternsAccumulate(t *testing.T) {
	argv := ripgrep.NewSearch().
		Patterns("foo", "bar").
		Pattern("baz").
		Compile()

	assert.Equal(t, []string{"rg", "--json", "--regexp=foo", "--regexp=bar", "--regexp=baz"}, argv)
}

func TestSearch_SingularOptionsDoNotRepeat(t *testing.T) {
	argv := ripgrep.NewSearch().
		AutoHybridRegex().
		AutoHybridRegex().
		Pattern("x").
		Compile()

	count := 0
	for _, a := range argv {
		if a == "--auto-hybrid-regex" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSearch_SafeDefaults(t *testing.T) {
	argv := ripgrep.NewSearch().SafeDefaults().Pattern("x").Compile()

	assert.Contains(t, argv, "--max-depth=15")
	assert.Contains(t, argv, "--max-filesize=52428800")
	assert.Contains(t, argv, "--max-count=100")
}

func TestSearch_SortDirections(t *testing.T) {
	asc := ripgrep.NewSearch().Sort("path", true).Pattern("x").Compile()
	assert.Contains(t, asc, "--sort=path")

	desc := ripgrep.NewSearch().Sort("modified", false).Pattern("x").Compile()
	assert.Contains(t, desc, "--sortr=modified")
}

func TestSearch_Extra(t *testing.T) {
	argv := ripgrep.NewSearch().Pattern("x").Extra("--hidden", "--no-ignore").Compile()
	require.Contains(t, argv, "--hidden")
	require.Contains(t, argv, "--no-ignore")
}

func TestSearch_BinaryOverride(t *testing.T) {
	argv := ripgrep.NewSearch().Binary("/opt/bin/rg").Pattern("x").Compile()
	assert.Equal(t, "/opt/bin/rg", argv[0])
}

func TestSearch_ExcludeTypesRendersTypeNot(t *testing.T) {
	argv := ripgrep.NewSearch().
		ExcludeTypes(ripgrep.DefaultExcludedTypes...).
		Pattern("x").
		Compile()

	assert.Contains(t, argv, "--type-not=lock")
	assert.Contains(t, argv, "--type-not=pdf")
	assert.NotContains(t, argv, "--type=lock")
}

func TestDefaultExcludedTypes_SortedUnion(t *testing.T) {
	types := ripgrep.DefaultExcludedTypes
	require.Len(t, types,
		len(ripgrep.ExcludedBinaryTypes)+len(ripgrep.ExcludedExtraTypes)+len(ripgrep.ExcludedDataTypes))
	for i := 1; i < len(types); i++ {
		assert.LessOrEqual(t, types[i-1], types[i], "DefaultExcludedTypes must be sorted")
	}
}
