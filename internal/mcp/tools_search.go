// tools_search.go implements the MCP tool handlers for search operations.
//
// Separated from server.go to keep tool registration (the catalogue) apart
// from tool behaviour. Handlers build pkg/ripgrep commands from request
// parameters, run them, and return JSON results.
//
// Design: Search results are returned as JSON for easy LLM parsing. The
// rg_search tool includes stitched context windows so LLMs understand
// matches without fetching whole files.

package mcp

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jpl-au/rgkit/internal/log"
	"github.com/jpl-au/rgkit/pkg/ripgrep"
	"github.com/mark3labs/mcp-go/mcp"
)

// search handles rg_search tool calls.
func (h *handlers) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	globs := getStrings(req, "globs")
	excludeGlobs := getStrings(req, "exclude_globs")
	if bad := invalidGlob(append(globs, excludeGlobs...)); bad != "" {
		return mcp.NewToolResultError("invalid glob pattern: " + bad), nil
	}

	before := getInt(req, "before", 0)
	after := getInt(req, "after", 0)
	if around := getInt(req, "context", 0); around > 0 {
		before, after = around, around
	}

	b := ripgrep.NewSearch().
		Binary(h.binary).
		Dir(h.dir).
		Pattern(pattern).
		Targets(getStrings(req, "targets")...).
		CaseSensitive(!getBool(req, "ignore_case", !h.cfg.CaseSensitive())).
		MaxCount(getInt(req, "max_count", h.cfg.MaxCount())).
		MaxFilesize(h.cfg.MaxFilesize()).
		MaxDepth(h.cfg.MaxDepth())

	if before > 0 {
		b.BeforeContext(before)
	}
	if after > 0 {
		b.AfterContext(after)
	}
	for _, g := range globs {
		b.IncludeGlobs(g)
	}
	for _, g := range excludeGlobs {
		b.ExcludeGlobs(g)
	}
	for _, t := range getStrings(req, "types") {
		b.IncludeTypes(ripgrep.Type(t))
	}
	for _, t := range getStrings(req, "types_not") {
		b.ExcludeTypes(ripgrep.Type(t))
	}
	if h.cfg.ExcludeDefaults() {
		b.ExcludeTypes(ripgrep.DefaultExcludedTypes...)
	}
	if getBool(req, "hybrid", false) {
		b.AutoHybridRegex()
	}

	stream, err := b.Run(ctx)
	if err != nil {
		log.Event("mcp:rg_search", "search").Pattern(pattern).Dir(h.dir).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := ripgrep.StitchOptions{Before: before, After: after}
	files := []ripgrep.MatchedFile{}
	for stream.Next() {
		files = append(files, ripgrep.Stitch(stream.Result(), opts))
	}
	err = stream.Err()

	log.Event("mcp:rg_search", "search").Pattern(pattern).Dir(h.dir).Matches(len(files)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(files)
}

// files handles rg_files tool calls.
func (h *handlers) files(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	globs := getStrings(req, "globs")
	excludeGlobs := getStrings(req, "exclude_globs")
	if bad := invalidGlob(append(globs, excludeGlobs...)); bad != "" {
		return mcp.NewToolResultError("invalid glob pattern: " + bad), nil
	}

	b := ripgrep.NewFind().
		Binary(h.binary).
		Dir(h.dir).
		Targets(getStrings(req, "targets")...).
		MaxDepth(getInt(req, "max_depth", h.cfg.MaxDepth()))

	for _, g := range globs {
		b.IncludeGlobs(g)
	}
	for _, g := range excludeGlobs {
		b.ExcludeGlobs(g)
	}
	for _, t := range getStrings(req, "types") {
		b.IncludeTypes(ripgrep.Type(t))
	}
	for _, t := range getStrings(req, "types_not") {
		b.ExcludeTypes(ripgrep.Type(t))
	}
	if sortField := getString(req, "sort", ""); sortField != "" {
		field, descending := strings.CutPrefix(sortField, "-")
		b.Sort(field, !descending)
	}

	paths, err := b.Run(ctx)

	log.Event("mcp:rg_files", "list").Dir(h.dir).Matches(len(paths)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if paths == nil {
		paths = []string{}
	}
	return jsonResult(paths)
}

// invalidGlob returns the first malformed glob pattern, or "" when all parse.
// rg reports bad globs on stderr mid-stream; checking here gives the LLM
// a clean, attributable error instead.
func invalidGlob(globs []string) string {
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return g
		}
	}
	return ""
}
