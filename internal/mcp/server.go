// Package mcp implements the Model Context Protocol server, exposing rgkit
// searches to LLMs. This enables AI assistants to run structured ripgrep
// queries through a standardised protocol instead of shelling out blind.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/rgkit/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
//
// binary overrides the configured ripgrep binary when non-empty; dir pins
// all searches to a directory (empty means the server's working directory).
func Serve(cfg *config.Config, binary, dir string) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if cfg == nil {
		cfg = &config.Config{}
	}
	if binary == "" {
		binary = cfg.Binary()
	}
	h := &handlers{cfg: cfg, binary: binary, dir: dir}

	s := server.NewMCPServer(
		"rgkit",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("rgkit MCP server ready", "version", Version, "transport", "stdio", "rg", binary)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with shared search settings.
type handlers struct {
	cfg    *config.Config
	binary string // resolved ripgrep binary
	dir    string // pinned search directory, empty for cwd
}

// registerTools exposes rgkit operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Content search
	s.AddTool(
		mcp.NewTool("rg_search",
			mcp.WithDescription("Search file contents with ripgrep. Returns matched files with line numbers and stitched context windows as JSON."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Regex pattern (rg syntax, e.g. 'fn \\w+', 'TODO|FIXME')")),
			mcp.WithArray("targets", mcp.Description("Paths to search, relative to the search directory (default: whole directory)")),
			mcp.WithArray("globs", mcp.Description("Include glob patterns (e.g. '**/*.go')")),
			mcp.WithArray("exclude_globs", mcp.Description("Exclude glob patterns")),
			mcp.WithArray("types", mcp.Description("File types to include (rg type names, e.g. 'go', 'py')")),
			mcp.WithArray("types_not", mcp.Description("File types to exclude")),
			mcp.WithNumber("context", mcp.Description("Lines of context either side of each match")),
			mcp.WithNumber("before", mcp.Description("Lines of context before each match")),
			mcp.WithNumber("after", mcp.Description("Lines of context after each match")),
			mcp.WithBoolean("ignore_case", mcp.Description("Case insensitive search")),
			mcp.WithNumber("max_count", mcp.Description("Per-file match limit (default from config)")),
			mcp.WithBoolean("hybrid", mcp.Description("Enable multiline matching when the pattern spans lines")),
		),
		h.search,
	)

	// File listing
	s.AddTool(
		mcp.NewTool("rg_files",
			mcp.WithDescription("List files ripgrep would search, honouring ignore rules. Returns a JSON array of paths."),
			mcp.WithArray("targets", mcp.Description("Paths to list, relative to the search directory (default: whole directory)")),
			mcp.WithArray("globs", mcp.Description("Include glob patterns (e.g. '**/*.md')")),
			mcp.WithArray("exclude_globs", mcp.Description("Exclude glob patterns")),
			mcp.WithArray("types", mcp.Description("File types to include")),
			mcp.WithArray("types_not", mcp.Description("File types to exclude")),
			mcp.WithString("sort", mcp.Description("Sort field: path, modified, accessed, created (prefix with - for descending)")),
			mcp.WithNumber("max_depth", mcp.Description("Directory depth limit (default from config)")),
		),
		h.files,
	)
}
