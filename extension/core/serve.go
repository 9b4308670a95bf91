// serve.go implements the "rgkit serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle requirements.
// Unlike other commands that run and exit, serve blocks indefinitely handling
// MCP requests over stdio.

package core

import (
	"github.com/jpl-au/rgkit/cmd"
	"github.com/jpl-au/rgkit/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Exposes rg_search and rg_files tools. Use --dir to pin searches to a
specific directory:
  rgkit serve --dir /path/to/project`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(cmd.Context().Config(), cmd.RG(), cmd.Dir())
}
