// Package core provides the core extension for rgkit.
// It registers commands: config, serve, version.
package core

import (
	"github.com/jpl-au/rgkit/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var _ extension.Extension = (*Extension)(nil)

// Name returns "core" - this extension provides fundamental rgkit commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - core commands have no MCP tool equivalents.
// MCP tools are provided by the search extension.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
