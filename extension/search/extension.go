// Package search provides the search extension for rgkit.
// It registers the search and files commands plus their MCP tool
// equivalents, all backed by the pkg/ripgrep builders.
package search

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jpl-au/rgkit/extension"
	"github.com/jpl-au/rgkit/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	cfg *config.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "search" - this extension provides ripgrep-backed commands.
func (e *Extension) Name() string { return "search" }

// Init receives the shared context once configuration is loaded.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the search CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newSearchCmd(),
		e.newFilesCmd(),
	}
}

// MCPTools returns nil - search MCP tools are provided by internal/mcp package.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// config returns the loaded configuration, falling back to defaults when
// Init has not run (e.g., MCP handlers constructed in isolation).
func (e *Extension) config() *config.Config {
	if e.cfg == nil {
		return &config.Config{}
	}
	return e.cfg
}

// validateGlobs rejects malformed glob patterns before they reach rg.
// rg reports bad globs on stderr mid-stream; failing here gives the
// caller a clean, attributable error instead.
func validateGlobs(globs []string) error {
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("invalid glob pattern: %q", g)
		}
	}
	return nil
}
