// files.go implements the "rgkit files" command for file discovery.
//
// Separated from search.go because listing never touches the JSON event
// stream: rg --files prints plain paths, one per line, honouring the same
// ignore rules and filters as a search.

package search

import (
	"fmt"
	"strings"

	"github.com/jpl-au/rgkit/cmd"
	"github.com/jpl-au/rgkit/extension"
	"github.com/jpl-au/rgkit/internal/format"
	"github.com/jpl-au/rgkit/internal/log"
	"github.com/jpl-au/rgkit/pkg/ripgrep"
	"github.com/spf13/cobra"
)

func (e *Extension) newFilesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "files [target...]",
		Short: "List files ripgrep would search",
		Long: `List files honouring ignore rules, without searching their contents.

  rgkit files                      # list the current directory
  rgkit files --type go            # only Go files
  rgkit files --glob "**/*.md"     # only markdown
  rgkit files --sort -modified     # newest first`,
		RunE: e.runFiles,
	}
	c.Flags().StringArray(extension.FlagGlob, nil, "Include glob pattern (repeatable)")
	c.Flags().StringArray(extension.FlagExcludeGlob, nil, "Exclude glob pattern (repeatable)")
	c.Flags().StringArray(extension.FlagType, nil, "Include file type (repeatable, see rg --type-list)")
	c.Flags().StringArray(extension.FlagTypeNot, nil, "Exclude file type (repeatable)")
	c.Flags().String(extension.FlagSort, "", "Sort results by field: path, modified, accessed, created (prefix with - for descending)")
	c.Flags().Int(extension.FlagMaxDepth, 0, "Directory depth limit (default from config)")
	c.Flags().Bool(extension.FlagOneFileSystem, false, "Don't cross filesystem boundaries")
	c.Flags().Bool(extension.FlagShowCommand, false, "Print the rg invocation instead of running it")
	return c
}

func (e *Extension) runFiles(c *cobra.Command, args []string) error {
	ctx := c.Context()
	cfg := e.config()

	globs, _ := c.Flags().GetStringArray(extension.FlagGlob)
	excludeGlobs, _ := c.Flags().GetStringArray(extension.FlagExcludeGlob)
	if err := validateGlobs(append(globs, excludeGlobs...)); err != nil {
		return cmd.PrintJSONError(err)
	}

	types, _ := c.Flags().GetStringArray(extension.FlagType)
	typesNot, _ := c.Flags().GetStringArray(extension.FlagTypeNot)
	sortField, _ := c.Flags().GetString(extension.FlagSort)
	oneFS, _ := c.Flags().GetBool(extension.FlagOneFileSystem)
	showCommand, _ := c.Flags().GetBool(extension.FlagShowCommand)

	b := ripgrep.NewFind().
		Binary(e.binary()).
		Dir(cmd.Dir()).
		Targets(args...)

	for _, g := range globs {
		b.IncludeGlobs(g)
	}
	for _, g := range excludeGlobs {
		b.ExcludeGlobs(g)
	}
	for _, t := range types {
		b.IncludeTypes(ripgrep.Type(t))
	}
	for _, t := range typesNot {
		b.ExcludeTypes(ripgrep.Type(t))
	}

	if sortField != "" {
		field, descending := strings.CutPrefix(sortField, "-")
		b.Sort(field, !descending)
	}

	b.MaxDepth(flagOrConfigInt(c, extension.FlagMaxDepth, cfg.MaxDepth()))
	if oneFS {
		b.OneFileSystem()
	}

	if showCommand {
		fmt.Fprintln(cmd.Out(), strings.Join(b.Compile(), " "))
		return nil
	}

	paths, err := b.Run(ctx)

	log.Event("search:files", "list").
		Dir(cmd.Dir()).
		Matches(len(paths)).
		Detail("globs", globs).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("files: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(paths)
	}
	format.Files(cmd.Out(), paths)
	return nil
}
