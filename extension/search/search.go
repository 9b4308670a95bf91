// search.go implements the "rgkit search" command for structured content search.
//
// Separated from files.go to isolate match handling: search drives the
// streaming rg --json pipeline and stitches context windows around each
// match, while files only lists paths.

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

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <pattern> [target...]",
		Short: "Search file contents using ripgrep",
		Long: `Search file contents with ripgrep, returning matches with stitched context.

  rgkit search "TODO"                    # search the current directory
  rgkit search -C 2 "func main"          # two lines of context either side
  rgkit search --type go "fmt.Errorf"    # restrict to Go files
  rgkit search --glob "**/*.yaml" "host" # restrict by glob
  rgkit search -o json "TODO"            # typed JSON for machine consumption

Matching lines print as path:line:content; context lines as path-line-content.
Safe limits (match count, file size, depth) apply unless overridden by flags
or config.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runSearch,
	}
	c.Flags().IntP(extension.FlagBefore, "B", 0, "Lines of context before each match")
	c.Flags().IntP(extension.FlagAfter, "A", 0, "Lines of context after each match")
	c.Flags().IntP(extension.FlagContext, "C", 0, "Lines of context around each match (sets both)")
	c.Flags().BoolP(extension.FlagIgnoreCase, "i", false, "Ignore case distinctions")
	c.Flags().BoolP(extension.FlagFilesWithMatch, "l", false, "Only output paths of matching files")
	c.Flags().StringArray(extension.FlagGlob, nil, "Include glob pattern (repeatable)")
	c.Flags().StringArray(extension.FlagExcludeGlob, nil, "Exclude glob pattern (repeatable)")
	c.Flags().StringArray(extension.FlagType, nil, "Include file type (repeatable, see rg --type-list)")
	c.Flags().StringArray(extension.FlagTypeNot, nil, "Exclude file type (repeatable)")
	c.Flags().String(extension.FlagSort, "", "Sort results by field: path, modified, accessed, created (prefix with - for descending)")
	c.Flags().Int(extension.FlagMaxCount, 0, "Per-file match limit (default from config)")
	c.Flags().Int64(extension.FlagMaxFilesize, 0, "Largest file size searched in bytes (default from config)")
	c.Flags().Int(extension.FlagMaxDepth, 0, "Directory depth limit (default from config)")
	c.Flags().Bool(extension.FlagOneFileSystem, false, "Don't cross filesystem boundaries")
	c.Flags().Bool(extension.FlagHybrid, false, "Enable multiline matching when the pattern spans lines")
	c.Flags().Bool(extension.FlagNoExcludes, false, "Search binary, lock and data files normally excluded")
	c.Flags().Bool(extension.FlagEmptyLines, false, "Keep blank context lines in stitched windows")
	c.Flags().Bool(extension.FlagStats, false, "Print the search summary line")
	c.Flags().Bool(extension.FlagPretty, false, "Render results as markdown (colourised on TTYs)")
	c.Flags().Bool(extension.FlagShowCommand, false, "Print the rg invocation instead of running it")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	ctx := c.Context()
	cfg := e.config()
	pattern := args[0]
	targets := args[1:]

	before, _ := c.Flags().GetInt(extension.FlagBefore)
	after, _ := c.Flags().GetInt(extension.FlagAfter)
	around, _ := c.Flags().GetInt(extension.FlagContext)
	if before < 0 || after < 0 || around < 0 {
		return cmd.PrintJSONError(fmt.Errorf("context lines must be >= 0"))
	}
	if around > 0 {
		before, after = around, around
	}

	globs, _ := c.Flags().GetStringArray(extension.FlagGlob)
	excludeGlobs, _ := c.Flags().GetStringArray(extension.FlagExcludeGlob)
	if err := validateGlobs(append(globs, excludeGlobs...)); err != nil {
		return cmd.PrintJSONError(err)
	}

	types, _ := c.Flags().GetStringArray(extension.FlagType)
	typesNot, _ := c.Flags().GetStringArray(extension.FlagTypeNot)
	ignoreCase, _ := c.Flags().GetBool(extension.FlagIgnoreCase)
	pathsOnly, _ := c.Flags().GetBool(extension.FlagFilesWithMatch)
	sortField, _ := c.Flags().GetString(extension.FlagSort)
	oneFS, _ := c.Flags().GetBool(extension.FlagOneFileSystem)
	hybrid, _ := c.Flags().GetBool(extension.FlagHybrid)
	noExcludes, _ := c.Flags().GetBool(extension.FlagNoExcludes)
	emptyLines, _ := c.Flags().GetBool(extension.FlagEmptyLines)
	stats, _ := c.Flags().GetBool(extension.FlagStats)
	pretty, _ := c.Flags().GetBool(extension.FlagPretty)
	showCommand, _ := c.Flags().GetBool(extension.FlagShowCommand)

	b := ripgrep.NewSearch().
		Binary(e.binary()).
		Dir(cmd.Dir()).
		Pattern(pattern).
		Targets(targets...)

	sensitive := cfg.CaseSensitive()
	if c.Flags().Changed(extension.FlagIgnoreCase) {
		sensitive = !ignoreCase
	}
	b.CaseSensitive(sensitive)

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
	for _, t := range types {
		b.IncludeTypes(ripgrep.Type(t))
	}
	for _, t := range typesNot {
		b.ExcludeTypes(ripgrep.Type(t))
	}
	if cfg.ExcludeDefaults() && !noExcludes {
		b.ExcludeTypes(ripgrep.DefaultExcludedTypes...)
	}

	if sortField != "" {
		field, descending := strings.CutPrefix(sortField, "-")
		b.Sort(field, !descending)
	}

	b.MaxCount(flagOrConfigInt(c, extension.FlagMaxCount, cfg.MaxCount()))
	b.MaxFilesize(flagOrConfigInt64(c, extension.FlagMaxFilesize, cfg.MaxFilesize()))
	b.MaxDepth(flagOrConfigInt(c, extension.FlagMaxDepth, cfg.MaxDepth()))
	if oneFS {
		b.OneFileSystem()
	}
	if hybrid {
		b.AutoHybridRegex()
	}

	if showCommand {
		fmt.Fprintln(cmd.Out(), strings.Join(b.Compile(), " "))
		return nil
	}

	stream, err := b.Run(ctx)
	if err != nil {
		log.Event("search:search", "search").Pattern(pattern).Dir(cmd.Dir()).Write(err)
		return cmd.PrintJSONError(fmt.Errorf("search %q: %w", pattern, err))
	}

	opts := ripgrep.StitchOptions{Before: before, After: after, IncludeEmptyLines: emptyLines}
	var files []ripgrep.MatchedFile
	for stream.Next() {
		files = append(files, ripgrep.Stitch(stream.Result(), opts))
	}
	err = stream.Err()

	log.Event("search:search", "search").
		Pattern(pattern).
		Dir(cmd.Dir()).
		Matches(len(files)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search %q: %w", pattern, err))
	}

	switch {
	case cmd.JSON():
		if err := cmd.PrintJSON(files); err != nil {
			return err
		}
	case pathsOnly:
		paths := make([]string, len(files))
		for i, f := range files {
			paths[i] = f.Path
		}
		format.Files(cmd.Out(), paths)
	case pretty:
		format.RenderMarkdown(cmd.Out(), format.Markdown(files))
	default:
		format.Text(cmd.Out(), files)
	}

	if stats && !cmd.JSON() {
		format.Stats(cmd.Out(), stream.Summary())
	}
	return nil
}

// binary resolves the ripgrep binary: --rg flag, then config, then PATH.
func (e *Extension) binary() string {
	if rg := cmd.RG(); rg != "" {
		return rg
	}
	return e.config().Binary()
}

// flagOrConfigInt returns the flag value when set, otherwise the config value.
func flagOrConfigInt(c *cobra.Command, name string, def int) int {
	if c.Flags().Changed(name) {
		v, _ := c.Flags().GetInt(name)
		return v
	}
	return def
}

func flagOrConfigInt64(c *cobra.Command, name string, def int64) int64 {
	if c.Flags().Changed(name) {
		v, _ := c.Flags().GetInt64(name)
		return v
	}
	return def
}
