// search.go implements the pattern-search builder (rg --json).
//
// Search configures patterns and filters, then streams typed results:
//
//	stream, err := ripgrep.NewSearch().
//		Dir(root).
//		Pattern(`func \w+Handler`).
//		BeforeContext(2).AfterContext(2).
//		Run(ctx)
//	...
//	for stream.Next() {
//		file := ripgrep.Stitch(stream.Result(), ripgrep.StitchOptions{Before: 2, After: 2})
//		...
//	}
//	err = stream.Err()

package ripgrep

import (
	"context"
	"strconv"
)

// Search runs a pattern search and streams per-file results.
// Not safe for concurrent use; build one per invocation.
type Search struct {
	command
}

// NewSearch returns a Search with no patterns or filters, targeting the
// current directory and the rg binary from PATH.
func NewSearch() *Search {
	return &Search{command: newCommand()}
}

// Binary overrides the rg executable to invoke.
func (s *Search) Binary(binary string) *Search {
	s.setBinary(binary)
	return s
}

// Dir sets the working directory for the rg process. Reported paths are
// relative to it.
func (s *Search) Dir(dir string) *Search {
	s.setDir(dir)
	return s
}

// Pattern adds a regex pattern. Multiple patterns match alternately.
func (s *Search) Pattern(pattern string) *Search {
	s.addMultiple("--regexp=" + pattern)
	return s
}

// Patterns adds several regex patterns.
func (s *Search) Patterns(patterns ...string) *Search {
	for _, p := range patterns {
		s.Pattern(p)
	}
	return s
}

// CaseSensitive controls case sensitivity of pattern matching.
func (s *Search) CaseSensitive(sensitive bool) *Search {
	s.caseSensitive(sensitive)
	return s
}

// Sort orders searched files by the given field (none, path, name, size,
// accessed, created, modified). Descending when ascending is false.
func (s *Search) Sort(field string, ascending bool) *Search {
	s.sortBy(field, ascending)
	return s
}

// Targets adds directories or files to search.
func (s *Search) Targets(targets ...string) *Search {
	s.addTargets(targets...)
	return s
}

// IncludeGlobs restricts the search to files matching the glob patterns.
func (s *Search) IncludeGlobs(globs ...string) *Search {
	for _, g := range globs {
		s.includeGlob(g)
	}
	return s
}

// ExcludeGlobs drops files matching the glob patterns.
func (s *Search) ExcludeGlobs(globs ...string) *Search {
	for _, g := range globs {
		s.excludeGlob(g)
	}
	return s
}

// IncludeTypes restricts the search to the given rg file types.
func (s *Search) IncludeTypes(types ...Type) *Search {
	for _, t := range types {
		s.includeType(t)
	}
	return s
}

// ExcludeTypes drops files of the given rg file types.
func (s *Search) ExcludeTypes(types ...Type) *Search {
	for _, t := range types {
		s.excludeType(t)
	}
	return s
}

// BeforeContext asks rg to report n lines of context before each match.
func (s *Search) BeforeContext(n int) *Search {
	s.addMultiple("--before-context=" + strconv.Itoa(n))
	return s
}

// AfterContext asks rg to report n lines of context after each match.
func (s *Search) AfterContext(n int) *Search {
	s.addMultiple("--after-context=" + strconv.Itoa(n))
	return s
}

// MaxCount limits matches reported per file.
func (s *Search) MaxCount(n int) *Search {
	s.addMultiple("--max-count=" + strconv.Itoa(n))
	return s
}

// MaxFilesize skips files larger than the given size in bytes.
func (s *Search) MaxFilesize(bytes int64) *Search {
	s.addMultiple("--max-filesize=" + strconv.FormatInt(bytes, 10))
	return s
}

// MaxDepth limits directory recursion.
func (s *Search) MaxDepth(depth int) *Search {
	s.maxDepth(depth)
	return s
}

// OneFileSystem keeps the search on the filesystem of each target root.
func (s *Search) OneFileSystem() *Search {
	s.oneFileSystem()
	return s
}

// AutoHybridRegex lets rg switch regex engines for patterns the default
// engine cannot handle.
func (s *Search) AutoHybridRegex() *Search {
	s.addSingular("--auto-hybrid-regex")
	return s
}

// Extra appends raw rg options verbatim, for flags without a dedicated
// setter.
func (s *Search) Extra(options ...string) *Search {
	s.addMultiple(options...)
	return s
}

// SafeDefaults applies conservative limits for unattended use: bounded
// recursion depth, file size, and matches per file.
func (s *Search) SafeDefaults() *Search {
	return s.MaxDepth(DefaultMaxDepth).
		MaxFilesize(DefaultMaxFilesize).
		MaxCount(DefaultMaxCount)
}

// Compile renders the argv for this search, forcing --json. Pure and
// repeatable; the builder is not consumed.
func (s *Search) Compile() []string {
	s.addSingular("--json")
	return s.compile()
}

// Run executes rg and returns a Stream of assembled per-file results.
// Cancelling the context kills the process; results already emitted stay
// valid and the stream reports the truncation via Err.
func (s *Search) Run(ctx context.Context) (*Stream, error) {
	return runStream(ctx, s.Compile(), s.dir)
}
