// find.go implements the file-enumeration builder (rg --files).
//
// Find lists the files rg would search, honouring ignore rules and the
// configured path/type/glob filters, without running any pattern. The
// chained setters mutate the receiver and return it, so configurations
// read as one expression:
//
//	paths, err := ripgrep.NewFind().
//		Dir(root).
//		IncludeTypes("go").
//		ExcludeGlob("vendor/**").
//		Run(ctx)

package ripgrep

import (
	"context"
)

// Find enumerates files matching path/type/glob filters.
// Not safe for concurrent use; build one per invocation.
type Find struct {
	command
}

// NewFind returns a Find with no filters, targeting the current directory
// and the rg binary from PATH.
func NewFind() *Find {
	return &Find{command: newCommand()}
}

// Binary overrides the rg executable to invoke.
func (f *Find) Binary(binary string) *Find {
	f.setBinary(binary)
	return f
}

// Dir sets the working directory for the rg process.
func (f *Find) Dir(dir string) *Find {
	f.setDir(dir)
	return f
}

// CaseSensitive controls case sensitivity of glob matching.
func (f *Find) CaseSensitive(sensitive bool) *Find {
	f.caseSensitive(sensitive)
	return f
}

// Sort orders results by the given field (none, path, name, size,
// accessed, created, modified). Descending when ascending is false.
func (f *Find) Sort(field string, ascending bool) *Find {
	f.sortBy(field, ascending)
	return f
}

// Targets adds directories or files to enumerate.
func (f *Find) Targets(targets ...string) *Find {
	f.addTargets(targets...)
	return f
}

// IncludeGlobs restricts enumeration to files matching the glob patterns.
func (f *Find) IncludeGlobs(globs ...string) *Find {
	for _, g := range globs {
		f.includeGlob(g)
	}
	return f
}

// ExcludeGlobs drops files matching the glob patterns.
func (f *Find) ExcludeGlobs(globs ...string) *Find {
	for _, g := range globs {
		f.excludeGlob(g)
	}
	return f
}

// IncludeTypes restricts enumeration to the given rg file types.
func (f *Find) IncludeTypes(types ...Type) *Find {
	for _, t := range types {
		f.includeType(t)
	}
	return f
}

// ExcludeTypes drops files of the given rg file types.
func (f *Find) ExcludeTypes(types ...Type) *Find {
	for _, t := range types {
		f.excludeType(t)
	}
	return f
}

// MaxDepth limits directory recursion.
func (f *Find) MaxDepth(depth int) *Find {
	f.maxDepth(depth)
	return f
}

// OneFileSystem keeps enumeration on the filesystem of each target root.
func (f *Find) OneFileSystem() *Find {
	f.oneFileSystem()
	return f
}

// SafeDefaults applies conservative limits for unattended use: bounded
// recursion depth.
func (f *Find) SafeDefaults() *Find {
	return f.MaxDepth(DefaultMaxDepth)
}

// Compile renders the argv for this enumeration, forcing --files. Pure and
// repeatable; the builder is not consumed.
func (f *Find) Compile() []string {
	f.addSingular("--files")
	return f.compile()
}

// Run executes rg and returns the enumerated paths, one per output line.
// Cancelling the context kills the process. Process-level failures (binary
// missing, non-zero exit) are returned opaquely.
func (f *Find) Run(ctx context.Context) ([]string, error) {
	return runLines(ctx, f.Compile(), f.dir)
}
