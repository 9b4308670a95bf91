// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "max-count" -> FlagMaxCount).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagEmptyLines     = "empty-lines"         // Keep blank context lines in output
	FlagFilesWithMatch = "files-with-matches"  // Output matching file paths only
	FlagHybrid         = "hybrid"              // Auto-switch to multiline regex when the pattern needs it
	FlagIgnoreCase     = "ignore-case"         // Case-insensitive matching
	FlagLocal          = "local"               // Use local scope (.rgkit/config.yaml)
	FlagNoExcludes     = "no-default-excludes" // Skip the standard binary/lock/data type exclusions
	FlagOneFileSystem  = "one-file-system"     // Don't cross filesystem boundaries
	FlagPretty         = "pretty"              // Render results as markdown (colourised on TTYs)
	FlagShowCommand    = "show-command"        // Print the compiled rg invocation instead of running it
	FlagStats          = "stats"               // Print the search summary line

	// String flags

	FlagExcludeGlob = "exclude-glob" // Glob patterns to exclude
	FlagGlob        = "glob"         // Glob patterns to include
	FlagSort        = "sort"         // Sort field (path, modified, accessed, created)
	FlagType        = "type"         // File types to include
	FlagTypeNot     = "type-not"     // File types to exclude

	// Integer flags

	FlagAfter       = "after"        // Context lines after matches
	FlagBefore      = "before"       // Context lines before matches
	FlagContext     = "context"      // Context lines around matches (sets both)
	FlagMaxCount    = "max-count"    // Per-file match limit
	FlagMaxDepth    = "max-depth"    // Directory traversal depth limit
	FlagMaxFilesize = "max-filesize" // Largest file size searched, in bytes
)
