// Package log provides centralised audit logging for rgkit operations.
// Logs are stored in ~/.rgkit/log/rgkit-log.db and track all CLI commands
// and MCP tool invocations across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("search:search", "search").
//		Pattern(pattern).
//		Dir(dir).
//		Matches(len(files)).
//		Write(err)
//
//	log.Event("search:files", "list").
//		Dir(dir).
//		Detail("globs", globs).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "search:search",
// "core:config", "mcp:rg_search".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source  string // e.g., "search:search", "mcp:rg_files"
	Action  string // verb: search, list, get, set, serve
	Pattern string // input: regex pattern searched, if any
	Dir     string // input: directory the search ran in

	// Matches is the number of files with matches (or files listed).
	// Populated after the operation completes.
	Matches int

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "search:search", "core:config")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:rg_search", "mcp:rg_files")
//
// The action describes what operation was performed:
//   - "search", "list", "get", "set", "serve", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Pattern sets the regex pattern this operation searched for.
// Leave unset for operations without a pattern (e.g., file listing, config).
func (b *Builder) Pattern(pattern string) *Builder {
	b.entry.Pattern = pattern
	return b
}

// Dir sets the directory the operation ran in.
func (b *Builder) Dir(dir string) *Builder {
	b.entry.Dir = dir
	return b
}

// Matches sets the number of matching files the operation found (output).
func (b *Builder) Matches(n int) *Builder {
	b.entry.Matches = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// glob filters, type filters, context widths, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the directory being searched.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
