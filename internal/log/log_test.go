package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		// Verify database file exists
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "search:search",
			Action:  "search",
			Pattern: "TODO",
			Dir:     "/test/project",
			Matches: 4,
			Success: true,
		})

		// Verify entry was written
		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var source, action, pattern, dir string
		var matches, success int
		err = db.QueryRow("SELECT source, action, pattern, dir, matches, success FROM log WHERE id = 1").
			Scan(&source, &action, &pattern, &dir, &matches, &success)
		require.NoError(t, err)
		assert.Equal(t, "search:search", source)
		assert.Equal(t, "search", action)
		assert.Equal(t, "TODO", pattern)
		assert.Equal(t, "/test/project", dir)
		assert.Equal(t, 4, matches)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		// Reset global for clean test
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "search:search",
			Action:  "search",
			Pattern: "[unclosed",
			Success: false,
			Error:   "invalid glob pattern",
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "invalid glob pattern", errMsg)
	})

	t.Run("log with detail", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "search:files",
			Action:  "list",
			Success: true,
			Detail:  map[string]any{"globs": []string{"*.go"}, "count": 42},
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "*.go")
		assert.Contains(t, detail, "42")
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{
			Source:  "test:cmd",
			Action:  "test",
			Success: true,
		})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)

		err = Open() // second call should succeed
		require.NoError(t, err)

		Close()
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project")
	h2 := hash("/home/user/project")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expected := filepath.Join(home, ".rgkit", "log", "rgkit-log.db")

	// Use default path function
	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, expected, DBPath())
}

func TestBuilder(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("fluent API success", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Event("search:search", "search").
			Pattern("func main").
			Dir("/src").
			Matches(5).
			Write(nil) // success

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, pattern, dir string
		var matches, success int
		err = db.QueryRow("SELECT source, action, pattern, dir, matches, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &action, &pattern, &dir, &matches, &success)
		require.NoError(t, err)
		assert.Equal(t, "search:search", source)
		assert.Equal(t, "search", action)
		assert.Equal(t, "func main", pattern)
		assert.Equal(t, "/src", dir)
		assert.Equal(t, 5, matches)
		assert.Equal(t, 1, success)
	})

	t.Run("fluent API with error", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		testErr := sql.ErrNoRows // use any error
		Event("search:search", "search").
			Pattern("TODO").
			Write(testErr)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, testErr.Error(), errMsg)
	})

	t.Run("fluent API with Detail", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Event("mcp:rg_search", "search").
			Pattern("TODO").
			Detail("types", []string{"go"}).
			Detail("count", 42).
			Write(nil)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "go")
		assert.Contains(t, detail, "42")
	})
}
