// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> extension wiring -> pkg/ripgrep builders.
//
// Tests avoid depending on an rg binary being installed: compiled
// invocations are checked via --show-command, which prints the argv
// instead of running it. The streaming pipeline itself is covered by
// pkg/ripgrep's tests against recorded rg --json sessions.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the rgkit binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "rgkit-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "rgkit"
		if os.PathSeparator == '\\' {
			binaryName = "rgkit.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary working directory and an isolated HOME,
// so global config and the audit log never touch the real user profile.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: binary,
	}
}

// run executes rgkit with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("rgkit %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes rgkit and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "RGKIT_DIR=", "RGKIT_RG=")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains asserts output contains the expected substring.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// argv parses a --show-command line back into its arguments.
func argv(output string) []string {
	return strings.Fields(strings.TrimSpace(output))
}
