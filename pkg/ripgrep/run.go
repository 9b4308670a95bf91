// run.go spawns the rg binary and feeds its stdout into the streaming
// core. This is the only file in the package that performs process I/O.
//
// Exit codes are deliberately not interpreted: rg uses a non-zero exit to
// signal "no matches", which is a perfectly good empty result. Failures
// that matter - binary missing, a broken pipe mid-stream, a malformed or
// truncated event sequence - surface through the stream's own error
// reporting. Stderr is left attached to the parent's so rg's diagnostics
// reach the user unmangled.

package ripgrep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// runStream starts argv in dir and returns a Stream over its stdout.
func runStream(ctx context.Context, argv []string, dir string) (*Stream, error) {
	cmd, stdout, err := startProcess(ctx, argv, dir)
	if err != nil {
		return nil, err
	}

	stream := NewStream(stdout)
	stream.closer = stdout
	stream.wait = func() error {
		err := cmd.Wait()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// rg exits non-zero for "no matches"; not a failure.
			return nil
		}
		return err
	}
	return stream, nil
}

// runLines starts argv in dir and collects its stdout lines (the --files
// mode, one path per line).
func runLines(ctx context.Context, argv []string, dir string) ([]string, error) {
	cmd, stdout, err := startProcess(ctx, argv, dir)
	if err != nil {
		return nil, err
	}

	stream := NewStream(stdout) // reuse the buffered line scanner
	var paths []string
	for stream.scanner.Scan() {
		if line := strings.TrimRight(stream.scanner.Text(), "\r\n"); line != "" {
			paths = append(paths, line)
		}
	}
	scanErr := stream.scanner.Err()

	_ = stdout.Close()
	waitErr := cmd.Wait()
	if scanErr != nil {
		return paths, fmt.Errorf("reading rg output: %w", scanErr)
	}
	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return paths, fmt.Errorf("waiting for rg: %w", waitErr)
	}
	return paths, nil
}

// startProcess launches argv with stdout piped. The returned ReadCloser is
// the process's stdout; closing it after EOF is the caller's job.
func startProcess(ctx context.Context, argv []string, dir string) (*exec.Cmd, io.ReadCloser, error) {
	if len(argv) == 0 {
		return nil, nil, fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("creating stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("starting %s: %w", argv[0], err)
	}
	return cmd, stdout, nil
}
