// stream.go drives the decoder and assembler over an ordered line source.
//
// The core state machine never performs I/O; this file is the bridge
// between "lines arrive from somewhere" and "typed results come out".
// NewStream accepts any io.Reader, so hosts with their own transport
// (a remote shell, a recorded session, a test fixture) get the same
// assembly guarantees as the process-backed Run path in run.go.
//
// Design: bufio.Scanner-style consumption. Next/Result/Err keeps the
// blocking read inside the caller's loop, so the same Stream works from a
// plain goroutine or any cooperative scheduler without the package
// imposing a concurrency model. One result is buffered at a time; memory
// is bounded by the largest single file group.

package ripgrep

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single event line. Matches and context lines embed
// the file line they report, so this is effectively the longest searchable
// file line (minified JS, base64 blobs).
const maxLineSize = 16 * 1024 * 1024

// Stream yields assembled SearchResults from an ordered event-line source.
//
// A Stream is single-use and not safe for concurrent use. The input must
// preserve the order the search tool wrote: reordered or dropped lines
// surface as protocol errors rather than corrupt results.
type Stream struct {
	scanner   *bufio.Scanner
	assembler *Assembler
	closer    io.Closer // optional; closed when the stream ends
	wait      func() error

	result   *SearchResult
	err      error
	finished bool
}

// NewStream consumes newline-delimited rg --json events from r.
// It takes no ownership of r beyond reading it to EOF.
func NewStream(r io.Reader) *Stream {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	return &Stream{
		scanner:   sc,
		assembler: NewAssembler(),
	}
}

// Next advances to the next complete SearchResult. It returns false when
// the stream is exhausted or an error occurred; check Err afterwards.
func (s *Stream) Next() bool {
	if s.finished || s.err != nil {
		return false
	}

	for s.scanner.Scan() {
		line := s.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		ev, err := DecodeLine(line)
		if err != nil {
			s.fail(err)
			return false
		}

		result, err := s.assembler.Process(ev)
		if err != nil {
			s.fail(err)
			return false
		}
		if result != nil {
			s.result = result
			return true
		}
	}

	// End of input: a scanner error, a clean end, or a truncated stream.
	if err := s.scanner.Err(); err != nil {
		s.fail(err)
		return false
	}
	s.finish()
	return false
}

// Result returns the SearchResult produced by the last successful call to
// Next. Valid until the next call to Next.
func (s *Stream) Result() *SearchResult {
	return s.result
}

// Err returns the first error encountered: a *DecodeError, a
// *ProtocolError, an *IncompleteGroupError (errors.Is ErrIncompleteGroup)
// when the input ended inside an open group, or the underlying transport
// failure. Nil after a clean, complete stream.
func (s *Stream) Err() error {
	return s.err
}

// Summary returns the whole-run summary, or nil if the stream has not
// reached one. Only meaningful after Next has returned false.
func (s *Stream) Summary() *Summary {
	return s.assembler.Summary()
}

// fail records the first error and releases the transport.
func (s *Stream) fail(err error) {
	s.finished = true
	s.err = err
	s.cleanup()
}

// finish handles a normal end of input.
func (s *Stream) finish() {
	s.finished = true
	if err := s.assembler.Finish(); err != nil {
		s.err = err
	}
	s.cleanup()
}

func (s *Stream) cleanup() {
	if s.closer != nil {
		_ = s.closer.Close()
		s.closer = nil
	}
	if s.wait != nil {
		waitErr := s.wait()
		s.wait = nil
		// Transport failure reporting: prefer the stream's own error, it
		// points at the offending line.
		if s.err == nil {
			s.err = waitErr
		}
	}
}
