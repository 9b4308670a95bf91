// errors.go defines the error taxonomy for stream consumption.
//
// Separated to centralise error definitions. DecodeError and ProtocolError
// are types (they carry the offending line or event), ErrIncompleteGroup is
// a sentinel checked with errors.Is. All are surfaced synchronously at the
// offending event; the package never recovers silently or emits a partial
// group.

package ripgrep

import (
	"errors"
	"fmt"
)

// ErrIncompleteGroup is reported when the event stream ends while a file
// group is still open. The partial group is discarded, never emitted.
// Returned wrapped in an *IncompleteGroupError; check with errors.Is.
var ErrIncompleteGroup = errors.New("stream ended with an open result group")

// IncompleteGroupError carries the path of a group discarded because the
// stream ended before its end event. It is a non-fatal signal: everything
// emitted before it is valid.
type IncompleteGroupError struct {
	Path string
}

func (e *IncompleteGroupError) Error() string {
	return fmt.Sprintf("%v (open group: %s)", ErrIncompleteGroup, e.Path)
}

func (e *IncompleteGroupError) Unwrap() error { return ErrIncompleteGroup }

// DecodeError indicates a line that is not valid JSON or does not match any
// known event shape. Line holds the offending input.
type DecodeError struct {
	Line string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode event line %q: %v", truncate(e.Line, 80), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ProtocolError indicates an event sequence that violates the begin/end
// state machine, such as a match with no open group or a second begin
// before the prior end.
type ProtocolError struct {
	Kind EventKind // the offending event
	Msg  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol violation on %s event: %s", e.Kind, e.Msg)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
