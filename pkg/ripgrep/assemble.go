// assemble.go implements the protocol state machine that groups decoded
// events into per-file search results.
//
// rg writes events serially: one file's begin, its matches and context
// lines, then its end, before the next file starts. The assembler holds
// exactly one open group, so memory is bounded by the largest single file's
// match volume rather than the whole run.
//
// Design: grouping is positional (first begin, first end after it), not
// keyed by path - rg never interleaves groups on a single stream. The path
// on the closing end is still checked against the open group's begin; a
// mismatch means the stream was reordered or corrupted and fails loudly.
// An unexpected begin while a group is open is likewise a ProtocolError:
// the lenient alternative of reassigning the current begin would silently
// drop the first group's matches.

package ripgrep

// SearchResult is the assembled, closed representation of one file group.
// It is immutable once emitted: the assembler hands it off by value and
// retains no reference.
type SearchResult struct {
	Path    string
	Begin   Begin
	Matches []Match
	Context []Context
	End     End
}

// Assembler consumes an ordered sequence of events and emits one
// SearchResult per begin...end span.
//
// An Assembler is single-use: its state is scoped to one rg invocation's
// stream. It is not safe for concurrent use; drive each stream with its
// own instance.
type Assembler struct {
	open    *Begin
	matches []Match
	context []Context
	summary *Summary
}

// NewAssembler returns an Assembler in the idle state.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Process advances the state machine by one event.
//
// It returns a non-nil SearchResult exactly when the event is the end of
// the currently open group. Summary events are recorded (see Summary) and
// emit nothing. Events that violate the begin/end protocol return a
// *ProtocolError and leave the assembler's state untouched.
//
// Process never blocks and performs no I/O - it is a pure state
// transition, safe to drive from a blocking read loop or any event-driven
// reader.
func (a *Assembler) Process(ev Event) (*SearchResult, error) {
	switch e := ev.(type) {
	case *Begin:
		if a.open != nil {
			return nil, &ProtocolError{Kind: KindBegin, Msg: "group for " + a.open.Path.Text + " is still open"}
		}
		a.open = e
		return nil, nil

	case *Match:
		if a.open == nil {
			return nil, &ProtocolError{Kind: KindMatch, Msg: "no open group"}
		}
		a.matches = append(a.matches, *e)
		return nil, nil

	case *Context:
		if a.open == nil {
			return nil, &ProtocolError{Kind: KindContext, Msg: "no open group"}
		}
		a.context = append(a.context, *e)
		return nil, nil

	case *End:
		if a.open == nil {
			return nil, &ProtocolError{Kind: KindEnd, Msg: "no open group"}
		}
		if e.Path.Text != a.open.Path.Text {
			return nil, &ProtocolError{Kind: KindEnd, Msg: "end for " + e.Path.Text + " while group for " + a.open.Path.Text + " is open"}
		}
		result := &SearchResult{
			Path:    a.open.Path.Text,
			Begin:   *a.open,
			Matches: a.matches,
			Context: a.context,
			End:     *e,
		}
		a.open = nil
		a.matches = nil
		a.context = nil
		return result, nil

	case *Summary:
		a.summary = e
		return nil, nil

	default:
		// Unreachable for events produced by DecodeLine; guards against
		// foreign Event implementations.
		return nil, &ProtocolError{Kind: ev.Kind(), Msg: "unsupported event"}
	}
}

// Finish signals end of stream. It returns ErrIncompleteGroup if a group
// was still open - the partial group is discarded, never emitted - and nil
// otherwise.
func (a *Assembler) Finish() error {
	if a.open != nil {
		open := a.open.Path.Text
		a.open = nil
		a.matches = nil
		a.context = nil
		return &IncompleteGroupError{Path: open}
	}
	return nil
}

// Summary returns the whole-run summary event, or nil if none has been
// observed yet. A non-nil summary means no further results will arrive.
func (a *Assembler) Summary() *Summary {
	return a.summary
}
