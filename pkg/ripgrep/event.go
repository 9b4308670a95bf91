// event.go defines the typed event model for ripgrep's --json output.
//
// Each line of rg --json output is one event, discriminated by its "type"
// field: begin, match, context, end, summary. The shapes here mirror the
// wire format exactly so a decoded event round-trips without loss.
//
// Design: a closed tagged union. Event is a sealed interface (unexported
// kind method) over five concrete structs, so a type switch on an Event is
// exhaustive and new kinds cannot appear outside this package.

package ripgrep

// EventKind identifies which variant of the event union a line decoded to.
type EventKind string

// Event kinds, matching the wire discriminator values.
const (
	KindBegin   EventKind = "begin"
	KindMatch   EventKind = "match"
	KindContext EventKind = "context"
	KindEnd     EventKind = "end"
	KindSummary EventKind = "summary"
)

// Event is one decoded line of rg --json output.
type Event interface {
	// Kind returns the wire discriminator for this event.
	Kind() EventKind
}

// Compile-time union membership.
var (
	_ Event = (*Begin)(nil)
	_ Event = (*Match)(nil)
	_ Event = (*Context)(nil)
	_ Event = (*End)(nil)
	_ Event = (*Summary)(nil)
)

// PathData holds the searched file's path.
//
// rg reports paths as {"text": ...} when the path is valid UTF-8 and
// {"bytes": ...} otherwise; the bytes form is rare enough that callers
// needing it can fall back to the raw line.
type PathData struct {
	Text string `json:"text"`
}

// LineData carries the content of one reported line. Exactly one of Text
// and Bytes is populated: Text when the line decoded as UTF-8, Bytes
// (base64 on the wire) when it did not. Callers needing text must check
// Text for nil - a binary line is never silently coerced to a string.
type LineData struct {
	Text  *string `json:"text,omitempty"`
	Bytes *string `json:"bytes,omitempty"`
}

// SubmatchText is the matched substring within a line.
type SubmatchText struct {
	Text string `json:"text"`
}

// Submatch is one pattern hit within a reported line, with byte offsets
// relative to the start of the line.
type Submatch struct {
	Match SubmatchText `json:"match"`
	Start int          `json:"start"`
	End   int          `json:"end"`
}

// Elapsed is a duration as rg reports it: split components plus a
// human-readable rendering.
type Elapsed struct {
	Secs  int64  `json:"secs"`
	Nanos int64  `json:"nanos"`
	Human string `json:"human"`
}

// Stats carries per-file (end event) or whole-run (summary event) search
// statistics.
type Stats struct {
	Elapsed           Elapsed `json:"elapsed"`
	Searches          int64   `json:"searches"`
	SearchesWithMatch int64   `json:"searches_with_match"`
	BytesSearched     int64   `json:"bytes_searched"`
	BytesPrinted      int64   `json:"bytes_printed"`
	MatchedLines      int64   `json:"matched_lines"`
	Matches           int64   `json:"matches"`
}

// Begin opens a per-file result group.
type Begin struct {
	Path PathData `json:"path"`
}

// Kind returns KindBegin.
func (*Begin) Kind() EventKind { return KindBegin }

// LineEvent is the shared shape of match and context events: one reported
// line with its location and any submatches.
type LineEvent struct {
	Path           PathData   `json:"path"`
	Lines          LineData   `json:"lines"`
	LineNumber     int        `json:"line_number"`
	AbsoluteOffset int64      `json:"absolute_offset"`
	Submatches     []Submatch `json:"submatches"`
}

// Text returns the decoded line text and whether it was present.
// Returns ("", false) for binary-only lines.
func (e *LineEvent) Text() (string, bool) {
	if e.Lines.Text == nil {
		return "", false
	}
	return *e.Lines.Text, true
}

// Match is one matched line within an open group.
type Match struct {
	LineEvent
}

// Kind returns KindMatch.
func (*Match) Kind() EventKind { return KindMatch }

// Context is one non-matching line reported because it is near a match.
// Identical shape to Match; the discriminator carries the semantics.
type Context struct {
	LineEvent
}

// Kind returns KindContext.
func (*Context) Kind() EventKind { return KindContext }

// End closes a per-file result group. BinaryOffset is non-nil when rg
// stopped searching the file at a binary marker.
type End struct {
	Path         PathData `json:"path"`
	BinaryOffset *int64   `json:"binary_offset"`
	Stats        Stats    `json:"stats"`
}

// Kind returns KindEnd.
func (*End) Kind() EventKind { return KindEnd }

// Summary is the terminal whole-run aggregate. It belongs to no file group;
// observing it means no further results will arrive.
type Summary struct {
	ElapsedTotal Elapsed `json:"elapsed_total"`
	Stats        Stats   `json:"stats"`
}

// Kind returns KindSummary.
func (*Summary) Kind() EventKind { return KindSummary }
