package ripgrep_test

import (
	"fmt"
	"testing"

	"github.com/jpl-au/rgkit/pkg/ripgrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Event constructors for assembling test streams without wire round-trips.

func beginEvent(path string) *ripgrep.Begin {
	return &ripgrep.Begin{Path: ripgrep.PathData{Text: path}}
}

func matchEvent(path string, line int, text string) *ripgrep.Match {
	return &ripgrep.Match{LineEvent: lineEvent(path, line, &text)}
}

func binaryMatchEvent(path string, line int) *ripgrep.Match {
	return &ripgrep.Match{LineEvent: lineEvent(path, line, nil)}
}

func contextEvent(path string, line int, text string) *ripgrep.Context {
	return &ripgrep.Context{LineEvent: lineEvent(path, line, &text)}
}

func lineEvent(path string, line int, text *string) ripgrep.LineEvent {
	ev := ripgrep.LineEvent{
		Path:       ripgrep.PathData{Text: path},
		LineNumber: line,
	}
	if text != nil {
		ev.Lines.Text = text
	} else {
		encoded := "/v8A"
		ev.Lines.Bytes = &encoded
	}
	return ev
}

func endEvent(path string) *ripgrep.End {
	return &ripgrep.End{
		Path: ripgrep.PathData{Text: path},
		Stats: ripgrep.Stats{
			Elapsed:  ripgrep.Elapsed{Human: "0.000017s", Nanos: 17208},
			Searches: 1,
		},
	}
}

func summaryEvent() *ripgrep.Summary {
	return &ripgrep.Summary{ElapsedTotal: ripgrep.Elapsed{Human: "0.1s"}}
}

// process feeds events and fails the test on any protocol error.
func process(t *testing.T, a *ripgrep.Assembler, events ...ripgrep.Event) []*ripgrep.SearchResult {
	t.Helper()
	var results []*ripgrep.SearchResult
	for _, ev := range events {
		result, err := a.Process(ev)
		require.NoError(t, err)
		if result != nil {
			results = append(results, result)
		}
	}
	return results
}

func TestAssembler_EmptyGroup(t *testing.T) {
	a := ripgrep.NewAssembler()

	results := process(t, a, beginEvent("a.go"), endEvent("a.go"))

	require.Len(t, results, 1)
	assert.Equal(t, "a.go", results[0].Path)
	assert.Empty(t, results[0].Matches)
	assert.Empty(t, results[0].Context)
	assert.NoError(t, a.Finish())
}

func TestAssembler_SingleGroup(t *testing.T) {
	a := ripgrep.NewAssembler()

	results := process(t, a,
		beginEvent("a.go"),
		matchEvent("a.go", 7, "\thello()\n"),
		contextEvent("a.go", 8, "}\n"),
		matchEvent("a.go", 10, "func hello() {\n"),
		endEvent("a.go"),
	)

	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, "a.go", r.Path)
	require.Len(t, r.Matches, 2)
	assert.Equal(t, 7, r.Matches[0].LineNumber)
	assert.Equal(t, 10, r.Matches[1].LineNumber)
	require.Len(t, r.Context, 1)
	assert.Equal(t, 8, r.Context[0].LineNumber)
	assert.Equal(t, "0.000017s", r.End.Stats.Elapsed.Human)
}

func TestAssembler_EmissionIsSynchronousWithEnd(t *testing.T) {
	a := ripgrep.NewAssembler()

	result, err := a.Process(beginEvent("a.go"))
	require.NoError(t, err)
	assert.Nil(t, result, "begin must not emit")

	result, err = a.Process(matchEvent("a.go", 1, "x\n"))
	require.NoError(t, err)
	assert.Nil(t, result, "match must not emit")

	result, err = a.Process(endEvent("a.go"))
	require.NoError(t, err)
	require.NotNil(t, result, "end must emit the group")
}

func TestAssembler_ManyGroupsInArrivalOrder(t *testing.T) {
	a := ripgrep.NewAssembler()

	var events []ripgrep.Event
	const n = 25
	for i := 0; i < n; i++ {
		path := fmt.Sprintf("file_%02d.go", i)
		events = append(events,
			beginEvent(path),
			matchEvent(path, i+1, "match\n"),
			endEvent(path),
		)
	}
	events = append(events, summaryEvent())

	results := process(t, a, events...)

	require.Len(t, results, n)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("file_%02d.go", i), r.Path)
	}
	assert.NoError(t, a.Finish())
}

func TestAssembler_StateResetsBetweenGroups(t *testing.T) {
	a := ripgrep.NewAssembler()

	results := process(t, a,
		beginEvent("a.go"),
		matchEvent("a.go", 1, "first\n"),
		contextEvent("a.go", 2, "ctx\n"),
		endEvent("a.go"),
		beginEvent("b.go"),
		endEvent("b.go"),
	)

	require.Len(t, results, 2)
	assert.Len(t, results[0].Matches, 1)
	assert.Empty(t, results[1].Matches, "pending matches must not leak into the next group")
	assert.Empty(t, results[1].Context, "pending context must not leak into the next group")
}

func TestAssembler_SummaryEmitsNothing(t *testing.T) {
	a := ripgrep.NewAssembler()

	result, err := a.Process(summaryEvent())
	require.NoError(t, err)
	assert.Nil(t, result)
	require.NotNil(t, a.Summary())
	assert.Equal(t, "0.1s", a.Summary().ElapsedTotal.Human)
}

func TestAssembler_EndWithoutBegin(t *testing.T) {
	a := ripgrep.NewAssembler()

	_, err := a.Process(endEvent("a.go"))
	var protoErr *ripgrep.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, ripgrep.KindEnd, protoErr.Kind)
}

func TestAssembler_MatchWithoutBegin(t *testing.T) {
	a := ripgrep.NewAssembler()

	_, err := a.Process(matchEvent("a.go", 1, "x\n"))
	var protoErr *ripgrep.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, ripgrep.KindMatch, protoErr.Kind)

	_, err = a.Process(contextEvent("a.go", 1, "x\n"))
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, ripgrep.KindContext, protoErr.Kind)
}

func TestAssembler_SecondBeginWhileOpen(t *testing.T) {
	// A stray begin must fail loudly: reassigning the open group would
	// silently drop the first group's matches.
	a := ripgrep.NewAssembler()

	_, err := a.Process(beginEvent("a.go"))
	require.NoError(t, err)

	_, err = a.Process(beginEvent("b.go"))
	var protoErr *ripgrep.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, ripgrep.KindBegin, protoErr.Kind)
	assert.Contains(t, protoErr.Error(), "a.go")
}

func TestAssembler_EndPathMismatch(t *testing.T) {
	a := ripgrep.NewAssembler()

	_, err := a.Process(beginEvent("a.go"))
	require.NoError(t, err)

	_, err = a.Process(endEvent("b.go"))
	var protoErr *ripgrep.ProtocolError
	require.ErrorAs(t, err, &protoErr)
}

func TestAssembler_FinishWithOpenGroup(t *testing.T) {
	a := ripgrep.NewAssembler()

	_, err := a.Process(beginEvent("a.go"))
	require.NoError(t, err)
	_, err = a.Process(matchEvent("a.go", 3, "orphan\n"))
	require.NoError(t, err)

	err = a.Finish()
	require.ErrorIs(t, err, ripgrep.ErrIncompleteGroup)

	var incomplete *ripgrep.IncompleteGroupError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "a.go", incomplete.Path)

	// The partial group is discarded; a second Finish is clean.
	assert.NoError(t, a.Finish())
}
