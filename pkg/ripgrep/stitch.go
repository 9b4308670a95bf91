// stitch.go attaches before/after context windows to the matches of an
// assembled search result.
//
// rg reports match and context lines as separate events; stitching merges
// them back into per-match windows. The subtle rule is ownership: a context
// line belongs to at most one match, and a window never reaches past a
// neighbouring match's line - that match owns everything from its own line
// onward.

package ripgrep

import (
	"strings"
)

// MatchedLine is one match with its surrounding context, keyed by absolute
// line number so gaps in a window remain visible to the caller. Match holds
// exactly one entry.
type MatchedLine struct {
	Before map[int]string `json:"before,omitempty"`
	Match  map[int]string `json:"match"`
	After  map[int]string `json:"after,omitempty"`
}

// MatchedFile is the stitched, read-only projection of one SearchResult.
type MatchedFile struct {
	Path         string        `json:"path"`
	MatchedLines []MatchedLine `json:"matched_lines"`
}

// StitchOptions configures context stitching.
type StitchOptions struct {
	Before int // lines of context wanted before each match
	After  int // lines of context wanted after each match

	// IncludeEmptyLines records blank context lines as "". When false a
	// blank line's number is skipped entirely, not zero-filled.
	IncludeEmptyLines bool
}

// Stitch produces the matched-file view of one search result.
//
// For each match at line n, the before window scans n-Before..n-1 ascending
// and the after window scans n+1..n+After, consuming context lines from a
// per-call index. Both scans stop early at a line number owned by another
// match, so context is never donated across a match boundary. A context
// line is attributed to at most one match: the first match whose scan
// reaches it, in arrival order.
//
// Matches whose payload has no decodable text (binary data) produce no
// MatchedLine. Recorded text has trailing whitespace stripped. MatchedLines
// preserve the arrival order of the input matches, ascending line number
// within one file.
//
// Stitch does not fail for well-formed results; zero widths simply yield
// empty windows. It has no effect on the SearchResult itself.
func Stitch(result *SearchResult, opts StitchOptions) MatchedFile {
	// Context index, consumed destructively so a line is used at most once.
	contextByLine := make(map[int]*Context, len(result.Context))
	for i := range result.Context {
		c := &result.Context[i]
		contextByLine[c.LineNumber] = c
	}

	matchLines := make(map[int]bool, len(result.Matches))
	for i := range result.Matches {
		matchLines[result.Matches[i].LineNumber] = true
	}

	file := MatchedFile{Path: result.Path}

	for i := range result.Matches {
		m := &result.Matches[i]
		text, ok := m.Text()
		if !ok {
			// Binary-safe match without text cannot be stitched.
			continue
		}
		n := m.LineNumber

		before := takeWindow(contextByLine, matchLines, n-opts.Before, n-1, opts.IncludeEmptyLines)
		after := takeWindow(contextByLine, matchLines, n+1, n+opts.After, opts.IncludeEmptyLines)

		file.MatchedLines = append(file.MatchedLines, MatchedLine{
			Before: before,
			Match:  map[int]string{n: strings.TrimRight(text, " \t\r\n")},
			After:  after,
		})
	}

	return file
}

// takeWindow consumes context lines numbered from..to (ascending,
// inclusive), stopping at the first line owned by another match.
func takeWindow(contextByLine map[int]*Context, matchLines map[int]bool, from, to int, includeEmpty bool) map[int]string {
	var window map[int]string
	for ln := from; ln <= to; ln++ {
		if matchLines[ln] {
			// Do not steal context from the neighbouring match.
			break
		}
		c, ok := contextByLine[ln]
		if !ok {
			continue
		}
		delete(contextByLine, ln)

		text, ok := c.Text()
		if !ok {
			continue
		}
		trimmed := strings.TrimRight(text, " \t\r\n")
		if trimmed == "" && !includeEmpty {
			continue
		}
		if window == nil {
			window = make(map[int]string)
		}
		window[ln] = trimmed
	}
	return window
}

// StitchAll stitches a batch of search results with the same options.
func StitchAll(results []*SearchResult, opts StitchOptions) []MatchedFile {
	files := make([]MatchedFile, 0, len(results))
	for _, r := range results {
		files = append(files, Stitch(r, opts))
	}
	return files
}
