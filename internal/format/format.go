// Package format renders search results for terminal and LLM consumption.
//
// Text output follows grep conventions:
//   - ":" separates path:line:content for matching lines
//   - "-" separates path-line-content for context lines
//   - "--" separates non-contiguous match groups
//
// This allows readers (human or LLM) to distinguish matches from context
// at a glance, and keeps output greppable itself.
package format

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/rgkit/pkg/ripgrep"
	"golang.org/x/term"
)

// Text writes matched files in grep-style path:line:content form.
func Text(w io.Writer, files []ripgrep.MatchedFile) {
	for _, f := range files {
		writeFile(w, f)
	}
}

func writeFile(w io.Writer, f ripgrep.MatchedFile) {
	for i, ml := range f.MatchedLines {
		if i > 0 {
			fmt.Fprintln(w, "--")
		}
		writeWindow(w, f.Path, ml.Before, "-")
		writeWindow(w, f.Path, ml.Match, ":")
		writeWindow(w, f.Path, ml.After, "-")
	}
}

// writeWindow prints one line map in ascending line order. Maps are used
// upstream so windows can be sparse; sorting here restores file order.
func writeWindow(w io.Writer, path string, lines map[int]string, sep string) {
	for _, n := range slices.Sorted(maps.Keys(lines)) {
		fmt.Fprintf(w, "%s%s%d%s%s\n", path, sep, n, sep, lines[n])
	}
}

// Files writes one path per line, mirroring rg --files output.
func Files(w io.Writer, paths []string) {
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

// Stats writes a one-line summary of a completed search.
// No output when the summary is absent (e.g., the stream ended early).
func Stats(w io.Writer, s *ripgrep.Summary) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "%d matched lines across %d files (%d files searched, %s)\n",
		s.Stats.MatchedLines, s.Stats.SearchesWithMatch, s.Stats.Searches,
		s.ElapsedTotal.Human)
}

// Markdown renders matched files as a markdown document: a heading per
// file followed by a fenced block of its matched lines with context.
// Intended for glamour rendering on TTYs or direct LLM context loading.
func Markdown(files []ripgrep.MatchedFile) string {
	var b strings.Builder
	for _, f := range files {
		fmt.Fprintf(&b, "### %s\n\n```\n", f.Path)
		for i, ml := range f.MatchedLines {
			if i > 0 {
				b.WriteString("--\n")
			}
			writeMarkdownWindow(&b, ml.Before)
			writeMarkdownWindow(&b, ml.Match)
			writeMarkdownWindow(&b, ml.After)
		}
		b.WriteString("```\n\n")
	}
	return b.String()
}

func writeMarkdownWindow(b *strings.Builder, lines map[int]string) {
	for _, n := range slices.Sorted(maps.Keys(lines)) {
		fmt.Fprintf(b, "%d: %s\n", n, lines[n])
	}
}

// RenderMarkdown writes content to w, colourised via glamour when stdout
// is a terminal. Pipe/redirect gets raw markdown for machine consumption.
func RenderMarkdown(w io.Writer, content string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if rendered, err := glamour.Render(content, "dark"); err == nil {
			fmt.Fprint(w, rendered)
			return
		}
	}
	fmt.Fprint(w, content)
}
