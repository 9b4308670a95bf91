// Package ripgrep is a typed, streaming front-end over the rg binary.
//
// Host programs build a Find (file enumeration) or Search (pattern search)
// command with chained option setters, then either compile it to an argv
// for their own transport or run it directly. Search output arrives as
// typed events (rg --json), assembled into per-file SearchResults by a
// protocol state machine and optionally stitched into before/match/after
// context windows.
//
// The package deliberately does not validate flag semantics or interpret
// rg exit codes: argument assembly is pure, and process failures surface as
// opaque run errors. What it does guarantee is the integrity of the result
// stream - every emitted SearchResult is a fully closed begin...end group,
// and malformed or out-of-order events fail loudly instead of corrupting
// results.
package ripgrep

import (
	"slices"
	"strconv"
)

// DefaultBinary is the rg executable resolved from PATH when no override
// is given.
const DefaultBinary = "rg"

// Safe default limits applied by SafeDefaults.
const (
	DefaultMaxDepth    = 15
	DefaultMaxCount    = 100               // matches per file
	DefaultMaxFilesize = 50 * 1024 * 1024 // 50 MB
)

// command accumulates rg options before compilation. Two collections:
// singular options may appear at most once (a set), multiple options repeat
// and keep their insertion order (patterns, globs, type filters). No
// semantic validation happens here - compile is pure assembly, and rg is
// the authority on what the flags mean.
type command struct {
	binary    string
	dir       string
	singular  map[string]bool
	multiple  []string
	targets   []string
}

func newCommand() command {
	return command{
		binary:   DefaultBinary,
		singular: make(map[string]bool),
	}
}

// compile renders the accumulated options deterministically:
// [binary, singular..., multiple..., targets...]. The singular set is
// sorted so the same configuration always yields the same argv.
func (c *command) compile() []string {
	argv := make([]string, 0, 1+len(c.singular)+len(c.multiple)+len(c.targets))
	argv = append(argv, c.binary)

	singular := make([]string, 0, len(c.singular))
	for opt := range c.singular {
		singular = append(singular, opt)
	}
	slices.Sort(singular)
	argv = append(argv, singular...)

	argv = append(argv, c.multiple...)
	argv = append(argv, c.targets...)
	return argv
}

func (c *command) addSingular(opt string) {
	c.singular[opt] = true
}

func (c *command) addMultiple(opts ...string) {
	c.multiple = append(c.multiple, opts...)
}

func (c *command) addTargets(targets ...string) {
	c.targets = append(c.targets, targets...)
}

// Shared option surface between Find and Search. Each builder embeds
// command and wraps these in chainable setters returning the concrete
// receiver.

func (c *command) setBinary(binary string) { c.binary = binary }

func (c *command) setDir(dir string) { c.dir = dir }

func (c *command) caseSensitive(sensitive bool) {
	if !sensitive {
		c.addMultiple("--ignore-case")
	}
}

// sortBy adds --sort (ascending) or --sortr (descending). Sorting forces
// rg onto a single thread.
func (c *command) sortBy(field string, ascending bool) {
	if ascending {
		c.addMultiple("--sort=" + field)
	} else {
		c.addMultiple("--sortr=" + field)
	}
}

func (c *command) includeGlob(glob string) {
	c.addMultiple("--glob=" + glob)
}

func (c *command) excludeGlob(glob string) {
	c.addMultiple("--glob=!" + glob)
}

func (c *command) includeType(t Type) {
	c.addMultiple("--type=" + t)
}

func (c *command) excludeType(t Type) {
	c.addMultiple("--type-not=" + t)
}

func (c *command) maxDepth(depth int) {
	c.addMultiple("--max-depth=" + strconv.Itoa(depth))
}

func (c *command) oneFileSystem() {
	c.addSingular("--one-file-system")
}
