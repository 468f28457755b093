// Package enum's Driver applies the offset/bound/silent policy on top of
// a Pattern's round-robin walker (spec §4.6): skip a prefix of the
// enumeration, emit up to a limit of strings (or just count them), and
// stop early if the pattern's language is exhausted first.
package enum

import "github.com/konelav/reglan/ast"

// Driver walks a compiled Pattern and exposes the offset/limit enumeration
// contract used by cmd/reglan and by cmd/corpus-verify.
type Driver struct {
	walker *patternWalker
}

// NewDriver builds a Driver over pat, ready to enumerate from the very
// first (shortest) string.
func NewDriver(pat *ast.Pattern) *Driver {
	return &Driver{walker: newPatternWalker(pat)}
}

// Emit skips the first `offset` strings, then calls fn once per string up
// to `limit` times, stopping earlier if the pattern's language is
// exhausted. It returns the number of strings actually passed to fn.
func (d *Driver) Emit(offset, limit int, fn func(string)) int {
	for i := 0; i < offset; i++ {
		if !d.walker.advance() {
			return 0
		}
	}

	emitted := 0
	for emitted < limit {
		caps := make(map[int]string)
		fn(d.walker.render(caps))
		emitted++
		if emitted >= limit || !d.walker.advance() {
			break
		}
	}
	return emitted
}

// Count behaves like Emit but discards the strings, reporting only how
// many would have been produced. This backs the CLI's silent/-c mode,
// letting it report a language's size without materializing every string.
func (d *Driver) Count(offset, limit int) int {
	return d.Emit(offset, limit, func(string) {})
}
