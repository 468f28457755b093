package enum

import "github.com/konelav/reglan/ast"

// patternWalker enumerates a Pattern's strings by round-robin across its
// alternatives (spec §4.5): the branch at ptr renders its current value,
// ptr advances to the next branch, and once it wraps every branch is
// asked to advance its own internal state — any branch that reports
// exhaustion is dropped from rotation. The walker itself is used both as
// the top-level enumerator (wrapped by Driver) and, recursively, as a
// Group atom's instance generator, since both roles need exactly the
// advance/reset/render contract.
type patternWalker struct {
	template *ast.Pattern
	branches []*altWalker
	ptr      int
}

func newPatternWalker(pat *ast.Pattern) *patternWalker {
	w := &patternWalker{template: pat}
	w.reset()
	return w
}

func (w *patternWalker) reset() {
	w.branches = make([]*altWalker, len(w.template.Alternatives))
	for i, alt := range w.template.Alternatives {
		w.branches[i] = newAltWalker(alt)
	}
	w.ptr = 0
}

func (w *patternWalker) render(caps map[int]string) string {
	if len(w.branches) == 0 {
		return ""
	}
	return w.branches[w.ptr].render(caps)
}

// advance moves to the next branch in rotation; once every branch position
// has been visited it advances each branch's own state and drops whichever
// branches report exhaustion. Reports false, and resets, only once all
// branches have simultaneously exhausted their languages.
func (w *patternWalker) advance() bool {
	if len(w.branches) == 0 {
		return false
	}

	w.ptr++
	if w.ptr < len(w.branches) {
		return true
	}
	w.ptr = 0

	kept := w.branches[:0]
	for _, b := range w.branches {
		if b.advance() {
			kept = append(kept, b)
		}
	}
	w.branches = kept

	if len(w.branches) == 0 {
		w.reset()
		return false
	}
	return true
}
