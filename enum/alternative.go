package enum

import "github.com/konelav/reglan/ast"

// altWalker enumerates one Alternative's strings in length-ascending order
// via the three-wheel odometer of spec §4.4: a value wheel over the
// current shape's instances, a shape wheel over compositions of the
// current length's surplus, and a length wheel that grows the target
// length once a given length's shapes are exhausted.
//
// Grounded on original_source/prototype/reglan.py's Alternative/Node
// classes (set_length, inc_counts, inc); the shape-wheel successor here
// replaces the prototype's tick-by-tick _next_seq_with_sum with a direct
// O(n) composition successor (spec §9).
type altWalker struct {
	alt    *ast.Alternative
	minSum int
	maxSum int // ast.Unbounded if the alternative's language has no longest string

	length    int
	added     []int // added[i] = current instance count for atom i, minus its own Min
	instances [][]generator
}

func newAltWalker(alt *ast.Alternative) *altWalker {
	w := &altWalker{
		alt:    alt,
		minSum: alt.MinLength(),
		maxSum: alt.MaxLength(),
	}
	w.setLength(w.minSum)
	return w
}

func (w *altWalker) reset() {
	w.setLength(w.minSum)
}

// capsAdd returns, per atom, the maximum surplus it may contribute at the
// given total length: spec §9's "effective upper bound for an unbounded
// atom at total length L is L − Σmin + min[i]," generalized to also cap
// atoms that carry their own finite Max.
func (w *altWalker) capsAdd(length int) []int {
	caps := make([]int, len(w.alt.Atoms))
	for i, qa := range w.alt.Atoms {
		effectiveMax := length - w.minSum + qa.Min
		if qa.Max != ast.Unbounded && qa.Max < effectiveMax {
			effectiveMax = qa.Max
		}
		caps[i] = effectiveMax - qa.Min
	}
	return caps
}

// setLength rebuilds the walker at the given target length, placing as
// much surplus as possible in the leftmost atoms (the shape wheel's first
// composition).
func (w *altWalker) setLength(length int) bool {
	surplus := length - w.minSum
	if surplus < 0 {
		return false
	}
	added, ok := fillGreedyLeft(surplus, w.capsAdd(length))
	if !ok {
		return false
	}
	w.length = length
	w.added = added
	w.buildInstances()
	return true
}

func (w *altWalker) buildInstances() {
	w.instances = make([][]generator, len(w.alt.Atoms))
	for i, qa := range w.alt.Atoms {
		count := qa.Min + w.added[i]
		gens := make([]generator, count)
		for j := range gens {
			gens[j] = newGenerator(qa.Atom)
		}
		w.instances[i] = gens
	}
}

// render concatenates every atom's current instances in order, threading
// the shared backreference capture map through nested groups.
func (w *altWalker) render(caps map[int]string) string {
	out := make([]byte, 0, w.length)
	for i := range w.alt.Atoms {
		for _, g := range w.instances[i] {
			out = append(out, g.render(caps)...)
		}
	}
	return string(out)
}

// advance moves to this alternative's next string. It tries the value
// wheel first, then the shape wheel, then the length wheel; once the
// language itself is exhausted it resets to the minimum-length initial
// state and reports false.
func (w *altWalker) advance() bool {
	if w.advanceValues() {
		return true
	}
	if w.advanceShape() {
		return true
	}
	if w.advanceLength() {
		return true
	}
	w.reset()
	return false
}

// advanceValues is the value wheel: the last instance of the last atom
// advances first, carrying leftward through instances of the same atom
// and then to the preceding atom, exactly like incrementing a multi-digit
// number whose least-significant digit sits at the end.
func (w *altWalker) advanceValues() bool {
	for i := len(w.instances) - 1; i >= 0; i-- {
		gens := w.instances[i]
		for j := len(gens) - 1; j >= 0; j-- {
			if gens[j].advance() {
				return true
			}
			gens[j].reset()
		}
	}
	return false
}

// advanceShape is the shape wheel: move to the next composition of the
// current length's surplus across atoms, keeping the value wheel's
// left-to-right significance ordering intact by rebuilding fresh instances.
func (w *altWalker) advanceShape() bool {
	next, ok := nextComposition(w.added, w.capsAdd(w.length))
	if !ok {
		return false
	}
	w.added = next
	w.buildInstances()
	return true
}

// advanceLength is the length wheel: grow the target length by one and
// reinitialize to that length's first shape, unless the alternative's
// longest possible string has already been reached.
func (w *altWalker) advanceLength() bool {
	if w.maxSum != ast.Unbounded && w.length+1 > w.maxSum {
		return false
	}
	return w.setLength(w.length + 1)
}

// fillGreedyLeft distributes `need` units of surplus across slots bounded
// by caps, filling the leftmost slots to capacity before moving right.
// This is the shape wheel's canonical "first" composition for a given
// total (spec §4.4).
func fillGreedyLeft(need int, caps []int) ([]int, bool) {
	added := make([]int, len(caps))
	for i, c := range caps {
		d := min(need, c)
		added[i] = d
		need -= d
		if need == 0 {
			break
		}
	}
	return added, need == 0
}

// nextComposition returns the successor of `added` among compositions of
// sum(added) bounded by caps, in the order implied by fillGreedyLeft:
// scan from the right for the first slot that can give up one unit of
// surplus to everything after it, decrement it, and re-fill the suffix
// greedily with the freed unit. No such slot means `added` was the last
// composition at this length.
func nextComposition(added, caps []int) ([]int, bool) {
	result := append([]int(nil), added...)
	n := len(result)

	suffixCap := 0
	suffixCur := 0
	for i := n - 1; i >= 0; i-- {
		if result[i] > 0 && suffixCur+1 <= suffixCap {
			result[i]--
			refilled, ok := fillGreedyLeft(suffixCur+1, caps[i+1:])
			if ok {
				copy(result[i+1:], refilled)
				return result, true
			}
		}
		suffixCap += caps[i]
		suffixCur += result[i]
	}
	return nil, false
}
