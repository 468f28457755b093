// Package ast defines the syntax tree produced by the pattern parser: the
// template half of the data model described by the enumeration spec. A
// Pattern is a set of Alternatives (branches of a top-level `|`); each
// Alternative is a sequence of QuantifiedAtoms; each Atom is one of
// Literal, Class, Group, FileRef or BackRef.
//
// Trees built here are immutable once parsed. The enum package builds a
// mutable instance on top of a Pattern and advances it; see enum.NewDriver.
package ast

import "math"

// Unbounded represents an unbounded repetition maximum ({n,} or *, +).
const Unbounded = math.MaxInt

// Atom is one atomic element of a QuantifiedAtom: something that can
// produce a sequence of string values. Every concrete type satisfies this
// with an unexported marker method, following the same closed-interface
// idiom as the teacher's StringValue/HexToken AST node interfaces.
type Atom interface {
	atom()
}

// Literal is a single fixed character.
type Literal struct {
	Char byte
}

func (Literal) atom() {}

// Class is a non-empty, sorted, deduplicated set of distinct characters
// produced by the character-class resolver.
type Class struct {
	Chars []byte
}

func (Class) atom() {}

// Group is a nested pattern: one or more alternatives. NonCapturing groups
// (introduced by `(?:`) do not consume a backreference slot. CaptureIndex
// is 0 for non-capturing groups and the 1-based capture number otherwise.
type Group struct {
	Pattern      *Pattern
	NonCapturing bool
	CaptureIndex int
}

func (Group) atom() {}

// FileRef names an external dictionary file whose non-empty lines form a
// finite, ordered set of whole-string tokens, treated as a Class whose
// "characters" are strings instead of bytes.
type FileRef struct {
	Path string
	// Lines holds the materialized, ordered, non-empty lines of Path,
	// populated once at compile time by the caller (see dictionary.Load).
	Lines []string
}

func (FileRef) atom() {}

// BackRef refers to the k-th capturing Group (1-based), which must have
// closed earlier in the pattern text; capture numbering is global, so the
// group may sit in an enclosing or nested group rather than the same
// alternative. Its value at render time is whatever that group's live
// instance rendered for the current string (empty if it rendered nothing);
// it never advances on its own.
type BackRef struct {
	GroupIndex int
}

func (BackRef) atom() {}

// QuantifiedAtom pairs an Atom with a repetition range. Min <= Max always
// holds; Max may be Unbounded. An atom without an explicit quantifier
// carries Min=Max=1.
type QuantifiedAtom struct {
	Atom Atom
	Min  int
	Max  int
}

// FixedWidth reports whether the atom always contributes exactly the same
// repeat count, i.e. Min == Max.
func (q QuantifiedAtom) FixedWidth() bool {
	return q.Min == q.Max
}

// Alternative is an ordered sequence of quantified atoms: one branch of a
// Pattern, or the body of a Group.
type Alternative struct {
	Atoms []QuantifiedAtom
}

// MinLength is the sum of every atom's minimum repeat count.
func (a *Alternative) MinLength() int {
	total := 0
	for _, q := range a.Atoms {
		total += q.Min
	}
	return total
}

// MaxLength is the sum of every atom's maximum repeat count, or Unbounded
// if any atom is unbounded.
func (a *Alternative) MaxLength() int {
	total := 0
	for _, q := range a.Atoms {
		if q.Max == Unbounded {
			return Unbounded
		}
		total += q.Max
	}
	return total
}

// Pattern is an ordered list of alternatives joined by `|`.
type Pattern struct {
	Alternatives []*Alternative
}

// NumCaptureGroups returns the number of capturing groups introduced
// anywhere in the pattern, counting nested groups. Neither the parser nor
// the enumerator calls it: the parser tracks closed groups itself and the
// enumerator keys captures in a map.
func (p *Pattern) NumCaptureGroups() int {
	max := 0
	var walk func(*Pattern)
	walk = func(p *Pattern) {
		for _, alt := range p.Alternatives {
			for _, q := range alt.Atoms {
				if g, ok := q.Atom.(Group); ok {
					if g.CaptureIndex > max {
						max = g.CaptureIndex
					}
					walk(g.Pattern)
				}
			}
		}
	}
	walk(p)
	return max
}
