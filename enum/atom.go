// Package enum implements components C through F of the enumeration
// design: atom value generators, the per-alternative odometer, the
// top-level branch selector, and the offset/bound driver. Building a tree
// of these on top of an *ast.Pattern is what turns the immutable template
// into the mutable, monotonically-advancing instance described by spec §3.
package enum

import (
	"fmt"

	"github.com/konelav/reglan/ast"
)

// generator is the uniform interface every atom instance presents to its
// owning alternative's odometer (spec §4.3): advance moves to the next
// value, reporting false (and resetting) on wraparound; render produces
// the current value, given the shared backreference capture context.
type generator interface {
	advance() bool
	reset()
	render(caps map[int]string) string
}

func newGenerator(atom ast.Atom) generator {
	switch a := atom.(type) {
	case ast.Literal:
		return &literalGen{char: a.Char}
	case ast.Class:
		return &classGen{chars: a.Chars}
	case ast.FileRef:
		return &fileRefGen{lines: a.Lines}
	case ast.BackRef:
		return &backRefGen{groupIndex: a.GroupIndex}
	case ast.Group:
		return &groupGen{walker: newPatternWalker(a.Pattern), captureIndex: a.CaptureIndex}
	default:
		panic(fmt.Sprintf("enum: unknown atom type %T", atom))
	}
}

// literalGen produces the single string `c`. It never advances, matching
// the "Literal" row of spec §4.3's atom value table.
type literalGen struct {
	char byte
}

func (g *literalGen) advance() bool                { return false }
func (g *literalGen) reset()                        {}
func (g *literalGen) render(map[int]string) string { return string(g.char) }

// classGen walks a class's characters in ascending code-point order.
type classGen struct {
	chars []byte
	idx   int
}

func (g *classGen) advance() bool {
	g.idx++
	if g.idx >= len(g.chars) {
		g.idx = 0
		return false
	}
	return true
}

func (g *classGen) reset() { g.idx = 0 }

func (g *classGen) render(map[int]string) string {
	return string(g.chars[g.idx])
}

// fileRefGen walks a dictionary's lines in file order, identically to
// classGen but over whole-string tokens instead of single bytes.
type fileRefGen struct {
	lines []string
	idx   int
}

func (g *fileRefGen) advance() bool {
	g.idx++
	if g.idx >= len(g.lines) {
		g.idx = 0
		return false
	}
	return true
}

func (g *fileRefGen) reset() { g.idx = 0 }

func (g *fileRefGen) render(map[int]string) string {
	return g.lines[g.idx]
}

// backRefGen echoes whatever the referenced capturing group currently
// renders. It never advances on its own — the odometer owns "choice," and
// a backreference has none (spec §9).
type backRefGen struct {
	groupIndex int
}

func (g *backRefGen) advance() bool { return false }
func (g *backRefGen) reset()        {}

func (g *backRefGen) render(caps map[int]string) string {
	return caps[g.groupIndex]
}

// groupGen wraps a nested pattern walker. When the group is capturing, its
// rendered value is written into the shared capture map so later
// backreferences (anywhere in the tree, since capture numbering is global)
// can read it.
type groupGen struct {
	walker       *patternWalker
	captureIndex int
}

func (g *groupGen) advance() bool { return g.walker.advance() }
func (g *groupGen) reset()        { g.walker.reset() }

func (g *groupGen) render(caps map[int]string) string {
	v := g.walker.render(caps)
	if g.captureIndex > 0 {
		caps[g.captureIndex] = v
	}
	return v
}
