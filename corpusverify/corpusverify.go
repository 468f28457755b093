// Package corpusverify is an independent oracle for the Soundness property
// (spec §8, property 1): every string reglan emits for a pattern must also
// match that pattern under a conventional regular-expression engine. It
// translates a backreference-free, file-reference-free *ast.Pattern back
// into an RE2 pattern string and compiles it with go-re2, the same engine
// the teacher uses to validate YARA regex strings.
package corpusverify

import (
	"fmt"
	"strings"

	"github.com/wasilibs/go-re2/experimental"

	"github.com/konelav/reglan/ast"
)

// ErrUnsupportedAtom is returned by ToRE2 when the pattern contains a
// BackRef or FileRef atom, neither of which has a direct RE2 analog: a
// backreference's value depends on enumeration-time state, and a FileRef's
// value set isn't expressible as a regex alternation without inlining
// every line (which ToRE2 does not do, whatever the file's size).
var ErrUnsupportedAtom = fmt.Errorf("corpusverify: pattern contains a BackRef or FileRef atom, unsupported by the RE2 oracle")

// ToRE2 renders pat as an RE2 pattern string, suitable for
// experimental.CompileLatin1. It fails with ErrUnsupportedAtom if pat
// contains any BackRef or FileRef atom.
func ToRE2(pat *ast.Pattern) (string, error) {
	var b strings.Builder
	if err := writePattern(&b, pat); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writePattern(b *strings.Builder, pat *ast.Pattern) error {
	for i, alt := range pat.Alternatives {
		if i > 0 {
			b.WriteByte('|')
		}
		if err := writeAlternative(b, alt); err != nil {
			return err
		}
	}
	return nil
}

func writeAlternative(b *strings.Builder, alt *ast.Alternative) error {
	for _, qa := range alt.Atoms {
		if err := writeQuantifiedAtom(b, qa); err != nil {
			return err
		}
	}
	return nil
}

func writeQuantifiedAtom(b *strings.Builder, qa ast.QuantifiedAtom) error {
	if err := writeAtom(b, qa.Atom); err != nil {
		return err
	}
	writeQuantifier(b, qa.Min, qa.Max)
	return nil
}

func writeQuantifier(b *strings.Builder, min, max int) {
	switch {
	case min == 1 && max == 1:
		return
	case min == 0 && max == ast.Unbounded:
		b.WriteByte('*')
	case min == 1 && max == ast.Unbounded:
		b.WriteByte('+')
	case min == 0 && max == 1:
		b.WriteByte('?')
	case max == ast.Unbounded:
		fmt.Fprintf(b, "{%d,}", min)
	case min == max:
		fmt.Fprintf(b, "{%d}", min)
	default:
		fmt.Fprintf(b, "{%d,%d}", min, max)
	}
}

func writeAtom(b *strings.Builder, atom ast.Atom) error {
	switch a := atom.(type) {
	case ast.Literal:
		writeEscapedLiteral(b, a.Char)
	case ast.Class:
		b.WriteByte('[')
		for _, c := range a.Chars {
			writeEscapedClassChar(b, c)
		}
		b.WriteByte(']')
	case ast.Group:
		b.WriteString("(?:")
		if err := writePattern(b, a.Pattern); err != nil {
			return err
		}
		b.WriteByte(')')
	case ast.FileRef:
		return ErrUnsupportedAtom
	case ast.BackRef:
		return ErrUnsupportedAtom
	default:
		return fmt.Errorf("corpusverify: unknown atom type %T", atom)
	}
	return nil
}

const re2Metachars = `.*+?()[]{}|^$\`

func writeEscapedLiteral(b *strings.Builder, c byte) {
	if strings.IndexByte(re2Metachars, c) >= 0 {
		b.WriteByte('\\')
	}
	b.WriteByte(c)
}

const re2ClassMetachars = `]^-\`

func writeEscapedClassChar(b *strings.Builder, c byte) {
	if strings.IndexByte(re2ClassMetachars, c) >= 0 {
		b.WriteByte('\\')
	}
	b.WriteByte(c)
}

// Verify compiles pat's RE2 translation and checks that every string in
// samples matches it. It checks every sample rather than stopping at the
// first mismatch; the returned error counts all mismatches and describes
// the first five.
func Verify(pat *ast.Pattern, samples []string) error {
	rePattern, err := ToRE2(pat)
	if err != nil {
		return err
	}

	anchored := "^(?:" + rePattern + ")$"
	re, err := experimental.CompileLatin1(anchored)
	if err != nil {
		return fmt.Errorf("corpusverify: compiling anchored %q: %w", anchored, err)
	}

	var mismatches []error
	for _, s := range samples {
		if !re.MatchString(s) {
			mismatches = append(mismatches, fmt.Errorf("corpusverify: %q does not match %q", s, rePattern))
		}
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("corpusverify: %d of %d samples failed: %w", len(mismatches), len(samples), joinErrors(mismatches))
	}
	return nil
}

func joinErrors(errs []error) error {
	if len(errs) > 5 {
		errs = errs[:5]
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
