package corpusverify_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/konelav/reglan/ast"
	"github.com/konelav/reglan/corpusverify"
	"github.com/konelav/reglan/enum"
	"github.com/konelav/reglan/parser"
)

func TestToRE2Translation(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"abc", "abc"},
		{"a*", "a*"},
		{"a{2,5}", "a{2,5}"},
		{"(abc|def)", "(?:abc|def)"},
		{"[a\\-z]", `[\-az]`},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			pat, err := parser.New().Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got, err := corpusverify.ToRE2(pat)
			if err != nil {
				t.Fatalf("ToRE2: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToRE2EscapesDotExpansion(t *testing.T) {
	pat, err := parser.New().Parse(".")
	if err != nil {
		t.Fatal(err)
	}
	got, err := corpusverify.ToRE2(pat)
	if err != nil {
		t.Fatalf("ToRE2: %v", err)
	}
	if got[0] != '[' || got[len(got)-1] != ']' {
		t.Fatalf("expected a bracket class, got %q", got)
	}
	if !strings.Contains(got, `\]`) {
		t.Fatalf("expected the ']' of the dot expansion to be escaped, got %q", got)
	}
}

func TestToRE2RejectsBackRefAndFileRef(t *testing.T) {
	pat, err := parser.New().Parse("(a)\\1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := corpusverify.ToRE2(pat); err != corpusverify.ErrUnsupportedAtom {
		t.Fatalf("expected ErrUnsupportedAtom, got %v", err)
	}

	fileRef := &ast.Pattern{Alternatives: []*ast.Alternative{{
		Atoms: []ast.QuantifiedAtom{{Atom: ast.FileRef{Path: "names.txt", Lines: []string{"a"}}, Min: 1, Max: 1}},
	}}}
	if _, err := corpusverify.ToRE2(fileRef); err != corpusverify.ErrUnsupportedAtom {
		t.Fatalf("expected ErrUnsupportedAtom for a FileRef, got %v", err)
	}
}

func TestVerifySoundness(t *testing.T) {
	patterns := []string{
		"[0-1]{1,2}",
		"([0-1]{3}|[a-c]{2}|[d-e]{1})",
		"(abc)de(?:fg(hi|jk))",
	}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			pat, err := parser.New().Parse(p)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			d := enum.NewDriver(pat)
			var samples []string
			d.Emit(0, 200, func(s string) { samples = append(samples, s) })

			if err := corpusverify.Verify(pat, samples); err != nil {
				t.Fatalf("Verify: %v", err)
			}
		})
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	pat, err := parser.New().Parse("abc")
	if err != nil {
		t.Fatal(err)
	}
	if err := corpusverify.Verify(pat, []string{"abc", "xyz"}); err == nil {
		t.Fatal("expected a mismatch error for an unrelated sample")
	}
}

// generateChars returns n distinct lowercase letters, sorted, without
// repeats, mirroring original_source/test.py's generate_chars.
func generateChars(rng *rand.Rand, n int) string {
	set := make(map[byte]bool, n)
	for len(set) < n {
		set[byte('a'+rng.Intn(26))] = true
	}
	chars := make([]byte, 0, n)
	for c := range set {
		chars = append(chars, c)
	}
	for i := 1; i < len(chars); i++ {
		for j := i; j > 0 && chars[j-1] > chars[j]; j-- {
			chars[j-1], chars[j] = chars[j], chars[j-1]
		}
	}
	return string(chars)
}

// generatePattern builds a small bounded-size pattern of one or more
// quantified character classes, mirroring original_source/test.py's
// generate_regexp (sized down to keep soundness-check cost bounded).
func generatePattern(rng *rand.Rand, maxNodes int) string {
	n := 1 + rng.Intn(maxNodes)
	var b strings.Builder
	for i := 0; i < n; i++ {
		nChars := 2 + rng.Intn(3)
		maxRep := 1 + rng.Intn(2)
		minRep := rng.Intn(maxRep + 1)
		fmt.Fprintf(&b, "[%s]{%d,%d}", generateChars(rng, nChars), minRep, maxRep)
	}
	return b.String()
}

// TestRandomPatternSoundness cross-checks a batch of randomly generated
// patterns against the RE2 oracle, mirroring original_source/test.py's
// generate_regexp/N_RANDOM_TESTS loop with a fixed seed for determinism.
func TestRandomPatternSoundness(t *testing.T) {
	rng := rand.New(rand.NewSource(20260731))
	const trials = 10

	for i := 0; i < trials; i++ {
		pattern := generatePattern(rng, 3)
		t.Run(pattern, func(t *testing.T) {
			pat, err := parser.New().Parse(pattern)
			if err != nil {
				t.Fatalf("Parse(%q): %v", pattern, err)
			}

			d := enum.NewDriver(pat)
			var samples []string
			d.Emit(0, 2000, func(s string) { samples = append(samples, s) })

			if err := corpusverify.Verify(pat, samples); err != nil {
				t.Fatalf("Verify(%q): %v", pattern, err)
			}
		})
	}
}
