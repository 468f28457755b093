package charclass

import (
	"reflect"
	"testing"
)

func TestResolveBracket(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []byte
	}{
		{"literal set", "abc", []byte("abc")},
		{"dedup and sort", "cba a b c", []byte(" abc")},
		{"range", "0-1", []byte("01")},
		{"multi-range with literal", "a-ce-f", []byte("abcef")},
		{"escaped char", `\c`, []byte("c")},
		{"escaped dash", `a\-z`, []byte("-az")},
		{"negated", "^abc", nil}, // filled in below
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name == "negated" {
				got, err := ResolveBracket(tt.body)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				for _, c := range got {
					if c == 'a' || c == 'b' || c == 'c' {
						t.Fatalf("negated class must exclude %c, got %v", c, got)
					}
				}
				if len(got) != AlphabetHi-AlphabetLo+1-3 {
					t.Fatalf("expected %d chars, got %d", AlphabetHi-AlphabetLo+1-3, len(got))
				}
				return
			}

			got, err := ResolveBracket(tt.body)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveBracket(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestResolveBracketErrors(t *testing.T) {
	tests := []string{
		"",     // empty class
		`a\`,   // trailing backslash
		"z-a",  // inverted range
	}

	for _, body := range tests {
		if _, err := ResolveBracket(body); err == nil {
			t.Errorf("ResolveBracket(%q): expected error, got none", body)
		}
	}
}

func TestDotIsFullAlphabet(t *testing.T) {
	got := Dot()
	if len(got) != AlphabetHi-AlphabetLo+1 {
		t.Fatalf("expected %d chars, got %d", AlphabetHi-AlphabetLo+1, len(got))
	}
	if got[0] != AlphabetLo || got[len(got)-1] != AlphabetHi {
		t.Fatalf("unexpected bounds: %d..%d", got[0], got[len(got)-1])
	}
}
