// Package dictlint sanitizes a FileRef dictionary file before it's trusted
// as an enumeration source: every line is scanned, in one pass, against a
// blocklist of disallowed substrings (control bytes and anything that
// would corrupt the enumerator's plain-string output).
//
// Grounded on scanner/compile.go's use of an Aho-Corasick automaton to
// index many literal patterns at once instead of scanning once per needle.
package dictlint

import (
	"bufio"
	"fmt"
	"os"

	ahocorasick "github.com/pgavlin/aho-corasick"
)

// DefaultBlocklist covers bytes that would silently corrupt a FileRef
// token once it's concatenated into an enumerated string: the NUL byte,
// tabs and carriage returns (dictionary.Load already splits on newline,
// but a stray \r or \t inside a line would still render as unprintable
// garbage in otherwise-alphabet-restricted output).
var DefaultBlocklist = []string{"\x00", "\t", "\r"}

// Violation is one disallowed substring found in one line of a dictionary
// file.
type Violation struct {
	Line int
	Text string
	Atom string
}

func (v Violation) Error() string {
	return fmt.Sprintf("line %d: %q contains disallowed substring %q", v.Line, v.Text, v.Atom)
}

// Lint scans every line of path against blocklist in a single
// Aho-Corasick pass and returns every violation found, in file order. An
// empty blocklist uses DefaultBlocklist.
func Lint(path string, blocklist []string) ([]Violation, error) {
	if len(blocklist) == 0 {
		blocklist = DefaultBlocklist
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	patterns := make([][]byte, len(blocklist))
	for i, p := range blocklist {
		patterns[i] = []byte(p)
	}
	ac := ahocorasick.NewAhoCorasickBuilder().BuildByte(patterns)

	var violations []Violation
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		iter := ac.IterOverlappingByte([]byte(line))
		for {
			m := iter.Next()
			if m == nil {
				break
			}
			violations = append(violations, Violation{
				Line: lineNo,
				Text: line,
				Atom: blocklist[m.Pattern()],
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return violations, nil
}
