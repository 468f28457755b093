// Package parser turns pattern text into an *ast.Pattern tree (component B
// of the enumeration design): sequences of quantified atoms within each
// branch, alternatives separated by `|`, groups introduced by `(...)`,
// and the `?:` non-capturing / `?F<path>` file-reference group markers.
package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/konelav/reglan/ast"
	"github.com/konelav/reglan/charclass"
	"github.com/konelav/reglan/dictionary"
)

// Parser parses pattern text into a syntax tree. It holds no state between
// calls to Parse/ParseFile, matching the teacher's stateless
// parser.Parser{}/parser.New() shape.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse parses pattern text and returns its syntax tree. FileRef atoms are
// resolved and their dictionary contents loaded eagerly before Parse
// returns, so every error the spec assigns to compile time (ParseError,
// BoundsError, FileError) is surfaced here rather than during enumeration.
func (p *Parser) Parse(input string) (*ast.Pattern, error) {
	st := &state{lexer: newLexer(input)}

	pat, err := st.parsePattern()
	if err != nil {
		return nil, err
	}
	if !st.isEOF() {
		return nil, &ast.ParseError{Pos: st.pos, Msg: fmt.Sprintf("unexpected %q", string(st.peek()))}
	}

	if err := loadFileRefs(pat); err != nil {
		return nil, err
	}

	return pat, nil
}

// ParseFile reads pattern text from filename and parses it.
func (p *Parser) ParseFile(filename string) (*ast.Pattern, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return p.Parse(string(content))
}

// state holds the parse-time cursor plus the bookkeeping needed to
// validate backreferences: groupCounter assigns capture indices as groups
// open, closedGroups records which of those have fully closed so a
// backreference can only name a group that closed strictly earlier in
// text order (spec §4.2, §9 open question on forward references).
type state struct {
	*lexer
	groupCounter int
	closedGroups map[int]bool
}

func (s *state) parsePattern() (*ast.Pattern, error) {
	var alts []*ast.Alternative
	for {
		alt, err := s.parseAlternative()
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)

		if s.peek() != '|' {
			break
		}
		s.advance()
	}
	return &ast.Pattern{Alternatives: alts}, nil
}

func (s *state) parseAlternative() (*ast.Alternative, error) {
	start := s.pos
	var atoms []ast.QuantifiedAtom
	for {
		c := s.peek()
		if s.isEOF() || c == '|' || c == ')' {
			break
		}
		qa, err := s.parseQuantifiedAtom()
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, qa)
	}
	if len(atoms) == 0 {
		return nil, &ast.ParseError{Pos: start, Msg: "empty alternative"}
	}
	return &ast.Alternative{Atoms: atoms}, nil
}

func (s *state) parseQuantifiedAtom() (ast.QuantifiedAtom, error) {
	atom, err := s.parseAtom()
	if err != nil {
		return ast.QuantifiedAtom{}, err
	}
	min, max, err := s.parseQuantifier()
	if err != nil {
		return ast.QuantifiedAtom{}, err
	}
	return ast.QuantifiedAtom{Atom: atom, Min: min, Max: max}, nil
}

// parseQuantifier consumes an optional `*`, `+`, `?` or `{n[,m]}` suffix.
// An atom with no suffix carries the default (1, 1).
func (s *state) parseQuantifier() (min, max int, err error) {
	switch s.peek() {
	case '*':
		s.advance()
		return 0, ast.Unbounded, nil
	case '+':
		s.advance()
		return 1, ast.Unbounded, nil
	case '?':
		s.advance()
		return 0, 1, nil
	case '{':
		return s.parseBraceQuantifier()
	default:
		return 1, 1, nil
	}
}

func (s *state) parseBraceQuantifier() (min, max int, err error) {
	start := s.pos
	s.advance() // consume '{'

	n1, ok := s.scanInt()
	if !ok {
		return 0, 0, &ast.ParseError{Pos: start, Msg: "malformed {n,m}: expected a number"}
	}

	switch s.peek() {
	case '}':
		s.advance()
		return n1, n1, nil
	case ',':
		s.advance()
		if s.peek() == '}' {
			s.advance()
			return n1, ast.Unbounded, nil
		}
		n2, ok := s.scanInt()
		if !ok || s.peek() != '}' {
			return 0, 0, &ast.ParseError{Pos: start, Msg: "malformed {n,m}"}
		}
		s.advance()
		if n1 > n2 {
			return 0, 0, &ast.BoundsError{Pos: start, Min: n1, Max: n2}
		}
		return n1, n2, nil
	default:
		return 0, 0, &ast.ParseError{Pos: start, Msg: "malformed {n,m}: expected , or }"}
	}
}

func (s *state) scanInt() (int, bool) {
	start := s.pos
	for s.peek() >= '0' && s.peek() <= '9' {
		s.advance()
	}
	if s.pos == start {
		return 0, false
	}
	n := 0
	for _, c := range []byte(s.input[start:s.pos]) {
		n = n*10 + int(c-'0')
	}
	return n, true
}

func (s *state) parseAtom() (ast.Atom, error) {
	if s.isEOF() {
		return nil, &ast.ParseError{Pos: s.pos, Msg: "unexpected end of pattern"}
	}

	c := s.peek()
	switch {
	case c == '*' || c == '+' || c == '?' || c == '{':
		return nil, &ast.ParseError{Pos: s.pos, Msg: "quantifier with no preceding atom"}
	case c == ')':
		return nil, &ast.ParseError{Pos: s.pos, Msg: "unmatched )"}
	case c == '.':
		s.advance()
		return ast.Class{Chars: charclass.Dot()}, nil
	case c == '[':
		return s.parseClass()
	case c == '(':
		return s.parseGroup()
	case c == '\\':
		return s.parseEscape()
	default:
		s.advance()
		return ast.Literal{Char: c}, nil
	}
}

func (s *state) parseClass() (ast.Atom, error) {
	start := s.pos
	s.advance() // consume '['
	bodyStart := s.pos

	for {
		if s.isEOF() {
			return nil, &ast.ParseError{Pos: start, Msg: "unmatched ["}
		}
		switch s.peek() {
		case '\\':
			s.advance()
			if s.isEOF() {
				return nil, &ast.ParseError{Pos: start, Msg: "unmatched ["}
			}
			s.advance()
		case ']':
			body := s.input[bodyStart:s.pos]
			s.advance() // consume ']'
			chars, err := charclass.ResolveBracket(body)
			if err != nil {
				return nil, &ast.ParseError{Pos: start, Msg: err.Error()}
			}
			return ast.Class{Chars: chars}, nil
		default:
			s.advance()
		}
	}
}

func (s *state) parseEscape() (ast.Atom, error) {
	start := s.pos
	s.advance() // consume backslash
	if s.isEOF() {
		return nil, &ast.ParseError{Pos: start, Msg: "unknown escape at end of input"}
	}
	c := s.advance()

	if c >= '1' && c <= '9' {
		idx := int(c - '0')
		if !s.closedGroups[idx] {
			return nil, &ast.ParseError{Pos: start, Msg: fmt.Sprintf("backreference to non-existent group %d", idx)}
		}
		return ast.BackRef{GroupIndex: idx}, nil
	}

	return ast.Literal{Char: c}, nil
}

func (s *state) parseGroup() (ast.Atom, error) {
	start := s.pos
	s.advance() // consume '('

	if s.peek() == '?' {
		switch s.peekAt(1) {
		case ':':
			s.advance()
			s.advance() // consume "?:"
			pat, err := s.parsePattern()
			if err != nil {
				return nil, err
			}
			if s.peek() != ')' {
				return nil, &ast.ParseError{Pos: start, Msg: "unmatched ("}
			}
			s.advance()
			return ast.Group{Pattern: pat, NonCapturing: true}, nil

		case 'F':
			s.advance()
			s.advance() // consume "?F"
			pathStart := s.pos
			for !s.isEOF() && s.peek() != ')' {
				s.advance()
			}
			if s.isEOF() {
				return nil, &ast.ParseError{Pos: start, Msg: "unmatched ("}
			}
			path := s.input[pathStart:s.pos]
			s.advance() // consume ')'
			if path == "" {
				return nil, &ast.ParseError{Pos: start, Msg: "empty file reference path"}
			}
			return ast.FileRef{Path: path}, nil
		}
	}

	s.groupCounter++
	captureIdx := s.groupCounter

	pat, err := s.parsePattern()
	if err != nil {
		return nil, err
	}
	if s.peek() != ')' {
		return nil, &ast.ParseError{Pos: start, Msg: "unmatched ("}
	}
	s.advance()
	if s.closedGroups == nil {
		s.closedGroups = make(map[int]bool)
	}
	s.closedGroups[captureIdx] = true

	return ast.Group{Pattern: pat, CaptureIndex: captureIdx}, nil
}

// loadFileRefs walks the parsed tree and materializes every FileRef's
// dictionary contents, aggregating any failures with errors.Join so a
// pattern referencing several bad files reports all of them at once.
func loadFileRefs(pat *ast.Pattern) error {
	var errs []error

	var walk func(*ast.Pattern)
	walk = func(pat *ast.Pattern) {
		for _, alt := range pat.Alternatives {
			for i, qa := range alt.Atoms {
				switch a := qa.Atom.(type) {
				case ast.FileRef:
					lines, err := dictionary.Load(a.Path)
					if err != nil {
						errs = append(errs, &ast.FileError{Path: a.Path, Err: err})
						continue
					}
					a.Lines = lines
					alt.Atoms[i].Atom = a
				case ast.Group:
					walk(a.Pattern)
				}
			}
		}
	}
	walk(pat)

	return errors.Join(errs...)
}
