package ast

import "fmt"

// ParseError reports a syntax error at a byte offset in the original
// pattern text, mirroring the teacher's position-carrying parse errors
// (parser.Parser.Error wraps the lexer's own position-tagged message).
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

// BoundsError reports a quantifier whose minimum exceeds its maximum,
// e.g. {5,2}.
type BoundsError struct {
	Pos      int
	Min, Max int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("invalid bounds at offset %d: {%d,%d}: min exceeds max", e.Pos, e.Min, e.Max)
}

// FileError reports a FileRef whose path could not be read or which
// contained zero usable (non-empty) lines.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file reference %q: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
