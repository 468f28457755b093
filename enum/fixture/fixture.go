// Package fixture loads golden end-to-end enumeration scenarios (spec §8's
// table) from a small declarative text format instead of Go literals, so
// adding a scenario doesn't require touching test code.
//
// Grounded on the teacher's parser/grammar.go participle struct-tag
// grammar style (Name string `parser:"..."``, @@/@String captures),
// adapted from a YARA-rule grammar to this scenario-file grammar. The
// teacher declares this dependency and writes matching struct tags but
// never actually calls participle.Build/MustBuild anywhere in its own
// source; fixture is where reglan exercises it for real.
package fixture

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// scenarioAST is one golden test case as parsed: a pattern, an optional
// explicit expected string set, and/or an expected language size.
type scenarioAST struct {
	Pattern string   `parser:"\"scenario\" @String \"{\""`
	Expects []string `parser:"(\"expect\" @String)*"`
	Size    *int     `parser:"(\"size\" @Int)?  \"}\""`
}

type fileAST struct {
	Scenarios []*scenarioAST `parser:"@@*"`
}

// Scenario is the public, already-unquoted form of a scenarioAST.
type Scenario struct {
	// Pattern is the pattern text to parse and enumerate.
	Pattern string
	// Expects, if non-empty, are strings that must all appear somewhere
	// in the pattern's enumerated output.
	Expects []string
	// Size, if non-nil, is the exact expected count of the pattern's
	// full language.
	Size *int
}

var scenarioLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[{}]`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var scenarioParser = participle.MustBuild[fileAST](
	participle.Lexer(scenarioLexer),
	participle.Elide("Whitespace", "Comment"),
)

// unquote strips the surrounding double quotes captured verbatim by the
// String token. Scenario pattern text never contains a literal quote
// character, so no escape processing beyond that is needed.
func unquote(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}

// Load reads and parses a scenario file, returning its Scenarios in file
// order.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}

	f, err := scenarioParser.ParseString(path, string(data))
	if err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}

	out := make([]Scenario, len(f.Scenarios))
	for i, s := range f.Scenarios {
		expects := make([]string, len(s.Expects))
		for j, e := range s.Expects {
			expects[j] = unquote(e)
		}
		out[i] = Scenario{Pattern: unquote(s.Pattern), Expects: expects, Size: s.Size}
	}
	return out, nil
}
