package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(SSALexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse parses source text. Errors are participle.Error values carrying the
// position of the offending token.
func Parse(filename, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// String returns the EBNF of the grammar
func String() string {
	return parser.String()
}
