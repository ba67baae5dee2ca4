package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"ssac/grammar"
	"ssac/internal/ast"
	"ssac/internal/errors"
)

// ParseSource parses a compilation unit. A syntax error stops parsing and is
// the only error returned; otherwise every invalid literal and type
// annotation is reported. The program is nil only after a syntax error.
func ParseSource(path string, source string) (*ast.Program, []ParseError) {
	tree, err := grammar.Parse(path, source)
	if err != nil {
		return nil, []ParseError{syntaxError(path, err)}
	}

	c := &converter{}
	program := c.convertProgram(tree)
	return program, c.errors
}

func ParseFile(path string) (*ast.Program, []ParseError, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	program, parseErrors := ParseSource(path, string(source))
	return program, parseErrors, nil
}

func syntaxError(path string, err error) ParseError {
	pe, ok := err.(participle.Error)
	if !ok {
		return ParseError{
			Code:     errors.ErrorSyntax,
			Message:  err.Error(),
			Position: ast.Position{Filename: path, Line: 1, Column: 1},
			Length:   1,
		}
	}

	pos := makePos(pe.Position())
	if pos.Filename == "" {
		pos.Filename = path
	}
	return ParseError{
		Code:     errors.ErrorSyntax,
		Message:  pe.Message(),
		Position: pos,
		Length:   1,
	}
}
