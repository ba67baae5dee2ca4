package parser

import (
	"fmt"

	"ssac/internal/ast"
)

// ParseError is a syntax or validation error found while parsing
type ParseError struct {
	Code     string // one of the parser codes in internal/errors
	Message  string
	Position ast.Position
	Length   int    // optional: how many characters it covers
	Text     string // offending source text of validation errors
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Position.Filename, e.Position.Line, e.Position.Column, e.Message)
}
