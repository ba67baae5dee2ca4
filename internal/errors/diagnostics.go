package errors

import (
	"fmt"
	"sort"
	"strings"

	"ssac/internal/ast"
)

// DiagnosticBuilder provides a fluent interface for creating errors with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error builder
func NewDiagnostic(code, message string, pos ast.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a new warning builder
func NewWarning(code, message string, pos ast.Position) *DiagnosticBuilder {
	builder := NewDiagnostic(code, message, pos)
	builder.err.Level = Warning
	return builder
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// Common constructors

// UndefinedVariable creates an error for undefined variables with suggestions
func UndefinedVariable(name string, pos ast.Position, similarNames []string) CompilerError {
	builder := NewDiagnostic(ErrorUndefinedVariable, fmt.Sprintf("undefined variable '%s'", name), pos).
		WithLength(len(name))

	switch len(similarNames) {
	case 0:
		builder = builder.WithSuggestion("make sure the variable is assigned before use").
			WithNote("variables are defined by 'let' or by a plain assignment")
	case 1:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similarNames[0]))
	default:
		suggestions := strings.Join(similarNames, "', '")
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", suggestions))
	}

	return builder.Build()
}

// SyntaxError creates an error for source that does not parse
func SyntaxError(message string, pos ast.Position, length int) CompilerError {
	return NewDiagnostic(ErrorSyntax, message, pos).
		WithLength(length).
		WithHelp("statements have the form 'let name = expr;' or 'name = expr;'").
		Build()
}

// InvalidLiteral creates an error for integer literals that overflow int64
func InvalidLiteral(literal string, pos ast.Position) CompilerError {
	return NewDiagnostic(ErrorInvalidLiteral, fmt.Sprintf("integer literal '%s' is out of range", literal), pos).
		WithLength(len(literal)).
		WithNote("integers are 64-bit signed values").
		Build()
}

// UnsupportedType creates an error for type annotations other than int
func UnsupportedType(name string, pos ast.Position) CompilerError {
	return NewDiagnostic(ErrorUnsupportedType, fmt.Sprintf("unsupported type '%s'", name), pos).
		WithLength(len(name)).
		WithReplacement("use int", "int", pos, len(name)).
		Build()
}

// DivisionByZero creates a warning for a division whose divisor is known to be zero
func DivisionByZero(pos ast.Position) CompilerError {
	return NewWarning(WarningDivisionByZero, "division by zero", pos).
		WithNote("the division is kept and fails at run time").
		Build()
}

// OverwrittenValue creates a warning for a value that is reassigned before
// any statement reads it
func OverwrittenValue(name string, pos, overwrittenAt ast.Position) CompilerError {
	return NewWarning(WarningOverwrittenValue, fmt.Sprintf("value assigned to '%s' is never read", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("it is overwritten at line %d before any use", overwrittenAt.Line)).
		Build()
}

// FindSimilar returns the candidates within maxDistance edits of name,
// closest first
func FindSimilar(name string, candidates []string, maxDistance int) []string {
	type match struct {
		name     string
		distance int
	}

	var matches []match
	for _, candidate := range candidates {
		if candidate == name {
			continue
		}
		if distance := levenshteinDistance(name, candidate); distance <= maxDistance {
			matches = append(matches, match{candidate, distance})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	similar := make([]string, len(matches))
	for i, m := range matches {
		similar[i] = m.name
	}
	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 0; i < len(b); i++ {
		current := make([]int, len(a)+1)
		current[0] = i + 1

		for j := 0; j < len(a); j++ {
			cost := 0
			if a[j] != b[i] {
				cost = 1
			}
			current[j+1] = min(
				current[j]+1,     // insertion
				previous[j+1]+1,  // deletion
				previous[j]+cost, // substitution
			)
		}
		previous = current
	}

	return previous[len(a)]
}
