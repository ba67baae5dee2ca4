package ir

import (
	"fmt"

	"ssac/internal/ast"
)

// UndefinedVariableError is returned when an expression reads a variable that
// has not been defined yet. It aborts the whole build.
type UndefinedVariableError struct {
	Name string
	Pos  ast.Position
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

// Violation names the IR invariant an InvariantError reports
type Violation int

const (
	DuplicateResult Violation = iota
	ForwardReference
	DanglingReference
)

func (v Violation) String() string {
	switch v {
	case DuplicateResult:
		return "duplicate result"
	case ForwardReference:
		return "forward reference"
	case DanglingReference:
		return "dangling reference"
	}
	return fmt.Sprintf("Violation(%d)", int(v))
}

// InvariantError describes an instruction that breaks the SSA invariants
type InvariantError struct {
	Index     int
	Name      Name
	Violation Violation
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("instruction %d: %s %s", e.Index, e.Violation, e.Name)
}
