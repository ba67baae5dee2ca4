package ir

// This file provides the main entry points for the IR system.
// The IR is straight-line code in Static Single Assignment (SSA) form.

import (
	"github.com/tliron/commonlog"

	"ssac/internal/ast"
)

var log = commonlog.GetLogger("ssac.ir")

// BuildProgram is the main entry point for converting AST to IR
func BuildProgram(program *ast.Program) (Program, error) {
	return NewBuilder().Build(program)
}

// PrintProgram returns a pretty-printed representation of the IR
func PrintProgram(program Program) string {
	return Print(program)
}
