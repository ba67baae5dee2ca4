package semantic

import (
	"ssac/internal/ast"
	"ssac/internal/errors"
)

// definition is the latest assignment of a variable
type definition struct {
	pos  ast.Position
	read bool
}

// FlowAnalyzer finds assignments whose value can never be observed because
// the variable is assigned again before any statement reads it
type FlowAnalyzer struct {
	errors []errors.CompilerError
	live   map[string]*definition
}

// NewFlowAnalyzer creates a new flow analyzer
func NewFlowAnalyzer() *FlowAnalyzer {
	return &FlowAnalyzer{}
}

// Analyze returns one warning per overwritten value, in source order. The
// final assignment of a variable is never reported. Reads of undefined
// variables are ignored; building the IR rejects them.
func (fa *FlowAnalyzer) Analyze(program *ast.Program) []errors.CompilerError {
	fa.errors = nil
	fa.live = make(map[string]*definition)

	if program == nil {
		return nil
	}

	for _, stmt := range program.Statements {
		// the right-hand side reads the previous value, so "x = x + 1" uses it
		fa.analyzeExpression(stmt.Value())
		fa.define(stmt.Target())
	}

	return fa.errors
}

func (fa *FlowAnalyzer) define(target ast.Ident) {
	if prev, ok := fa.live[target.Value]; ok && !prev.read {
		fa.errors = append(fa.errors, errors.OverwrittenValue(target.Value, prev.pos, target.Pos))
	}
	fa.live[target.Value] = &definition{pos: target.Pos}
}

func (fa *FlowAnalyzer) analyzeExpression(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		fa.analyzeExpression(e.Left)
		fa.analyzeExpression(e.Right)
	case *ast.ParenExpr:
		fa.analyzeExpression(e.Value)
	case *ast.IdentExpr:
		if def, ok := fa.live[e.Name]; ok {
			def.read = true
		}
	}
}
