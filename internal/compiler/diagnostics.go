package compiler

import (
	stderrors "errors"

	"ssac/internal/ast"
	"ssac/internal/errors"
	"ssac/internal/ir"
	"ssac/internal/parser"
	"ssac/internal/semantic"
)

// maxSuggestionDistance bounds the edit distance of "did you mean" suggestions
const maxSuggestionDistance = 2

// Diagnostics converts a compilation error into user-facing errors. source
// is the text of the unit that failed and supplies suggestion candidates.
func Diagnostics(err error, source string) []errors.CompilerError {
	if err == nil {
		return nil
	}

	var syntax *SyntaxErrors
	if stderrors.As(err, &syntax) {
		diagnostics := make([]errors.CompilerError, 0, len(syntax.Errors))
		for _, pe := range syntax.Errors {
			diagnostics = append(diagnostics, parseDiagnostic(pe))
		}
		return diagnostics
	}

	var undefined *ir.UndefinedVariableError
	if stderrors.As(err, &undefined) {
		similar := errors.FindSimilar(undefined.Name, variables(source), maxSuggestionDistance)
		return []errors.CompilerError{errors.UndefinedVariable(undefined.Name, undefined.Pos, similar)}
	}

	var invariant *ir.InvariantError
	if stderrors.As(err, &invariant) {
		return []errors.CompilerError{
			errors.NewDiagnostic(errors.ErrorInvariantViolation, invariant.Error(), ast.Position{}).
				WithNote("this is a bug in the optimizer").
				Build(),
		}
	}

	return []errors.CompilerError{
		errors.NewDiagnostic(errors.ErrorIO, err.Error(), ast.Position{}).Build(),
	}
}

// Warnings reports divisions by a constant zero left in the optimized program,
// followed by source values that are overwritten before being read
func Warnings(result *Result) []errors.CompilerError {
	constants := make(map[ir.Name]int64)
	var warnings []errors.CompilerError

	for _, inst := range result.Optimized.Instructions {
		switch inst := inst.(type) {
		case ir.Constant:
			constants[inst.Result] = inst.Value
		case ir.Binary:
			if inst.Op != ir.OpDivide {
				continue
			}
			if divisorIsZero(inst.Right, constants) {
				warnings = append(warnings, errors.DivisionByZero(result.Origins[inst.Result]))
			}
		}
	}
	return append(warnings, semantic.NewFlowAnalyzer().Analyze(result.AST)...)
}

func divisorIsZero(operand ir.Operand, constants map[ir.Name]int64) bool {
	if operand.IsLiteral() {
		return operand.Literal == 0
	}
	value, ok := constants[operand.Ref]
	return ok && value == 0
}

func parseDiagnostic(pe parser.ParseError) errors.CompilerError {
	switch pe.Code {
	case errors.ErrorInvalidLiteral:
		return errors.InvalidLiteral(pe.Text, pe.Position)
	case errors.ErrorUnsupportedType:
		return errors.UnsupportedType(pe.Text, pe.Position)
	default:
		return errors.SyntaxError(pe.Message, pe.Position, pe.Length)
	}
}

// variables lists every variable the source assigns, for suggestions
func variables(source string) []string {
	program, _ := parser.ParseSource("", source)
	if program == nil {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, stmt := range program.Statements {
		name := stmt.Target().Value
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
