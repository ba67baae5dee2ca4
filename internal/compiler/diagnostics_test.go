package compiler

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssac/internal/errors"
	"ssac/internal/ir"
)

func diagnose(t *testing.T, source string) []errors.CompilerError {
	t.Helper()
	_, err := Compile(context.Background(), Unit{Path: "test.ssa", Source: source}, Options{})
	require.Error(t, err)
	return Diagnostics(err, source)
}

func TestDiagnosticsUndefinedVariable(t *testing.T) {
	diagnostics := diagnose(t, "let total = 1;\nlet x = totl + 1;")
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, errors.ErrorUndefinedVariable, d.Code)
	assert.Equal(t, 2, d.Position.Line)
	assert.Equal(t, 9, d.Position.Column)
	assert.Equal(t, 4, d.Length)
	require.NotEmpty(t, d.Suggestions)
	assert.Contains(t, d.Suggestions[0].Message, "did you mean 'total'?")
}

func TestDiagnosticsParseErrors(t *testing.T) {
	diagnostics := diagnose(t, "let a: bool = 1;\nlet b = 99999999999999999999;")
	require.Len(t, diagnostics, 2)

	assert.Equal(t, errors.ErrorUnsupportedType, diagnostics[0].Code)
	assert.Equal(t, "unsupported type 'bool'", diagnostics[0].Message)
	assert.Equal(t, 4, diagnostics[0].Length)

	assert.Equal(t, errors.ErrorInvalidLiteral, diagnostics[1].Code)
	assert.Equal(t, 2, diagnostics[1].Position.Line)

	syntax := diagnose(t, "let = 1")
	require.Len(t, syntax, 1)
	assert.Equal(t, errors.ErrorSyntax, syntax[0].Code)
}

func TestDiagnosticsOtherErrors(t *testing.T) {
	assert.Nil(t, Diagnostics(nil, ""))

	invariant := Diagnostics(fmt.Errorf("after pass: %w", &ir.InvariantError{Violation: ir.DuplicateResult}), "")
	require.Len(t, invariant, 1)
	assert.Equal(t, errors.ErrorInvariantViolation, invariant[0].Code)

	io := Diagnostics(stderrors.New("permission denied"), "")
	require.Len(t, io, 1)
	assert.Equal(t, errors.ErrorIO, io[0].Code)
	assert.Equal(t, "permission denied", io[0].Message)
}

func TestWarningsDivisionByZero(t *testing.T) {
	source := "let zero = 0;\nlet a = 10 / zero;\nlet b = a / 0;\nlet c = b + 1;\nlet d = c * 2;"

	options := Options{Pipeline: ir.PipelineOptions{Roots: ir.RootsFinalVersions}}
	result, err := Compile(context.Background(), Unit{Path: "div.ssa", Source: source}, options)
	require.NoError(t, err)

	warnings := Warnings(result)
	require.Len(t, warnings, 2)
	assert.Equal(t, errors.WarningDivisionByZero, warnings[0].Code)
	assert.Equal(t, 2, warnings[0].Position.Line)
	assert.Equal(t, 3, warnings[1].Position.Line)
	assert.True(t, warnings[0].IsWarning())
}

func TestWarningsOverwrittenValue(t *testing.T) {
	source := "let x = 1;\nx = 2;\nlet y = x / 0;\n"

	options := Options{Pipeline: ir.PipelineOptions{Roots: ir.RootsFinalVersions}}
	result, err := Compile(context.Background(), Unit{Path: "dead.ssa", Source: source}, options)
	require.NoError(t, err)

	warnings := Warnings(result)
	require.Len(t, warnings, 2)
	assert.Equal(t, errors.WarningDivisionByZero, warnings[0].Code)
	assert.Equal(t, 3, warnings[0].Position.Line)
	assert.Equal(t, errors.WarningOverwrittenValue, warnings[1].Code)
	assert.Equal(t, 1, warnings[1].Position.Line)
}
