package grammar_test

import (
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssac/grammar"
)

func TestScenario(t *testing.T) {
	program, err := grammar.ParseFile(`../examples/scenario.ssa`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	require.NotNil(t, program)
	require.Equal(t, 5, len(program.Statements))

	let := program.Statements[0].LetStmt
	require.NotNil(t, let)
	assert.Equal(t, "x", let.Name.Value)
	require.NotNil(t, let.Type)
	assert.Equal(t, "int", let.Type.Value)
	assert.Equal(t, 2, let.Pos.Line)
	assert.Equal(t, 1, let.Pos.Column)

	// z = x * y / 2 is a single term with two multiplicative operators
	z := program.Statements[3].LetStmt
	require.NotNil(t, z)
	assert.Empty(t, z.Value.Ops)
	assert.Equal(t, "x", *z.Value.Left.Left.Ident)
	require.Len(t, z.Value.Left.Ops, 2)
	assert.Equal(t, "*", z.Value.Left.Ops[0].Operator)
	assert.Equal(t, "/", z.Value.Left.Ops[1].Operator)
	assert.Equal(t, "2", *z.Value.Left.Ops[1].Right.Number)

	assign := program.Statements[4].AssignStmt
	require.NotNil(t, assign)
	assert.Equal(t, "z", assign.Target.Value)
	require.Len(t, assign.Value.Ops, 1)
	assert.Equal(t, "+", assign.Value.Ops[0].Operator)
}

func TestLetWithoutType(t *testing.T) {
	program, err := grammar.Parse("test.ssa", "let a = (1 + 2) * b;")
	require.NoError(t, err)
	require.Len(t, program.Statements, 1)

	let := program.Statements[0].LetStmt
	require.NotNil(t, let)
	assert.Nil(t, let.Type)

	factor := let.Value.Left.Left
	require.NotNil(t, factor.Parens)
	assert.Equal(t, "1", *factor.Parens.Left.Left.Number)
	assert.Equal(t, "+", factor.Parens.Ops[0].Operator)
	assert.Equal(t, "b", *let.Value.Left.Ops[0].Right.Ident)
}

func TestCommentsAndWhitespace(t *testing.T) {
	source := "// leading\nlet a = 1; // trailing\n\n\ta = a\n  + 2;\n"

	program, err := grammar.Parse("test.ssa", source)
	require.NoError(t, err)
	require.Len(t, program.Statements, 2)
	assert.Equal(t, 4, program.Statements[1].AssignStmt.Pos.Line)
}

func TestEmptyProgram(t *testing.T) {
	program, err := grammar.Parse("empty.ssa", "// nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, program.Statements)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		line   int
	}{
		{"missing semicolon", "let a = 1\nlet b = 2;", 2},
		{"missing operand", "let a = 1 + ;", 1},
		{"unbalanced parens", "let a = (1 + 2;", 1},
		{"unknown character", "let a = 1 % 2;", 1},
		{"expression statement", "let a = 1;\na + 1;", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := grammar.Parse("bad.ssa", tt.source)
			require.Error(t, err)

			var perr participle.Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Position().Line)
			assert.Equal(t, "bad.ssa", perr.Position().Filename)
		})
	}
}

func TestGrammarString(t *testing.T) {
	ebnf := grammar.String()
	assert.Contains(t, ebnf, "Program")
	assert.Contains(t, ebnf, "LetStmt")
}
