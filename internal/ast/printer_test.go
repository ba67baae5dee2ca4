package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStmt{
				Name: Ident{Value: "x"},
				Type: &Ident{Value: "int"},
				Expr: &LiteralExpr{Value: 3},
			},
			&AssignStmt{
				Name: Ident{Value: "z"},
				Expr: &BinaryExpr{
					Op:    "*",
					Left:  &IdentExpr{Name: "x"},
					Right: &ParenExpr{Value: &BinaryExpr{Op: "+", Left: &IdentExpr{Name: "x"}, Right: &LiteralExpr{Value: 1}}},
				},
			},
		},
	}

	assert.Equal(t, "let x: int = 3;\nz = x * (x + 1);\n", program.String())
}

func TestUnparen(t *testing.T) {
	inner := &IdentExpr{Name: "x"}
	wrapped := &ParenExpr{Value: &ParenExpr{Value: inner}}

	assert.Same(t, inner, Unparen(wrapped))
	assert.Same(t, inner, Unparen(inner))
}

func TestNodeTypes(t *testing.T) {
	assert.Equal(t, LET_STMT, (&LetStmt{}).NodeType())
	assert.Equal(t, "BINARY_EXPR", BINARY_EXPR.String())
	assert.Equal(t, "ILLEGAL", NodeType(99).String())
}
