package parser

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"ssac/grammar"
	"ssac/internal/ast"
	"ssac/internal/errors"
)

// converter turns the participle parse tree into the AST, folding each
// precedence level into left-associative binary expressions
type converter struct {
	errors []ParseError
}

func (c *converter) convertProgram(tree *grammar.Program) *ast.Program {
	program := &ast.Program{
		Pos:    makePos(tree.Pos),
		EndPos: makePos(tree.EndPos),
	}

	for _, stmt := range tree.Statements {
		switch {
		case stmt.LetStmt != nil:
			program.Statements = append(program.Statements, c.convertLet(stmt.LetStmt))
		case stmt.AssignStmt != nil:
			program.Statements = append(program.Statements, c.convertAssign(stmt.AssignStmt))
		}
	}

	return program
}

func (c *converter) convertLet(let *grammar.LetStmt) *ast.LetStmt {
	stmt := &ast.LetStmt{
		Pos:    makePos(let.Pos),
		EndPos: makePos(let.EndPos),
		Name:   makeIdent(let.Name),
		Expr:   c.convertExpr(let.Value),
	}

	if let.Type != nil {
		typ := makeIdent(*let.Type)
		if typ.Value != "int" {
			c.errorAt(errors.ErrorUnsupportedType, fmt.Sprintf("unsupported type '%s'", typ.Value), typ.Pos, typ.Value)
		}
		stmt.Type = &typ
	}

	return stmt
}

func (c *converter) convertAssign(assign *grammar.AssignStmt) *ast.AssignStmt {
	return &ast.AssignStmt{
		Pos:    makePos(assign.Pos),
		EndPos: makePos(assign.EndPos),
		Name:   makeIdent(assign.Target),
		Expr:   c.convertExpr(assign.Value),
	}
}

func (c *converter) convertExpr(e *grammar.Expr) ast.Expr {
	expr := c.convertTerm(e.Left)
	for _, op := range e.Ops {
		right := c.convertTerm(op.Right)
		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Operator,
			Left:   expr,
			Right:  right,
		}
	}
	return expr
}

func (c *converter) convertTerm(t *grammar.Term) ast.Expr {
	expr := c.convertFactor(t.Left)
	for _, op := range t.Ops {
		right := c.convertFactor(op.Right)
		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Operator,
			Left:   expr,
			Right:  right,
		}
	}
	return expr
}

func (c *converter) convertFactor(f *grammar.Factor) ast.Expr {
	pos, end := makePos(f.Pos), makePos(f.EndPos)

	switch {
	case f.Number != nil:
		value, err := strconv.ParseInt(*f.Number, 10, 64)
		if err != nil {
			c.errorAt(errors.ErrorInvalidLiteral, fmt.Sprintf("integer literal '%s' is out of range", *f.Number), pos, *f.Number)
		}
		return &ast.LiteralExpr{Pos: pos, EndPos: end, Value: value}

	case f.Ident != nil:
		return &ast.IdentExpr{Pos: pos, EndPos: end, Name: *f.Ident}

	default:
		return &ast.ParenExpr{Pos: pos, EndPos: end, Value: c.convertExpr(f.Parens)}
	}
}

func (c *converter) errorAt(code, message string, pos ast.Position, text string) {
	c.errors = append(c.errors, ParseError{
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   len(text),
		Text:     text,
	})
}

func makePos(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func makeIdent(ident grammar.PosIdent) ast.Ident {
	return ast.Ident{
		Pos:    makePos(ident.Pos),
		EndPos: makePos(ident.EndPos),
		Value:  ident.Value,
	}
}
