package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Statements {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (s *LetStmt) String() string {
	if s.Type != nil {
		return fmt.Sprintf("let %s: %s = %s;", s.Name.Value, s.Type.Value, s.Expr.String())
	}
	return fmt.Sprintf("let %s = %s;", s.Name.Value, s.Expr.String())
}

func (s *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s;", s.Name.Value, s.Expr.String())
}

func (be *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", be.Left.String(), be.Op, be.Right.String())
}

func (le *LiteralExpr) String() string {
	return strconv.FormatInt(le.Value, 10)
}

func (ie *IdentExpr) String() string {
	return ie.Name
}

func (pe *ParenExpr) String() string {
	return "(" + pe.Value.String() + ")"
}
