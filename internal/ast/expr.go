package ast

type Expr interface {
	Node
	isExpr()
}

func (*BinaryExpr) isExpr() {}

func (*LiteralExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*ParenExpr) isExpr() {}

// Unparen strips any number of enclosing parentheses.
func Unparen(expr Expr) Expr {
	for {
		paren, ok := expr.(*ParenExpr)
		if !ok {
			return expr
		}
		expr = paren.Value
	}
}
