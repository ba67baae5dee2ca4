package ir

import "ssac/internal/ast"

// AST construction helpers shared by the tests of this package

func lit(v int64) *ast.LiteralExpr { return &ast.LiteralExpr{Value: v} }

func ident(name string) *ast.IdentExpr { return &ast.IdentExpr{Name: name} }

func paren(e ast.Expr) *ast.ParenExpr { return &ast.ParenExpr{Value: e} }

func bin(op string, left, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}
}

func let(name string, e ast.Expr) *ast.LetStmt {
	return &ast.LetStmt{Name: ast.Ident{Value: name}, Expr: e}
}

func assign(name string, e ast.Expr) *ast.AssignStmt {
	return &ast.AssignStmt{Name: ast.Ident{Value: name}, Expr: e}
}

func source(stmts ...ast.Statement) *ast.Program {
	return &ast.Program{Statements: stmts}
}

func v(base string, version int) Name { return Name{Base: base, Version: version} }

func tmp(version int) Name { return Name{Base: TemporaryTag, Version: version, Temp: true} }

// scenarioSource is:
//
//	let x = 3;
//	let unused = 0;
//	let y = x + 1;
//	let z = x * y / 2;
//	z = z + 1;
func scenarioSource() *ast.Program {
	return source(
		let("x", lit(3)),
		let("unused", lit(0)),
		let("y", bin("+", ident("x"), lit(1))),
		let("z", bin("/", bin("*", ident("x"), ident("y")), lit(2))),
		assign("z", bin("+", ident("z"), lit(1))),
	)
}

func scenarioRaw() Program {
	return NewProgram(
		Constant{Result: v("x", 1), Value: 3},
		Constant{Result: v("unused", 1), Value: 0},
		Binary{Result: v("y", 1), Op: OpAdd, Left: Ref(v("x", 1)), Right: Lit(1)},
		Binary{Result: tmp(1), Op: OpMultiply, Left: Ref(v("x", 1)), Right: Ref(v("y", 1))},
		Binary{Result: v("z", 1), Op: OpDivide, Left: Ref(tmp(1)), Right: Lit(2)},
		Binary{Result: v("z", 2), Op: OpAdd, Left: Ref(v("z", 1)), Right: Lit(1)},
	)
}
