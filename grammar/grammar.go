package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*Statement `@@*`
}

type PosIdent struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident`
}

type Statement struct {
	LetStmt    *LetStmt    `  @@`
	AssignStmt *AssignStmt `| @@`
}

type LetStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   PosIdent  `"let" @@`
	Type   *PosIdent `[ ":" @@ ]`
	Value  *Expr     `"=" @@ ";"`
}

type AssignStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Target PosIdent `@@ "="`
	Value  *Expr    `@@ ";"`
}

// Expr and Term encode the two precedence levels; operators of one level
// associate to the left.
type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Term    `@@`
	Ops    []*AddOp `{ @@ }`
}

type AddOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string `@("+" | "-")`
	Right    *Term  `@@`
}

type Term struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Factor  `@@`
	Ops    []*MulOp `{ @@ }`
}

type MulOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string  `@("*" | "/")`
	Right    *Factor `@@`
}

type Factor struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Number *string `  @Integer`
	Ident  *string `| @Ident`
	Parens *Expr   `| "(" @@ ")"`
}
