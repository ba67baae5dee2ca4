package ast

// Program represents one compilation unit (the entire source file)
// Example: "let x: int = 3; x = x + 1;"
type Program struct {
	Pos        Position
	EndPos     Position
	Statements []Statement
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents a variable name at a specific location
// Example: "x", "total", "unused"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Statement is either a declaration or an assignment.
type Statement interface {
	Node
	isStatement()
	// Target is the variable the statement defines.
	Target() Ident
	// Value is the right-hand side expression.
	Value() Expr
}

// LetStmt represents a variable declaration
// Example: "let x: int = 3;", "let y = x + 1;"
type LetStmt struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *Ident // optional annotation, only "int" is accepted
	Expr   Expr
}

// AssignStmt represents an assignment to a variable
// Example: "z = z + 1;"
type AssignStmt struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Expr   Expr
}

func (*LetStmt) isStatement()    {}
func (*AssignStmt) isStatement() {}

func (s *LetStmt) Target() Ident    { return s.Name }
func (s *LetStmt) Value() Expr      { return s.Expr }
func (s *AssignStmt) Target() Ident { return s.Name }
func (s *AssignStmt) Value() Expr   { return s.Expr }

// BinaryExpr represents an arithmetic operation
// Example: "x + 1", "x * y / 2"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string // one of "+", "-", "*", "/"
	Left   Expr
	Right  Expr
}

// LiteralExpr represents an integer literal
// Example: "3", "0", "42"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Value  int64
}

// IdentExpr represents a reference to a variable
// Example: "x", "total"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// ParenExpr represents a parenthesized expression
// Example: "(x + 1)"
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}
