package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

type NodeType int

const (
	ILLEGAL NodeType = iota

	PROGRAM
	IDENT

	// Statements
	LET_STMT
	ASSIGN_STMT

	// Expressions
	BINARY_EXPR
	LITERAL_EXPR
	IDENT_EXPR
	PAREN_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:      "ILLEGAL",
	PROGRAM:      "PROGRAM",
	IDENT:        "IDENT",
	LET_STMT:     "LET_STMT",
	ASSIGN_STMT:  "ASSIGN_STMT",
	BINARY_EXPR:  "BINARY_EXPR",
	LITERAL_EXPR: "LITERAL_EXPR",
	IDENT_EXPR:   "IDENT_EXPR",
	PAREN_EXPR:   "PAREN_EXPR",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "ILLEGAL"
	}
	return nodeTypeNames[t]
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (s *LetStmt) NodePos() Position    { return s.Pos }
func (s *LetStmt) NodeEndPos() Position { return s.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (s *AssignStmt) NodePos() Position    { return s.Pos }
func (s *AssignStmt) NodeEndPos() Position { return s.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (be *BinaryExpr) NodePos() Position    { return be.Pos }
func (be *BinaryExpr) NodeEndPos() Position { return be.EndPos }
func (*BinaryExpr) NodeType() NodeType      { return BINARY_EXPR }

func (le *LiteralExpr) NodePos() Position    { return le.Pos }
func (le *LiteralExpr) NodeEndPos() Position { return le.EndPos }
func (*LiteralExpr) NodeType() NodeType      { return LITERAL_EXPR }

func (ie *IdentExpr) NodePos() Position    { return ie.Pos }
func (ie *IdentExpr) NodeEndPos() Position { return ie.EndPos }
func (*IdentExpr) NodeType() NodeType      { return IDENT_EXPR }

func (pe *ParenExpr) NodePos() Position    { return pe.Pos }
func (pe *ParenExpr) NodeEndPos() Position { return pe.EndPos }
func (*ParenExpr) NodeType() NodeType      { return PAREN_EXPR }
