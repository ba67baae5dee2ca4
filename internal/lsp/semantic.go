package lsp

import (
	"strconv"

	"ssac/internal/ast"
)

// SemanticTokenTypes is the token type legend advertised to clients
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"type",
	"number",
}

// SemanticTokenModifiers is the token modifier legend advertised to clients
var SemanticTokenModifiers = []string{
	"declaration",
}

const (
	tokenKeyword = iota
	tokenVariable
	tokenType
	tokenNumber
)

const modifierDeclaration = 1 << 0

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask over SemanticTokenModifiers
}

// collectSemanticTokens returns the tokens of program in source order
func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken
	if program == nil {
		return tokens
	}

	for _, stmt := range program.Statements {
		tokens = append(tokens, walkStatement(stmt)...)
	}
	return tokens
}

func walkStatement(stmt ast.Statement) []SemanticToken {
	var tokens []SemanticToken

	switch s := stmt.(type) {
	case *ast.LetStmt:
		tokens = append(tokens,
			newToken(s.Pos, len("let"), tokenKeyword, 0),
			newToken(s.Name.Pos, len(s.Name.Value), tokenVariable, modifierDeclaration),
		)
		if s.Type != nil {
			tokens = append(tokens, newToken(s.Type.Pos, len(s.Type.Value), tokenType, 0))
		}
	case *ast.AssignStmt:
		tokens = append(tokens, newToken(s.Name.Pos, len(s.Name.Value), tokenVariable, 0))
	}

	return append(tokens, walkExpression(stmt.Value())...)
}

func walkExpression(expr ast.Expr) []SemanticToken {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		return append(walkExpression(e.Left), walkExpression(e.Right)...)
	case *ast.ParenExpr:
		return walkExpression(e.Value)
	case *ast.IdentExpr:
		return []SemanticToken{newToken(e.Pos, len(e.Name), tokenVariable, 0)}
	case *ast.LiteralExpr:
		return []SemanticToken{newToken(e.Pos, len(strconv.FormatInt(e.Value, 10)), tokenNumber, 0)}
	}
	return nil
}

func newToken(pos ast.Position, length, tokenType, modifiers int) SemanticToken {
	return SemanticToken{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      tokenType,
		TokenModifiers: modifiers,
	}
}

// encodeSemanticTokens applies the LSP relative encoding: each token is five
// integers, positions relative to the previous token
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, 5*len(tokens))
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
