package lsp

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"ssac/internal/ast"
	"ssac/internal/compiler"
	"ssac/internal/ir"
)

// hoverContents renders the raw IR of the statement at pos and the optimized
// program. A statement extends to the start of the next one.
func hoverContents(result *compiler.Result, text string, pos protocol.Position) (string, bool) {
	offset, ok := offsetOf(text, pos)
	if !ok {
		return "", false
	}

	statements := result.AST.Statements
	index := -1
	for i, stmt := range statements {
		if stmt.NodePos().Offset > offset {
			break
		}
		index = i
	}
	if index < 0 {
		return "", false
	}

	start := statements[index].NodePos().Offset
	end := len(text)
	if index+1 < len(statements) {
		end = statements[index+1].NodePos().Offset
	}

	var own []ir.Instruction
	for _, inst := range result.Raw.Instructions {
		origin := result.Origins[inst.GetResult()].Offset
		if origin >= start && origin < end {
			own = append(own, inst)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", describe(statements[index]))
	b.WriteString("```\n")
	for _, inst := range own {
		b.WriteString(inst.String())
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")
	fmt.Fprintf(&b, "Optimized program (%d of %d instructions):\n\n", result.Optimized.Len(), result.Raw.Len())
	b.WriteString("```\n")
	b.WriteString(ir.Print(result.Optimized))
	b.WriteString("```\n")

	return b.String(), true
}

func describe(stmt ast.Statement) string {
	switch stmt.(type) {
	case *ast.LetStmt:
		return "let " + stmt.Target().Value
	default:
		return "assignment to " + stmt.Target().Value
	}
}

// offsetOf converts a 0-based line and UTF-16 character position to a byte
// offset. Sources are ASCII, so characters and bytes coincide.
func offsetOf(text string, pos protocol.Position) (int, bool) {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return 0, false
		}
		offset += next + 1
	}

	offset += int(pos.Character)
	if offset > len(text) {
		return 0, false
	}
	return offset, true
}
