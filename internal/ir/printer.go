package ir

import (
	"fmt"
	"strings"
)

// Printer provides pretty-printing for IR
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new IR printer
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print renders a program as a bracketed list with one instruction per line.
// An empty program renders as "[]".
func Print(program Program) string {
	p := NewPrinter()
	p.printProgram(program)
	return p.output.String()
}

// Helper methods

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printProgram(program Program) {
	if program.Len() == 0 {
		p.writeLine("[]")
		return
	}

	p.writeLine("[")
	p.indent++
	for _, inst := range program.Instructions {
		p.writeLine("%s,", inst)
	}
	p.indent--
	p.writeLine("]")
}
