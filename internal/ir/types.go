package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// IR types for straight-line code in Static Single Assignment (SSA) form.
// A Program is a flat list of instructions; every instruction defines exactly
// one Name and may only reference Names defined by earlier instructions.

// Name identifies the value produced by one instruction, e.g. "x.1" or "bin.3"
type Name struct {
	Base    string
	Version int
	Temp    bool // anonymous intermediate value, not bound to a source variable
}

func (n Name) String() string {
	return n.Base + "." + strconv.Itoa(n.Version)
}

// IsZero reports whether n is the zero Name
func (n Name) IsZero() bool {
	return n == Name{}
}

// OperandKind distinguishes literal operands from references
type OperandKind int

const (
	OperandLiteral OperandKind = iota
	OperandRef
)

// Operand is either an integer literal or a reference to an earlier result
type Operand struct {
	Kind    OperandKind
	Literal int64
	Ref     Name
}

// Lit creates a literal operand
func Lit(value int64) Operand {
	return Operand{Kind: OperandLiteral, Literal: value}
}

// Ref creates an operand referencing the result of an earlier instruction
func Ref(name Name) Operand {
	return Operand{Kind: OperandRef, Ref: name}
}

func (o Operand) IsLiteral() bool { return o.Kind == OperandLiteral }
func (o Operand) IsRef() bool     { return o.Kind == OperandRef }

func (o Operand) String() string {
	if o.IsRef() {
		return strconv.Quote(o.Ref.String())
	}
	return strconv.FormatInt(o.Literal, 10)
}

// Op is an integer arithmetic operator
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
)

var opNames = [...]string{
	OpAdd:      "Add",
	OpSubtract: "Subtract",
	OpMultiply: "Multiply",
	OpDivide:   "Divide",
}

var opSymbols = [...]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Symbol returns the source-level spelling of the operator
func (op Op) Symbol() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[op]
}

// OpFromSymbol maps "+", "-", "*" and "/" to their operators
func OpFromSymbol(symbol string) (Op, bool) {
	for op, s := range opSymbols {
		if s == symbol {
			return Op(op), true
		}
	}
	return 0, false
}

// Instructions in SSA form

// Instruction is a closed sum type over Constant, Binary and Copy.
// Code that needs to distinguish the kinds goes through InstructionVisitor,
// so adding a kind breaks the build of every pass until it is handled.
type Instruction interface {
	GetResult() Name
	GetOperands() []Operand
	Kind() string
	String() string
	Accept(v InstructionVisitor)
	isInstruction()
}

// InstructionVisitor has one method per instruction kind
type InstructionVisitor interface {
	VisitConstant(inst Constant)
	VisitBinary(inst Binary)
	VisitCopy(inst Copy)
}

// Constant produces a literal value
type Constant struct {
	Result Name
	Value  int64
}

// Binary applies an arithmetic operator to two operands
type Binary struct {
	Result Name
	Op     Op
	Left   Operand
	Right  Operand
}

// Copy rebinds an existing value under a new name
type Copy struct {
	Result Name
	Source Operand
}

func (Constant) isInstruction() {}
func (Binary) isInstruction()   {}
func (Copy) isInstruction()     {}

func (c Constant) GetResult() Name             { return c.Result }
func (c Constant) GetOperands() []Operand      { return nil }
func (c Constant) Kind() string                { return "Constant" }
func (c Constant) Accept(v InstructionVisitor) { v.VisitConstant(c) }

func (b Binary) GetResult() Name             { return b.Result }
func (b Binary) GetOperands() []Operand      { return []Operand{b.Left, b.Right} }
func (b Binary) Kind() string                { return "Binary" }
func (b Binary) Accept(v InstructionVisitor) { v.VisitBinary(b) }

func (c Copy) GetResult() Name             { return c.Result }
func (c Copy) GetOperands() []Operand      { return []Operand{c.Source} }
func (c Copy) Kind() string                { return "Copy" }
func (c Copy) Accept(v InstructionVisitor) { v.VisitCopy(c) }

func (c Constant) String() string {
	return fmt.Sprintf("Constant { result: %q, value: %d }", c.Result.String(), c.Value)
}

func (b Binary) String() string {
	return fmt.Sprintf("Binary { result: %q, op: %s, left: %s, right: %s }",
		b.Result.String(), b.Op, b.Left, b.Right)
}

func (c Copy) String() string {
	return fmt.Sprintf("Copy { result: %q, source: %s }", c.Result.String(), c.Source)
}

// Program is the IR of one compilation unit. Instruction order is definition
// order and therefore a topological order of the data dependencies.
type Program struct {
	Instructions []Instruction
}

// NewProgram creates a program from the given instructions
func NewProgram(instructions ...Instruction) Program {
	return Program{Instructions: instructions}
}

func (p Program) Len() int {
	return len(p.Instructions)
}

// Equal reports whether both programs hold the same instructions in the same order
func (p Program) Equal(other Program) bool {
	if len(p.Instructions) != len(other.Instructions) {
		return false
	}
	for i, inst := range p.Instructions {
		if inst != other.Instructions[i] {
			return false
		}
	}
	return true
}

// Lookup returns the instruction that defines name
func (p Program) Lookup(name Name) (Instruction, bool) {
	for _, inst := range p.Instructions {
		if inst.GetResult() == name {
			return inst, true
		}
	}
	return nil, false
}

// Names returns the result names in definition order
func (p Program) Names() []Name {
	names := make([]Name, len(p.Instructions))
	for i, inst := range p.Instructions {
		names[i] = inst.GetResult()
	}
	return names
}

// String renders the program on a single line
func (p Program) String() string {
	parts := make([]string, len(p.Instructions))
	for i, inst := range p.Instructions {
		parts[i] = inst.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
