package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameString(t *testing.T) {
	assert.Equal(t, "x.1", v("x", 1).String())
	assert.Equal(t, "bin.12", tmp(12).String())
	assert.True(t, Name{}.IsZero())
	assert.False(t, v("x", 1).IsZero())
}

func TestOperandString(t *testing.T) {
	assert.Equal(t, `"x.1"`, Ref(v("x", 1)).String())
	assert.Equal(t, "-42", Lit(-42).String())
	assert.True(t, Lit(0).IsLiteral())
	assert.True(t, Ref(v("x", 1)).IsRef())
}

func TestOp(t *testing.T) {
	for _, symbol := range []string{"+", "-", "*", "/"} {
		op, ok := OpFromSymbol(symbol)
		assert.True(t, ok)
		assert.Equal(t, symbol, op.Symbol())
	}

	_, ok := OpFromSymbol("%")
	assert.False(t, ok)

	assert.Equal(t, "Add", OpAdd.String())
	assert.Equal(t, "Subtract", OpSubtract.String())
	assert.Equal(t, "Multiply", OpMultiply.String())
	assert.Equal(t, "Divide", OpDivide.String())
	assert.Equal(t, "Op(9)", Op(9).String())
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		inst     Instruction
		kind     string
		expected string
	}{
		{
			Constant{Result: v("x", 1), Value: 3},
			"Constant",
			`Constant { result: "x.1", value: 3 }`,
		},
		{
			Binary{Result: v("y", 1), Op: OpAdd, Left: Ref(v("x", 1)), Right: Lit(1)},
			"Binary",
			`Binary { result: "y.1", op: Add, left: "x.1", right: 1 }`,
		},
		{
			Copy{Result: v("a", 1), Source: Ref(v("x", 1))},
			"Copy",
			`Copy { result: "a.1", source: "x.1" }`,
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.inst.String())
		assert.Equal(t, tt.kind, tt.inst.Kind())
	}
}

type kindCounter struct {
	constants, binaries, copies int
}

func (k *kindCounter) VisitConstant(Constant) { k.constants++ }
func (k *kindCounter) VisitBinary(Binary)     { k.binaries++ }
func (k *kindCounter) VisitCopy(Copy)         { k.copies++ }

func TestInstructionVisitor(t *testing.T) {
	counter := &kindCounter{}
	program := NewProgram(
		Constant{Result: v("x", 1), Value: 1},
		Copy{Result: v("y", 1), Source: Ref(v("x", 1))},
		Binary{Result: v("z", 1), Op: OpAdd, Left: Ref(v("x", 1)), Right: Ref(v("y", 1))},
		Binary{Result: v("z", 2), Op: OpAdd, Left: Ref(v("z", 1)), Right: Lit(1)},
	)

	for _, inst := range program.Instructions {
		inst.Accept(counter)
	}

	assert.Equal(t, kindCounter{constants: 1, binaries: 2, copies: 1}, *counter)
}

func TestProgram(t *testing.T) {
	program := scenarioRaw()

	assert.Equal(t, 6, program.Len())
	assert.Equal(t, v("z", 2), program.Names()[5])

	inst, ok := program.Lookup(tmp(1))
	assert.True(t, ok)
	assert.Equal(t, "Binary", inst.Kind())

	_, ok = program.Lookup(v("w", 1))
	assert.False(t, ok)

	// a variable called "bin" is a different name from the temporary bin.1
	_, ok = program.Lookup(v("bin", 1))
	assert.False(t, ok)
}

func TestProgramEqual(t *testing.T) {
	assert.True(t, scenarioRaw().Equal(scenarioRaw()))
	assert.True(t, Program{}.Equal(NewProgram()))

	changed := scenarioRaw()
	changed.Instructions[0] = Constant{Result: v("x", 1), Value: 4}
	assert.False(t, changed.Equal(scenarioRaw()))

	shorter := NewProgram(scenarioRaw().Instructions[:5]...)
	assert.False(t, shorter.Equal(scenarioRaw()))
}

func TestProgramString(t *testing.T) {
	program := NewProgram(
		Constant{Result: v("x", 1), Value: 3},
		Copy{Result: v("a", 1), Source: Ref(v("x", 1))},
	)

	assert.Equal(t, `[Constant { result: "x.1", value: 3 }, Copy { result: "a.1", source: "x.1" }]`, program.String())
	assert.Equal(t, "[]", Program{}.String())
}
