// Package lower renders optimized IR as LLVM IR. Each program becomes one
// function returning the value of its last instruction.
package lower

import (
	llir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"ssac/internal/ir"
)

// Module builds an LLVM module holding a single function "i64 @name()"
func Module(name string, program ir.Program) (*llir.Module, error) {
	if err := ir.Verify(program); err != nil {
		return nil, err
	}

	mod := llir.NewModule()
	fn := mod.NewFunc(name, types.I64)
	l := &lowerer{
		block:  fn.NewBlock("entry"),
		values: make(map[ir.Name]value.Value, program.Len()),
	}

	var result value.Value = constant.NewInt(types.I64, 0)
	for _, inst := range program.Instructions {
		inst.Accept(l)
		result = l.values[inst.GetResult()]
	}
	l.block.NewRet(result)

	return mod, nil
}

// Lower returns the textual LLVM IR of program
func Lower(name string, program ir.Program) (string, error) {
	mod, err := Module(name, program)
	if err != nil {
		return "", err
	}
	return mod.String(), nil
}

// lowerer emits one LLVM instruction per IR instruction. Copies emit nothing
// and alias their source.
type lowerer struct {
	block  *llir.Block
	values map[ir.Name]value.Value
}

func (l *lowerer) VisitConstant(inst ir.Constant) {
	add := l.block.NewAdd(constant.NewInt(types.I64, inst.Value), constant.NewInt(types.I64, 0))
	add.SetName(inst.Result.String())
	l.values[inst.Result] = add
}

func (l *lowerer) VisitBinary(inst ir.Binary) {
	x, y := l.operand(inst.Left), l.operand(inst.Right)

	var named interface{ SetName(string) }
	var result value.Value
	switch inst.Op {
	case ir.OpAdd:
		add := l.block.NewAdd(x, y)
		named, result = add, add
	case ir.OpSubtract:
		sub := l.block.NewSub(x, y)
		named, result = sub, sub
	case ir.OpMultiply:
		mul := l.block.NewMul(x, y)
		named, result = mul, mul
	case ir.OpDivide:
		div := l.block.NewSDiv(x, y)
		named, result = div, div
	}

	named.SetName(inst.Result.String())
	l.values[inst.Result] = result
}

func (l *lowerer) VisitCopy(inst ir.Copy) {
	l.values[inst.Result] = l.operand(inst.Source)
}

func (l *lowerer) operand(operand ir.Operand) value.Value {
	if operand.IsLiteral() {
		return constant.NewInt(types.I64, operand.Literal)
	}
	return l.values[operand.Ref]
}
