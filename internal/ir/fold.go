package ir

// ConstantFolding evaluates constant expressions at compile time
type ConstantFolding struct{}

func (cf *ConstantFolding) Name() string {
	return "Constant Folding"
}

func (cf *ConstantFolding) Description() string {
	return "Evaluates constant expressions at compile time and replaces them with constants"
}

func (cf *ConstantFolding) Apply(program Program) Program {
	return Fold(program)
}

// Fold replaces every instruction whose operands are known constants with a
// Constant of the same name. Length, names and order are preserved.
//
// A division by a known zero is left in place and its result stays unknown.
func Fold(program Program) Program {
	f := &folder{
		constants: make(map[Name]int64),
		out:       make([]Instruction, 0, len(program.Instructions)),
	}
	for _, inst := range program.Instructions {
		inst.Accept(f)
	}
	return Program{Instructions: f.out}
}

// folder walks the program once; operands always refer to earlier
// instructions, so every name is classified before it is read.
type folder struct {
	constants map[Name]int64
	out       []Instruction
}

func (f *folder) VisitConstant(inst Constant) {
	f.constants[inst.Result] = inst.Value
	f.out = append(f.out, inst)
}

func (f *folder) VisitBinary(inst Binary) {
	left, leftOk := f.resolve(inst.Left)
	right, rightOk := f.resolve(inst.Right)
	if leftOk && rightOk {
		if value, ok := Evaluate(inst.Op, left, right); ok {
			f.replace(inst.Result, value)
			return
		}
	}
	f.out = append(f.out, inst)
}

func (f *folder) VisitCopy(inst Copy) {
	if value, ok := f.resolve(inst.Source); ok {
		f.replace(inst.Result, value)
		return
	}
	f.out = append(f.out, inst)
}

func (f *folder) replace(result Name, value int64) {
	f.constants[result] = value
	f.out = append(f.out, Constant{Result: result, Value: value})
}

// resolve returns the compile-time value of an operand, if known
func (f *folder) resolve(operand Operand) (int64, bool) {
	if operand.IsLiteral() {
		return operand.Literal, true
	}
	value, ok := f.constants[operand.Ref]
	return value, ok
}

// Evaluate computes op on 64-bit two's complement integers. Overflow wraps
// and division truncates toward zero. Division by zero cannot be evaluated.
func Evaluate(op Op, left, right int64) (int64, bool) {
	switch op {
	case OpAdd:
		return left + right, true
	case OpSubtract:
		return left - right, true
	case OpMultiply:
		return left * right, true
	case OpDivide:
		if right == 0 {
			return 0, false
		}
		return left / right, true
	}
	return 0, false
}
