package ir

// DeadCodeElimination removes instructions whose results are never used
type DeadCodeElimination struct {
	// Roots are results that count as used even without an internal consumer
	Roots []Name
}

func (dce *DeadCodeElimination) Name() string {
	return "Dead Code Elimination"
}

func (dce *DeadCodeElimination) Description() string {
	return "Removes instructions whose results are not consumed by a live instruction"
}

func (dce *DeadCodeElimination) Apply(program Program) Program {
	return Eliminate(program, dce.Roots...)
}

// Eliminate removes every instruction whose result is not an operand of some
// instruction in program and is not one of roots. Without roots nothing
// outside the program counts as a consumer, so the final instruction of a
// non-empty program is always removed.
//
// Liveness is decided against the input only: an instruction whose sole
// consumer is removed in the same sweep survives until the next one.
// ModeFixedPoint repeats the sweep to remove such chains.
//
// The result is an order-preserving subsequence of program.
func Eliminate(program Program, roots ...Name) Program {
	used := make(map[Name]bool, len(roots))
	for _, root := range roots {
		used[root] = true
	}

	// Operands only point backwards, so one sweep from the end has seen every
	// consumer of an instruction before reaching the instruction itself.
	keep := make([]bool, len(program.Instructions))
	kept := 0
	for i := len(program.Instructions) - 1; i >= 0; i-- {
		inst := program.Instructions[i]
		for _, operand := range inst.GetOperands() {
			if operand.IsRef() {
				used[operand.Ref] = true
			}
		}
		if used[inst.GetResult()] {
			keep[i] = true
			kept++
		}
	}

	out := make([]Instruction, 0, kept)
	for i, inst := range program.Instructions {
		if keep[i] {
			out = append(out, inst)
		}
	}
	return Program{Instructions: out}
}

// FinalVersions returns the highest version of every source variable defined
// in program, in definition order. Temporaries are never included.
func FinalVersions(program Program) []Name {
	latest := make(map[string]Name)
	var order []string
	for _, inst := range program.Instructions {
		name := inst.GetResult()
		if name.Temp {
			continue
		}
		current, seen := latest[name.Base]
		if !seen {
			order = append(order, name.Base)
		}
		if !seen || name.Version > current.Version {
			latest[name.Base] = name
		}
	}

	names := make([]Name, 0, len(order))
	for _, base := range order {
		names = append(names, latest[base])
	}
	return names
}
