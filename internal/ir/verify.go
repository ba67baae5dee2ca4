package ir

// Verify checks that every name is assigned once and that every reference
// points at a strictly earlier instruction. The first violation is returned
// as an *InvariantError.
func Verify(program Program) error {
	firstDefinition := make(map[Name]int, len(program.Instructions))
	for i, inst := range program.Instructions {
		if _, ok := firstDefinition[inst.GetResult()]; !ok {
			firstDefinition[inst.GetResult()] = i
		}
	}

	defined := make(map[Name]bool, len(program.Instructions))
	for i, inst := range program.Instructions {
		for _, operand := range inst.GetOperands() {
			if !operand.IsRef() || defined[operand.Ref] {
				continue
			}
			violation := DanglingReference
			if _, later := firstDefinition[operand.Ref]; later {
				violation = ForwardReference
			}
			return &InvariantError{Index: i, Name: operand.Ref, Violation: violation}
		}

		result := inst.GetResult()
		if defined[result] {
			return &InvariantError{Index: i, Name: result, Violation: DuplicateResult}
		}
		defined[result] = true
	}

	return nil
}
