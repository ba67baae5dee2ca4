package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadCodeEliminationPass(t *testing.T) {
	pass := &DeadCodeElimination{}

	assert.Equal(t, "Dead Code Elimination", pass.Name())
	assert.NotEmpty(t, pass.Description())

	rooted := &DeadCodeElimination{Roots: []Name{v("z", 2)}}
	assert.True(t, rooted.Apply(scenarioRaw()).Equal(Eliminate(scenarioRaw(), v("z", 2))))
}

func TestEliminateScenario(t *testing.T) {
	raw := scenarioRaw()
	eliminated := Eliminate(raw)

	expected := NewProgram(
		Constant{Result: v("x", 1), Value: 3},
		Binary{Result: v("y", 1), Op: OpAdd, Left: Ref(v("x", 1)), Right: Lit(1)},
		Binary{Result: tmp(1), Op: OpMultiply, Left: Ref(v("x", 1)), Right: Ref(v("y", 1))},
		Binary{Result: v("z", 1), Op: OpDivide, Left: Ref(tmp(1)), Right: Lit(2)},
	)
	assert.True(t, eliminated.Equal(expected), "got %s", eliminated)
	assert.True(t, raw.Equal(scenarioRaw()))
}

func TestEliminateRemovesFinalInstruction(t *testing.T) {
	program := NewProgram(
		Constant{Result: v("a", 1), Value: 1},
	)
	assert.Equal(t, 0, Eliminate(program).Len())
	assert.Equal(t, 0, Eliminate(Program{}).Len())
}

func TestEliminateWithRoots(t *testing.T) {
	eliminated := Eliminate(scenarioRaw(), v("z", 2))

	assert.Equal(t, []string{"x.1", "y.1", "bin.1", "z.1", "z.2"}, namesOf(eliminated))
	assert.NoError(t, Verify(eliminated))
}

func TestEliminateSubsequence(t *testing.T) {
	raw := scenarioRaw()
	eliminated := Eliminate(raw)

	require.LessOrEqual(t, eliminated.Len(), raw.Len())

	// every survivor appears in the input, in the same relative order
	next := 0
	for _, inst := range eliminated.Instructions {
		for next < raw.Len() && raw.Instructions[next] != inst {
			next++
		}
		require.Less(t, next, raw.Len(), "%s is not part of the input in order", inst)
		next++
	}
}

func TestEliminateKeepsOperandsOfSurvivors(t *testing.T) {
	program := NewProgram(
		Constant{Result: v("a", 1), Value: 1},
		Copy{Result: v("b", 1), Source: Ref(v("a", 1))},
		Copy{Result: v("c", 1), Source: Ref(v("b", 1))},
		Copy{Result: v("d", 1), Source: Ref(v("c", 1))},
	)

	once := Eliminate(program)
	assert.Equal(t, []string{"a.1", "b.1", "c.1"}, namesOf(once))
	assert.NoError(t, Verify(once))
}

func TestEliminateIdempotentOnStablePrograms(t *testing.T) {
	roots := []Name{v("r", 1)}
	program := NewProgram(
		Constant{Result: v("a", 1), Value: 1},
		Constant{Result: v("dead", 1), Value: 2},
		Binary{Result: v("r", 1), Op: OpAdd, Left: Ref(v("a", 1)), Right: Lit(1)},
	)

	once := Eliminate(program, roots...)
	twice := Eliminate(once, roots...)
	assert.True(t, twice.Equal(once), "got %s then %s", once, twice)
	assert.Equal(t, []string{"a.1", "r.1"}, namesOf(once))
}

func TestFinalVersions(t *testing.T) {
	assert.Equal(t,
		[]Name{v("x", 1), v("unused", 1), v("y", 1), v("z", 2)},
		FinalVersions(scenarioRaw()))

	assert.Empty(t, FinalVersions(Program{}))
}

func TestFinalVersionsSkipsTemporaries(t *testing.T) {
	program := NewProgram(
		Constant{Result: v("bin", 1), Value: 1},
		Binary{Result: Name{Base: "bin", Version: 2, Temp: true}, Op: OpAdd, Left: Ref(v("bin", 1)), Right: Lit(1)},
		Copy{Result: v("x", 1), Source: Ref(Name{Base: "bin", Version: 2, Temp: true})},
	)

	assert.Equal(t, []Name{v("bin", 1), v("x", 1)}, FinalVersions(program))
}
