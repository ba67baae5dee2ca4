package ir

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssac/internal/ast"
)

// randomSource generates a program that only reads variables it has already
// defined, so it always builds
func randomSource(rng *rand.Rand) *ast.Program {
	variables := []string{"a", "b", "c", "bin", "x"}
	var defined []string
	var stmts []ast.Statement

	var expr func(depth int) ast.Expr
	expr = func(depth int) ast.Expr {
		choice := rng.Intn(4)
		if depth >= 3 {
			choice = rng.Intn(2)
		}
		switch {
		case choice == 0 || len(defined) == 0 && choice == 1:
			return lit(int64(rng.Intn(21) - 10))
		case choice == 1:
			return ident(defined[rng.Intn(len(defined))])
		case choice == 2:
			return paren(expr(depth + 1))
		default:
			ops := []string{"+", "-", "*", "/"}
			return bin(ops[rng.Intn(len(ops))], expr(depth+1), expr(depth+1))
		}
	}

	count := 1 + rng.Intn(12)
	for i := 0; i < count; i++ {
		target := variables[rng.Intn(len(variables))]
		value := expr(0)
		if rng.Intn(2) == 0 {
			stmts = append(stmts, let(target, value))
		} else {
			stmts = append(stmts, assign(target, value))
		}
		defined = append(defined, target)
	}

	return source(stmts...)
}

func TestRandomProgramsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		tree := randomSource(rng)

		raw, err := BuildProgram(tree)
		require.NoError(t, err, "program %d: %s", i, tree)
		require.NoError(t, Verify(raw), "raw program %d: %s", i, tree)

		folded := Fold(raw)
		require.NoError(t, Verify(folded))
		assert.Equal(t, raw.Names(), folded.Names())
		assert.True(t, Fold(folded).Equal(folded))

		eliminated := Eliminate(raw)
		require.NoError(t, Verify(eliminated))
		assert.LessOrEqual(t, eliminated.Len(), raw.Len())

		optimized := Optimize(raw)
		require.NoError(t, Verify(optimized))

		pipeline := NewOptimizationPipeline(PipelineOptions{
			Mode:   ModeFixedPoint,
			Roots:  RootsFinalVersions,
			Verify: true,
		})
		stable, err := pipeline.Run(raw)
		require.NoError(t, err)

		roots := FinalVersions(raw)
		assert.True(t, Eliminate(stable, roots...).Equal(stable), "program %d is not stable", i)
		assert.True(t, Fold(stable).Equal(stable), "program %d is not folded", i)

		stats := pipeline.Stats()
		assert.False(t, stats[len(stats)-1].Changed)
	}
}
