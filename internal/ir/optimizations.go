package ir

import (
	"context"
	"fmt"
)

// OptimizationPass represents a single optimization transformation.
// Apply returns a new program and never modifies its argument.
type OptimizationPass interface {
	Name() string
	Apply(program Program) Program
	Description() string
}

// Mode selects how often the pass sequence runs
type Mode int

const (
	// ModeMinimal runs dead code elimination once, then constant folding once
	ModeMinimal Mode = iota
	// ModeFixedPoint repeats the sequence until a whole round changes nothing
	ModeFixedPoint
)

func (m Mode) String() string {
	switch m {
	case ModeMinimal:
		return "minimal"
	case ModeFixedPoint:
		return "fixed-point"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names produced by Mode.String
func ParseMode(s string) (Mode, error) {
	switch s {
	case "minimal":
		return ModeMinimal, nil
	case "fixed-point":
		return ModeFixedPoint, nil
	}
	return 0, fmt.Errorf("unknown optimization mode %q", s)
}

// RootPolicy decides which results dead code elimination treats as used
type RootPolicy int

const (
	// RootsNone treats only internally consumed results as used
	RootsNone RootPolicy = iota
	// RootsFinalVersions keeps the last version of every source variable
	RootsFinalVersions
)

func (r RootPolicy) String() string {
	switch r {
	case RootsNone:
		return "none"
	case RootsFinalVersions:
		return "final-versions"
	}
	return fmt.Sprintf("RootPolicy(%d)", int(r))
}

// ParseRootPolicy accepts the names produced by RootPolicy.String
func ParseRootPolicy(s string) (RootPolicy, error) {
	switch s {
	case "none":
		return RootsNone, nil
	case "final-versions":
		return RootsFinalVersions, nil
	}
	return 0, fmt.Errorf("unknown root policy %q", s)
}

// PipelineOptions configures an OptimizationPipeline. The zero value is the
// minimal pipeline without roots.
type PipelineOptions struct {
	Mode Mode

	// MaxRounds bounds ModeFixedPoint. Zero or less means 2n+1 rounds for a
	// program of n instructions, which is always enough to converge.
	MaxRounds int

	Roots RootPolicy

	// LiveOut lists variables whose final version is kept regardless of Roots
	LiveOut []string

	// Verify checks the SSA invariants on the input and after every pass
	Verify bool
}

// PassStat records one pass application
type PassStat struct {
	Pass    string
	Round   int
	Before  int
	After   int
	Changed bool
}

// OptimizationPipeline manages the sequence of optimization passes
type OptimizationPipeline struct {
	options PipelineOptions
	stats   []PassStat
}

// NewOptimizationPipeline creates a pipeline running dead code elimination
// followed by constant folding
func NewOptimizationPipeline(options PipelineOptions) *OptimizationPipeline {
	return &OptimizationPipeline{options: options}
}

// Options returns the configuration the pipeline was created with
func (p *OptimizationPipeline) Options() PipelineOptions {
	return p.options
}

// Stats returns the pass applications of the last run, in order
func (p *OptimizationPipeline) Stats() []PassStat {
	return p.stats
}

// Run executes all optimization passes on the IR program
func (p *OptimizationPipeline) Run(program Program) (Program, error) {
	return p.RunContext(context.Background(), program)
}

// RunContext is Run with cancellation. The context is only consulted between
// passes; a pass that has started always completes.
func (p *OptimizationPipeline) RunContext(ctx context.Context, program Program) (Program, error) {
	p.stats = nil

	if p.options.Verify {
		if err := Verify(program); err != nil {
			return Program{}, fmt.Errorf("invalid input program: %w", err)
		}
	}

	passes := p.schedule(p.roots(program))

	rounds := 1
	if p.options.Mode == ModeFixedPoint {
		rounds = p.options.MaxRounds
		if rounds <= 0 {
			rounds = 2*program.Len() + 1
		}
	}

	log.Debugf("running %d optimization passes (%s, up to %d rounds)", len(passes), p.options.Mode, rounds)

	for round := 1; round <= rounds; round++ {
		changed := false
		for _, pass := range passes {
			if err := ctx.Err(); err != nil {
				return Program{}, err
			}

			next := pass.Apply(program)
			stat := PassStat{
				Pass:    pass.Name(),
				Round:   round,
				Before:  program.Len(),
				After:   next.Len(),
				Changed: !next.Equal(program),
			}
			p.stats = append(p.stats, stat)
			log.Debugf("round %d: %s %d -> %d instructions (changed: %t)", round, stat.Pass, stat.Before, stat.After, stat.Changed)

			if p.options.Verify {
				if err := Verify(next); err != nil {
					return Program{}, fmt.Errorf("after %s: %w", pass.Name(), err)
				}
			}

			changed = changed || stat.Changed
			program = next
		}

		if p.options.Mode != ModeFixedPoint {
			break
		}
		if !changed {
			log.Debugf("reached fixed point after %d rounds", round)
			break
		}
		if round == rounds {
			log.Warningf("stopped after %d rounds without reaching a fixed point", rounds)
		}
	}

	return program, nil
}

func (p *OptimizationPipeline) schedule(roots []Name) []OptimizationPass {
	return []OptimizationPass{
		&DeadCodeElimination{Roots: roots},
		&ConstantFolding{},
	}
}

// roots resolves the root policy and LiveOut against the unoptimized program,
// so later rounds keep the same root set
func (p *OptimizationPipeline) roots(program Program) []Name {
	final := FinalVersions(program)

	var roots []Name
	if p.options.Roots == RootsFinalVersions {
		roots = append(roots, final...)
	}

	if len(p.options.LiveOut) > 0 {
		byBase := make(map[string]Name, len(final))
		for _, name := range final {
			byBase[name.Base] = name
		}
		for _, base := range p.options.LiveOut {
			name, ok := byBase[base]
			if !ok {
				log.Warningf("live-out variable '%s' is never defined", base)
				continue
			}
			roots = append(roots, name)
		}
	}

	return roots
}

// Optimize runs the minimal pipeline: dead code elimination without roots,
// then constant folding
func Optimize(program Program) Program {
	return Fold(Eliminate(program))
}
