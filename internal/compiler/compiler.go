package compiler

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"ssac/internal/ast"
	"ssac/internal/ir"
	"ssac/internal/parser"
)

var log = commonlog.GetLogger("ssac.compiler")

// Unit is one compilation unit: a source file and its contents
type Unit struct {
	Path   string
	Source string
}

// Options configures a compilation
type Options struct {
	Pipeline ir.PipelineOptions
}

// Result holds every stage of a successful compilation
type Result struct {
	Unit      Unit
	AST       *ast.Program
	Raw       ir.Program
	Optimized ir.Program
	Stats     []ir.PassStat

	// Origins maps each raw result name to the source that produced it
	Origins map[ir.Name]ast.Position
}

// SyntaxErrors is returned when a unit does not parse
type SyntaxErrors struct {
	Path   string
	Errors []parser.ParseError
}

func (e *SyntaxErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	messages := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		messages[i] = err.Error()
	}
	return fmt.Sprintf("%d errors in %s:\n%s", len(e.Errors), e.Path, strings.Join(messages, "\n"))
}

// UnitError attributes a compilation error to the unit that produced it
type UnitError struct {
	Unit Unit
	Err  error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Unit.Path, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

// Compile parses, builds and optimizes one unit. The context is checked
// between stages only. Build errors such as *ir.UndefinedVariableError are
// returned unwrapped.
func Compile(ctx context.Context, unit Unit, options Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	program, parseErrors := parser.ParseSource(unit.Path, unit.Source)
	if len(parseErrors) > 0 {
		return nil, &SyntaxErrors{Path: unit.Path, Errors: parseErrors}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	builder := ir.NewBuilder()
	raw, err := builder.Build(program)
	if err != nil {
		return nil, err
	}

	pipeline := ir.NewOptimizationPipeline(options.Pipeline)
	optimized, err := pipeline.RunContext(ctx, raw)
	if err != nil {
		return nil, err
	}

	log.Infof("compiled %s: %d instructions, %d after optimization", unit.Path, raw.Len(), optimized.Len())

	return &Result{
		Unit:      unit,
		AST:       program,
		Raw:       raw,
		Optimized: optimized,
		Stats:     pipeline.Stats(),
		Origins:   builder.Origins(),
	}, nil
}

// CompileAll compiles independent units in parallel. Results are in the
// order of units. The first failure cancels the units still pending and is
// returned as a *UnitError.
func CompileAll(ctx context.Context, units []Unit, options Options) ([]*Result, error) {
	results := make([]*Result, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, unit := range units {
		i, unit := i, unit

		g.Go(func() error {
			result, err := Compile(gctx, unit, options)
			if err != nil {
				return &UnitError{Unit: unit, Err: err}
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
