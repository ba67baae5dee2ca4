package ir

import (
	"fmt"

	"ssac/internal/ast"
)

// Builder converts AST to IR
type Builder struct {
	// SSA construction state, owned by a single Build call
	versioner    *Versioner
	instructions []Instruction

	// Source location of the statement or expression behind each result
	origins map[Name]ast.Position
}

// NewBuilder creates a new IR builder
func NewBuilder() *Builder {
	return &Builder{
		origins: make(map[Name]ast.Position),
	}
}

// Build lowers a program to IR. The first undefined variable aborts the build
// and no partial program is returned.
func (b *Builder) Build(program *ast.Program) (Program, error) {
	b.versioner = NewVersioner()
	b.instructions = []Instruction{}
	b.origins = make(map[Name]ast.Position)

	for _, stmt := range program.Statements {
		if err := b.buildStatement(stmt); err != nil {
			return Program{}, err
		}
	}

	log.Debugf("built %d instructions from %d statements", len(b.instructions), len(program.Statements))
	return Program{Instructions: b.instructions}, nil
}

// Origins maps every result of the last build to the source that produced it
func (b *Builder) Origins() map[Name]ast.Position {
	return b.origins
}

// Defined returns the variables that were defined when the last build stopped
func (b *Builder) Defined() []string {
	if b.versioner == nil {
		return nil
	}
	return b.versioner.Defined()
}

// buildStatement lowers a declaration or assignment. The right-hand side is
// lowered before the target is defined, so "z = z + 1" reads the old z.
func (b *Builder) buildStatement(stmt ast.Statement) error {
	target := stmt.Target()

	switch expr := ast.Unparen(stmt.Value()).(type) {
	case *ast.LiteralExpr:
		result := b.versioner.Define(target.Value)
		b.addInstruction(Constant{Result: result, Value: expr.Value}, stmt.NodePos())

	case *ast.IdentExpr:
		source, err := b.readVariable(expr)
		if err != nil {
			return err
		}
		result := b.versioner.Define(target.Value)
		b.addInstruction(Copy{Result: result, Source: Ref(source)}, stmt.NodePos())

	case *ast.BinaryExpr:
		op, left, right, err := b.buildOperands(expr)
		if err != nil {
			return err
		}
		result := b.versioner.Define(target.Value)
		b.addInstruction(Binary{Result: result, Op: op, Left: left, Right: right}, stmt.NodePos())

	default:
		return fmt.Errorf("unsupported expression %s at %d:%d", expr.NodeType(), expr.NodePos().Line, expr.NodePos().Column)
	}

	return nil
}

// buildOperands lowers both sides of a binary expression, left first
func (b *Builder) buildOperands(expr *ast.BinaryExpr) (Op, Operand, Operand, error) {
	op, ok := OpFromSymbol(expr.Op)
	if !ok {
		return 0, Operand{}, Operand{}, fmt.Errorf("unsupported operator %q at %d:%d", expr.Op, expr.Pos.Line, expr.Pos.Column)
	}

	left, err := b.buildOperand(expr.Left)
	if err != nil {
		return 0, Operand{}, Operand{}, err
	}

	right, err := b.buildOperand(expr.Right)
	if err != nil {
		return 0, Operand{}, Operand{}, err
	}

	return op, left, right, nil
}

// buildOperand lowers a nested expression. Nested binary expressions get a
// fresh temporary; literals stay inline.
func (b *Builder) buildOperand(expr ast.Expr) (Operand, error) {
	switch e := ast.Unparen(expr).(type) {
	case *ast.LiteralExpr:
		return Lit(e.Value), nil

	case *ast.IdentExpr:
		name, err := b.readVariable(e)
		if err != nil {
			return Operand{}, err
		}
		return Ref(name), nil

	case *ast.BinaryExpr:
		op, left, right, err := b.buildOperands(e)
		if err != nil {
			return Operand{}, err
		}
		result := b.versioner.FreshTemporary(TemporaryTag)
		b.addInstruction(Binary{Result: result, Op: op, Left: left, Right: right}, e.Pos)
		return Ref(result), nil

	default:
		return Operand{}, fmt.Errorf("unsupported expression %s at %d:%d", e.NodeType(), e.NodePos().Line, e.NodePos().Column)
	}
}

// readVariable reads the current value of a variable (SSA construction)
func (b *Builder) readVariable(ident *ast.IdentExpr) (Name, error) {
	name, err := b.versioner.Lookup(ident.Name)
	if err != nil {
		return Name{}, &UndefinedVariableError{Name: ident.Name, Pos: ident.Pos}
	}
	return name, nil
}

func (b *Builder) addInstruction(inst Instruction, pos ast.Position) {
	b.instructions = append(b.instructions, inst)
	b.origins[inst.GetResult()] = pos
}
