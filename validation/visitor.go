package validation

import "go.appointy.com/graphqlcore/ast"

// Visitor is the hook set a validation rule implements. Every hook has a
// paired enter/exit call, fired as Walk descends into and back out of the
// corresponding document node. Rules embed Base and override only the
// hooks they care about, rather than implementing all eleven pairs.
type Visitor interface {
	EnterDocument(ctx *Context, doc *ast.Document)
	ExitDocument(ctx *Context, doc *ast.Document)

	EnterOperationDefinition(ctx *Context, op *ast.OperationDefinition)
	ExitOperationDefinition(ctx *Context, op *ast.OperationDefinition)

	EnterFragmentDefinition(ctx *Context, f *ast.FragmentDefinition)
	ExitFragmentDefinition(ctx *Context, f *ast.FragmentDefinition)

	EnterVariableDefinition(ctx *Context, v *ast.VariableDefinition)
	ExitVariableDefinition(ctx *Context, v *ast.VariableDefinition)

	EnterDirective(ctx *Context, d *ast.Directive)
	ExitDirective(ctx *Context, d *ast.Directive)

	EnterArgument(ctx *Context, pos ast.Pos, name string, value ast.Value)
	ExitArgument(ctx *Context, pos ast.Pos, name string, value ast.Value)

	EnterSelectionSet(ctx *Context, ss *ast.SelectionSet)
	ExitSelectionSet(ctx *Context, ss *ast.SelectionSet)

	EnterSelection(ctx *Context, s *ast.Selection)
	ExitSelection(ctx *Context, s *ast.Selection)

	EnterField(ctx *Context, f *ast.Field)
	ExitField(ctx *Context, f *ast.Field)

	EnterFragmentSpread(ctx *Context, fs *ast.FragmentSpread)
	ExitFragmentSpread(ctx *Context, fs *ast.FragmentSpread)

	EnterInlineFragment(ctx *Context, inf *ast.InlineFragment)
	ExitInlineFragment(ctx *Context, inf *ast.InlineFragment)
}

// Base implements every Visitor hook as a no-op. Embed it in a rule type to
// get defaults for the hooks the rule doesn't override.
type Base struct{}

func (Base) EnterDocument(*Context, *ast.Document) {}
func (Base) ExitDocument(*Context, *ast.Document)  {}

func (Base) EnterOperationDefinition(*Context, *ast.OperationDefinition) {}
func (Base) ExitOperationDefinition(*Context, *ast.OperationDefinition)  {}

func (Base) EnterFragmentDefinition(*Context, *ast.FragmentDefinition) {}
func (Base) ExitFragmentDefinition(*Context, *ast.FragmentDefinition)  {}

func (Base) EnterVariableDefinition(*Context, *ast.VariableDefinition) {}
func (Base) ExitVariableDefinition(*Context, *ast.VariableDefinition)  {}

func (Base) EnterDirective(*Context, *ast.Directive) {}
func (Base) ExitDirective(*Context, *ast.Directive)  {}

func (Base) EnterArgument(*Context, ast.Pos, string, ast.Value) {}
func (Base) ExitArgument(*Context, ast.Pos, string, ast.Value)  {}

func (Base) EnterSelectionSet(*Context, *ast.SelectionSet) {}
func (Base) ExitSelectionSet(*Context, *ast.SelectionSet)  {}

func (Base) EnterSelection(*Context, *ast.Selection) {}
func (Base) ExitSelection(*Context, *ast.Selection)  {}

func (Base) EnterField(*Context, *ast.Field) {}
func (Base) ExitField(*Context, *ast.Field)  {}

func (Base) EnterFragmentSpread(*Context, *ast.FragmentSpread) {}
func (Base) ExitFragmentSpread(*Context, *ast.FragmentSpread)  {}

func (Base) EnterInlineFragment(*Context, *ast.InlineFragment) {}
func (Base) ExitInlineFragment(*Context, *ast.InlineFragment)  {}

// Nil is the empty end of a visitor chain: every hook is a no-op.
type Nil struct{ Base }

// With builds a two-element chain with v in front of Nil.
func (Nil) With(v Visitor) Cons {
	return Cons{Head: v, Tail: Nil{}}
}

// Cons composes two visitors so every hook fires on Head, then on Tail, in
// that order. Chains of more than two visitors nest Cons
// right-associatively: Cons{A, Cons{B, Cons{C, Nil{}}}} fires A, then B,
// then C on every hook.
type Cons struct {
	Head Visitor
	Tail Visitor
}

// With builds a new chain with v in front of c.
func (c Cons) With(v Visitor) Cons {
	return Cons{Head: v, Tail: c}
}

// Chain folds visitors into a single right-associative Cons chain, firing
// each in the order given.
func Chain(visitors ...Visitor) Visitor {
	var v Visitor = Nil{}
	for i := len(visitors) - 1; i >= 0; i-- {
		v = Cons{Head: visitors[i], Tail: v}
	}
	return v
}

func (c Cons) EnterDocument(ctx *Context, doc *ast.Document) {
	c.Head.EnterDocument(ctx, doc)
	c.Tail.EnterDocument(ctx, doc)
}
func (c Cons) ExitDocument(ctx *Context, doc *ast.Document) {
	c.Head.ExitDocument(ctx, doc)
	c.Tail.ExitDocument(ctx, doc)
}

func (c Cons) EnterOperationDefinition(ctx *Context, op *ast.OperationDefinition) {
	c.Head.EnterOperationDefinition(ctx, op)
	c.Tail.EnterOperationDefinition(ctx, op)
}
func (c Cons) ExitOperationDefinition(ctx *Context, op *ast.OperationDefinition) {
	c.Head.ExitOperationDefinition(ctx, op)
	c.Tail.ExitOperationDefinition(ctx, op)
}

func (c Cons) EnterFragmentDefinition(ctx *Context, f *ast.FragmentDefinition) {
	c.Head.EnterFragmentDefinition(ctx, f)
	c.Tail.EnterFragmentDefinition(ctx, f)
}
func (c Cons) ExitFragmentDefinition(ctx *Context, f *ast.FragmentDefinition) {
	c.Head.ExitFragmentDefinition(ctx, f)
	c.Tail.ExitFragmentDefinition(ctx, f)
}

func (c Cons) EnterVariableDefinition(ctx *Context, v *ast.VariableDefinition) {
	c.Head.EnterVariableDefinition(ctx, v)
	c.Tail.EnterVariableDefinition(ctx, v)
}
func (c Cons) ExitVariableDefinition(ctx *Context, v *ast.VariableDefinition) {
	c.Head.ExitVariableDefinition(ctx, v)
	c.Tail.ExitVariableDefinition(ctx, v)
}

func (c Cons) EnterDirective(ctx *Context, d *ast.Directive) {
	c.Head.EnterDirective(ctx, d)
	c.Tail.EnterDirective(ctx, d)
}
func (c Cons) ExitDirective(ctx *Context, d *ast.Directive) {
	c.Head.ExitDirective(ctx, d)
	c.Tail.ExitDirective(ctx, d)
}

func (c Cons) EnterArgument(ctx *Context, pos ast.Pos, name string, value ast.Value) {
	c.Head.EnterArgument(ctx, pos, name, value)
	c.Tail.EnterArgument(ctx, pos, name, value)
}
func (c Cons) ExitArgument(ctx *Context, pos ast.Pos, name string, value ast.Value) {
	c.Head.ExitArgument(ctx, pos, name, value)
	c.Tail.ExitArgument(ctx, pos, name, value)
}

func (c Cons) EnterSelectionSet(ctx *Context, ss *ast.SelectionSet) {
	c.Head.EnterSelectionSet(ctx, ss)
	c.Tail.EnterSelectionSet(ctx, ss)
}
func (c Cons) ExitSelectionSet(ctx *Context, ss *ast.SelectionSet) {
	c.Head.ExitSelectionSet(ctx, ss)
	c.Tail.ExitSelectionSet(ctx, ss)
}

func (c Cons) EnterSelection(ctx *Context, s *ast.Selection) {
	c.Head.EnterSelection(ctx, s)
	c.Tail.EnterSelection(ctx, s)
}
func (c Cons) ExitSelection(ctx *Context, s *ast.Selection) {
	c.Head.ExitSelection(ctx, s)
	c.Tail.ExitSelection(ctx, s)
}

func (c Cons) EnterField(ctx *Context, f *ast.Field) {
	c.Head.EnterField(ctx, f)
	c.Tail.EnterField(ctx, f)
}
func (c Cons) ExitField(ctx *Context, f *ast.Field) {
	c.Head.ExitField(ctx, f)
	c.Tail.ExitField(ctx, f)
}

func (c Cons) EnterFragmentSpread(ctx *Context, fs *ast.FragmentSpread) {
	c.Head.EnterFragmentSpread(ctx, fs)
	c.Tail.EnterFragmentSpread(ctx, fs)
}
func (c Cons) ExitFragmentSpread(ctx *Context, fs *ast.FragmentSpread) {
	c.Head.ExitFragmentSpread(ctx, fs)
	c.Tail.ExitFragmentSpread(ctx, fs)
}

func (c Cons) EnterInlineFragment(ctx *Context, inf *ast.InlineFragment) {
	c.Head.EnterInlineFragment(ctx, inf)
	c.Tail.EnterInlineFragment(ctx, inf)
}
func (c Cons) ExitInlineFragment(ctx *Context, inf *ast.InlineFragment) {
	c.Head.ExitInlineFragment(ctx, inf)
	c.Tail.ExitInlineFragment(ctx, inf)
}
