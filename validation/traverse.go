package validation

import (
	"go.appointy.com/graphqlcore/ast"
	"go.appointy.com/graphqlcore/graphql"
)

// Walk drives v over doc, using ctx to track the current type and
// accumulate errors. It implements the traversal algorithm exactly: root
// type resolution and "not configured for mutations/subscriptions"
// reporting, field lookup against the current type with "Cannot query
// field" reporting, fragment spread delegation, inline fragment type
// conditions, and argument/directive visitation with no recursion into
// argument values.
func Walk(v Visitor, ctx *Context, doc *ast.Document) {
	v.EnterDocument(ctx, doc)
	for _, d := range doc.Definitions {
		switch {
		case d.Operation != nil:
			walkOperationDefinition(v, ctx, d.Operation)
		case d.Fragment != nil:
			walkTopLevelFragmentDefinition(v, ctx, d.Fragment)
		}
	}
	v.ExitDocument(ctx, doc)
}

func walkTopLevelFragmentDefinition(v Visitor, ctx *Context, frag *ast.FragmentDefinition) {
	ty, ok := ctx.Registry.Lookup(frag.TypeCondition)
	if !ok {
		ctx.ReportError([]ast.Pos{frag.Pos}, "Unknown type %q.", frag.TypeCondition)
		return
	}
	ctx.WithType(ty, func() {
		walkFragmentDefinition(v, ctx, frag)
	})
}

func walkOperationDefinition(v Visitor, ctx *Context, op *ast.OperationDefinition) {
	v.EnterOperationDefinition(ctx, op)
	switch op.Type {
	case ast.Query:
		// A Registry produced by a successful schemabuilder.Finish always
		// has a query root type; this branch cannot fail in practice.
		if qt, ok := ctx.Registry.QueryType(); ok {
			ctx.WithType(qt, func() {
				walkOperationBody(v, ctx, op)
			})
		}
	case ast.Mutation:
		if mt, ok := ctx.Registry.MutationType(); ok {
			ctx.WithType(mt, func() {
				walkOperationBody(v, ctx, op)
			})
		} else {
			ctx.ReportError([]ast.Pos{op.Pos}, "Schema is not configured for mutations.")
		}
	case ast.Subscription:
		if st, ok := ctx.Registry.SubscriptionType(); ok {
			ctx.WithType(st, func() {
				walkOperationBody(v, ctx, op)
			})
		} else {
			ctx.ReportError([]ast.Pos{op.Pos}, "Schema is not configured for subscriptions.")
		}
	}
	v.ExitOperationDefinition(ctx, op)
}

func walkOperationBody(v Visitor, ctx *Context, op *ast.OperationDefinition) {
	walkVariableDefinitions(v, ctx, op.VariableDefinitions)
	walkDirectives(v, ctx, op.Directives)
	walkSelectionSet(v, ctx, op.SelectionSet)
}

func walkVariableDefinitions(v Visitor, ctx *Context, defs []*ast.VariableDefinition) {
	for _, d := range defs {
		v.EnterVariableDefinition(ctx, d)
		v.ExitVariableDefinition(ctx, d)
	}
}

func walkDirectives(v Visitor, ctx *Context, directives []*ast.Directive) {
	for _, d := range directives {
		v.EnterDirective(ctx, d)
		walkArguments(v, ctx, d.Pos, d.Arguments)
		v.ExitDirective(ctx, d)
	}
}

// walkArguments fires enter/exit back to back for each (name, value) pair;
// it never recurses into value (e.g. into a List or Object literal's
// elements). A rule that needs to inspect inside a complex argument value
// does so itself from within EnterArgument.
func walkArguments(v Visitor, ctx *Context, pos ast.Pos, args []ast.Argument) {
	for _, a := range args {
		v.EnterArgument(ctx, pos, a.Name, a.Value)
		v.ExitArgument(ctx, pos, a.Name, a.Value)
	}
}

func walkSelectionSet(v Visitor, ctx *Context, ss *ast.SelectionSet) {
	if ss == nil || len(ss.Selections) == 0 {
		return
	}
	v.EnterSelectionSet(ctx, ss)
	for i := range ss.Selections {
		walkSelection(v, ctx, &ss.Selections[i])
	}
	v.ExitSelectionSet(ctx, ss)
}

func walkSelection(v Visitor, ctx *Context, s *ast.Selection) {
	v.EnterSelection(ctx, s)
	switch {
	case s.Field != nil:
		walkFieldSelection(v, ctx, s.Field)
	case s.FragmentSpread != nil:
		walkFragmentSpread(v, ctx, s.FragmentSpread)
	case s.InlineFragment != nil:
		walkInlineFragmentSelection(v, ctx, s.InlineFragment)
	}
	v.ExitSelection(ctx, s)
}

func walkFieldSelection(v Visitor, ctx *Context, field *ast.Field) {
	current := ctx.CurrentType()
	mf, ok := graphql.FieldByName(current, field.Name)
	if !ok {
		ctx.ReportError([]ast.Pos{field.Pos}, "Cannot query field %q on type %q.", field.Name, graphql.TypeName(current))
		return
	}
	base, ok := ctx.Registry.BaseType(mf.Type)
	if !ok {
		// The schema builder's closure check guarantees every field type
		// resolves; this is unreachable against a finalized Registry.
		return
	}
	ctx.WithType(base, func() {
		walkField(v, ctx, field)
	})
}

func walkField(v Visitor, ctx *Context, field *ast.Field) {
	v.EnterField(ctx, field)
	walkArguments(v, ctx, field.Pos, field.Arguments)
	walkDirectives(v, ctx, field.Directives)
	walkSelectionSet(v, ctx, field.SelectionSet)
	v.ExitField(ctx, field)
}

func walkFragmentSpread(v Visitor, ctx *Context, fs *ast.FragmentSpread) {
	v.EnterFragmentSpread(ctx, fs)
	walkDirectives(v, ctx, fs.Directives)
	if frag, ok := ctx.Fragment(fs.FragmentName); ok {
		walkSelectionSet(v, ctx, frag.SelectionSet)
	}
	// An unresolved spread is not reported here; see the KnownFragmentNames
	// rule, which runs as part of the default chain.
	v.ExitFragmentSpread(ctx, fs)
}

func walkInlineFragmentSelection(v Visitor, ctx *Context, inf *ast.InlineFragment) {
	if inf.TypeCondition == "" {
		walkInlineFragment(v, ctx, inf)
		return
	}
	ty, ok := ctx.Registry.Lookup(inf.TypeCondition)
	if !ok {
		ctx.ReportError([]ast.Pos{inf.Pos}, "Unknown type %q.", inf.TypeCondition)
		walkInlineFragment(v, ctx, inf)
		return
	}
	ctx.WithType(ty, func() {
		walkInlineFragment(v, ctx, inf)
	})
}

func walkInlineFragment(v Visitor, ctx *Context, inf *ast.InlineFragment) {
	v.EnterInlineFragment(ctx, inf)
	walkDirectives(v, ctx, inf.Directives)
	walkSelectionSet(v, ctx, inf.SelectionSet)
	v.ExitInlineFragment(ctx, inf)
}

func walkFragmentDefinition(v Visitor, ctx *Context, frag *ast.FragmentDefinition) {
	v.EnterFragmentDefinition(ctx, frag)
	walkDirectives(v, ctx, frag.Directives)
	walkSelectionSet(v, ctx, frag.SelectionSet)
	v.ExitFragmentDefinition(ctx, frag)
}
