package validation

import "go.appointy.com/graphqlcore/ast"

// KnownFragmentNames reports a fragment spread that names a fragment not
// defined anywhere in the document. Walk's own fragment-spread handling
// silently skips an unresolved spread's selection set; this rule is what
// turns that into a reported error.
type KnownFragmentNames struct{ Base }

func (KnownFragmentNames) EnterFragmentSpread(ctx *Context, fs *ast.FragmentSpread) {
	if !ctx.IsKnownFragment(fs.FragmentName) {
		ctx.ReportError([]ast.Pos{fs.Pos}, "Unknown fragment %q.", fs.FragmentName)
	}
}

// Default returns the built-in rule chain. A host wiring its own
// validation can extend it with Chain(append(extra, Default())...) or
// build an entirely custom chain with Chain directly.
func Default() Visitor {
	return Chain(
		KnownFragmentNames{},
	)
}
