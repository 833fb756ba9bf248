package validation

import (
	"go.appointy.com/graphqlcore/ast"
	"go.appointy.com/graphqlcore/graphql"
)

// Validate walks doc against registry using the default rule chain and
// returns every collected error. This is the convenience entry point
// connecting a finalized Registry, a parsed Document, and a visitor chain.
func Validate(registry *graphql.Registry, doc *ast.Document) []*graphql.RuleError {
	return ValidateWith(registry, doc, Default())
}

// ValidateWith walks doc against registry using v as the rule chain,
// instead of the built-in default.
func ValidateWith(registry *graphql.Registry, doc *ast.Document, v Visitor) []*graphql.RuleError {
	ctx := NewContext(registry, doc)
	Walk(v, ctx, doc)
	return ctx.Errors
}
