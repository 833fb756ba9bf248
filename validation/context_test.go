package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.appointy.com/graphqlcore/ast"
	"go.appointy.com/graphqlcore/graphql"
)

func TestContextTypeStack(t *testing.T) {
	registry := graphql.NewRegistry()
	ctx := NewContext(registry, &ast.Document{})

	assert.Nil(t, ctx.CurrentType())
	assert.Nil(t, ctx.ParentType())

	outer := graphql.NewObjectType("Outer", "", graphql.NewOrderedMap[*graphql.MetaField](), nil)
	inner := graphql.NewObjectType("Inner", "", graphql.NewOrderedMap[*graphql.MetaField](), nil)

	ctx.WithType(outer, func() {
		assert.Equal(t, "Outer", graphql.TypeName(ctx.CurrentType()))
		assert.Nil(t, ctx.ParentType())

		ctx.WithType(inner, func() {
			assert.Equal(t, "Inner", graphql.TypeName(ctx.CurrentType()))
			assert.Equal(t, "Outer", graphql.TypeName(ctx.ParentType()))
		})

		assert.Equal(t, "Outer", graphql.TypeName(ctx.CurrentType()))
	})

	assert.Nil(t, ctx.CurrentType())
}

func TestContextFragmentIndex(t *testing.T) {
	frag := &ast.FragmentDefinition{Name: "F"}
	doc := &ast.Document{Definitions: []ast.Definition{{Fragment: frag}}}
	ctx := NewContext(graphql.NewRegistry(), doc)

	assert.True(t, ctx.IsKnownFragment("F"))
	assert.False(t, ctx.IsKnownFragment("Missing"))

	got, ok := ctx.Fragment("F")
	require.True(t, ok)
	assert.Same(t, frag, got)
}

func TestReportErrorAccumulates(t *testing.T) {
	ctx := NewContext(graphql.NewRegistry(), &ast.Document{})
	ctx.ReportError([]ast.Pos{{Line: 1, Column: 2}}, "bad %s", "thing")
	require.Len(t, ctx.Errors, 1)
	assert.Equal(t, "bad thing", ctx.Errors[0].Message)
	assert.Equal(t, graphql.Location{Line: 1, Column: 2}, ctx.Errors[0].Locations[0])
}
