package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.appointy.com/graphqlcore/ast"
	"go.appointy.com/graphqlcore/graphql"
	"go.appointy.com/graphqlcore/schemabuilder"
	"go.appointy.com/graphqlcore/validation"
)

func noopResolver(graphql.ResolverContext) graphql.FieldFuture {
	return graphql.Ready(nil, nil)
}

func mustBuildRegistry(t *testing.T) *graphql.Registry {
	t.Helper()
	query := schemabuilder.NewObject("Query").
		Field(schemabuilder.NewField("me", graphql.NamedType("User"), noopResolver))
	user := schemabuilder.NewObject("User").
		Field(schemabuilder.NewField("name", graphql.NamedType("String").NonNull(), noopResolver))

	schema, err := schemabuilder.Build("Query").
		Register(query).
		Register(user).
		Finish()
	require.NoError(t, err)
	return schema.Registry
}

func field(name string, sel ...ast.Selection) *ast.Field {
	return &ast.Field{Name: name, SelectionSet: &ast.SelectionSet{Selections: sel}}
}

func queryDoc(selections ...ast.Selection) *ast.Document {
	return &ast.Document{
		Definitions: []ast.Definition{{
			Operation: &ast.OperationDefinition{
				Type:         ast.Query,
				SelectionSet: &ast.SelectionSet{Selections: selections},
			},
		}},
	}
}

// S2: selecting an unknown field on Query reports "Cannot query field ...".
func TestUnknownField(t *testing.T) {
	registry := mustBuildRegistry(t)
	doc := queryDoc(ast.Selection{Field: field("b")})

	errs := validation.Validate(registry, doc)
	require.Len(t, errs, 1)
	assert.Equal(t, `Cannot query field "b" on type "Query".`, errs[0].Message)
}

// An unknown field's nested selection set is never visited: it has no
// type to resolve its children against, so it must not cascade into one
// "Cannot query field" error per nested selection.
func TestUnknownFieldDoesNotCascadeIntoNestedSelections(t *testing.T) {
	registry := mustBuildRegistry(t)
	doc := queryDoc(ast.Selection{Field: field("unknownField",
		ast.Selection{Field: field("x")},
		ast.Selection{Field: field("y")},
	)})

	errs := validation.Validate(registry, doc)
	require.Len(t, errs, 1)
	assert.Equal(t, `Cannot query field "unknownField" on type "Query".`, errs[0].Message)
}

// S3: a fragment spread naming an undefined fragment is reported by the
// KnownFragmentNames rule, not by Walk itself.
func TestUnknownFragmentSpread(t *testing.T) {
	registry := mustBuildRegistry(t)
	doc := queryDoc(ast.Selection{
		FragmentSpread: &ast.FragmentSpread{FragmentName: "MissingFragment"},
	})

	errs := validation.Validate(registry, doc)
	require.Len(t, errs, 1)
	assert.Equal(t, `Unknown fragment "MissingFragment".`, errs[0].Message)
}

// S4: a mutation operation against a schema with no configured mutation
// root reports the fixed message, without attempting to resolve fields.
func TestMutationNotConfigured(t *testing.T) {
	registry := mustBuildRegistry(t)
	doc := &ast.Document{
		Definitions: []ast.Definition{{
			Operation: &ast.OperationDefinition{
				Type: ast.Mutation,
				SelectionSet: &ast.SelectionSet{
					Selections: []ast.Selection{{Field: field("doSomething")}},
				},
			},
		}},
	}

	errs := validation.Validate(registry, doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "Schema is not configured for mutations.", errs[0].Message)
}

func TestSubscriptionNotConfigured(t *testing.T) {
	registry := mustBuildRegistry(t)
	doc := &ast.Document{
		Definitions: []ast.Definition{{
			Operation: &ast.OperationDefinition{
				Type:         ast.Subscription,
				SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{{Field: field("updates")}}},
			},
		}},
	}

	errs := validation.Validate(registry, doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "Schema is not configured for subscriptions.", errs[0].Message)
}

func TestUnknownInlineFragmentTypeCondition(t *testing.T) {
	registry := mustBuildRegistry(t)
	doc := queryDoc(ast.Selection{
		InlineFragment: &ast.InlineFragment{
			TypeCondition: "Ghost",
			SelectionSet:  &ast.SelectionSet{},
		},
	})

	errs := validation.Validate(registry, doc)
	require.Len(t, errs, 1)
	assert.Equal(t, `Unknown type "Ghost".`, errs[0].Message)
}

func TestKnownFieldAndFragmentProduceNoErrors(t *testing.T) {
	registry := mustBuildRegistry(t)
	doc := &ast.Document{
		Definitions: []ast.Definition{
			{
				Operation: &ast.OperationDefinition{
					Type: ast.Query,
					SelectionSet: &ast.SelectionSet{
						Selections: []ast.Selection{
							{Field: field("me", ast.Selection{FragmentSpread: &ast.FragmentSpread{FragmentName: "Basic"}})},
						},
					},
				},
			},
			{
				Fragment: &ast.FragmentDefinition{
					Name:          "Basic",
					TypeCondition: "User",
					SelectionSet: &ast.SelectionSet{
						Selections: []ast.Selection{{Field: field("name")}},
					},
				},
			},
		},
	}

	errs := validation.Validate(registry, doc)
	assert.Empty(t, errs)
}
