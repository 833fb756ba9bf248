package schemabuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.appointy.com/graphqlcore/graphql"
)

func TestEnumItemOverwriteInPlace(t *testing.T) {
	myEnum := NewEnum("MyEnum").
		Item("A").
		Item("B").
		ItemValue(NewEnumItem("A").Description("the first one"))

	query := NewObject("Query").
		Field(NewField("e", graphql.NamedType("MyEnum"), noopResolver))

	schema, err := Build("Query").Register(query).Register(myEnum).Finish()
	require.NoError(t, err)

	et, ok := schema.Registry.Lookup("MyEnum")
	require.True(t, ok)
	enumType := et.(*graphql.EnumType)

	assert.Equal(t, []string{"A", "B"}, enumType.Values.Names(), "overwriting item A must keep its original position")
	a, _ := enumType.Values.Get("A")
	assert.Equal(t, "the first one", a.Description)
}

func TestEnumItemDeprecation(t *testing.T) {
	myEnum := NewEnum("MyEnum").
		Item("A").
		ItemValue(NewEnumItem("B").Deprecated("use A instead"))

	query := NewObject("Query").
		Field(NewField("e", graphql.NamedType("MyEnum"), noopResolver))

	schema, err := Build("Query").Register(query).Register(myEnum).Finish()
	require.NoError(t, err)

	et, _ := schema.Registry.Lookup("MyEnum")
	enumType := et.(*graphql.EnumType)

	b, ok := enumType.Values.Get("B")
	require.True(t, ok)
	assert.True(t, b.Deprecation.Deprecated)
	assert.Equal(t, "use A instead", b.Deprecation.Reason)

	a, _ := enumType.Values.Get("A")
	assert.False(t, a.Deprecation.Deprecated)
}
