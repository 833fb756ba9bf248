package schemabuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.appointy.com/graphqlcore/graphql"
)

func TestObjectFieldOverwriteInPlace(t *testing.T) {
	obj := NewObject("Widget").
		Field(NewField("a", graphql.NamedType("Int"), noopResolver)).
		Field(NewField("b", graphql.NamedType("Int"), noopResolver)).
		Field(NewField("a", graphql.NamedType("Int").NonNull(), noopResolver))

	query := NewObject("Query").Field(NewField("widget", graphql.NamedType("Widget"), noopResolver))

	schema, err := Build("Query").Register(query).Register(obj).Finish()
	require.NoError(t, err)

	widget, ok := schema.Registry.Lookup("Widget")
	require.True(t, ok)
	object := widget.(*graphql.ObjectType)

	assert.Equal(t, []string{"a", "b"}, object.Fields.Names(), "overwriting field a must keep its original position")
	af, _ := object.Fields.Get("a")
	assert.True(t, af.Type.IsNonNull(), "the second registration of field a should win")
}
