package graphql

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeRefString(t *testing.T) {
	cases := []struct {
		build func() TypeRef
		want  string
	}{
		{func() TypeRef { return NamedType("String") }, "String"},
		{func() TypeRef { return NamedType("String").NonNull() }, "String!"},
		{func() TypeRef { return NamedType("String").List() }, "[String]"},
		{func() TypeRef { return NamedType("String").NonNull().List() }, "[String!]"},
		{func() TypeRef { return NamedType("String").List().NonNull() }, "[String]!"},
		{func() TypeRef { return NamedType("String").NonNull().List().NonNull() }, "[String!]!"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.build().String())
	}
}

func TestTypeRefNonNullIdempotent(t *testing.T) {
	t1 := NamedType("Foo").NonNull()
	t2 := t1.NonNull()
	assert.True(t, t1.Equal(t2))
	assert.Equal(t, "Foo!", t2.String())
}

func TestTypeRefRoundTrip(t *testing.T) {
	forms := []string{
		"String",
		"String!",
		"[String]",
		"[String!]",
		"[String]!",
		"[String!]!",
		"[[Int]!]",
	}
	for _, f := range forms {
		parsed, err := ParseTypeRef(f)
		require.NoError(t, err, f)
		assert.Equal(t, f, parsed.String())

		reparsed, err := ParseTypeRef(parsed.String())
		require.NoError(t, err, f)
		if diff := cmp.Diff(parsed, reparsed, cmp.AllowUnexported(TypeRef{})); diff != "" {
			t.Errorf("round trip mismatch for %q (-parsed +reparsed):\n%s", f, diff)
		}
	}
}

func TestTypeRefParseErrors(t *testing.T) {
	for _, bad := range []string{"", "[String", "String]", "!String", "123Bad"} {
		_, err := ParseTypeRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestTypeRefBaseName(t *testing.T) {
	assert.Equal(t, "Foo", NamedType("Foo").NonNull().List().NonNull().BaseName())
}

func TestTypeRefEqual(t *testing.T) {
	a := NamedType("Foo").List().NonNull()
	b := NamedType("Foo").List().NonNull()
	c := NamedType("Bar").List().NonNull()
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
