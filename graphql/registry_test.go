package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySeedsBuiltinScalars(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"String", "Int", "Float", "Boolean", "ID"} {
		typ, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, KindScalar, typ.Kind())
	}
}

func TestRegistryRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	obj := NewObjectType("Foo", "", NewOrderedMap[*MetaField](), nil)
	require.NoError(t, r.Register(obj))

	err := r.Register(NewObjectType("Foo", "", NewOrderedMap[*MetaField](), nil))
	require.Error(t, err)
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, ErrDuplicateType, serr.Kind)
}

func TestFieldByNameDispatchesAcrossObjectAndInterface(t *testing.T) {
	fields := NewOrderedMap[*MetaField]()
	fields.Set("name", &MetaField{Name: "name", Type: NamedType("String")})

	obj := NewObjectType("Person", "", fields, nil)
	_, ok := FieldByName(obj, "name")
	assert.True(t, ok)
	_, ok = FieldByName(obj, "missing")
	assert.False(t, ok)

	iface := NewInterfaceType("Named", "", fields, nil)
	_, ok = FieldByName(iface, "name")
	assert.True(t, ok)

	enum := NewEnumType("Color", "", NewOrderedMap[*MetaEnumValue]())
	_, ok = FieldByName(enum, "name")
	assert.False(t, ok, "non-field-bearing types never resolve a field")
}

func TestEnumHasValue(t *testing.T) {
	values := NewOrderedMap[*MetaEnumValue]()
	values.Set("A", &MetaEnumValue{Name: "A"})
	values.Set("B", &MetaEnumValue{Name: "B"})

	r := NewRegistry()
	require.NoError(t, r.Register(NewEnumType("MyEnum", "", values)))

	assert.True(t, r.EnumHasValue("MyEnum", "A"))
	assert.False(t, r.EnumHasValue("MyEnum", "C"))
	assert.False(t, r.EnumHasValue("Missing", "A"))
}
