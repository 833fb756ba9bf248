package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, `"hi"`, String("hi").String())
	assert.Equal(t, "A", Enum("A").String())
	assert.Equal(t, "$var", Variable("var").String())
	assert.Equal(t, "[1, 2]", List(Int(1), Int(2)).String())
}

func TestValueStringObjectFieldOrderIsDeterministic(t *testing.T) {
	obj := Object(map[string]Value{"z": Int(1), "a": Int(2), "m": Int(3)})
	want := `{a: 2, m: 3, z: 1}`
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, obj.String())
	}
}

func TestValueIsNull(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.False(t, Int(0).IsNull())
}
