package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldResponseKey(t *testing.T) {
	noAlias := &Field{Name: "name"}
	assert.Equal(t, "name", noAlias.ResponseKey())

	aliased := &Field{Name: "name", Alias: "n"}
	assert.Equal(t, "n", aliased.ResponseKey())
}

func TestOperationTypeString(t *testing.T) {
	assert.Equal(t, "query", Query.String())
	assert.Equal(t, "mutation", Mutation.String())
	assert.Equal(t, "subscription", Subscription.String())
}
