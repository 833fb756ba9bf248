package schemabuilder

import "go.appointy.com/graphqlcore/graphql"

// InputValue builds one argument or input-object field definition.
type InputValue struct {
	name         string
	description  string
	typeRef      graphql.TypeRef
	defaultValue graphql.Value
	hasDefault   bool
}

// NewInputValue starts a builder for an input value named name of type
// typeRef.
func NewInputValue(name string, typeRef graphql.TypeRef) *InputValue {
	return &InputValue{name: name, typeRef: typeRef}
}

// Description sets the input value's description.
func (iv *InputValue) Description(d string) *InputValue {
	iv.description = d
	return iv
}

// DefaultValue sets the input value's default literal.
func (iv *InputValue) DefaultValue(v graphql.Value) *InputValue {
	iv.defaultValue = v
	iv.hasDefault = true
	return iv
}

func (iv *InputValue) toMeta() *graphql.MetaInputValue {
	return &graphql.MetaInputValue{
		Name:         iv.name,
		Description:  iv.description,
		Type:         iv.typeRef,
		DefaultValue: iv.defaultValue,
		HasDefault:   iv.hasDefault,
	}
}
