package schemabuilder

import "go.appointy.com/graphqlcore/graphql"

// InputObject builds an InputObjectType: a named, ordered set of input
// fields, usable only as an argument or input-field type, never as an
// output type.
type InputObject struct {
	name        string
	description string
	fields      *graphql.OrderedMap[*InputValue]
}

// NewInputObject starts a builder for an input object type named name.
func NewInputObject(name string) *InputObject {
	return &InputObject{name: name, fields: graphql.NewOrderedMap[*InputValue]()}
}

// Description sets the input object's description.
func (io *InputObject) Description(d string) *InputObject {
	io.description = d
	return io
}

// Field adds or replaces an input field, in place, by name.
func (io *InputObject) Field(iv *InputValue) *InputObject {
	io.fields.Set(iv.name, iv)
	return io
}

// TypeRef returns a reference to this input object type.
func (io *InputObject) TypeRef() graphql.TypeRef {
	return graphql.NamedType(io.name)
}

func (io *InputObject) typeName() string { return io.name }

func (io *InputObject) register(r *graphql.Registry) error {
	fields := graphql.NewOrderedMap[*graphql.MetaInputValue]()
	for _, iv := range io.fields.Values() {
		fields.Set(iv.name, iv.toMeta())
	}
	return r.Register(graphql.NewInputObjectType(io.name, io.description, fields))
}
