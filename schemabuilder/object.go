package schemabuilder

import "go.appointy.com/graphqlcore/graphql"

// Object builds an ObjectType: a concrete, resolvable type with a field
// set and the interfaces it implements.
type Object struct {
	name        string
	description string
	fields      *graphql.OrderedMap[*Field]
	interfaces  *graphql.OrderedSet
}

// NewObject starts a builder for an object type named name.
func NewObject(name string) *Object {
	return &Object{
		name:       name,
		fields:     graphql.NewOrderedMap[*Field](),
		interfaces: graphql.NewOrderedSet(),
	}
}

// Description sets the object's description.
func (o *Object) Description(d string) *Object {
	o.description = d
	return o
}

// Field adds or replaces a field, in place, by name. Registering a field
// that already exists on this builder replaces its definition but keeps
// its original position in the field order.
func (o *Object) Field(f *Field) *Object {
	o.fields.Set(f.name, f)
	return o
}

// Implements declares that this object implements the named interface.
// Finish checks that the object's field set actually satisfies the
// interface's contract.
func (o *Object) Implements(interfaceName string) *Object {
	o.interfaces.Add(interfaceName)
	return o
}

// TypeRef returns a reference to this object type, for use as a field's
// output type or an argument's input type before the schema is finished.
func (o *Object) TypeRef() graphql.TypeRef {
	return graphql.NamedType(o.name)
}

func (o *Object) typeName() string { return o.name }

func (o *Object) register(r *graphql.Registry) error {
	fields := graphql.NewOrderedMap[*graphql.MetaField]()
	for _, f := range o.fields.Values() {
		fields.Set(f.name, f.toMeta())
	}
	return r.Register(graphql.NewObjectType(o.name, o.description, fields, o.interfaces.Clone()))
}
