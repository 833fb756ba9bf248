package schemabuilder

import "go.appointy.com/graphqlcore/graphql"

// Interface builds an InterfaceType: a field-set contract plus the object
// type names declared as possible implementers.
//
// Named Interface, not InterfaceType, to avoid clashing with Go's
// interface keyword while still reading naturally as schemabuilder.Interface.
type Interface struct {
	name          string
	description   string
	fields        *graphql.OrderedMap[*Field]
	possibleTypes *graphql.OrderedSet
}

// NewInterface starts a builder for an interface type named name.
func NewInterface(name string) *Interface {
	return &Interface{
		name:          name,
		fields:        graphql.NewOrderedMap[*Field](),
		possibleTypes: graphql.NewOrderedSet(),
	}
}

// Description sets the interface's description.
func (i *Interface) Description(d string) *Interface {
	i.description = d
	return i
}

// Field adds or replaces a field signature, in place, by name.
func (i *Interface) Field(f *Field) *Interface {
	i.fields.Set(f.name, f)
	return i
}

// PossibleType declares objectName as a known implementer of this
// interface.
func (i *Interface) PossibleType(objectName string) *Interface {
	i.possibleTypes.Add(objectName)
	return i
}

// TypeRef returns a reference to this interface type.
func (i *Interface) TypeRef() graphql.TypeRef {
	return graphql.NamedType(i.name)
}

func (i *Interface) typeName() string { return i.name }

func (i *Interface) register(r *graphql.Registry) error {
	fields := graphql.NewOrderedMap[*graphql.MetaField]()
	for _, f := range i.fields.Values() {
		fields.Set(f.name, f.toMeta())
	}
	return r.Register(graphql.NewInterfaceType(i.name, i.description, fields, i.possibleTypes.Clone()))
}
