package schemabuilder

import "go.appointy.com/graphqlcore/graphql"

// Union builds a UnionType: a type defined purely as a set of member
// object type names.
type Union struct {
	name          string
	description   string
	possibleTypes *graphql.OrderedSet
}

// NewUnion starts a builder for a union type named name.
func NewUnion(name string) *Union {
	return &Union{name: name, possibleTypes: graphql.NewOrderedSet()}
}

// Description sets the union's description.
func (u *Union) Description(d string) *Union {
	u.description = d
	return u
}

// PossibleType adds objectName as a member of the union.
func (u *Union) PossibleType(objectName string) *Union {
	u.possibleTypes.Add(objectName)
	return u
}

// TypeRef returns a reference to this union type.
func (u *Union) TypeRef() graphql.TypeRef {
	return graphql.NamedType(u.name)
}

func (u *Union) typeName() string { return u.name }

func (u *Union) register(r *graphql.Registry) error {
	return r.Register(graphql.NewUnionType(u.name, u.description, u.possibleTypes.Clone()))
}
