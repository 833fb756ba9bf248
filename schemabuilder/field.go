package schemabuilder

import "go.appointy.com/graphqlcore/graphql"

// Field builds one Object or Interface field definition: its output type,
// arguments, deprecation, and, for an Object field, the Resolver that
// produces its value at execution time.
type Field struct {
	name        string
	description string
	typeRef     graphql.TypeRef
	resolver    graphql.Resolver
	args        *graphql.OrderedMap[*graphql.MetaInputValue]
	deprecation graphql.Deprecation
}

// NewField starts a builder for a field named name, of output type
// typeRef, resolved by resolver. resolver is nil for an Interface field;
// interfaces describe a signature, not an implementation.
func NewField(name string, typeRef graphql.TypeRef, resolver graphql.Resolver) *Field {
	return &Field{
		name:     name,
		typeRef:  typeRef,
		resolver: resolver,
		args:     graphql.NewOrderedMap[*graphql.MetaInputValue](),
	}
}

// Description sets the field's description.
func (f *Field) Description(d string) *Field {
	f.description = d
	return f
}

// Argument adds or replaces an argument, in place, by name.
func (f *Field) Argument(iv *InputValue) *Field {
	f.args.Set(iv.name, iv.toMeta())
	return f
}

// Deprecated marks the field deprecated with the given reason.
func (f *Field) Deprecated(reason string) *Field {
	f.deprecation = graphql.Deprecated(reason)
	return f
}

func (f *Field) toMeta() *graphql.MetaField {
	return &graphql.MetaField{
		Name:        f.name,
		Description: f.description,
		Type:        f.typeRef,
		Args:        f.args,
		Deprecation: f.deprecation,
		Resolver:    f.resolver,
	}
}
