package schemabuilder

import "go.appointy.com/graphqlcore/graphql"

// EnumItem builds one member of an Enum. Most members need nothing beyond
// a name; Description and Deprecated exist for the rarer member that needs
// documentation or a deprecation notice.
type EnumItem struct {
	name        string
	description string
	deprecation graphql.Deprecation
}

// NewEnumItem starts a builder for an enum member named name.
func NewEnumItem(name string) *EnumItem {
	return &EnumItem{name: name}
}

// Description sets the member's description.
func (e *EnumItem) Description(d string) *EnumItem {
	e.description = d
	return e
}

// Deprecated marks the member deprecated with the given reason.
func (e *EnumItem) Deprecated(reason string) *EnumItem {
	e.deprecation = graphql.Deprecated(reason)
	return e
}

func (e *EnumItem) toMeta() *graphql.MetaEnumValue {
	return &graphql.MetaEnumValue{
		Name:        e.name,
		Description: e.description,
		Deprecation: e.deprecation,
	}
}

// Enum builds an EnumType: an ordered, named set of members.
type Enum struct {
	name        string
	description string
	items       *graphql.OrderedMap[*EnumItem]
}

// NewEnum starts a builder for an enum type named name.
func NewEnum(name string) *Enum {
	return &Enum{name: name, items: graphql.NewOrderedMap[*EnumItem]()}
}

// Description sets the enum's description.
func (e *Enum) Description(d string) *Enum {
	e.description = d
	return e
}

// Item adds a plain member by name, in place if name repeats.
func (e *Enum) Item(name string) *Enum {
	e.items.Set(name, NewEnumItem(name))
	return e
}

// ItemValue adds a member built with EnumItem, for a member that needs a
// description or deprecation notice.
func (e *Enum) ItemValue(item *EnumItem) *Enum {
	e.items.Set(item.name, item)
	return e
}

// TypeRef returns a reference to this enum type.
func (e *Enum) TypeRef() graphql.TypeRef {
	return graphql.NamedType(e.name)
}

func (e *Enum) typeName() string { return e.name }

func (e *Enum) register(r *graphql.Registry) error {
	values := graphql.NewOrderedMap[*graphql.MetaEnumValue]()
	for _, item := range e.items.Values() {
		values.Set(item.name, item.toMeta())
	}
	return r.Register(graphql.NewEnumType(e.name, e.description, values))
}
