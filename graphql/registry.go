package graphql

import "context"

// TypeKind distinguishes the variants of MetaType.
type TypeKind int

const (
	KindObject TypeKind = iota
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
	KindScalar
)

func (k TypeKind) String() string {
	switch k {
	case KindObject:
		return "OBJECT"
	case KindInterface:
		return "INTERFACE"
	case KindUnion:
		return "UNION"
	case KindEnum:
		return "ENUM"
	case KindInputObject:
		return "INPUT_OBJECT"
	case KindScalar:
		return "SCALAR"
	default:
		return "UNKNOWN"
	}
}

// Deprecation marks a field, argument, input field, or enum value as
// deprecated, carrying an optional human-readable reason.
type Deprecation struct {
	Deprecated bool
	Reason     string
}

// NotDeprecated is the zero Deprecation.
var NotDeprecated = Deprecation{}

// Deprecated builds a Deprecation with the given reason.
func Deprecated(reason string) Deprecation {
	return Deprecation{Deprecated: true, Reason: reason}
}

// VisibilityFunc decides whether a schema member is visible to a given
// request context; a nil VisibilityFunc means always visible.
type VisibilityFunc func(ctx context.Context) bool

// typeBase holds the attributes every MetaType variant carries.
type typeBase struct {
	Name         string
	Description  string
	Visible      VisibilityFunc
	Inaccessible bool
	Tags         []string
}

// MetaType is the sum of the six kinds of type a Registry can hold. Concrete
// variants are *ObjectType, *InterfaceType, *UnionType, *EnumType,
// *InputObjectType, and *ScalarType.
type MetaType interface {
	TypeName() string
	Kind() TypeKind
	isMetaType()
}

func (b *typeBase) TypeName() string { return b.Name }

// MetaField describes one field of an Object or Interface type: its output
// type, arguments, deprecation, and, for Object fields only, the Resolver
// that produces its value. Interface fields carry a nil Resolver; they
// describe a signature, not an implementation.
type MetaField struct {
	Name        string
	Description string
	Type        TypeRef
	Args        *OrderedMap[*MetaInputValue]
	Deprecation Deprecation
	Resolver    Resolver
}

// MetaInputValue describes one argument or input-object field: its input
// type and optional default literal.
type MetaInputValue struct {
	Name         string
	Description  string
	Type         TypeRef
	DefaultValue Value
	HasDefault   bool
	Secret       bool
}

// MetaEnumValue describes one member of an enum type.
type MetaEnumValue struct {
	Name        string
	Description string
	Deprecation Deprecation
}

// ObjectType is a concrete, instantiable type with a field set and a set of
// interfaces it implements.
type ObjectType struct {
	typeBase
	Fields     *OrderedMap[*MetaField]
	Interfaces *OrderedSet
}

func (*ObjectType) Kind() TypeKind { return KindObject }
func (*ObjectType) isMetaType()    {}

// NewObjectType constructs an ObjectType for registration.
func NewObjectType(name, description string, fields *OrderedMap[*MetaField], interfaces *OrderedSet) *ObjectType {
	if interfaces == nil {
		interfaces = NewOrderedSet()
	}
	return &ObjectType{
		typeBase:   typeBase{Name: name, Description: description},
		Fields:     fields,
		Interfaces: interfaces,
	}
}

// InterfaceType is an abstract type: a field-set contract plus the set of
// object type names known to implement it.
type InterfaceType struct {
	typeBase
	Fields        *OrderedMap[*MetaField]
	PossibleTypes *OrderedSet
}

func (*InterfaceType) Kind() TypeKind { return KindInterface }
func (*InterfaceType) isMetaType()    {}

// NewInterfaceType constructs an InterfaceType for registration.
func NewInterfaceType(name, description string, fields *OrderedMap[*MetaField], possibleTypes *OrderedSet) *InterfaceType {
	if possibleTypes == nil {
		possibleTypes = NewOrderedSet()
	}
	return &InterfaceType{
		typeBase:      typeBase{Name: name, Description: description},
		Fields:        fields,
		PossibleTypes: possibleTypes,
	}
}

// UnionType is an abstract type defined purely as a set of member object
// type names.
type UnionType struct {
	typeBase
	PossibleTypes *OrderedSet
}

func (*UnionType) Kind() TypeKind { return KindUnion }
func (*UnionType) isMetaType()    {}

// NewUnionType constructs a UnionType for registration.
func NewUnionType(name, description string, possibleTypes *OrderedSet) *UnionType {
	if possibleTypes == nil {
		possibleTypes = NewOrderedSet()
	}
	return &UnionType{
		typeBase:      typeBase{Name: name, Description: description},
		PossibleTypes: possibleTypes,
	}
}

// EnumType is a fixed, ordered set of named values.
type EnumType struct {
	typeBase
	Values *OrderedMap[*MetaEnumValue]
}

func (*EnumType) Kind() TypeKind { return KindEnum }
func (*EnumType) isMetaType()    {}

// NewEnumType constructs an EnumType for registration.
func NewEnumType(name, description string, values *OrderedMap[*MetaEnumValue]) *EnumType {
	return &EnumType{
		typeBase: typeBase{Name: name, Description: description},
		Values:   values,
	}
}

// InputObjectType is a type usable only as an argument or input-field
// shape: an ordered set of input fields, none of them resolvable.
type InputObjectType struct {
	typeBase
	InputFields *OrderedMap[*MetaInputValue]
}

func (*InputObjectType) Kind() TypeKind { return KindInputObject }
func (*InputObjectType) isMetaType()    {}

// NewInputObjectType constructs an InputObjectType for registration.
func NewInputObjectType(name, description string, fields *OrderedMap[*MetaInputValue]) *InputObjectType {
	return &InputObjectType{
		typeBase:    typeBase{Name: name, Description: description},
		InputFields: fields,
	}
}

// ScalarType is a leaf type whose literal validation and parsing is
// supplied by the builder; this core neither calls nor requires either
// function; they exist for a host executor performing input coercion.
type ScalarType struct {
	typeBase
	Validate func(Value) error
	Parse    func(Value) (Value, error)
}

func (*ScalarType) Kind() TypeKind { return KindScalar }
func (*ScalarType) isMetaType()    {}

// NewScalarType constructs a ScalarType for registration.
func NewScalarType(name, description string, validate func(Value) error, parse func(Value) (Value, error)) *ScalarType {
	return &ScalarType{
		typeBase: typeBase{Name: name, Description: description},
		Validate: validate,
		Parse:    parse,
	}
}

// Registry is the authoritative, frozen description of every type, field,
// and relationship in a built schema. It is populated only during schema
// finalization (see the schemabuilder package); after that it is read-only
// and safe for concurrent use without locking.
type Registry struct {
	Types                *OrderedMap[MetaType]
	QueryTypeName        string
	MutationTypeName     string
	SubscriptionTypeName string
}

// NewRegistry returns a Registry pre-populated with the five built-in
// scalar types (String, Int, Float, Boolean, ID). A schema builder that
// never declares Scalar("String") can still use it as a field type. A
// builder that does declare its own Scalar under one of these five names
// collides with the built-in at registration time and is rejected with
// ErrDuplicateType, the same as any other duplicate type name.
func NewRegistry() *Registry {
	r := &Registry{Types: NewOrderedMap[MetaType]()}
	for _, name := range []string{"String", "Int", "Float", "Boolean", "ID"} {
		r.Types.Set(name, NewScalarType(name, "", nil, nil))
	}
	return r
}

// Register inserts t, failing with a DuplicateType SchemaError if a type of
// that name is already present.
func (r *Registry) Register(t MetaType) error {
	if _, exists := r.Types.Get(t.TypeName()); exists {
		return &SchemaError{Kind: ErrDuplicateType, TypeName: t.TypeName()}
	}
	r.Types.Set(t.TypeName(), t)
	return nil
}

// Lookup finds a type by name.
func (r *Registry) Lookup(name string) (MetaType, bool) {
	return r.Types.Get(name)
}

// BaseType resolves the named base of ref through the registry.
func (r *Registry) BaseType(ref TypeRef) (MetaType, bool) {
	return r.Lookup(ref.BaseName())
}

// QueryType returns the root query type, which is always present once a
// Registry has been produced by a successful schemabuilder.Finish.
func (r *Registry) QueryType() (MetaType, bool) {
	return r.Types.Get(r.QueryTypeName)
}

// MutationType returns the root mutation type, if one was configured.
func (r *Registry) MutationType() (MetaType, bool) {
	if r.MutationTypeName == "" {
		return nil, false
	}
	return r.Types.Get(r.MutationTypeName)
}

// SubscriptionType returns the root subscription type, if one was
// configured.
func (r *Registry) SubscriptionType() (MetaType, bool) {
	if r.SubscriptionTypeName == "" {
		return nil, false
	}
	return r.Types.Get(r.SubscriptionTypeName)
}

// IsObject reports whether name resolves to an ObjectType.
func (r *Registry) IsObject(name string) bool {
	t, ok := r.Lookup(name)
	if !ok {
		return false
	}
	_, ok = t.(*ObjectType)
	return ok
}

// EnumHasValue reports whether value is a member of the enum named
// enumName. It exists for a host executor's output-coercion step (spec's
// execution-time enum-membership contract); this core never calls it
// itself.
func (r *Registry) EnumHasValue(enumName, value string) bool {
	t, ok := r.Lookup(enumName)
	if !ok {
		return false
	}
	et, ok := t.(*EnumType)
	if !ok {
		return false
	}
	_, ok = et.Values.Get(value)
	return ok
}

// FieldByName looks up a field by name on an Object or Interface type. It
// returns false for every other MetaType variant, since only those two
// kinds carry a field set.
func FieldByName(t MetaType, name string) (*MetaField, bool) {
	switch tt := t.(type) {
	case *ObjectType:
		return tt.Fields.Get(name)
	case *InterfaceType:
		return tt.Fields.Get(name)
	default:
		return nil, false
	}
}

// TypeName returns t.TypeName(), or "" if t is nil.
func TypeName(t MetaType) string {
	if t == nil {
		return ""
	}
	return t.TypeName()
}
