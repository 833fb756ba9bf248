package schemabuilder

import "go.appointy.com/graphqlcore/graphql"

// Scalar builds a ScalarType. Validate and Parse are optional hooks for a
// host executor's input-coercion step; this core never calls either.
type Scalar struct {
	name        string
	description string
	validate    func(graphql.Value) error
	parse       func(graphql.Value) (graphql.Value, error)
}

// NewScalar starts a builder for a scalar type named name.
func NewScalar(name string) *Scalar {
	return &Scalar{name: name}
}

// Description sets the scalar's description.
func (s *Scalar) Description(d string) *Scalar {
	s.description = d
	return s
}

// Validator sets the literal-validation hook.
func (s *Scalar) Validator(f func(graphql.Value) error) *Scalar {
	s.validate = f
	return s
}

// Parser sets the literal-to-runtime-value parsing hook.
func (s *Scalar) Parser(f func(graphql.Value) (graphql.Value, error)) *Scalar {
	s.parse = f
	return s
}

// TypeRef returns a reference to this scalar type.
func (s *Scalar) TypeRef() graphql.TypeRef {
	return graphql.NamedType(s.name)
}

func (s *Scalar) typeName() string { return s.name }

func (s *Scalar) register(r *graphql.Registry) error {
	return r.Register(graphql.NewScalarType(s.name, s.description, s.validate, s.parse))
}
