// Package schemabuilder is the fluent builder surface used to assemble a
// graphql.Registry: one builder per type kind (Object, Interface, Union,
// Enum, InputObject, Scalar), each translating its builder-side attributes
// into the corresponding graphql.MetaType when Schema.Finish runs.
//
// Field and argument registration within a single builder is last-write-
// wins, in place: calling Object.Field twice with the same name replaces
// the field's definition but keeps its original position. Duplicate type
// names across different builders registered to the same Schema are
// rejected at Finish, not silently merged.
package schemabuilder

import "go.appointy.com/graphqlcore/graphql"

// Type is implemented by every type builder (Object, Interface, Union,
// Enum, InputObject, Scalar). Register it with Schema.Register to include
// it in a schema.
type Type interface {
	typeName() string
	register(*graphql.Registry) error
}
