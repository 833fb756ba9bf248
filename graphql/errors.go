package graphql

import (
	"fmt"
)

// SchemaErrorKind enumerates the fatal, build-time failures a schema
// builder's Finish can produce.
type SchemaErrorKind int

const (
	// ErrUnknownType: a TypeRef, union member, or interface name refers
	// to a type not present in the registry. An absent root type is
	// reported as ErrMissingRootType instead.
	ErrUnknownType SchemaErrorKind = iota
	// ErrDuplicateType: two builders registered a type with the same name.
	ErrDuplicateType
	// ErrInvalidImplementation: an object does not satisfy the field
	// contract of an interface it declares.
	ErrInvalidImplementation
	// ErrInvalidUnionMember: a union names a member that does not resolve
	// to an object type.
	ErrInvalidUnionMember
	// ErrMissingRootType: the query root type is absent, or a configured
	// root type name does not resolve to an object type.
	ErrMissingRootType
)

// SchemaError is the fatal error taxonomy returned by schema finalization.
// Every SchemaError names the type (and, where relevant, the referencing
// type) involved so a caller can report a precise diagnostic.
type SchemaError struct {
	Kind           SchemaErrorKind
	TypeName       string
	ReferencedFrom string
	Interface      string
	Member         string
	Which          string
	Reason         string
}

func (e *SchemaError) Error() string {
	var msg string
	switch e.Kind {
	case ErrUnknownType:
		if e.ReferencedFrom != "" {
			msg = fmt.Sprintf("unknown type %q referenced from %q", e.TypeName, e.ReferencedFrom)
		} else {
			msg = fmt.Sprintf("unknown type %q", e.TypeName)
		}
	case ErrDuplicateType:
		msg = fmt.Sprintf("duplicate type %q", e.TypeName)
	case ErrInvalidImplementation:
		msg = fmt.Sprintf("type %q does not correctly implement interface %q: %s", e.TypeName, e.Interface, e.Reason)
	case ErrInvalidUnionMember:
		msg = fmt.Sprintf("union %q has invalid member %q: %s", e.TypeName, e.Member, e.Reason)
	case ErrMissingRootType:
		msg = fmt.Sprintf("missing %s root type %q", e.Which, e.TypeName)
	default:
		msg = "schema error"
	}
	return "graphql: " + msg
}

// PathSegmentKind distinguishes the two kinds of response-path element.
type PathSegmentKind int

const (
	PathField PathSegmentKind = iota
	PathIndex
)

// PathSegment is one step of a response path: a field name or a list index.
type PathSegment struct {
	Kind  PathSegmentKind
	Field string
	Index int
}

// ServerError is a request-time error surfaced in the response alongside
// (or instead of) data, per the GraphQL response error shape: a message, an
// optional source document name, the offending locations, the response
// path, and arbitrary extensions.
type ServerError struct {
	Message    string
	Source     string
	Locations  []Location
	Path       []PathSegment
	Extensions map[string]any
}

func (e *ServerError) Error() string { return e.Message }

// Location is a line/column position in a source document, independent of
// the ast package so this type has no dependency on document shape.
type Location struct {
	Line   int
	Column int
}

// RuleError is one validation failure accumulated while walking a document
// against a Registry: a message plus the source locations it applies to.
// A RuleError is always a request error; it can never indicate a
// programmer bug in the core itself.
type RuleError struct {
	Message   string
	Locations []Location
}

func (e *RuleError) Error() string { return e.Message }
