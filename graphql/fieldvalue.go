package graphql

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

type fieldValueKind int

const (
	fvValue fieldValueKind = iota
	fvList
	fvOwnedAny
	fvBorrowedAny
	fvWithType
)

// FieldValue is the value a Resolver produces for a field: either a scalar
// Value, a list of FieldValues, an opaque Go value the executor will
// re-resolve against nested fields (OwnedAny/BorrowedAny), or another
// FieldValue annotated with the concrete type name it must be treated as
// when the field's declared output type is abstract (an interface or a
// union).
//
// BorrowedAny and OwnedAny are two names for the same Go representation,
// both just holding an any. BorrowedAny signals "do not retain this beyond
// the current field's resolution"; OwnedAny signals no such constraint.
type FieldValue struct {
	kind     fieldValueKind
	value    Value
	list     []FieldValue
	any      any
	inner    *FieldValue
	typeName string
}

// NULL is the FieldValue for a resolved, present, null result.
var NULL = FieldValue{kind: fvValue, value: Null()}

// NONE represents "no FieldValue", the zero value, distinct from NULL. A
// Resolver returning NONE (via a nil *FieldValue from FieldFuture) signals
// that execution should stop without producing a value for this field,
// e.g. because the field was skipped.
var NONE = FieldValue{}

// NewValue wraps a scalar Value.
func NewValue(v Value) FieldValue { return FieldValue{kind: fvValue, value: v} }

// NewList wraps a list of FieldValues.
func NewList(items ...FieldValue) FieldValue { return FieldValue{kind: fvList, list: items} }

// OwnedAny wraps an opaque Go value the executor will resolve nested
// fields against using a type-specific Resolver.
func OwnedAny(v any) FieldValue { return FieldValue{kind: fvOwnedAny, any: v} }

// BorrowedAny wraps an opaque Go value borrowed from a parent resolver's
// result for the duration of this field's resolution.
func BorrowedAny(v any) FieldValue { return FieldValue{kind: fvBorrowedAny, any: v} }

// WithType annotates v with the concrete object type name it must be
// treated as. Resolvers for fields whose declared output type is an
// interface or a union must return a WithType value so the executor knows
// which concrete type's fields to resolve against.
func WithType(v FieldValue, typeName string) FieldValue {
	inner := v
	return FieldValue{kind: fvWithType, inner: &inner, typeName: typeName}
}

// AsValue returns the wrapped Value and true if f was built with NewValue.
func (f FieldValue) AsValue() (Value, bool) {
	if f.kind != fvValue {
		return Value{}, false
	}
	return f.value, true
}

// TryValue is AsValue, returning an error in the "internal: ..." style used
// throughout this contract for misuse that indicates a resolver bug rather
// than a request error.
func (f FieldValue) TryValue() (Value, error) {
	v, ok := f.AsValue()
	if !ok {
		return Value{}, errInternal("not a Value")
	}
	return v, nil
}

// AsList returns the wrapped slice and true if f was built with NewList.
func (f FieldValue) AsList() ([]FieldValue, bool) {
	if f.kind != fvList {
		return nil, false
	}
	return f.list, true
}

// TryList is AsList, returning an "internal: not a list" error on mismatch.
func (f FieldValue) TryList() ([]FieldValue, error) {
	l, ok := f.AsList()
	if !ok {
		return nil, errInternal("not a list")
	}
	return l, nil
}

// WithTypeName returns the concrete type name attached by WithType, and
// true if f was built with WithType.
func (f FieldValue) WithTypeName() (string, bool) {
	if f.kind != fvWithType {
		return "", false
	}
	return f.typeName, true
}

// Unwrap returns the FieldValue a WithType wrapper carries, or f itself if
// f is not a WithType wrapper.
func (f FieldValue) Unwrap() FieldValue {
	if f.kind == fvWithType {
		return *f.inner
	}
	return f
}

// Downcast attempts to view f's opaque payload (from OwnedAny or
// BorrowedAny) as T.
func Downcast[T any](f FieldValue) (T, bool) {
	var zero T
	if f.kind != fvOwnedAny && f.kind != fvBorrowedAny {
		return zero, false
	}
	v, ok := f.any.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// TryDowncast is Downcast, returning an `internal: not type "T"` error on
// mismatch.
func TryDowncast[T any](f FieldValue) (T, error) {
	v, ok := Downcast[T](f)
	if !ok {
		var zero T
		return zero, errInternal("not type %q", reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return v, nil
}

// ExecContext is the execution context shared by every resolver invoked
// while executing one validated request: it carries the caller's
// context.Context, a per-request identifier for log correlation, and any
// schema-level data attached via the schema builder's Data method.
type ExecContext struct {
	Context   context.Context
	RequestID uuid.UUID
	Data      any
}

// NewExecContext builds an ExecContext with a fresh request id.
func NewExecContext(ctx context.Context, data any) *ExecContext {
	return &ExecContext{Context: ctx, RequestID: uuid.New(), Data: data}
}

// ResolverContext is the single argument a Resolver receives: the shared
// ExecContext, the field's already-coerced argument values, and the parent
// object's FieldValue.
type ResolverContext struct {
	Exec   *ExecContext
	Args   map[string]Value
	Parent FieldValue
}

// Resolver produces a field's value. It returns a FieldFuture rather than a
// value directly, so resolvers that must suspend (an I/O call, a channel
// read) can defer their work to a point the executor chooses to await it.
type Resolver func(ResolverContext) FieldFuture

// FieldFuture wraps a deferred field computation. A Resolver that has its
// answer immediately can build one with Ready; one that must suspend wraps
// its work in NewFieldFuture.
//
// A nil returned *FieldValue with a nil error means the field resolved to
// NONE: the executor should proceed as if the field were absent (e.g. it
// was filtered out by a directive), as distinct from NULL, which is a
// present, resolved null.
type FieldFuture struct {
	run func(ctx context.Context) (*FieldValue, error)
}

// NewFieldFuture builds a FieldFuture from a function the executor will
// call when it decides to resolve this field.
func NewFieldFuture(run func(ctx context.Context) (*FieldValue, error)) FieldFuture {
	return FieldFuture{run: run}
}

// Ready builds a FieldFuture whose result is already known.
func Ready(v *FieldValue, err error) FieldFuture {
	return FieldFuture{run: func(context.Context) (*FieldValue, error) { return v, err }}
}

// Await runs the deferred computation and returns its result. The executor
// calls this exactly once per field per request.
func (f FieldFuture) Await(ctx context.Context) (*FieldValue, error) {
	if f.run == nil {
		return nil, nil
	}
	return f.run(ctx)
}

func errInternal(format string, args ...any) error {
	return &internalError{msg: fmt.Sprintf(format, args...)}
}

type internalError struct{ msg string }

func (e *internalError) Error() string { return "internal: " + e.msg }
