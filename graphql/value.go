package graphql

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueKind distinguishes the variants of Value.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBoolean
	ValueInt
	ValueFloat
	ValueString
	ValueEnum
	ValueList
	ValueObject
	ValueVariable
)

// Value is the GraphQL value sum consumed from query literals (arguments,
// default values, directive arguments) and, post-coercion, produced as a
// resolver's scalar output: Null, Boolean, Int, Float, String, Enum, List,
// Object, and Variable. Coercion of a Variable to a concrete value, and
// validation of a literal against a scalar's rules, are both the executor's
// job; this type only carries the shape.
type Value struct {
	Kind    ValueKind
	Bool    bool
	Int     int64
	Float   float64
	Str     string // String literal, Enum member name, or Variable name
	List    []Value
	Object  map[string]Value
}

// Null is the null value.
func Null() Value { return Value{Kind: ValueNull} }

// Bool builds a boolean value.
func Bool(b bool) Value { return Value{Kind: ValueBoolean, Bool: b} }

// Int builds an integer value.
func Int(i int64) Value { return Value{Kind: ValueInt, Int: i} }

// Float builds a float value.
func Float(f float64) Value { return Value{Kind: ValueFloat, Float: f} }

// String builds a string value.
func String(s string) Value { return Value{Kind: ValueString, Str: s} }

// Enum builds an enum-member value, referencing the member by name.
func Enum(name string) Value { return Value{Kind: ValueEnum, Str: name} }

// List builds a list value.
func List(items ...Value) Value { return Value{Kind: ValueList, List: items} }

// Object builds an input-object value.
func Object(fields map[string]Value) Value { return Value{Kind: ValueObject, Object: fields} }

// Variable builds a reference to a variable, to be resolved by the
// executor against the request's variable bindings.
func Variable(name string) Value { return Value{Kind: ValueVariable, Str: name} }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.Kind == ValueNull }

// String renders v in GraphQL literal syntax, for introspection display of
// default values and for debugging.
func (v Value) String() string {
	switch v.Kind {
	case ValueNull:
		return "null"
	case ValueBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueString:
		return strconv.Quote(v.Str)
	case ValueEnum:
		return v.Str
	case ValueVariable:
		return "$" + v.Str
	case ValueList:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ValueObject:
		// Object is a plain map, not an OrderedMap, so field order here is
		// not the literal's source order; sort for a stable rendering.
		names := make([]string, 0, len(v.Object))
		for name := range v.Object {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = fmt.Sprintf("%s: %s", name, v.Object[name].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<invalid value>"
	}
}
