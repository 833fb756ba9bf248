// Package ast defines the shape of a parsed GraphQL document, as consumed
// by the validation package. Parsing a query string into this shape is an
// external collaborator's job; this package holds no lexer or parser, only
// the data a parser is expected to hand off.
package ast

import "go.appointy.com/graphqlcore/graphql"

// Pos is a line/column source position. It is a plain alias of
// graphql.Location so a single type describes "where in the source" on
// both sides of the validation boundary (RuleError.Locations and the AST
// nodes a RuleError points at).
type Pos = graphql.Location

// Value is the GraphQL value sum (Null, Boolean, Int, Float, String, Enum,
// List, Object, Variable) as produced by a parser for literals, arguments,
// and default values.
type Value = graphql.Value

// OperationType distinguishes the three root operation kinds.
type OperationType int

const (
	Query OperationType = iota
	Mutation
	Subscription
)

func (t OperationType) String() string {
	switch t {
	case Query:
		return "query"
	case Mutation:
		return "mutation"
	case Subscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// Document is a parsed GraphQL request: one or more operation and fragment
// definitions.
type Document struct {
	Definitions []Definition
}

// Definition is exactly one of an OperationDefinition or a
// FragmentDefinition.
type Definition struct {
	Operation *OperationDefinition
	Fragment  *FragmentDefinition
}

// OperationDefinition is one query/mutation/subscription in a document.
type OperationDefinition struct {
	Type                OperationType
	Name                string
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
	Pos                 Pos
}

// FragmentDefinition is a named, reusable selection set bound to a type
// condition.
type FragmentDefinition struct {
	Name          string
	TypeCondition string
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Pos           Pos
}

// VariableDefinition declares one operation variable's name, type, and
// optional default.
type VariableDefinition struct {
	Name         string
	Type         graphql.TypeRef
	DefaultValue *Value
	Directives   []*Directive
	Pos          Pos
}

// Directive is one @name(args...) annotation.
type Directive struct {
	Name      string
	Arguments []Argument
	Pos       Pos
}

// Argument is one name: value pair, used both for field arguments and
// directive arguments.
type Argument struct {
	Name  string
	Value Value
}

// SelectionSet is the { ... } braced list of selections under a field,
// operation, or fragment.
type SelectionSet struct {
	Selections []Selection
	Pos        Pos
}

// Selection is exactly one of a Field, FragmentSpread, or InlineFragment.
type Selection struct {
	Field          *Field
	FragmentSpread *FragmentSpread
	InlineFragment *InlineFragment
}

// Field is one field selection, with its optional alias, arguments,
// directives, and nested selection set.
type Field struct {
	Alias        string
	Name         string
	Arguments    []Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
	Pos          Pos
}

// ResponseKey returns the alias if set, else the field name: the key this
// field's result is recorded under in the response.
func (f *Field) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// FragmentSpread is a ...Name reference to a named fragment.
type FragmentSpread struct {
	FragmentName string
	Directives   []*Directive
	Pos          Pos
}

// InlineFragment is a ... [on Type] { ... } selection. TypeCondition is ""
// when no "on Type" clause is present, in which case the fragment's
// selections apply to the enclosing type.
type InlineFragment struct {
	TypeCondition string
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Pos           Pos
}
