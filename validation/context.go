// Package validation walks a parsed document against a graphql.Registry,
// collecting graphql.RuleError values. The traversal itself (Walk) reports
// only what it needs to track the current type: an unknown field, an
// unknown fragment or inline-fragment type condition, and a mutation or
// subscription against a schema without that root. Every other rule ("is
// this fragment spread known", and so on) is a Visitor, composed into a
// chain with Cons and driven by Walk.
package validation

import (
	"fmt"

	"go.appointy.com/graphqlcore/ast"
	"go.appointy.com/graphqlcore/graphql"
)

// Context carries the state shared by every Visitor during one Walk: the
// registry being validated against, the accumulated errors, the stack of
// types entered via WithType, and a pre-built index of the document's
// fragment definitions by name.
type Context struct {
	Registry *graphql.Registry
	Errors   []*graphql.RuleError

	typeStack []graphql.MetaType
	fragments map[string]*ast.FragmentDefinition
}

// NewContext builds a Context for walking doc against registry, indexing
// doc's fragment definitions once up front.
func NewContext(registry *graphql.Registry, doc *ast.Document) *Context {
	fragments := make(map[string]*ast.FragmentDefinition)
	for _, d := range doc.Definitions {
		if d.Fragment != nil {
			fragments[d.Fragment.Name] = d.Fragment
		}
	}
	return &Context{Registry: registry, fragments: fragments}
}

// ReportError appends a RuleError built from format/args at the given
// locations.
func (c *Context) ReportError(locations []ast.Pos, format string, args ...any) {
	c.Errors = append(c.Errors, &graphql.RuleError{
		Message:   fmt.Sprintf(format, args...),
		Locations: locations,
	})
}

// AppendErrors merges errs into the accumulated error list, for a Visitor
// that collects its own errors before reporting them.
func (c *Context) AppendErrors(errs ...*graphql.RuleError) {
	c.Errors = append(c.Errors, errs...)
}

// WithType pushes t onto the type stack, invokes f, then pops it. The pop
// happens via defer, so the stack stays balanced even if f panics.
func (c *Context) WithType(t graphql.MetaType, f func()) {
	c.typeStack = append(c.typeStack, t)
	defer func() {
		c.typeStack = c.typeStack[:len(c.typeStack)-1]
	}()
	f()
}

// CurrentType returns the type on top of the stack, or nil if the stack is
// empty.
func (c *Context) CurrentType() graphql.MetaType {
	if len(c.typeStack) == 0 {
		return nil
	}
	return c.typeStack[len(c.typeStack)-1]
}

// ParentType returns the type one below the top of the stack, or nil if
// fewer than two types are on the stack.
func (c *Context) ParentType() graphql.MetaType {
	if len(c.typeStack) < 2 {
		return nil
	}
	return c.typeStack[len(c.typeStack)-2]
}

// Fragment looks up a fragment definition by name.
func (c *Context) Fragment(name string) (*ast.FragmentDefinition, bool) {
	f, ok := c.fragments[name]
	return f, ok
}

// IsKnownFragment reports whether name names a fragment definition present
// in the document being walked.
func (c *Context) IsKnownFragment(name string) bool {
	_, ok := c.fragments[name]
	return ok
}
