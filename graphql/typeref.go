package graphql

import (
	"fmt"
	"strings"
)

type typeRefKind int

const (
	namedRef typeRefKind = iota
	nonNullRef
	listRef
)

// TypeRef is a reference to a type, as it appears on a field's output type,
// an argument's input type, or an input object field's type: a named type,
// optionally wrapped in List and/or NonNull. A zero TypeRef is invalid; use
// NamedType to build one.
//
// NonNull wraps are idempotent rather than nestable: calling NonNull on an
// already-non-null TypeRef returns it unchanged, so NonNull(NonNull(x)) can
// never be constructed.
type TypeRef struct {
	kind  typeRefKind
	name  string
	inner *TypeRef
}

// NamedType returns a reference to the named type name.
func NamedType(name string) TypeRef {
	return TypeRef{kind: namedRef, name: name}
}

// NonNull wraps t as non-nullable. Idempotent.
func (t TypeRef) NonNull() TypeRef {
	if t.kind == nonNullRef {
		return t
	}
	inner := t
	return TypeRef{kind: nonNullRef, inner: &inner}
}

// List wraps t as a list of t.
func (t TypeRef) List() TypeRef {
	inner := t
	return TypeRef{kind: listRef, inner: &inner}
}

// IsNamed reports whether t is a bare named reference.
func (t TypeRef) IsNamed() bool { return t.kind == namedRef }

// IsNonNull reports whether t's outermost layer is non-null.
func (t TypeRef) IsNonNull() bool { return t.kind == nonNullRef }

// IsList reports whether t's outermost layer is a list.
func (t TypeRef) IsList() bool { return t.kind == listRef }

// Elem returns the type one layer in, for List and NonNull references. It
// panics if called on a bare named reference; check IsNamed first.
func (t TypeRef) Elem() TypeRef {
	if t.inner == nil {
		panic("graphql: Elem called on a named TypeRef")
	}
	return *t.inner
}

// BaseName returns the innermost named type, unwrapping any List/NonNull
// layers.
func (t TypeRef) BaseName() string {
	for t.kind != namedRef {
		t = *t.inner
	}
	return t.name
}

// String renders t in GraphQL type-reference syntax, e.g. "[Foo!]!".
func (t TypeRef) String() string {
	var b strings.Builder
	t.writeTo(&b)
	return b.String()
}

func (t TypeRef) writeTo(b *strings.Builder) {
	switch t.kind {
	case namedRef:
		b.WriteString(t.name)
	case listRef:
		b.WriteByte('[')
		t.inner.writeTo(b)
		b.WriteByte(']')
	case nonNullRef:
		t.inner.writeTo(b)
		b.WriteByte('!')
	}
}

// Equal reports whether t and other are structurally identical.
func (t TypeRef) Equal(other TypeRef) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case namedRef:
		return t.name == other.name
	default:
		return t.inner.Equal(*other.inner)
	}
}

// ParseTypeRef parses GraphQL type-reference syntax ("Foo", "[Foo]!", ...).
// It is the inverse of String: for every TypeRef t built through this
// package, ParseTypeRef(t.String()) produces a TypeRef equal to t.
func ParseTypeRef(s string) (TypeRef, error) {
	t, rest, err := parseTypeRefPrefix(s)
	if err != nil {
		return TypeRef{}, err
	}
	if rest != "" {
		return TypeRef{}, fmt.Errorf("graphql: trailing input %q in type reference %q", rest, s)
	}
	return t, nil
}

func parseTypeRefPrefix(s string) (TypeRef, string, error) {
	if s == "" {
		return TypeRef{}, "", fmt.Errorf("graphql: empty type reference")
	}
	var t TypeRef
	var rest string
	if s[0] == '[' {
		inner, after, err := parseTypeRefPrefix(s[1:])
		if err != nil {
			return TypeRef{}, "", err
		}
		if after == "" || after[0] != ']' {
			return TypeRef{}, "", fmt.Errorf("graphql: unterminated list type reference %q", s)
		}
		t = inner.List()
		rest = after[1:]
	} else {
		i := 0
		for i < len(s) && isNameByte(s[i]) {
			i++
		}
		if i == 0 || (s[0] >= '0' && s[0] <= '9') {
			return TypeRef{}, "", fmt.Errorf("graphql: malformed type reference %q", s)
		}
		t = NamedType(s[:i])
		rest = s[i:]
	}
	if rest != "" && rest[0] == '!' {
		t = t.NonNull()
		rest = rest[1:]
	}
	return t, rest, nil
}

func isNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
