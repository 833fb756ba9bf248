package schemabuilder

import (
	"fmt"

	"golang.org/x/xerrors"

	"go.appointy.com/graphqlcore/graphql"
)

// Schema accumulates type builders and root-operation names, then produces
// a frozen graphql.Registry from Finish.
type Schema struct {
	queryName        string
	mutationName     string
	subscriptionName string
	data             any
	registrations    []Type
}

// Build starts a Schema with queryTypeName as the root query type's name.
// A query root is mandatory; mutation and subscription are configured
// separately with Mutation and Subscription.
func Build(queryTypeName string) *Schema {
	return &Schema{queryName: queryTypeName}
}

// Mutation configures the root mutation type's name.
func (s *Schema) Mutation(typeName string) *Schema {
	s.mutationName = typeName
	return s
}

// Subscription configures the root subscription type's name.
func (s *Schema) Subscription(typeName string) *Schema {
	s.subscriptionName = typeName
	return s
}

// Data attaches schema-level data. Finish stores it as the returned
// graphql.Schema's Data; putting it into a request's graphql.ExecContext
// (see graphql.NewExecContext) is left to the host executor.
func (s *Schema) Data(v any) *Schema {
	s.data = v
	return s
}

// Register adds a type builder to the schema. Order of registration
// across different builders has no semantic effect beyond the insertion
// order visible in Registry.Types.
func (s *Schema) Register(t Type) *Schema {
	s.registrations = append(s.registrations, t)
	return s
}

// Finish populates a Registry from every registered builder and validates
// it, in this fixed order:
//
//  1. populate the registry (each builder's register call; a name
//     collision across builders fails here with ErrDuplicateType)
//  2. resolve the root type names, requiring query to exist and be an
//     Object (ErrMissingRootType); if configured,
//     mutation and subscription must also exist and be Objects
//  3. closure check: every TypeRef reachable from any registered type must
//     name a type present in the registry (ErrUnknownType)
//  4. implementation covariance check: every object declaring it
//     implements an interface must carry a compatible field for each of
//     the interface's fields (ErrInvalidImplementation)
//  5. union member check: every union's possible types must resolve to an
//     object (ErrInvalidUnionMember)
//  6. freeze: return the finished *graphql.Schema
//
// The Registry inside the returned Schema is never mutated again.
func (s *Schema) Finish() (*graphql.Schema, error) {
	registry := graphql.NewRegistry()

	for _, t := range s.registrations {
		if err := t.register(registry); err != nil {
			return nil, xerrors.Errorf("registering %q: %w", t.typeName(), err)
		}
	}

	registry.QueryTypeName = s.queryName
	registry.MutationTypeName = s.mutationName
	registry.SubscriptionTypeName = s.subscriptionName

	if err := resolveRootType(registry, s.queryName, "query", true); err != nil {
		return nil, err
	}
	if s.mutationName != "" {
		if err := resolveRootType(registry, s.mutationName, "mutation", true); err != nil {
			return nil, err
		}
	}
	if s.subscriptionName != "" {
		if err := resolveRootType(registry, s.subscriptionName, "subscription", true); err != nil {
			return nil, err
		}
	}

	if err := checkClosure(registry); err != nil {
		return nil, err
	}
	if err := checkImplementations(registry); err != nil {
		return nil, err
	}
	if err := checkUnionMembers(registry); err != nil {
		return nil, err
	}

	return &graphql.Schema{Registry: registry, Data: s.data}, nil
}

func resolveRootType(r *graphql.Registry, name, which string, mustBeObject bool) error {
	if name == "" {
		return &graphql.SchemaError{Kind: graphql.ErrMissingRootType, Which: which}
	}
	t, ok := r.Lookup(name)
	if !ok {
		return &graphql.SchemaError{Kind: graphql.ErrMissingRootType, Which: which, TypeName: name}
	}
	if mustBeObject {
		if _, ok := t.(*graphql.ObjectType); !ok {
			return &graphql.SchemaError{Kind: graphql.ErrMissingRootType, Which: which, TypeName: name}
		}
	}
	return nil
}

func checkClosure(r *graphql.Registry) error {
	check := func(referencedFrom string, ref graphql.TypeRef) error {
		name := ref.BaseName()
		if _, ok := r.Lookup(name); !ok {
			return &graphql.SchemaError{Kind: graphql.ErrUnknownType, TypeName: name, ReferencedFrom: referencedFrom}
		}
		return nil
	}
	checkArgs := func(referencedFrom string, args *graphql.OrderedMap[*graphql.MetaInputValue]) error {
		if args == nil {
			return nil
		}
		for _, a := range args.Values() {
			if err := check(referencedFrom, a.Type); err != nil {
				return err
			}
		}
		return nil
	}

	for _, mt := range r.Types.Values() {
		switch t := mt.(type) {
		case *graphql.ObjectType:
			for _, f := range t.Fields.Values() {
				if err := check(t.Name, f.Type); err != nil {
					return err
				}
				if err := checkArgs(t.Name, f.Args); err != nil {
					return err
				}
			}
			for _, iface := range t.Interfaces.Names() {
				if _, ok := r.Lookup(iface); !ok {
					return &graphql.SchemaError{Kind: graphql.ErrUnknownType, TypeName: iface, ReferencedFrom: t.Name}
				}
			}
		case *graphql.InterfaceType:
			for _, f := range t.Fields.Values() {
				if err := check(t.Name, f.Type); err != nil {
					return err
				}
				if err := checkArgs(t.Name, f.Args); err != nil {
					return err
				}
			}
		case *graphql.UnionType:
			for _, member := range t.PossibleTypes.Names() {
				if _, ok := r.Lookup(member); !ok {
					return &graphql.SchemaError{Kind: graphql.ErrUnknownType, TypeName: member, ReferencedFrom: t.Name}
				}
			}
		case *graphql.InputObjectType:
			for _, f := range t.InputFields.Values() {
				if err := check(t.Name, f.Type); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// checkImplementations verifies that for every object declaring
// Implements(iface), the object carries a field for each of the
// interface's fields whose output type is covariant with the interface
// field's declared type.
func checkImplementations(r *graphql.Registry) error {
	for _, mt := range r.Types.Values() {
		obj, ok := mt.(*graphql.ObjectType)
		if !ok {
			continue
		}
		for _, ifaceName := range obj.Interfaces.Names() {
			ifaceType, ok := r.Lookup(ifaceName)
			if !ok {
				// Already reported by checkClosure.
				continue
			}
			iface, ok := ifaceType.(*graphql.InterfaceType)
			if !ok {
				return &graphql.SchemaError{
					Kind:      graphql.ErrInvalidImplementation,
					TypeName:  obj.Name,
					Interface: ifaceName,
					Reason:    fmt.Sprintf("%q is not an interface type", ifaceName),
				}
			}
			for _, ifaceField := range iface.Fields.Values() {
				objField, ok := obj.Fields.Get(ifaceField.Name)
				if !ok {
					return &graphql.SchemaError{
						Kind:      graphql.ErrInvalidImplementation,
						TypeName:  obj.Name,
						Interface: ifaceName,
						Reason:    fmt.Sprintf("missing field %q", ifaceField.Name),
					}
				}
				if !typesCovariant(r, ifaceField.Type, objField.Type) {
					return &graphql.SchemaError{
						Kind:      graphql.ErrInvalidImplementation,
						TypeName:  obj.Name,
						Interface: ifaceName,
						Reason: fmt.Sprintf("field %q has type %s, which is not covariant with %s",
							ifaceField.Name, objField.Type, ifaceField.Type),
					}
				}
			}
		}
	}
	return nil
}

// typesCovariant reports whether objType is an acceptable field type for an
// object implementing an interface whose matching field declares
// ifaceType: equal, or narrower only by being non-null where ifaceType is
// nullable, or naming an object type that itself implements (directly or
// as a union member) the interface/union ifaceType's base names.
func typesCovariant(r *graphql.Registry, ifaceType, objType graphql.TypeRef) bool {
	if ifaceType.Equal(objType) {
		return true
	}
	if ifaceType.IsNonNull() {
		if !objType.IsNonNull() {
			return false
		}
		return typesCovariant(r, ifaceType.Elem(), objType.Elem())
	}
	if objType.IsNonNull() {
		return typesCovariant(r, ifaceType, objType.Elem())
	}
	if ifaceType.IsList() {
		if !objType.IsList() {
			return false
		}
		return typesCovariant(r, ifaceType.Elem(), objType.Elem())
	}
	if objType.IsList() {
		return false
	}
	// Both are bare named references at this point.
	ifaceBase, ifaceOK := r.Lookup(ifaceType.BaseName())
	objBase, objOK := r.Lookup(objType.BaseName())
	if !ifaceOK || !objOK {
		return false
	}
	switch ib := ifaceBase.(type) {
	case *graphql.InterfaceType:
		if ib.PossibleTypes.Contains(objType.BaseName()) {
			return true
		}
		ot, ok := objBase.(*graphql.ObjectType)
		return ok && ot.Interfaces.Contains(ib.Name)
	case *graphql.UnionType:
		return ib.PossibleTypes.Contains(objType.BaseName())
	default:
		return false
	}
}

func checkUnionMembers(r *graphql.Registry) error {
	for _, mt := range r.Types.Values() {
		u, ok := mt.(*graphql.UnionType)
		if !ok {
			continue
		}
		for _, member := range u.PossibleTypes.Names() {
			t, ok := r.Lookup(member)
			if !ok {
				// Already reported by checkClosure.
				continue
			}
			if _, ok := t.(*graphql.ObjectType); !ok {
				return &graphql.SchemaError{
					Kind:   graphql.ErrInvalidUnionMember,
					TypeName: u.Name,
					Member: member,
					Reason: fmt.Sprintf("%q is not an object type", member),
				}
			}
		}
	}
	return nil
}
