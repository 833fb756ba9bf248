// Package graphql provides the runtime data model for a dynamically built
// GraphQL schema: type references, the authoritative type Registry, the
// FieldValue/ResolverContext contract a resolver callback satisfies, and
// the schema-construction error taxonomy.
//
// The package does not parse GraphQL documents or execute queries; see the
// ast package for the document shape this package's consumers walk, and the
// validation package for the traversal that checks a document against a
// Registry. A host executor is expected to drive Resolver callbacks itself,
// using ResolverContext and FieldValue as the calling convention.
package graphql
