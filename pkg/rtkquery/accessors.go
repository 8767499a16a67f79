package rtkquery

import "github.com/vektah/gqlparser/v2/ast"

// AccessorNames returns the names of the hooks RTK Query generates for an endpoint.
// Subscriptions have none, they get a standalone hook instead.
func AccessorNames(kind ast.Operation, operationName string) []string {
	name := PascalCase(operationName)
	switch kind {
	case ast.Query:
		return []string{"use" + name + "Query", "useLazy" + name + "Query"}
	case ast.Mutation:
		return []string{"use" + name + "Mutation"}
	default:
		return nil
	}
}
