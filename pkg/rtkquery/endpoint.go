package rtkquery

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Endpoint is everything needed to render the binding of one named operation.
type Endpoint struct {
	Name                 string
	Kind                 ast.Operation
	ResultType           string
	VariablesType        string
	DocumentVariable     string
	HasRequiredVariables bool
}

// ArgumentType is the type of the single argument passed to the endpoint's query function.
func (e Endpoint) ArgumentType() string {
	argumentType := "IUseFetcherArgs<" + e.VariablesType + ">"
	if !e.HasRequiredVariables {
		argumentType += " | void"
	}
	return argumentType
}

// RenderEndpoint renders one entry of the endpoints map passed to injectEndpoints.
// With addTransformResponse the entry gets an identity transformResponse over its result type,
// a starting point for manual customization.
func RenderEndpoint(e Endpoint, addTransformResponse bool) string {
	var b strings.Builder
	b.WriteString("\n    ")
	b.WriteString(e.Name)
	b.WriteString(": build.")
	b.WriteString(string(e.Kind))
	b.WriteString("<")
	b.WriteString(e.ResultType)
	b.WriteString(", ")
	b.WriteString(e.ArgumentType())
	b.WriteString(">({\n      query: (args) => ({ document: ")
	b.WriteString(e.DocumentVariable)
	b.WriteString(", args })")
	if addTransformResponse {
		b.WriteString(",\n      transformResponse: (response: ")
		b.WriteString(e.ResultType)
		b.WriteString(") => response")
	}
	b.WriteString("\n    }),")
	return b.String()
}
