// Package unsafeparser parses GraphQL documents and panics on errors.
// It's meant for tests only.
package unsafeparser

import (
	"os"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func ParseQueryDocumentString(input string) *ast.QueryDocument {
	doc, err := parser.ParseQuery(&ast.Source{Name: "operation.graphql", Input: input})
	if err != nil {
		panic(err)
	}
	return doc
}

func ParseQueryDocumentFile(filePath string) *ast.QueryDocument {
	data, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	return ParseQueryDocumentString(string(data))
}

func LoadSchemaString(input string) *ast.Schema {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: input})
	if err != nil {
		panic(err)
	}
	return schema
}
