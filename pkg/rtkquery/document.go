package rtkquery

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/wundergraph/rtkquery-codegen/internal/pkg/quotes"
	"github.com/wundergraph/rtkquery-codegen/pkg/printer"
)

// RenderDocument renders the document constant of an operation. The printed operation is followed
// by one placeholder per referenced fragment, each pointing to the constant of that fragment.
// Operations without a name render to an empty string.
func RenderDocument(operation *ast.OperationDefinition, fragments []string, export bool) string {
	if operation.Name == "" {
		return ""
	}

	var b strings.Builder
	writeConstDeclaration(&b, DocumentVariableName(operation.Name), export)
	b.WriteString("`\n")
	b.WriteString(quotes.EscapeTemplateLiteral(printer.PrintOperation(operation)))
	if len(fragments) != 0 {
		b.WriteString("\n")
		for _, fragment := range fragments {
			b.WriteString(quotes.Placeholder(FragmentVariableName(fragment)))
		}
	}
	b.WriteString("`;")
	return b.String()
}

// RenderFragmentDocument renders the constant every placeholder of a spread fragment refers to.
func RenderFragmentDocument(fragment *ast.FragmentDefinition, export bool) string {
	var b strings.Builder
	writeConstDeclaration(&b, FragmentVariableName(fragment.Name), export)
	b.WriteString(quotes.WrapTemplateLiteral("\n" + printer.PrintFragment(fragment)))
	b.WriteString(";")
	return b.String()
}

func writeConstDeclaration(b *strings.Builder, name string, export bool) {
	if export {
		b.WriteString("export ")
	}
	b.WriteString("const ")
	b.WriteString(name)
	b.WriteString(" = ")
}
