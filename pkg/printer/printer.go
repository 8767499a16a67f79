// Package printer renders executable GraphQL definitions in their canonical text form.
package printer

import (
	"bytes"
	"io"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

const defaultIndent = "  "

type Printer struct {
	indent string
	buf    bytes.Buffer
}

func New() *Printer {
	return &Printer{
		indent: defaultIndent,
	}
}

// WithIndent returns a printer using indent for nested selections.
func WithIndent(indent string) *Printer {
	return &Printer{
		indent: indent,
	}
}

// PrintOperation renders a single operation without a trailing line break.
func (p *Printer) PrintOperation(operation *ast.OperationDefinition) string {
	return p.print(&ast.QueryDocument{Operations: ast.OperationList{operation}})
}

// PrintFragment renders a single fragment definition without a trailing line break.
func (p *Printer) PrintFragment(fragment *ast.FragmentDefinition) string {
	return p.print(&ast.QueryDocument{Fragments: ast.FragmentDefinitionList{fragment}})
}

// PrintExecutable writes all operations followed by all fragments of document to out.
func (p *Printer) PrintExecutable(document *ast.QueryDocument, out io.Writer) error {
	_, err := io.WriteString(out, p.print(document)+"\n")
	return err
}

// PrintSchemaDocument writes the type system definitions of document to out.
func (p *Printer) PrintSchemaDocument(document *ast.SchemaDocument, out io.Writer) error {
	p.buf.Reset()
	formatter.NewFormatter(&p.buf, formatter.WithIndent(p.indent)).FormatSchemaDocument(document)
	_, err := io.WriteString(out, strings.TrimSpace(p.buf.String())+"\n")
	return err
}

func (p *Printer) print(document *ast.QueryDocument) string {
	p.buf.Reset()
	formatter.NewFormatter(&p.buf, formatter.WithIndent(p.indent)).FormatQueryDocument(document)
	return strings.TrimSpace(p.buf.String())
}

// PrintOperation renders operation with the default indentation.
func PrintOperation(operation *ast.OperationDefinition) string {
	return New().PrintOperation(operation)
}

// PrintFragment renders fragment with the default indentation.
func PrintFragment(fragment *ast.FragmentDefinition) string {
	return New().PrintFragment(fragment)
}
