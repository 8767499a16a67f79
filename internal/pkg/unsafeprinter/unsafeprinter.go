package unsafeprinter

import (
	"bytes"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/wundergraph/rtkquery-codegen/internal/pkg/unsafeparser"
	"github.com/wundergraph/rtkquery-codegen/pkg/printer"
)

func Print(document *ast.QueryDocument) string {
	buf := bytes.Buffer{}
	if err := printer.New().PrintExecutable(document, &buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func Prettify(document string) string {
	return Print(unsafeparser.ParseQueryDocumentString(document))
}
