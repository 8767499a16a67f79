package rtkquery

import (
	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/ast"
)

// Emitter turns one operation into its document constant and records its bindings.
type Emitter interface {
	EmitOperation(operation *ast.OperationDefinition) (string, error)
}

// Visitor walks the operations of a document in order. For each operation the Bookkeeper
// runs first, then the Emitter. An operation is fully emitted before the next one is visited.
type Visitor struct {
	bookkeeper Bookkeeper
	emitter    Emitter
}

func NewVisitor(bookkeeper Bookkeeper, emitter Emitter) *Visitor {
	return &Visitor{
		bookkeeper: bookkeeper,
		emitter:    emitter,
	}
}

// Walk returns the non-empty document constants of all operations in document order.
func (v *Visitor) Walk(document *ast.QueryDocument) ([]string, error) {
	documents := make([]string, 0, len(document.Operations))
	for _, operation := range document.Operations {
		v.bookkeeper.CollectOperation(operation)
		out, err := v.emitter.EmitOperation(operation)
		if err != nil {
			return nil, errors.Wrapf(err, "visiting operation %q", operation.Name)
		}
		if out != "" {
			documents = append(documents, out)
		}
	}
	return documents, nil
}
