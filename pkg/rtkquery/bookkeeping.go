package rtkquery

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/wundergraph/rtkquery-codegen/internal/pkg/quotes"
	"github.com/wundergraph/rtkquery-codegen/pkg/config"
)

// Bookkeeper records run-wide facts about every visited operation, named or not.
type Bookkeeper interface {
	CollectOperation(operation *ast.OperationDefinition)
}

// OperationCollector is the Bookkeeper of a Module.
// It tracks the visited operations and the imports they require.
type OperationCollector struct {
	operations   []*ast.OperationDefinition
	imports      []string
	knownImports map[string]struct{}
	typesImport  string
}

func NewOperationCollector(cfg config.Config) *OperationCollector {
	c := &OperationCollector{
		knownImports: map[string]struct{}{},
	}
	if cfg.ImportOperationTypesFrom != "" && cfg.ImportOperationTypesPath != "" {
		c.typesImport = fmt.Sprintf("import * as %s from %s;", cfg.ImportOperationTypesFrom, quotes.WrapSingle(cfg.ImportOperationTypesPath))
	}
	return c
}

func (c *OperationCollector) CollectOperation(operation *ast.OperationDefinition) {
	c.operations = append(c.operations, operation)
	if c.typesImport != "" {
		c.TrackImport(c.typesImport)
	}
}

// TrackImport adds an import statement once, keeping the order of first appearance.
func (c *OperationCollector) TrackImport(statement string) {
	if _, ok := c.knownImports[statement]; ok {
		return
	}
	c.knownImports[statement] = struct{}{}
	c.imports = append(c.imports, statement)
}

func (c *OperationCollector) HasOperations() bool {
	return len(c.operations) != 0
}

func (c *OperationCollector) Operations() []*ast.OperationDefinition {
	return c.operations
}

func (c *OperationCollector) Imports() []string {
	return c.imports
}
