package loader

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/validator"
	validatorrules "github.com/vektah/gqlparser/v2/validator/rules"

	"github.com/wundergraph/rtkquery-codegen/pkg/operationreport"
)

// Validate checks document against schema.
// Unused fragments are allowed, fragment files are usually shared between outputs.
func Validate(schema *ast.Schema, document *ast.QueryDocument) operationreport.Report {
	rules := validatorrules.NewDefaultRules()
	rules.RemoveRule(validatorrules.NoUnusedFragmentsRule.Name)

	report := operationreport.Report{}
	for _, err := range validator.ValidateWithRules(schema, document, rules) {
		report.AddExternalError(operationreport.ErrFromGQLError(err))
	}
	return report
}
