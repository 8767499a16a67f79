package rtkquery

import (
	"regexp"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/wundergraph/rtkquery-codegen/pkg/config"
)

const (
	documentVariableSuffix = "Document"
	variablesTypeSuffix    = "Variables"
)

var (
	lowerUpperBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymBoundary    = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
	wordSeparator      = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// PascalCase converts a GraphQL name into an exported TypeScript identifier, e.g. getIcon -> GetIcon.
// Words start at separators and at lower to upper case changes, digits continue the current word
// (user2fa -> User2fa, getUserByID -> GetUserById). Type generation names operations the same way.
func PascalCase(name string) string {
	var b strings.Builder
	for i, word := range words(name) {
		if i > 0 && word[0] >= '0' && word[0] <= '9' {
			b.WriteByte('_')
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	return b.String()
}

func words(name string) []string {
	split := lowerUpperBoundary.ReplaceAllString(name, "${1}\x00${2}")
	split = acronymBoundary.ReplaceAllString(split, "${1}\x00${2}")
	split = wordSeparator.ReplaceAllString(split, "\x00")
	return strings.FieldsFunc(split, func(r rune) bool { return r == 0 })
}

// DocumentVariableName is the name of the constant holding an operation document.
func DocumentVariableName(operationName string) string {
	return PascalCase(operationName) + documentVariableSuffix
}

// FragmentVariableName is the name of the constant holding a fragment document.
func FragmentVariableName(fragmentName string) string {
	return PascalCase(fragmentName)
}

// KindName returns the capitalized operation kind, e.g. Query.
func KindName(kind ast.Operation) string {
	switch kind {
	case ast.Query:
		return "Query"
	case ast.Mutation:
		return "Mutation"
	case ast.Subscription:
		return "Subscription"
	}
	return PascalCase(string(kind))
}

// TypeNamer derives the result and variables type names of an operation.
// The names are opaque to the generator, they must match what the type generation emits.
type TypeNamer struct {
	Namespace             string
	Prefix                string
	Suffix                string
	DedupeOperationSuffix bool
	OmitOperationSuffix   bool
}

func NewTypeNamer(cfg config.Config) TypeNamer {
	return TypeNamer{
		Namespace:             cfg.ImportOperationTypesFrom,
		Prefix:                cfg.TypesPrefix,
		Suffix:                cfg.TypesSuffix,
		DedupeOperationSuffix: cfg.DedupeOperationSuffix,
		OmitOperationSuffix:   cfg.OmitOperationSuffix,
	}
}

func (n TypeNamer) ResultType(kind ast.Operation, operationName string) string {
	return n.qualify(n.Prefix + PascalCase(operationName) + n.operationSuffix(kind, operationName) + n.Suffix)
}

func (n TypeNamer) VariablesType(kind ast.Operation, operationName string) string {
	return n.qualify(n.Prefix + PascalCase(operationName) + n.operationSuffix(kind, operationName) + variablesTypeSuffix + n.Suffix)
}

func (n TypeNamer) operationSuffix(kind ast.Operation, operationName string) string {
	if n.OmitOperationSuffix {
		return ""
	}
	suffix := KindName(kind)
	if n.DedupeOperationSuffix && strings.HasSuffix(strings.ToLower(operationName), strings.ToLower(suffix)) {
		return ""
	}
	return suffix
}

func (n TypeNamer) qualify(typeName string) string {
	if n.Namespace == "" {
		return typeName
	}
	return n.Namespace + "." + typeName
}

// HasRequiredVariables reports whether the operation declares a non-null variable without default value.
func HasRequiredVariables(operation *ast.OperationDefinition) bool {
	for _, variable := range operation.VariableDefinitions {
		if variable.Type != nil && variable.Type.NonNull && variable.DefaultValue == nil {
			return true
		}
	}
	return false
}
