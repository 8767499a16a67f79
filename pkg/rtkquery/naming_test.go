package rtkquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/wundergraph/rtkquery-codegen/internal/pkg/unsafeparser"
	"github.com/wundergraph/rtkquery-codegen/pkg/config"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "GetIcon", PascalCase("getIcon"))
	assert.Equal(t, "GetIconDocument", DocumentVariableName("getIcon"))
	assert.Equal(t, "ResultIconSvg", FragmentVariableName("ResultIconSvg"))
	assert.Equal(t, "Mutation", KindName(ast.Mutation))
}

func TestPascalCase(t *testing.T) {
	for input, expected := range map[string]string{
		"getIcon":       "GetIcon",
		"user2fa":       "User2fa",
		"getUserByID":   "GetUserById",
		"getHTMLPage":   "GetHtmlPage",
		"get_user-name": "GetUserName",
		"user_2fa":      "User_2fa",
		"ResultIconSvg": "ResultIconSvg",
		"":              "",
	} {
		assert.Equal(t, expected, PascalCase(input), input)
	}
}

func TestNamesWithDigits(t *testing.T) {
	assert.Equal(t, "User2faDocument", DocumentVariableName("user2fa"))
	assert.Equal(t, "User2faQuery", TypeNamer{}.ResultType(ast.Query, "user2fa"))
	assert.Equal(t, []string{"useUser2faQuery", "useLazyUser2faQuery"}, AccessorNames(ast.Query, "user2fa"))
	assert.Equal(t, "GetUserByIdQueryVariables", TypeNamer{}.VariablesType(ast.Query, "getUserByID"))
}

func TestTypeNamer(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		namer := NewTypeNamer(config.Default())
		assert.Equal(t, "GetIconQuery", namer.ResultType(ast.Query, "getIcon"))
		assert.Equal(t, "GetIconQueryVariables", namer.VariablesType(ast.Query, "getIcon"))
		assert.Equal(t, "OnMessageSubscription", namer.ResultType(ast.Subscription, "onMessage"))
	})

	t.Run("namespace prefix and suffix", func(t *testing.T) {
		cfg := config.Default()
		cfg.ImportOperationTypesFrom = "Types"
		cfg.TypesPrefix = "I"
		cfg.TypesSuffix = "Type"
		namer := NewTypeNamer(cfg)
		assert.Equal(t, "Types.ICreateUserMutationType", namer.ResultType(ast.Mutation, "createUser"))
		assert.Equal(t, "Types.ICreateUserMutationVariablesType", namer.VariablesType(ast.Mutation, "createUser"))
	})

	t.Run("dedupe operation suffix", func(t *testing.T) {
		namer := TypeNamer{DedupeOperationSuffix: true}
		assert.Equal(t, "GetUserQuery", namer.ResultType(ast.Query, "getUserQuery"))
		assert.Equal(t, "GetUserQuery", namer.ResultType(ast.Query, "getUser"))
	})

	t.Run("omit operation suffix", func(t *testing.T) {
		namer := TypeNamer{OmitOperationSuffix: true}
		assert.Equal(t, "GetUser", namer.ResultType(ast.Query, "getUser"))
		assert.Equal(t, "GetUserVariables", namer.VariablesType(ast.Query, "getUser"))
	})
}

func TestHasRequiredVariables(t *testing.T) {
	run := func(operation string, expected bool) func(t *testing.T) {
		return func(t *testing.T) {
			doc := unsafeparser.ParseQueryDocumentString(operation)
			assert.Equal(t, expected, HasRequiredVariables(doc.Operations[0]))
		}
	}

	t.Run("no variables", run(`query a { x }`, false))
	t.Run("nullable variable", run(`query a($id: ID) { x(id: $id) }`, false))
	t.Run("non null variable", run(`query a($id: ID!) { x(id: $id) }`, true))
	t.Run("non null variable with default", run(`query a($first: Int! = 10) { x(first: $first) }`, false))
	t.Run("non null list", run(`query a($ids: [ID]!) { x(ids: $ids) }`, true))
	t.Run("mixed", run(`query a($q: String, $id: ID!) { x(id: $id, q: $q) }`, true))
}
