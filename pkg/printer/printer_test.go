package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func parse(t *testing.T, input string) *ast.QueryDocument {
	t.Helper()
	doc, err := parser.ParseQuery(&ast.Source{Input: input})
	require.NoError(t, err)
	return doc
}

func TestPrinter(t *testing.T) {
	run := func(input string) func(t *testing.T) {
		return func(t *testing.T) {
			printed := New().PrintOperation(parse(t, input).Operations[0])
			reprinted := New().PrintOperation(parse(t, printed).Operations[0])

			assert.Equal(t, printed, reprinted)
			assert.Equal(t, strings.TrimSpace(printed), printed)
		}
	}

	t.Run("single field", run("query q {foo}"))
	t.Run("field with subselection", run("query q {foo {bar}}"))
	t.Run("fields with spread and inline", run("query q {foo {bar {bat ...bal ... on Baz {bak}}} baz}"))
	t.Run("variables", run("query q($id: ID!, $first: Int = 10) {user(id: $id) {friends(first: $first) {id}}}"))
	t.Run("mutation", run("mutation m($input: CreateInput!) {create(input: $input) {id}}"))
	t.Run("subscription", run("subscription s {messages {id body}}"))
}

func TestPrinter_PrintOperation(t *testing.T) {
	doc := parse(t, `query getIcon { iconSvg { ...ResultIconSvg } } fragment ResultIconSvg on IconSvg { id }`)

	printed := PrintOperation(doc.Operations[0])
	assert.True(t, strings.HasPrefix(printed, "query getIcon"))
	assert.Contains(t, printed, "... ResultIconSvg")
	assert.NotContains(t, printed, "fragment")

	fragment := PrintFragment(doc.Fragments[0])
	assert.True(t, strings.HasPrefix(fragment, "fragment ResultIconSvg on IconSvg"))
}

func TestPrinter_WithIndent(t *testing.T) {
	op := parse(t, `query q { a { b } }`).Operations[0]

	assert.Contains(t, WithIndent("\t").PrintOperation(op), "\n\ta")
	assert.Contains(t, New().PrintOperation(op), "\n  a")
}

func TestPrinter_PrintExecutable(t *testing.T) {
	doc := parse(t, `query a { x } query b { y } fragment F on T { z }`)

	buf := bytes.Buffer{}
	require.NoError(t, New().PrintExecutable(doc, &buf))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Less(t, strings.Index(out, "query a"), strings.Index(out, "query b"))
	assert.Less(t, strings.Index(out, "query b"), strings.Index(out, "fragment F"))
}

func TestPrinter_PrintSchemaDocument(t *testing.T) {
	doc, err := parser.ParseSchema(&ast.Source{Input: `type Query { user(id: ID!): User } type User { id: ID! name: String }`})
	require.NoError(t, err)

	buf := bytes.Buffer{}
	require.NoError(t, New().PrintSchemaDocument(doc, &buf))

	out := buf.String()
	assert.Contains(t, out, "type Query {\n  user(id: ID!): User\n}")
	assert.Contains(t, out, "type User {\n  id: ID!\n  name: String\n}")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}
