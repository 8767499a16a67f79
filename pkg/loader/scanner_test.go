package loader

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jensneuse/diffview"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importPaths(file *GraphQLFile) []string {
	var out []string
	for _, importFile := range file.Imports {
		out = append(out, importFile.Path)
	}
	return out
}

func TestScanner_ScanFile(t *testing.T) {
	scanner := Scanner{}
	file, err := scanner.ScanFile("./testdata/operations/feed.graphql")
	require.NoError(t, err)

	assert.Equal(t, "testdata/operations/feed.graphql", file.Path)
	assert.Equal(t, []string{"testdata/fragments/post.graphql", "testdata/fragments/user.graphql"}, importPaths(file))
	assert.Contains(t, string(file.Content), "query getFeed")
}

func TestScanner_ScanPattern(t *testing.T) {
	scanner := Scanner{}
	file, err := scanner.ScanPattern("./testdata/operations/*.graphql")
	require.NoError(t, err)

	assert.Equal(t, "", file.Path)
	assert.Equal(t, []string{"testdata/operations/feed.graphql", "testdata/operations/user.graphql"}, importPaths(file))

	var names []string
	for _, source := range file.Sources() {
		names = append(names, source.Name)
	}
	assert.Equal(t, []string{
		"testdata/operations/feed.graphql",
		"testdata/fragments/post.graphql",
		"testdata/fragments/user.graphql",
		"testdata/operations/user.graphql",
	}, names)
}

func TestGraphQLFile_Render(t *testing.T) {
	scanner := Scanner{}
	file, err := scanner.ScanFile("testdata/schema/schema.graphql")
	require.NoError(t, err)

	out := bytes.Buffer{}
	require.NoError(t, file.Render(true, &out))
	dump := out.Bytes()

	goldie.New(t).Assert(t, "scanner_render", dump)
	if t.Failed() {
		fixture, err := os.ReadFile("./testdata/scanner_render.golden")
		if err != nil {
			t.Fatal(err)
		}

		diffview.NewGoland().DiffViewBytes("scanner_render", fixture, dump)
	}

	out.Reset()
	require.NoError(t, file.Render(false, &out))
	assert.NotContains(t, out.String(), "#file:")
	assert.NotContains(t, out.String(), "#import")
}

func TestGraphQLFile_RenderSharedImport(t *testing.T) {
	scanner := Scanner{}
	file, err := scanner.ScanPattern("./testdata/operations/*.graphql")
	require.NoError(t, err)

	out := bytes.Buffer{}
	require.NoError(t, file.Render(true, &out))

	assert.Equal(t, 1, strings.Count(out.String(), "#file: testdata/fragments/user.graphql"))
	assert.Equal(t, 1, strings.Count(out.String(), "fragment UserFields on User"))
	assert.Equal(t, 1, strings.Count(out.String(), "query getUser"))
}

func TestScannerImportCycle(t *testing.T) {
	scanner := Scanner{}
	_, err := scanner.ScanFile("./testdata/cycle/a.graphql")

	assert.ErrorIs(t, err, ErrImportCycle)
	assert.EqualError(t, err, "testdata/cycle/a.graphql: loader: file forms import cycle")
}

func TestScannerMissingImport(t *testing.T) {
	scanner := Scanner{}
	_, err := scanner.ScanFile("./testdata/missing/import.graphql")

	assert.ErrorIs(t, err, os.ErrNotExist)
}
