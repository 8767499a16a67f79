package codegen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wundergraph/rtkquery-codegen/pkg/config"
	"github.com/wundergraph/rtkquery-codegen/pkg/operationreport"
)

func userTarget(output string) config.Target {
	return config.Target{
		Output:    output,
		Schema:    []string{"testdata/schema.graphql"},
		Documents: []string{"testdata/operations/*.graphql"},
		Config: config.RawConfig{
			ImportBaseAPIFrom: config.String("@/lib/baseApi"),
			ExportHooks:       config.Bool(true),
			ExportAPI:         config.Bool(true),
			ExportDefaultAPI:  config.Bool(false),
			ExportDocument:    config.Bool(true),
		},
	}
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()
	output := filepath.Join(t.TempDir(), "src", "user.generated.ts")

	result, err := NewRunner().Run(ctx, userTarget(output))
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 3, result.Operations)
	assert.Equal(t, 1, result.Fragments)

	expected, err := os.ReadFile("testdata/user_module.golden")
	require.NoError(t, err)
	actual, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual))

	result, err = NewRunner().Run(ctx, userTarget(output))
	require.NoError(t, err)
	assert.False(t, result.Changed)
}

func TestRunner_RunDryRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "user.generated.ts")

	result, err := NewRunner(WithDryRun(true)).Run(context.Background(), userTarget(output))
	require.NoError(t, err)
	assert.Contains(t, string(result.Content), "export { injectedRtkApi as userApi };")

	_, err = os.Stat(output)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunner_RunMissingBaseAPI(t *testing.T) {
	target := userTarget(filepath.Join(t.TempDir(), "user.generated.ts"))
	target.Config.ImportBaseAPIFrom = nil
	target.Documents = []string{"testdata/does-not-exist/*.graphql"}

	_, err := NewRunner().Run(context.Background(), target)
	assert.ErrorIs(t, err, config.ErrMissingImportBaseAPIFrom)
}

func TestRunner_RunValidation(t *testing.T) {
	target := userTarget(filepath.Join(t.TempDir(), "user.generated.ts"))
	target.Documents = []string{"testdata/invalid/*.graphql"}

	t.Run("invalid documents are rejected", func(t *testing.T) {
		_, err := NewRunner().Run(context.Background(), target)
		require.Error(t, err)

		var report operationreport.Report
		require.True(t, errors.As(err, &report))
		var rules []string
		for _, external := range report.ExternalErrors {
			rules = append(rules, external.Rule)
		}
		assert.Contains(t, rules, "KnownArgumentNames")
		assert.NoFileExists(t, target.Output)
	})

	t.Run("validation disabled", func(t *testing.T) {
		result, err := NewRunner(WithSchemaValidation(false)).Run(context.Background(), target)
		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.FileExists(t, target.Output)
	})
}

func TestRunner_RunProject(t *testing.T) {
	dir := t.TempDir()
	project, err := config.ParseProject([]byte(`
schema: testdata/schema.graphql
documents: testdata/operations/*.graphql
config:
  importBaseApiFrom: '@/lib/baseApi'
generates:
  ` + filepath.Join(dir, "user.generated.ts") + `:
    config:
      exportApi: true
      exportDefaultApi: false
  ` + filepath.Join(dir, "hooks.generated.ts") + `:
    config:
      exportHooks: true
`))
	require.NoError(t, err)

	results, err := NewRunner().RunProject(context.Background(), project)
	require.NoError(t, err)
	require.Len(t, results, 2)

	hooks, err := os.ReadFile(filepath.Join(dir, "hooks.generated.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(hooks), "export default injectedRtkApi;")
	assert.Contains(t, string(hooks), "export const useOnUserUpdated = <")

	user, err := os.ReadFile(filepath.Join(dir, "user.generated.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(user), "export { injectedRtkApi as userApi };")
	assert.NotContains(t, string(user), "useOnUserUpdated")
}
