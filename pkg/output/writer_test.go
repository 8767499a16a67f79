package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src", "graphql", "user.generated.ts")
	w := NewWriter(nil)

	changed, err := w.Write(path, []byte("export default injectedRtkApi;\n"))
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export default injectedRtkApi;\n", string(content))

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, past, past))

	changed, err = w.Write(path, []byte("export default injectedRtkApi;\n"))
	require.NoError(t, err)
	assert.False(t, changed)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past))

	changed, err = w.Write(path, []byte("export { injectedRtkApi as userApi };\n"))
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestWriter_WriteSameLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.generated.ts")
	w := NewWriter(nil)

	_, err := w.Write(path, []byte("export const { useGetUserQuery } = injectedRtkApi;\n"))
	require.NoError(t, err)

	changed, err := w.Write(path, []byte("export const { useGetPostQuery } = injectedRtkApi;\n"))
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export const { useGetPostQuery } = injectedRtkApi;\n", string(content))
}

func TestWriter_WriteToDirectory(t *testing.T) {
	_, err := NewWriter(nil).Write(t.TempDir(), []byte("x"))
	assert.Error(t, err)
}
