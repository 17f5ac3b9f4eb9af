package filetree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestRender_SkipsDefaultIgnores(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "main.go")
	write(t, dir, "node_modules/pkg/index.js")
	write(t, dir, "debug.log")

	tree, err := Render(dir)
	require.NoError(t, err)

	assert.Contains(t, tree, "main.go")
	assert.NotContains(t, tree, "node_modules")
	assert.NotContains(t, tree, "debug.log")
}

func TestRender_HonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "keep.go")
	write(t, dir, "generated.pb.go")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.pb.go\n"), 0o644))

	tree, err := Render(dir)
	require.NoError(t, err)

	assert.Contains(t, tree, "keep.go")
	assert.NotContains(t, tree, "generated.pb.go")
}

func TestRender_MissingRoot(t *testing.T) {
	_, err := Render(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
