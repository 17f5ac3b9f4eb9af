package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WritesNewFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, false, zerolog.Nop())

	require.NoError(t, w.Write("Dockerfile", "FROM alpine:3.20\n"))

	content, err := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	require.NoError(t, err)
	assert.Equal(t, "FROM alpine:3.20\n", string(content))
}

func TestWriter_RefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, false, zerolog.Nop())

	require.NoError(t, w.Write("Dockerfile", "first"))
	err := w.Write("Dockerfile", "second")
	require.Error(t, err)
	assert.ErrorContains(t, err, "--force")

	content, _ := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	assert.Equal(t, "first", string(content))
}

func TestWriter_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, true, zerolog.Nop())

	require.NoError(t, w.Write("Dockerfile", "first"))
	require.NoError(t, w.Write("Dockerfile", "second"))

	content, _ := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	assert.Equal(t, "second", string(content))
}

func TestWriter_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(filepath.Join(dir, "out", "nested"), false, zerolog.Nop())

	require.NoError(t, w.Write("docker-compose.yml", "services: {}\n"))
	assert.FileExists(t, filepath.Join(dir, "out", "nested", "docker-compose.yml"))
}
