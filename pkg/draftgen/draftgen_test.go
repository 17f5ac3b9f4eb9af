package draftgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whxitte/Docker-Gen/pkg/ai"
)

type stubClient struct {
	reply string
}

func (s *stubClient) GetChatCompletion(_ context.Context, _, _ string) (string, ai.TokenUsage, error) {
	return s.reply, ai.TokenUsage{}, nil
}

func TestTemplateNames_NotEmpty(t *testing.T) {
	names := TemplateNames()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
}

func TestSelectTemplate_AcceptsCatalogName(t *testing.T) {
	names := TemplateNames()
	require.NotEmpty(t, names)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module demo\n"), 0o644))

	// The stub echoes a valid catalog name with surrounding whitespace,
	// which the selector must trim.
	client := &stubClient{reply: "  " + names[0] + "\n"}
	selected, err := SelectTemplate(context.Background(), client, dir)
	require.NoError(t, err)
	assert.Equal(t, names[0], selected)
}

func TestSelectTemplate_RejectsUnknownName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module demo\n"), 0o644))

	client := &stubClient{reply: "not-a-real-template"}
	_, err := SelectTemplate(context.Background(), client, dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid template name")
}
