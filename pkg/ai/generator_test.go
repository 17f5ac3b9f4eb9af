package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whxitte/Docker-Gen/pkg/analyze"
)

// MockLLMClient implements LLMClient for testing.
type MockLLMClient struct {
	result      string
	err         error
	systemRoles []string
	prompts     []string
}

func NewMockLLMClient(result string) *MockLLMClient {
	return &MockLLMClient{result: result}
}

func (m *MockLLMClient) GetChatCompletion(_ context.Context, systemRole, prompt string) (string, TokenUsage, error) {
	m.systemRoles = append(m.systemRoles, systemRole)
	m.prompts = append(m.prompts, prompt)
	return m.result, TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30}, m.err
}

func sampleContext() *analyze.ProjectContext {
	ctx := analyze.NewProjectContext()
	ctx.ProjectType = analyze.TypeNode
	ctx.Frameworks = []string{"express"}
	ctx.EntryPoints = []string{"index.js"}
	ctx.Ports = []int{3000, 8080}
	ctx.EnvVars = map[string]string{"PORT": "8080", "DB_URL": "postgres://secret"}
	ctx.Services = map[string]analyze.Service{
		"api": {Kind: "docker", Path: "/p/api", Dockerfile: "/p/api/Dockerfile"},
	}
	return ctx
}

func TestGenerateDockerfile_PromptContents(t *testing.T) {
	mock := NewMockLLMClient("FROM node:20-alpine\n")
	g := NewGenerator(mock, zerolog.Nop())

	content, err := g.GenerateDockerfile(context.Background(), sampleContext())
	require.NoError(t, err)
	assert.Equal(t, "FROM node:20-alpine\n", content)

	require.Len(t, mock.prompts, 1)
	prompt := mock.prompts[0]
	assert.Contains(t, prompt, "node project")
	assert.Contains(t, prompt, "express")
	assert.Contains(t, prompt, "index.js")
	assert.Contains(t, prompt, "3000")
	assert.Contains(t, prompt, "Express best practices")
	assert.Contains(t, mock.systemRoles[0], "DevOps engineer")
}

func TestGenerateDockerfile_EnvValuesNeverInPrompt(t *testing.T) {
	mock := NewMockLLMClient("FROM scratch\n")
	g := NewGenerator(mock, zerolog.Nop())

	_, err := g.GenerateDockerfile(context.Background(), sampleContext())
	require.NoError(t, err)

	prompt := mock.prompts[0]
	assert.Contains(t, prompt, "DB_URL")
	assert.NotContains(t, prompt, "postgres://secret")
}

func TestGenerateCompose_IncludesServiceNames(t *testing.T) {
	mock := NewMockLLMClient("services:\n  api: {}\n")
	g := NewGenerator(mock, zerolog.Nop())

	content, err := g.GenerateCompose(context.Background(), sampleContext())
	require.NoError(t, err)
	assert.NotEmpty(t, content)

	assert.Contains(t, mock.prompts[0], "api")
	assert.Contains(t, mock.systemRoles[0], "Docker expert")
}

func TestGenerateReadme_IncludesDetectedFacts(t *testing.T) {
	mock := NewMockLLMClient("# Docker Guide\n")
	g := NewGenerator(mock, zerolog.Nop())

	_, err := g.GenerateReadme(context.Background(), sampleContext())
	require.NoError(t, err)

	prompt := mock.prompts[0]
	assert.Contains(t, prompt, "express")
	assert.Contains(t, prompt, "api")
	assert.Contains(t, prompt, "index.js")
}

func TestGenerate_ClientErrorPropagates(t *testing.T) {
	mock := NewMockLLMClient("")
	mock.err = errors.New("quota exceeded")
	g := NewGenerator(mock, zerolog.Nop())

	_, err := g.GenerateDockerfile(context.Background(), sampleContext())
	require.Error(t, err)
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestTestConn(t *testing.T) {
	mock := NewMockLLMClient("reachable")
	reply, err := TestConn(context.Background(), mock)
	require.NoError(t, err)
	assert.Equal(t, "reachable", reply)
}
