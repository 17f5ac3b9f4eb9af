package ai

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/whxitte/Docker-Gen/pkg/analyze"
)

const (
	dockerfileSystemRole = "You are a senior DevOps engineer creating production Dockerfiles."
	composeSystemRole    = "You are a Docker expert creating production compose files."
	readmeSystemRole     = "You are a DevOps documentation expert."

	dockerfilePromptTemplate = `Create a production Dockerfile for a %s project.
Frameworks: [%s] %s
Entry points: [%s]
Ports: %v
Environment variables: [%s]

Requirements:
- Multi-stage build
- Non-root user
- Security best practices
- Production optimizations
- Health checks

Provide ONLY the Dockerfile content.`

	composePromptTemplate = `Create a docker-compose.yml for a %s project.
Detected services: [%s]
Ports: %v
Environment variables: [%s]

Requirements:
- Network isolation
- Resource constraints
- Volume management
- Health checks
- Production-grade settings

Provide ONLY valid YAML.`

	readmePromptTemplate = `Generate a Docker README documentation for a %s project with the following details:
- Detected frameworks: [%s]
- Services: [%s]
- Entry points: [%s]
- Ports: %v
- Environment variables: [%s]

Include instructions on how to build and run the containers, best practices, and troubleshooting tips.

Provide ONLY the markdown content.`
)

// Generator turns a ProjectContext into artifact text through an LLM
// client handed in at construction time.
type Generator struct {
	client LLMClient
	logger zerolog.Logger
}

func NewGenerator(client LLMClient, logger zerolog.Logger) *Generator {
	return &Generator{
		client: client,
		logger: logger.With().Str("component", "generator").Logger(),
	}
}

// GenerateDockerfile produces a production Dockerfile tailored to the
// analyzed project.
func (g *Generator) GenerateDockerfile(ctx context.Context, pctx *analyze.ProjectContext) (string, error) {
	frameworkDetails := ""
	if pctx.ProjectType == analyze.TypeNode && slices.Contains(pctx.Frameworks, "express") {
		frameworkDetails = "Apply Node.js with Express best practices."
	}
	prompt := fmt.Sprintf(dockerfilePromptTemplate,
		pctx.ProjectType,
		strings.Join(pctx.Frameworks, ", "),
		frameworkDetails,
		strings.Join(pctx.EntryPoints, ", "),
		pctx.Ports,
		strings.Join(envVarNames(pctx), ", "),
	)
	return g.complete(ctx, dockerfileSystemRole, prompt, "Dockerfile")
}

// GenerateCompose produces a docker-compose.yml covering the detected
// services.
func (g *Generator) GenerateCompose(ctx context.Context, pctx *analyze.ProjectContext) (string, error) {
	prompt := fmt.Sprintf(composePromptTemplate,
		pctx.ProjectType,
		strings.Join(serviceNames(pctx), ", "),
		pctx.Ports,
		strings.Join(envVarNames(pctx), ", "),
	)
	return g.complete(ctx, composeSystemRole, prompt, "docker-compose.yml")
}

// GenerateReadme produces markdown documentation for the Docker setup.
func (g *Generator) GenerateReadme(ctx context.Context, pctx *analyze.ProjectContext) (string, error) {
	prompt := fmt.Sprintf(readmePromptTemplate,
		pctx.ProjectType,
		strings.Join(pctx.Frameworks, ", "),
		strings.Join(serviceNames(pctx), ", "),
		strings.Join(pctx.EntryPoints, ", "),
		pctx.Ports,
		strings.Join(envVarNames(pctx), ", "),
	)
	return g.complete(ctx, readmeSystemRole, prompt, "Docker README")
}

func (g *Generator) complete(ctx context.Context, systemRole, prompt, artifact string) (string, error) {
	content, usage, err := g.client.GetChatCompletion(ctx, systemRole, prompt)
	if err != nil {
		return "", fmt.Errorf("generating %s: %w", artifact, err)
	}
	g.logger.Debug().
		Str("artifact", artifact).
		Int32("total_tokens", usage.TotalTokens).
		Msg("completion received")
	return content, nil
}

// envVarNames returns the variable names only, sorted for prompt
// stability. Values never leave the process.
func envVarNames(pctx *analyze.ProjectContext) []string {
	names := make([]string, 0, len(pctx.EnvVars))
	for name := range pctx.EnvVars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func serviceNames(pctx *analyze.ProjectContext) []string {
	names := make([]string, 0, len(pctx.Services))
	for name := range pctx.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
