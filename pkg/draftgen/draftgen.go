// Package draftgen generates Dockerfiles from the Azure Draft template
// catalog as a non-AI alternative to LLM generation. The LLM is still
// used once, to pick the best-fitting template for the project layout.
package draftgen

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Azure/draft/pkg/handlers"
	"github.com/Azure/draft/pkg/templatewriter/writers"

	"github.com/whxitte/Docker-Gen/pkg/ai"
	"github.com/whxitte/Docker-Gen/pkg/filetree"
)

const templateSelectionPrompt = `You are selecting a Dockerfile template for a project.

Available Dockerfile templates:
%s

Project repository structure:
%s

First, analyze the project to determine how it should be built.
Based on the project, select the most appropriate Dockerfile template name from the list.
Return only the exact template name from the list without any other text, explanation or formatting.`

// TemplateNames lists the Dockerfile templates available in the draft
// catalog.
func TemplateNames() []string {
	templates := handlers.GetTemplatesByType(handlers.TemplateTypeDockerfile)
	names := slices.Collect(maps.Keys(templates))
	slices.Sort(names)
	return names
}

// SelectTemplate asks the LLM to choose a template for the project at
// projectDir, feeding it the template catalog and the repository layout.
func SelectTemplate(ctx context.Context, client ai.LLMClient, projectDir string) (string, error) {
	names := TemplateNames()

	tree, err := filetree.Render(projectDir)
	if err != nil {
		return "", fmt.Errorf("reading file tree: %w", err)
	}

	prompt := fmt.Sprintf(templateSelectionPrompt, strings.Join(names, "\n"), tree)
	content, _, err := client.GetChatCompletion(ctx, "You are a containerization assistant.", prompt)
	if err != nil {
		return "", err
	}

	templateName := strings.TrimSpace(content)
	if !slices.Contains(names, templateName) {
		return "", fmt.Errorf("invalid template name: %s", templateName)
	}

	return templateName, nil
}

// Generate writes the named template's Dockerfile into outputDir.
func Generate(templateName, outputDir string, variables map[string]string) error {
	writer := writers.LocalFSWriter{
		WriteMode: 0o644,
	}

	template, err := handlers.GetTemplate(templateName, "", outputDir, &writer)
	if err != nil {
		return fmt.Errorf("getting template %q from draft: %w", templateName, err)
	}
	if template == nil {
		return fmt.Errorf("template not found: %s", templateName)
	}

	for k, v := range variables {
		template.Config.SetVariable(k, v)
	}

	if err := template.Generate(); err != nil {
		return fmt.Errorf("generating files from template %s: %w", templateName, err)
	}

	return nil
}
