package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/whxitte/Docker-Gen/pkg/ai"
	"github.com/whxitte/Docker-Gen/pkg/analyze"
	"github.com/whxitte/Docker-Gen/pkg/docker"
	"github.com/whxitte/Docker-Gen/pkg/draftgen"
	"github.com/whxitte/Docker-Gen/pkg/files"
)

var (
	outputDir     string
	force         bool
	generatorKind string
)

var generateCmd = &cobra.Command{
	Use:   "generate [project-dir]",
	Short: "Generate Dockerfile, docker-compose.yml and Docker README",
	Long: `The generate command analyzes the project structure and produces a
production Dockerfile, a docker-compose.yml and Docker documentation.
The Dockerfile can come from the LLM (default) or from the Azure Draft
template catalog (--generator draft).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		logger := newLogger()

		target, err := projectDir(args)
		if err != nil {
			return err
		}

		client, _, err := initLLMClient()
		if err != nil {
			return err
		}

		pctx, err := analyze.NewAnalyzer(logger).Analyze(target)
		if err != nil {
			return fmt.Errorf("analyzing project: %w", err)
		}

		generator := ai.NewGenerator(client, logger)
		writer := files.NewWriter(outputDir, force, logger)

		switch generatorKind {
		case "draft":
			if !force {
				if _, err := os.Stat(filepath.Join(outputDir, "Dockerfile")); err == nil {
					return fmt.Errorf("%s exists, use --force to overwrite", filepath.Join(outputDir, "Dockerfile"))
				}
			}
			templateName, err := draftgen.SelectTemplate(ctx, client, target)
			if err != nil {
				return fmt.Errorf("selecting draft template: %w", err)
			}
			logger.Info().Str("template", templateName).Msg("generating Dockerfile from draft template")
			if err := draftgen.Generate(templateName, outputDir, nil); err != nil {
				return fmt.Errorf("generating Dockerfile from draft: %w", err)
			}
		case "ai":
			dockerfile, err := generator.GenerateDockerfile(ctx, pctx)
			if err != nil {
				return err
			}
			for _, warning := range docker.LintDockerfile(dockerfile) {
				logger.Warn().Str("check", warning).Msg("security warning")
			}
			if err := writer.Write("Dockerfile", dockerfile); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown generator %q (expected ai or draft)", generatorKind)
		}

		compose, err := generator.GenerateCompose(ctx, pctx)
		if err != nil {
			return err
		}
		if err := docker.ValidateCompose(compose); err != nil {
			return err
		}
		if err := writer.Write("docker-compose.yml", compose); err != nil {
			return err
		}

		readme, err := generator.GenerateReadme(ctx, pctx)
		if err != nil {
			return err
		}
		if err := writer.Write("dockerreadme.md", readme); err != nil {
			return err
		}

		logger.Info().Msg("successfully generated infrastructure configuration and documentation")
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	generateCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")
	generateCmd.Flags().StringVar(&generatorKind, "generator", "ai", "dockerfile generator: ai or draft")
}
