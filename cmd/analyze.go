package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whxitte/Docker-Gen/pkg/analyze"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [project-dir]",
	Short: "Analyze a project and print the detected context as JSON",
	Long: `The analyze command runs the project-introspection engine alone and
prints the resulting project context without generating any artifacts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		target, err := projectDir(args)
		if err != nil {
			return err
		}

		pctx, err := analyze.NewAnalyzer(logger).Analyze(target)
		if err != nil {
			return fmt.Errorf("analyzing project: %w", err)
		}

		out, err := json.MarshalIndent(pctx, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding project context: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
