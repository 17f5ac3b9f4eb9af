package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whxitte/Docker-Gen/pkg/ai"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the Azure OpenAI connection",
	Long: `The test command sends a trivial prompt to the configured Azure OpenAI
deployment and prints the response, verifying credentials and connectivity.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		client, _, err := initLLMClient()
		if err != nil {
			return err
		}

		reply, err := ai.TestConn(cmd.Context(), client)
		if err != nil {
			return fmt.Errorf("error testing Azure OpenAI connection: %w", err)
		}

		logger.Info().Str("response", reply).Msg("Azure OpenAI connection OK")
		return nil
	},
}
