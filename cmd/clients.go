package cmd

import (
	"fmt"

	"github.com/whxitte/Docker-Gen/pkg/ai"
	"github.com/whxitte/Docker-Gen/pkg/config"
)

// initLLMClient loads configuration and constructs the Azure OpenAI
// client once; callers pass the handle down instead of reaching for
// shared state.
func initLLMClient() (*ai.AzOpenAIClient, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ValidateCredentials(); err != nil {
		return nil, nil, err
	}

	client, err := ai.NewAzOpenAIClient(cfg.Endpoint, cfg.APIKey, cfg.DeploymentID, cfg.MaxTokens, cfg.Temperature)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Azure OpenAI client: %w", err)
	}
	return client, cfg, nil
}
