// Package config loads tool configuration from defaults, an optional
// dockergen.yaml file, and environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables carrying the Azure OpenAI credentials.
const (
	EnvAPIKey       = "AZURE_OPENAI_KEY"
	EnvEndpoint     = "AZURE_OPENAI_ENDPOINT"
	EnvDeploymentID = "AZURE_OPENAI_DEPLOYMENT_ID"
)

// Config holds everything the CLI needs beyond its flags.
type Config struct {
	APIKey       string
	Endpoint     string
	DeploymentID string
	MaxTokens    int32
	Temperature  float32
}

// Load builds a Config from defaults, an optional dockergen.yaml in the
// working directory, and the environment. A missing config file is fine;
// a malformed one is not.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("max_tokens", 2000)
	v.SetDefault("temperature", 0.2)

	v.SetConfigName("dockergen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	_ = v.BindEnv("api_key", EnvAPIKey)
	_ = v.BindEnv("endpoint", EnvEndpoint)
	_ = v.BindEnv("deployment_id", EnvDeploymentID)

	return &Config{
		APIKey:       v.GetString("api_key"),
		Endpoint:     v.GetString("endpoint"),
		DeploymentID: v.GetString("deployment_id"),
		MaxTokens:    int32(v.GetInt("max_tokens")),
		Temperature:  float32(v.GetFloat64("temperature")),
	}, nil
}

// ValidateCredentials reports every missing credential at once.
func (c *Config) ValidateCredentials() error {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if c.Endpoint == "" {
		missing = append(missing, EnvEndpoint)
	}
	if c.DeploymentID == "" {
		missing = append(missing, EnvDeploymentID)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
