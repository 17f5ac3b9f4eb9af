// Package ai wraps the external text-generation service used to turn a
// ProjectContext into containerization artifacts. The client is an
// explicit handle created once per process and passed into every
// generation call; there is no package-level client state.
package ai

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

// TokenUsage reports token consumption for a single completion call.
type TokenUsage struct {
	PromptTokens     int32
	CompletionTokens int32
	TotalTokens      int32
}

// LLMClient is the minimal completion surface the generators need.
type LLMClient interface {
	GetChatCompletion(ctx context.Context, systemRole, prompt string) (string, TokenUsage, error)
}

// AzOpenAIClient talks to an Azure OpenAI deployment.
type AzOpenAIClient struct {
	client       *azopenai.Client
	deploymentID string
	maxTokens    int32
	temperature  float32
}

// NewAzOpenAIClient creates a client bound to one deployment. The
// deploymentID is used for all subsequent API calls.
func NewAzOpenAIClient(endpoint, apiKey, deploymentID string, maxTokens int32, temperature float32) (*AzOpenAIClient, error) {
	keyCredential := azcore.NewKeyCredential(apiKey)
	client, err := azopenai.NewClientWithKeyCredential(endpoint, keyCredential, nil)
	if err != nil {
		return nil, fmt.Errorf("creating Azure OpenAI client: %w", err)
	}
	return &AzOpenAIClient{
		client:       client,
		deploymentID: deploymentID,
		maxTokens:    maxTokens,
		temperature:  temperature,
	}, nil
}

// GetChatCompletion sends a system role and user prompt to the deployment
// and returns the completion text.
func (c *AzOpenAIClient) GetChatCompletion(ctx context.Context, systemRole, prompt string) (string, TokenUsage, error) {
	resp, err := c.client.GetChatCompletions(
		ctx,
		azopenai.ChatCompletionsOptions{
			DeploymentName: to.Ptr(c.deploymentID),
			MaxTokens:      to.Ptr(c.maxTokens),
			Temperature:    to.Ptr(c.temperature),
			Messages: []azopenai.ChatRequestMessageClassification{
				&azopenai.ChatRequestSystemMessage{
					Content: azopenai.NewChatRequestSystemMessageContent(systemRole),
				},
				&azopenai.ChatRequestUserMessage{
					Content: azopenai.NewChatRequestUserMessageContent(prompt),
				},
			},
		},
		nil,
	)
	if err != nil {
		return "", TokenUsage{}, err
	}

	usage := TokenUsage{}
	if resp.Usage != nil {
		if resp.Usage.PromptTokens != nil {
			usage.PromptTokens = *resp.Usage.PromptTokens
		}
		if resp.Usage.CompletionTokens != nil {
			usage.CompletionTokens = *resp.Usage.CompletionTokens
		}
		if resp.Usage.TotalTokens != nil {
			usage.TotalTokens = *resp.Usage.TotalTokens
		}
	}

	if len(resp.Choices) > 0 && resp.Choices[0].Message != nil && resp.Choices[0].Message.Content != nil {
		return *resp.Choices[0].Message.Content, usage, nil
	}

	return "", usage, fmt.Errorf("no completion received from LLM")
}

// TestConn sends a trivial prompt to verify credentials and connectivity.
func TestConn(ctx context.Context, client LLMClient) (string, error) {
	content, _, err := client.GetChatCompletion(ctx,
		"You are a connectivity check.",
		"Reply with one short sentence confirming you are reachable.")
	if err != nil {
		return "", fmt.Errorf("failed to get chat completion: %w", err)
	}
	return content, nil
}
