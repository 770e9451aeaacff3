package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"learnloop-backend/internal/config"
)

const defaultModel = "gpt-4o-mini"

// OpenAIClient implements CompletionClient using the OpenAI chat completions
// API. A custom BaseURL makes it work against any OpenAI-compatible endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg config.LLMConfig) *OpenAIClient {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(apiCfg),
		model:  model,
	}
}

// Complete sends a single-shot chat completion constrained to a JSON object
// reply. No retries: a failed or slow call surfaces to the request that
// triggered it.
func (o *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("no content generated")
	}
	return resp.Choices[0].Message.Content, nil
}
