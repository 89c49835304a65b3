package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dataagent/cache"
	"dataagent/config"

	"github.com/sashabaranov/go-openai"
)

// OpenAIService answers questions through an OpenAI-compatible chat completion API.
type OpenAIService struct {
	gate
	client *openai.Client
}

func NewOpenAI(apiKey, modelName, baseURL string, httpClient *http.Client, answerCache *cache.Cache, minInterval time.Duration) *OpenAIService {
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}

	return &OpenAIService{
		gate:   newGate(config.ProviderOpenAI, apiKey, modelName, answerCache, minInterval),
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (o *OpenAIService) Ask(ctx context.Context, query string) (string, error) {
	return o.ask(ctx, query, o.callChat)
}

func (o *OpenAIService) callChat(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
