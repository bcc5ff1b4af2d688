package utils

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIInsightClient implements InsightClientInterface on chat completions
// with the JSON-object response format.
type OpenAIInsightClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIInsightClient(apiKey, model string) *OpenAIInsightClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIInsightClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIInsightClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}

	content := CleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai: response is not valid json")
	}
	return content, nil
}

func (c *OpenAIInsightClient) Close() error {
	return nil
}
