package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiInsightClient implements InsightClientInterface using Google's Gemini
// models with JSON-only response enforcement.
type GeminiInsightClient struct {
	client *genai.Client
	model  string
}

func NewGeminiInsightClient(apiKey, model string) (*GeminiInsightClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiInsightClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiInsightClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so prose never reaches the schema decoder.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	if systemPrompt != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	content := CleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: response is not valid json")
	}
	return content, nil
}

func (c *GeminiInsightClient) Close() error {
	return c.client.Close()
}
