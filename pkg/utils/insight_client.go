package utils

import (
	"context"
	"fmt"
	"strings"
)

// InsightClientInterface is the structured-generation provider contract: one
// prompt in, one JSON document out. Providers enforce JSON output on a
// best-effort basis; the services layer owns schema validation.
type InsightClientInterface interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Close() error
}

// NewInsightClient creates either an OpenAI or Gemini backed client.
func NewInsightClient(provider, apiKey, model string) (InsightClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIInsightClient(apiKey, model), nil
	case "gemini":
		return NewGeminiInsightClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported insight provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// CleanJSONResponse strips markdown fences and any prose around the first
// complete JSON object or array in a model response.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatching(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatching(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatching returns the index of the closer balancing the opener at start,
// skipping over string literals, or -1.
func findMatching(s string, start int, opener, closer byte) int {
	if start >= len(s) || s[start] != opener {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
