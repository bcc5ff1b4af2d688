package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "markdown fences stripped",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "prose around object dropped",
			input: `Here is the analysis: {"a": 1} hope it helps`,
			want:  `{"a": 1}`,
		},
		{
			name:  "array extracted",
			input: `The items are [1, 2, 3].`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "braces inside strings ignored",
			input: `{"text": "use {braces} and \"quotes\" freely"} trailing`,
			want:  `{"text": "use {braces} and \"quotes\" freely"}`,
		},
		{
			name:  "nested objects balanced",
			input: `{"outer": {"inner": [1, {"deep": true}]}}`,
			want:  `{"outer": {"inner": [1, {"deep": true}]}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.input))
		})
	}
}

func TestNewInsightClient_RejectsUnknownProvider(t *testing.T) {
	_, err := NewInsightClient("mistral", "key", "")
	assert.Error(t, err)
}

func TestSchemaValidationError_UnwrapsToSentinel(t *testing.T) {
	err := &SchemaValidationError{Field: "urgency_level", Detail: "bad value"}
	assert.ErrorIs(t, err, ErrSchemaValidation)
	assert.Contains(t, err.Error(), "urgency_level")
}
