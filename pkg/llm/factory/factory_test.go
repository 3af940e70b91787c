package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predator-web/pkg/llm/ollama"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider(context.Background(), "ollama", "llama3", "", "")
	require.NoError(t, err)
	o, ok := p.(*ollama.OllamaProvider)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:11434", o.BaseURL)

	_, err = NewLLMProvider(context.Background(), "gemini", "", "", "")
	assert.Error(t, err, "gemini without a key must fail")

	_, err = NewLLMProvider(context.Background(), "gpt", "", "", "")
	assert.Error(t, err)
}
