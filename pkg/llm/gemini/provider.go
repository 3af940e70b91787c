package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"predator-web/pkg/llm"
)

// GeminiProvider talks to the Gemini API through the genai SDK.
type GeminiProvider struct {
	client    *genai.Client
	ModelName string
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = "gemini-3-flash-preview"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiProvider{client: client, ModelName: modelName}, nil
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{Temperature: 0.7}, opts...)

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		if msg.Role == "system" {
			// Gemini takes the persona out of band.
			if options.SystemInstruction == "" {
				options.SystemInstruction = msg.Content
			}
			continue
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, toRole(msg.Role)))
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(options.Temperature)),
	}
	if options.TopP > 0 {
		config.TopP = genai.Ptr(float32(options.TopP))
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}
	if options.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(options.SystemInstruction, genai.RoleUser)
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	return resp.Text(), nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func toRole(role string) genai.Role {
	if role == "model" || role == "assistant" {
		return genai.RoleModel
	}
	return genai.RoleUser
}
