package llmadapter

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// genaiClient wraps google.golang.org/genai as one concrete provider
// behind the Client interface, grounded on the teacher's
// internal/embedding/genai.go client-construction pattern (same
// genai.NewClient/ClientConfig shape, generalized from EmbedContent to
// GenerateContent).
type genaiClient struct {
	client *genai.Client
	model  string
}

func newGenAIClient(ctx context.Context, apiKey, model string) (*genaiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llmadapter: genai API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("llmadapter: create genai client: %w", err)
	}
	return &genaiClient{client: client, model: model}, nil
}

func (c *genaiClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(userPrompt, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("llmadapter: genai generate: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("llmadapter: genai returned an empty response")
	}
	return text, nil
}
