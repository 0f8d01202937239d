// Package llm provides the model client used for Cypher generation,
// answer generation and query embeddings.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIClient implements Client and Embedder on top of the Gemini API.
type GenAIClient struct {
	client         *genai.Client
	chatModel      string
	embeddingModel string
}

// NewGenAIClient creates a new Gemini-backed client.
func NewGenAIClient(ctx context.Context, apiKey, chatModel, embeddingModel string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if chatModel == "" {
		return nil, fmt.Errorf("chat model name is required")
	}
	if embeddingModel == "" {
		return nil, fmt.Errorf("embedding model name is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{
		client:         client,
		chatModel:      chatModel,
		embeddingModel: embeddingModel,
	}, nil
}

// CompleteWithSystem sends a system instruction plus a user prompt and
// returns the model's text response.
func (c *GenAIClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var system *genai.Content
	if systemPrompt != "" {
		system = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	return c.generate(ctx, system, userPrompt)
}

func (c *GenAIClient) generate(ctx context.Context, system *genai.Content, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	// Temperature 0: Cypher generation needs deterministic output
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(0)),
		SystemInstruction: system,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.chatModel, contents, config)
	if err != nil {
		return "", fmt.Errorf("GenAI generation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("no text returned by model %s", c.chatModel)
	}

	return text, nil
}

// Embed generates an embedding for a single text.
func (c *GenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := c.client.Models.EmbedContent(ctx,
		c.embeddingModel,
		contents,
		&genai.EmbedContentConfig{
			TaskType: "RETRIEVAL_QUERY",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("GenAI embed failed: %w", err)
	}

	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	return result.Embeddings[0].Values, nil
}
