package notes

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Low temperature favors factual extraction over embellishment.
const generationTemperature = 0.3

// textGenerator abstracts the generation backend so the chunk/reduce logic
// is testable without the network.
type textGenerator interface {
	generate(ctx context.Context, system, user string) (string, error)
}

type geminiClient struct {
	client *genai.Client
	model  string
}

func newGeminiClient(ctx context.Context, apiKey, model string) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &geminiClient{client: client, model: model}, nil
}

func (g *geminiClient) generate(ctx context.Context, system, user string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](generationTemperature),
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
