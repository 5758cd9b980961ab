package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client. The API key comes from
// the configuration struct assembled at startup, never from ambient globals.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	// Force JSON responses so the extractor can parse a fixed-shape payload
	// instead of scraping free-form text.
	model.ResponseMIMEType = "application/json"

	// Low temperature: extraction wants determinism, not creativity.
	model.SetTemperature(0.1)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateText sends a text-only prompt to Gemini.
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, genai.Text(prompt))
}

// GenerateFromImage sends a prompt plus an inline image to Gemini.
func (p *GeminiProvider) GenerateFromImage(ctx context.Context, prompt string, format string, image []byte) (string, error) {
	return p.generate(ctx, genai.Text(prompt), genai.ImageData(format, image))
}

// generate runs one content generation call with a single bounded retry on a
// transport failure. It never loops.
func (p *GeminiProvider) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	resp, err := p.model.GenerateContent(ctx, parts...)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("gemini generation error: %w", err)
		}
		resp, err = p.model.GenerateContent(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("gemini generation error: %w", err)
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return CleanResponse(responseText.String()), nil
}

// CleanResponse strips markdown code fences the model sometimes wraps around
// JSON output, even in JSON mode.
func CleanResponse(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
