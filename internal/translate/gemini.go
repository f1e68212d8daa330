package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider translates through the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini-backed translation provider
func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// Translate translates text between two-letter language codes.
func (p *GeminiProvider) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following text from language %q to language %q. Respond with only the translation, nothing else.\n\n%s",
		sourceCode, targetCode, text)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Message: apiErr.Message}
		}
		return "", &NetworkError{Err: err}
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", &ProviderError{Message: "no translation returned"}
	}
	return translation, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string { return "gemini" }
