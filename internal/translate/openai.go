package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider translates through the OpenAI chat completion API. It is
// an alternative to the REST provider for users who already carry an
// OpenAI key.
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI-backed translation provider
func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIProvider{
		apiKey: config.OpenAIKey,
		model:  model,
		client: openai.NewClient(config.OpenAIKey),
	}, nil
}

// Translate translates text between two-letter language codes.
func (p *OpenAIProvider) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Translate the following text from language %q to language %q. Respond with only the translation, nothing else.\n\n%s",
					sourceCode, targetCode, text),
			},
		},
		MaxTokens:   200,
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Message: apiErr.Message}
		}
		return "", &NetworkError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Message: "no translation returned"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string { return "openai" }
