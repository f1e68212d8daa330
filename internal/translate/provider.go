package translate

import (
	"context"
	"fmt"
	"time"
)

// Provider performs a single remote translation call. Implementations
// surface a *ProviderError when the service responds with an error
// payload and a *NetworkError when it cannot be reached.
type Provider interface {
	// Translate translates text between two-letter language codes.
	Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error)

	// Name returns the provider name
	Name() string
}

// Config holds common configuration for translation providers
type Config struct {
	Provider string // Provider name: "googleapis", "openai" or "gemini"
	Timeout  time.Duration

	// Google translation REST settings
	GoogleAPIKey   string
	GoogleEndpoint string // override for tests, defaults to the public endpoint

	// OpenAI settings
	OpenAIKey   string
	OpenAIModel string

	// Gemini settings
	GeminiAPIKey string
	GeminiModel  string
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider: "googleapis",
		Timeout:  30 * time.Second,
	}
}

// NewProvider creates the appropriate translation provider based on
// configuration.
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "googleapis":
		if config.GoogleAPIKey == "" {
			return nil, fmt.Errorf("Google Translate API key is required")
		}
		return NewGoogleClient(config), nil

	case "openai":
		return NewOpenAIProvider(config)

	case "gemini":
		return NewGeminiProvider(ctx, config)

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}
