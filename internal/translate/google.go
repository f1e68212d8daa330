package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

const (
	googleAPIURL  = "https://translation.googleapis.com/language/translate/v2"
	googleTimeout = 30 * time.Second
)

// GoogleClient implements Provider against the Google translation v2
// REST endpoint. Calls go through a circuit breaker so a flapping
// endpoint fails fast instead of eating the full timeout every time.
type GoogleClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// googleRequest is the POST body the endpoint expects.
type googleRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// googleResponse covers both the success and the error shape.
type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewGoogleClient creates a new Google translation client
func NewGoogleClient(config *Config) *GoogleClient {
	endpoint := config.GoogleEndpoint
	if endpoint == "" {
		endpoint = googleAPIURL
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = googleTimeout
	}

	return &GoogleClient{
		apiKey:   config.GoogleAPIKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "google-translate",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Translate performs the remote request.
func (c *GoogleClient) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.call(ctx, text, sourceCode, targetCode)
	})
	if err != nil {
		var providerErr *ProviderError
		if errors.As(err, &providerErr) {
			return "", err
		}
		var netErr *NetworkError
		if errors.As(err, &netErr) {
			return "", err
		}
		// Breaker-open and anything else unexpected count as transport
		// failures.
		return "", &NetworkError{Err: err}
	}
	return result.(string), nil
}

func (c *GoogleClient) call(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	payload, err := json.Marshal(googleRequest{
		Q:      text,
		Source: sourceCode,
		Target: targetCode,
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode translation request: %w", err)
	}

	requestURL := fmt.Sprintf("%s?key=%s", c.endpoint, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	var decoded googleResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &ProviderError{Message: fmt.Sprintf("unexpected response from translation service: %v", err)}
	}

	if decoded.Error != nil {
		return "", &ProviderError{Message: decoded.Error.Message}
	}
	if len(decoded.Data.Translations) == 0 {
		return "", &ProviderError{Message: "no translation returned"}
	}
	return decoded.Data.Translations[0].TranslatedText, nil
}

// Name returns the provider name
func (c *GoogleClient) Name() string { return "googleapis" }
