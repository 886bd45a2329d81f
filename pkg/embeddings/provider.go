// Package embeddings implements the hosted embedding providers the pipeline
// can be configured with.
package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashira-dev/hashira/pkg/config"
)

// Provider generates embedding vectors through a hosted API. Queries and
// documents are embedded through separate methods because some APIs optimize
// for the input type.
type Provider interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
	EmbedDocuments(ctx context.Context, documents []string) ([][]float32, error)
	Name() string
}

// New returns the provider implementation for name with its API key already
// resolved. An unknown name is a configuration error.
func New(name config.EmbeddingsProvider, model, apiKey string) (Provider, error) {
	switch name {
	case config.ProviderOpenAI:
		return NewOpenAIProvider(model, apiKey, ""), nil
	case config.ProviderCohere:
		return NewCohereProvider(model, apiKey, ""), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, name)
	}
}

// postJSON sends an authenticated JSON request and returns the raw response
// body, turning non-200 statuses into errors.
func postJSON(ctx context.Context, client *http.Client, url, apiKey string, body any) ([]byte, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embeddings API error (status %d): %s", resp.StatusCode, respBody)
	}
	return respBody, nil
}
