package embeddings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultCohereBaseURL = "https://api.cohere.ai"

// CohereProvider embeds text through the Cohere embed API.
type CohereProvider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewCohereProvider creates a Cohere embeddings client. baseURL is
// overridable for tests; empty model selects embed-english-v3.0.
func NewCohereProvider(model, apiKey, baseURL string) *CohereProvider {
	if baseURL == "" {
		baseURL = defaultCohereBaseURL
	}
	if model == "" {
		model = "embed-english-v3.0"
	}
	return &CohereProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name returns the provider name.
func (p *CohereProvider) Name() string { return "cohere" }

type cohereEmbedRequest struct {
	Texts     []string `json:"texts"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type"`
}

type cohereEmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// EmbedQuery embeds a single query string.
func (p *CohereProvider) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	vectors, err := p.embed(ctx, []string{query}, "search_query")
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return vectors[0], nil
}

// EmbedDocuments embeds a batch of documents, returning vectors in input order.
func (p *CohereProvider) EmbedDocuments(ctx context.Context, documents []string) ([][]float32, error) {
	return p.embed(ctx, documents, "search_document")
}

func (p *CohereProvider) embed(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	body, err := postJSON(ctx, p.httpClient, p.baseURL+"/v1/embed", p.apiKey, cohereEmbedRequest{
		Texts:     texts,
		Model:     p.model,
		InputType: inputType,
	})
	if err != nil {
		return nil, err
	}

	var parsed cohereEmbedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse embeddings response: %w", err)
	}
	if len(parsed.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d for %d inputs", len(parsed.Embeddings), len(texts))
	}
	return parsed.Embeddings, nil
}
