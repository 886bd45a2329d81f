package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultHFBaseURL = "https://api-inference.huggingface.co"

// HFSummarizer calls a summarization model hosted on the Hugging Face
// Inference API.
type HFSummarizer struct {
	baseURL    string
	model      string
	token      string
	httpClient *http.Client
}

// NewHFSummarizer creates a client for the given model (e.g.
// "facebook/bart-large-cnn"). token may be empty for unauthenticated calls;
// baseURL is overridable for tests.
func NewHFSummarizer(model, token, baseURL string) *HFSummarizer {
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}
	return &HFSummarizer{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		token:   token,
		httpClient: &http.Client{
			// Cold model loads on the inference API can take a while.
			Timeout: 2 * time.Minute,
		},
	}
}

type hfSummarizeRequest struct {
	Inputs     string            `json:"inputs"`
	Parameters hfSummarizeParams `json:"parameters"`
}

type hfSummarizeParams struct {
	MaxLength int  `json:"max_length,omitempty"`
	MinLength int  `json:"min_length,omitempty"`
	DoSample  bool `json:"do_sample"`
}

type hfSummarizeResponse []struct {
	SummaryText string `json:"summary_text"`
}

// Summarize condenses text, bounding the output between minLength and
// maxLength tokens. Sampling is disabled so repeated runs are stable.
func (s *HFSummarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	reqBody, err := json.Marshal(hfSummarizeRequest{
		Inputs: text,
		Parameters: hfSummarizeParams{
			MaxLength: maxLength,
			MinLength: minLength,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.baseURL + "/models/" + s.model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summarization API error (status %d): %s", resp.StatusCode, body)
	}

	var parsed hfSummarizeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse summarization response: %w", err)
	}
	if len(parsed) == 0 {
		return "", fmt.Errorf("empty summarization response")
	}
	return parsed[0].SummaryText, nil
}
