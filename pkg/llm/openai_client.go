package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashira-dev/hashira/pkg/models"
)

const defaultOpenAIBaseURL = "https://api.openai.com"

// OpenAIClient is a client for the OpenAI chat completions API
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	modelName  string
	httpClient *http.Client
}

// NewOpenAIClient creates a new client for the given chat model. baseURL is
// overridable for tests; empty selects api.openai.com.
func NewOpenAIClient(modelName, apiKey, baseURL string) *OpenAIClient {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		modelName: modelName,
		httpClient: &http.Client{
			Timeout: time.Minute * 5, // generations can run long
		},
	}
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float32         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Chat sends a conversation to the model and returns the assistant's reply
func (c *OpenAIClient) Chat(ctx context.Context, messages []models.Message, config ModelConfig) (models.Message, error) {
	oaMessages := make([]openAIMessage, len(messages))
	for i, msg := range messages {
		oaMessages[i] = openAIMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	reqBody, err := json.Marshal(openAIChatRequest{
		Model:       c.modelName,
		Messages:    oaMessages,
		Temperature: config.Temperature,
		MaxTokens:   config.MaxTokens,
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Message{}, fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, body)
	}

	var parsed openAIChatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return models.Message{}, fmt.Errorf("failed to parse chat response: %w", err)
	}
	if parsed.Error != nil {
		return models.Message{}, fmt.Errorf("OpenAI API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return models.Message{}, fmt.Errorf("empty completion response")
	}

	return models.Message{
		Role:    models.RoleAssistant,
		Content: parsed.Choices[0].Message.Content,
	}, nil
}

// Close cleans up any resources
func (c *OpenAIClient) Close() error {
	// No cleanup needed for HTTP client
	return nil
}
