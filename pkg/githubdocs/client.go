// Package githubdocs lists and downloads documentation files through the
// GitHub contents API.
package githubdocs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100
)

// Entry is one item of a repository directory listing.
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Client talks to the GitHub contents API with a fixed token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a contents-API client. baseURL is overridable for tests;
// empty selects api.github.com.
func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListDirectory returns every entry under path of owner/repo, following
// pagination until a short page.
func (c *Client) ListDirectory(ctx context.Context, owner, repo, path string) ([]Entry, error) {
	var entries []Entry
	for page := 1; ; page++ {
		u := fmt.Sprintf("%s/repos/%s/%s/contents/%s?per_page=%d&page=%d",
			c.baseURL, owner, repo, path, perPage, page)
		body, err := c.get(ctx, u, true)
		if err != nil {
			return nil, err
		}

		var pageEntries []Entry
		if err := json.Unmarshal(body, &pageEntries); err != nil {
			return nil, fmt.Errorf("failed to parse directory listing: %w", err)
		}
		entries = append(entries, pageEntries...)
		if len(pageEntries) < perPage {
			break
		}
	}
	return entries, nil
}

// DownloadFile fetches the raw content behind a listing entry's download URL.
func (c *Client) DownloadFile(ctx context.Context, downloadURL string) (string, error) {
	body, err := c.get(ctx, downloadURL, false)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, url string, authenticated bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/vnd.github.v3.raw")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API error (status %d): %s", resp.StatusCode, body)
	}
	return body, nil
}

// IsMarkdown reports whether a file name is one of the documentation formats
// the extractor keeps.
func IsMarkdown(name string) bool {
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".mdx")
}
