package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHFSummarizerRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/facebook/bart-large-cnn", r.URL.Path)
		assert.Equal(t, "Bearer hf-token", r.Header.Get("Authorization"))

		var req hfSummarizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "long prose to condense", req.Inputs)
		assert.Equal(t, 1024, req.Parameters.MaxLength)
		assert.Equal(t, 30, req.Parameters.MinLength)
		assert.False(t, req.Parameters.DoSample)

		fmt.Fprint(w, `[{"summary_text":"condensed"}]`)
	}))
	defer server.Close()

	s := NewHFSummarizer("facebook/bart-large-cnn", "hf-token", server.URL)
	got, err := s.Summarize(context.Background(), "long prose to condense", 1024, 30)
	require.NoError(t, err)
	assert.Equal(t, "condensed", got)
}

func TestHFSummarizerNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		fmt.Fprint(w, `[{"summary_text":"ok"}]`)
	}))
	defer server.Close()

	s := NewHFSummarizer("facebook/bart-large-cnn", "", server.URL)
	_, err := s.Summarize(context.Background(), "text", 1024, 30)
	assert.NoError(t, err)
}

func TestHFSummarizerErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Model facebook/bart-large-cnn is currently loading"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := NewHFSummarizer("facebook/bart-large-cnn", "", server.URL)
	_, err := s.Summarize(context.Background(), "text", 1024, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestHFSummarizerEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	s := NewHFSummarizer("facebook/bart-large-cnn", "", server.URL)
	_, err := s.Summarize(context.Background(), "text", 1024, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty summarization response")
}
