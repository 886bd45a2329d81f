package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnknownProvider is returned for an embeddings_provider outside the
// supported set.
var ErrUnknownProvider = errors.New("unsupported embeddings provider")

// ErrMissingGitHubToken is returned when no GitHub token is present in the
// environment. There is no interactive fallback for it: extraction is
// expected to run unattended.
var ErrMissingGitHubToken = errors.New("GITHUB_TOKEN is not set in the environment variables")

// GitHubToken returns the GitHub API token from the environment.
func GitHubToken() (string, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return "", ErrMissingGitHubToken
	}
	return token, nil
}

// OpenAIAPIKey resolves the OpenAI API key from the environment, prompting on
// stdin when absent.
func OpenAIAPIKey() string {
	return resolveKey("OPENAI_API_KEY", "Por favor ingresa tu OPENAI_API_KEY: ")
}

// CohereAPIKey resolves the Cohere API key from the environment, prompting on
// stdin when absent.
func CohereAPIKey() string {
	return resolveKey("COHERE_API_KEY", "Por favor ingresa tu COHERE_API_KEY: ")
}

// HuggingFaceToken returns the optional Hugging Face Inference API token.
// When empty, summarization requests are sent unauthenticated.
func HuggingFaceToken() string {
	return os.Getenv("HF_API_TOKEN")
}

func resolveKey(envVar, prompt string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	return strings.TrimSpace(line)
}
