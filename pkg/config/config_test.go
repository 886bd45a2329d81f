package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
recreate_chroma_db: true
chat_type: qa_chat
summarize: true
summarizer_model: facebook/bart-large-cnn
text_splitting:
  chunk_size: 800
  chunk_overlap: 80
document_retrieval:
  k: 5
embeddings_provider: cohere
embeddings_model: embed-english-v3.0
chroma_db_name: chroma_docs
chat_model:
  model_name: gpt-4
  temperature: 0.2
  max_tokens: 500
conversation_chain:
  verbose: true
github:
  repos:
    - owner: huggingface
      repo: transformers
      path: docs/source/es
jsonl_database_path: data/docs_en_2024_01_15.jsonl
data_dir: data
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.RecreateChromaDB)
	assert.Equal(t, ChatTypeQA, cfg.ChatType)
	assert.True(t, cfg.Summarize)
	assert.Equal(t, 800, cfg.TextSplitting.ChunkSize)
	assert.Equal(t, 80, cfg.TextSplitting.ChunkOverlap)
	assert.Equal(t, 5, cfg.DocumentRetrieval.K)
	assert.Equal(t, ProviderCohere, cfg.EmbeddingsProvider)
	assert.Equal(t, "embed-english-v3.0", cfg.EmbeddingsModel)
	assert.Equal(t, "gpt-4", cfg.ChatModel.ModelName)
	assert.InDelta(t, 0.2, cfg.ChatModel.Temperature, 1e-6)
	assert.Equal(t, 500, cfg.ChatModel.MaxTokens)
	assert.True(t, cfg.ConversationChain.Verbose)
	require.Len(t, cfg.GitHub.Repos, 1)
	assert.Equal(t, Repo{Owner: "huggingface", Repo: "transformers", Path: "docs/source/es"}, cfg.GitHub.Repos[0])
	assert.Equal(t, "data/docs_en_2024_01_15.jsonl", cfg.JSONLDatabasePath)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "recreate_chroma_db: false\n"))
	require.NoError(t, err)

	assert.Equal(t, ChatTypeMemory, cfg.ChatType)
	assert.Equal(t, "facebook/bart-large-cnn", cfg.SummarizerModel)
	assert.Equal(t, 1600, cfg.TextSplitting.ChunkSize)
	assert.Equal(t, 160, cfg.TextSplitting.ChunkOverlap)
	assert.Equal(t, 3, cfg.DocumentRetrieval.K)
	assert.Equal(t, ProviderOpenAI, cfg.EmbeddingsProvider)
	assert.Equal(t, "text-embedding-ada-002", cfg.EmbeddingsModel)
	assert.Equal(t, "chroma_docs", cfg.ChromaDBName)
	assert.Equal(t, "gpt-3.5-turbo", cfg.ChatModel.ModelName)
	assert.Equal(t, 1000, cfg.ChatModel.MaxTokens)
	assert.Equal(t, "data", cfg.DataDir)
	assert.False(t, cfg.Summarize)
}

func TestLoadRejectsUnknownChatType(t *testing.T) {
	_, err := Load(writeConfig(t, "chat_type: streaming_chat\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat_type")
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	_, err := Load(writeConfig(t, "embeddings_provider: anthropic\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.Contains(t, err.Error(), "anthropic")
}

func TestLoadRejectsOverlapNotSmallerThanSize(t *testing.T) {
	_, err := Load(writeConfig(t, `
text_splitting:
  chunk_size: 100
  chunk_overlap: 100
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk_overlap")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "chat_type: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestGitHubToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	_, err := GitHubToken()
	assert.True(t, errors.Is(err, ErrMissingGitHubToken))

	t.Setenv("GITHUB_TOKEN", "ghp_test")
	token, err := GitHubToken()
	require.NoError(t, err)
	assert.Equal(t, "ghp_test", token)
}

func TestAPIKeysFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	assert.Equal(t, "sk-test", OpenAIAPIKey())

	t.Setenv("COHERE_API_KEY", "co-test")
	assert.Equal(t, "co-test", CohereAPIKey())

	t.Setenv("HF_API_TOKEN", "hf-test")
	assert.Equal(t, "hf-test", HuggingFaceToken())
	t.Setenv("HF_API_TOKEN", "")
	assert.Empty(t, HuggingFaceToken())
}
