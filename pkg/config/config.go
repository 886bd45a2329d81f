// Package config loads the pipeline configuration and resolves API secrets.
// The configuration is read once at process start and passed by value; nothing
// re-reads the file afterwards.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChatType selects the conversation engine mode for a session.
type ChatType string

const (
	// ChatTypeQA answers each query from retrieved context only, with no history.
	ChatTypeQA ChatType = "qa_chat"
	// ChatTypeMemory answers with the full accumulated conversation history.
	ChatTypeMemory ChatType = "memory_chat"
)

// EmbeddingsProvider names a supported hosted embeddings API.
type EmbeddingsProvider string

const (
	// ProviderOpenAI selects the OpenAI embeddings API.
	ProviderOpenAI EmbeddingsProvider = "openai"
	// ProviderCohere selects the Cohere embeddings API.
	ProviderCohere EmbeddingsProvider = "cohere"
)

// Config is the complete pipeline configuration.
type Config struct {
	RecreateChromaDB   bool               `yaml:"recreate_chroma_db"`
	ChatType           ChatType           `yaml:"chat_type"`
	Summarize          bool               `yaml:"summarize"`
	SummarizerModel    string             `yaml:"summarizer_model"`
	TextSplitting      TextSplitting      `yaml:"text_splitting"`
	DocumentRetrieval  DocumentRetrieval  `yaml:"document_retrieval"`
	EmbeddingsProvider EmbeddingsProvider `yaml:"embeddings_provider"`
	EmbeddingsModel    string             `yaml:"embeddings_model"`
	ChromaDBName       string             `yaml:"chroma_db_name"`
	ChatModel          ChatModel          `yaml:"chat_model"`
	ConversationChain  ConversationChain  `yaml:"conversation_chain"`
	GitHub             GitHub             `yaml:"github"`
	JSONLDatabasePath  string             `yaml:"jsonl_database_path"`
	DataDir            string             `yaml:"data_dir"`
}

// TextSplitting holds the chunking window parameters.
type TextSplitting struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
}

// DocumentRetrieval holds the similarity-search parameters.
type DocumentRetrieval struct {
	K int `yaml:"k"`
}

// ChatModel holds the chat-completion model parameters.
type ChatModel struct {
	ModelName   string  `yaml:"model_name"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// ConversationChain holds conversation engine options.
type ConversationChain struct {
	Verbose bool `yaml:"verbose"`
}

// GitHub lists the repository subtrees to extract documentation from.
type GitHub struct {
	Repos []Repo `yaml:"repos"`
}

// Repo identifies one repository subtree.
type Repo struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Path  string `yaml:"path"`
}

// Load reads and validates the YAML configuration at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ChatType == "" {
		c.ChatType = ChatTypeMemory
	}
	if c.SummarizerModel == "" {
		c.SummarizerModel = "facebook/bart-large-cnn"
	}
	if c.TextSplitting.ChunkSize == 0 {
		c.TextSplitting.ChunkSize = 1600
	}
	if c.TextSplitting.ChunkOverlap == 0 {
		c.TextSplitting.ChunkOverlap = 160
	}
	if c.DocumentRetrieval.K == 0 {
		c.DocumentRetrieval.K = 3
	}
	if c.EmbeddingsProvider == "" {
		c.EmbeddingsProvider = ProviderOpenAI
	}
	if c.EmbeddingsModel == "" {
		c.EmbeddingsModel = "text-embedding-ada-002"
	}
	if c.ChromaDBName == "" {
		c.ChromaDBName = "chroma_docs"
	}
	if c.ChatModel.ModelName == "" {
		c.ChatModel.ModelName = "gpt-3.5-turbo"
	}
	if c.ChatModel.MaxTokens == 0 {
		c.ChatModel.MaxTokens = 1000
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
}

func (c Config) validate() error {
	switch c.ChatType {
	case ChatTypeQA, ChatTypeMemory:
	default:
		return fmt.Errorf("unsupported chat_type %q (expected %q or %q)", c.ChatType, ChatTypeQA, ChatTypeMemory)
	}
	switch c.EmbeddingsProvider {
	case ProviderOpenAI, ProviderCohere:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.EmbeddingsProvider)
	}
	if c.TextSplitting.ChunkOverlap >= c.TextSplitting.ChunkSize {
		return fmt.Errorf("chunk_overlap (%d) must be smaller than chunk_size (%d)",
			c.TextSplitting.ChunkOverlap, c.TextSplitting.ChunkSize)
	}
	return nil
}
