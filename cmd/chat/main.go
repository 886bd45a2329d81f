package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/hashira-dev/hashira/pkg/chat"
	"github.com/hashira-dev/hashira/pkg/config"
	"github.com/hashira-dev/hashira/pkg/docs"
	"github.com/hashira-dev/hashira/pkg/embeddings"
	"github.com/hashira-dev/hashira/pkg/llm"
	"github.com/hashira-dev/hashira/pkg/vectorstore"
)

var configPath = flag.String("config", "config.yaml", "Path to the configuration file")

func main() {
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupts
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nShutting down...")
		cancel()
		os.Exit(0)
	}()

	documents, err := docs.LoadJSONL(cfg.JSONLDatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading documents: %v\n", err)
		os.Exit(1)
	}
	chunks := docs.SplitDocuments(documents, cfg.TextSplitting.ChunkSize, cfg.TextSplitting.ChunkOverlap)

	// The chat model always needs an OpenAI key; the embeddings provider may
	// share it or bring its own.
	openaiKey := config.OpenAIAPIKey()
	embeddingsKey := openaiKey
	if cfg.EmbeddingsProvider == config.ProviderCohere {
		embeddingsKey = config.CohereAPIKey()
	}
	provider, err := embeddings.New(cfg.EmbeddingsProvider, cfg.EmbeddingsModel, embeddingsKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.RecreateChromaDB {
		color.Yellow("RECREANDO CHROMA DB")
	} else {
		color.Yellow("CARGANDO CHROMA EXISTENTE")
	}
	store, err := vectorstore.OpenOrBuild(ctx, provider, chunks, cfg.ChromaDBName, cfg.RecreateChromaDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing vector store: %v\n", err)
		os.Exit(1)
	}
	color.Green("Documentos %d cargados.", len(chunks))
	logger.Info("vector store ready",
		zap.String("path", cfg.ChromaDBName),
		zap.Bool("recreated", cfg.RecreateChromaDB),
		zap.Int("indexed_chunks", store.Count()))

	client := llm.NewOpenAIClient(cfg.ChatModel.ModelName, openaiKey, "")
	defer client.Close()

	engine := chat.NewEngine(store, client, llm.ModelConfig{
		Temperature: cfg.ChatModel.Temperature,
		MaxTokens:   cfg.ChatModel.MaxTokens,
	}, cfg.DocumentRetrieval.K, cfg.ConversationChain.Verbose)

	chat.RunLoop(ctx, engine, cfg.ChatType, os.Stdin, os.Stdout)
}
