package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/hashira-dev/hashira/pkg/config"
	"github.com/hashira-dev/hashira/pkg/extract"
	"github.com/hashira-dev/hashira/pkg/githubdocs"
	"github.com/hashira-dev/hashira/pkg/summarize"
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

	token, err := config.GitHubToken()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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
		os.Exit(1)
	}()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}
	writer := extract.NewCorpusWriter(filepath.Join(cfg.DataDir, extract.CorpusFileName(time.Now())))
	if err := writer.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var processor extract.TextProcessor
	if cfg.Summarize {
		processor = summarize.NewProcessor(
			summarize.NewTiktokenTokenizer(""),
			summarize.NewHFSummarizer(cfg.SummarizerModel, config.HuggingFaceToken(), ""),
			logger,
		)
	}

	extractor := extract.NewExtractor(githubdocs.NewClient(token, ""), writer, processor, logger)
	for _, repo := range cfg.GitHub.Repos {
		extractor.ExtractRepo(ctx, repo)
	}

	tarPath, err := writer.Archive()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error archiving corpus: %v\n", err)
		os.Exit(1)
	}
	color.Green("Successfully compressed the JSONL file.")
	logger.Info("extraction finished",
		zap.String("corpus", writer.Path()),
		zap.String("archive", tarPath),
		zap.Bool("summarized", cfg.Summarize))
}
