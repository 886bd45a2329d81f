// Package extract walks configured GitHub repository subtrees and writes one
// cleaned record per documentation file to a JSONL corpus.
package extract

import (
	"context"
	"path"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/hashira-dev/hashira/pkg/config"
	"github.com/hashira-dev/hashira/pkg/githubdocs"
	"github.com/hashira-dev/hashira/pkg/models"
	"github.com/hashira-dev/hashira/pkg/textclean"
)

// RepoLister lists and downloads repository contents.
type RepoLister interface {
	ListDirectory(ctx context.Context, owner, repo, path string) ([]githubdocs.Entry, error)
	DownloadFile(ctx context.Context, downloadURL string) (string, error)
}

// TextProcessor transforms cleaned text before it is written. The summarizing
// extractor mode plugs in here; the plain mode runs without one.
type TextProcessor interface {
	ProcessText(ctx context.Context, text string) (string, error)
}

// Extractor drives the recursive traversal of repository subtrees.
type Extractor struct {
	client    RepoLister
	writer    *CorpusWriter
	processor TextProcessor
	logger    *zap.Logger
}

// NewExtractor creates an Extractor. processor may be nil for the plain
// (non-summarizing) mode.
func NewExtractor(client RepoLister, writer *CorpusWriter, processor TextProcessor, logger *zap.Logger) *Extractor {
	return &Extractor{
		client:    client,
		writer:    writer,
		processor: processor,
		logger:    logger,
	}
}

// ExtractRepo recursively processes one repository subtree. A failed
// directory listing skips that subtree, a failed file skips that record;
// sibling paths keep going either way. There is no retry or backoff.
func (e *Extractor) ExtractRepo(ctx context.Context, repo config.Repo) {
	e.processDirectory(ctx, repo, repo.Path)
}

func (e *Extractor) processDirectory(ctx context.Context, repo config.Repo, dirPath string) {
	color.Blue("Processing directory: %s of repo: %s", dirPath, repo.Repo)

	entries, err := e.client.ListDirectory(ctx, repo.Owner, repo.Repo, dirPath)
	if err != nil {
		color.Red("Failed to retrieve files. Please check your GitHub token and the repo details.")
		e.logger.Warn("directory listing failed",
			zap.String("repo", repo.Repo),
			zap.String("path", dirPath),
			zap.Error(err))
		return
	}

	for _, entry := range entries {
		switch {
		case entry.Type == "file" && githubdocs.IsMarkdown(entry.Name):
			color.Green("Downloading file: %s", entry.Name)
			color.Cyan("Download URL: %s", entry.DownloadURL)
			if err := e.processFile(ctx, repo, entry); err != nil {
				color.Red("Skipping %s: %v", entry.Name, err)
				e.logger.Warn("file skipped",
					zap.String("file", entry.Path),
					zap.Error(err))
			}
		case entry.Type == "dir":
			e.processDirectory(ctx, repo, entry.Path)
		}
	}
	color.Green("Successfully retrieved files from the directory.")
}

func (e *Extractor) processFile(ctx context.Context, repo config.Repo, entry githubdocs.Entry) error {
	raw, err := e.client.DownloadFile(ctx, entry.DownloadURL)
	if err != nil {
		return err
	}

	text := textclean.Preprocess(raw)
	if e.processor != nil {
		text, err = e.processor.ProcessText(ctx, text)
		if err != nil {
			return err
		}
	}
	text = textclean.CollapseWhitespace(text)

	return e.writer.Append(models.Document{
		// The title is the last segment of the download URL, matching the
		// persisted record schema consumers expect.
		Title:     path.Base(entry.DownloadURL),
		RepoOwner: repo.Owner,
		RepoName:  repo.Repo,
		Text:      text,
	})
}
