// Package summarize compresses documentation prose while leaving fenced code
// blocks verbatim, so code samples survive intact and long prose fits the
// downstream context limits.
package summarize

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	// maxTokensAcceptedBySummarizer is the input limit of the summarization model.
	maxTokensAcceptedBySummarizer = 1024
	// minTokensToSummarize leaves short segments alone; summarizing them
	// loses more than it saves.
	minTokensToSummarize = 200
	// minSummaryLength is the lower bound requested from the model.
	minSummaryLength = 30
)

// Summarizer produces a condensed version of a single prose segment.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Processor runs the summarizing extractor mode over cleaned text.
type Processor struct {
	tokenizer  Tokenizer
	summarizer Summarizer
	logger     *zap.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(tokenizer Tokenizer, summarizer Summarizer, logger *zap.Logger) *Processor {
	return &Processor{
		tokenizer:  tokenizer,
		summarizer: summarizer,
		logger:     logger,
	}
}

// ProcessText splits text on fenced code blocks, summarizes the prose
// segments that exceed the minimum token threshold and rejoins all segments
// in their original order with single spaces.
func (p *Processor) ProcessText(ctx context.Context, text string) (string, error) {
	segments := SplitCodeFences(text)
	for i, segment := range segments {
		if IsCodeFence(segment) {
			continue
		}
		summarized, err := p.summarizeSegment(ctx, segment)
		if err != nil {
			return "", err
		}
		segments[i] = summarized
	}
	return strings.Join(segments, " "), nil
}

func (p *Processor) summarizeSegment(ctx context.Context, text string) (string, error) {
	total, err := p.tokenizer.CountTokens(text)
	if err != nil {
		return "", err
	}
	if total < minTokensToSummarize {
		return text, nil
	}
	if total > maxTokensAcceptedBySummarizer {
		text, err = p.tokenizer.Truncate(text, maxTokensAcceptedBySummarizer*3/4)
		if err != nil {
			return "", err
		}
		p.logger.Debug("segment truncated before summarization",
			zap.Int("tokens", total),
			zap.Int("limit", maxTokensAcceptedBySummarizer))
	}
	return p.summarizer.Summarize(ctx, text, maxTokensAcceptedBySummarizer, minSummaryLength)
}
