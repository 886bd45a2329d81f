// Package chat implements the interactive retrieval-augmented conversation
// loop in its two modes: stateless question answering and conversation with
// accumulated history.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashira-dev/hashira/pkg/llm"
	"github.com/hashira-dev/hashira/pkg/models"
)

// systemPrompt grounds the model on the retrieved chunks only.
const systemPrompt = "Use the following pieces of context to answer the question at the end. " +
	"If you don't know the answer, just say that you don't know, don't try to make up an answer."

// Retriever finds the chunks most similar to a query.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]models.SearchResult, error)
}

// Engine answers queries against the document store. The mode is chosen once
// per session by the caller through AnswerQA or AnswerWithMemory.
type Engine struct {
	retriever Retriever
	client    llm.Client
	modelCfg  llm.ModelConfig
	k         int
	verbose   bool
	history   []models.Turn
}

// NewEngine creates an Engine retrieving k chunks per query.
func NewEngine(retriever Retriever, client llm.Client, modelCfg llm.ModelConfig, k int, verbose bool) *Engine {
	return &Engine{
		retriever: retriever,
		client:    client,
		modelCfg:  modelCfg,
		k:         k,
		verbose:   verbose,
	}
}

// AnswerQA answers a single query from retrieved context only. No history is
// consulted and none is recorded, so consecutive identical queries are
// independent.
func (e *Engine) AnswerQA(ctx context.Context, query string) (string, error) {
	results, err := e.retriever.Search(ctx, query, e.k)
	if err != nil {
		return "", fmt.Errorf("retrieval failed: %w", err)
	}

	messages := []models.Message{
		{Role: models.RoleSystem, Content: systemPrompt},
		{Role: models.RoleUser, Content: userPrompt(results, query)},
	}
	reply, err := e.client.Chat(ctx, messages, e.modelCfg)
	if err != nil {
		return "", err
	}
	return reply.Content, nil
}

// AnswerWithMemory answers using the retrieved context plus the full
// accumulated history, then records the new turn. History grows without
// bound for the session; it is never persisted.
func (e *Engine) AnswerWithMemory(ctx context.Context, query string) (string, error) {
	results, err := e.retriever.Search(ctx, query, e.k)
	if err != nil {
		return "", fmt.Errorf("retrieval failed: %w", err)
	}

	messages := make([]models.Message, 0, 2*len(e.history)+2)
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: systemPrompt})
	for _, turn := range e.history {
		messages = append(messages,
			models.Message{Role: models.RoleUser, Content: turn.Query},
			models.Message{Role: models.RoleAssistant, Content: turn.Answer},
		)
	}
	messages = append(messages, models.Message{Role: models.RoleUser, Content: userPrompt(results, query)})

	reply, err := e.client.Chat(ctx, messages, e.modelCfg)
	if err != nil {
		return "", err
	}
	e.history = append(e.history, models.Turn{Query: query, Answer: reply.Content})
	return reply.Content, nil
}

// History returns the recorded turns in submission order.
func (e *Engine) History() []models.Turn {
	return e.history
}

func userPrompt(results []models.SearchResult, query string) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Chunk.Content
	}
	return fmt.Sprintf("Context:\n%s\n\nQuestion: %s", strings.Join(parts, "\n\n"), query)
}
