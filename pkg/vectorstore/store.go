// Package vectorstore wraps the persistent chromem-go database behind the
// build-or-open contract the chat pipeline relies on. The on-disk layout
// under the configured path belongs entirely to chromem; this package only
// builds, opens and queries it.
package vectorstore

import (
	"context"
	"fmt"
	"os"

	"github.com/philippgille/chromem-go"

	"github.com/hashira-dev/hashira/pkg/models"
)

const collectionName = "docs"

// Embedder produces embedding vectors for indexing and querying.
type Embedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
	EmbedDocuments(ctx context.Context, documents []string) ([][]float32, error)
}

// Store is a persistent nearest-neighbor index over document chunks. It is
// exclusively owned by one process for the duration of a run.
type Store struct {
	collection *chromem.Collection
	embedder   Embedder
}

// OpenOrBuild either rebuilds the index at path from chunks (recreate=true,
// discarding any prior contents) or opens the existing index in place
// (recreate=false, ignoring the supplied chunks entirely — no merge, no
// freshness check, no embedding calls for them). Callers using the open path
// must make sure chunk regeneration matches what was indexed.
func OpenOrBuild(ctx context.Context, embedder Embedder, chunks []models.Chunk, path string, recreate bool) (*Store, error) {
	if recreate {
		if err := os.RemoveAll(path); err != nil {
			return nil, fmt.Errorf("failed to clear vector store at %s: %w", path, err)
		}
	}

	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector store at %s: %w", path, err)
	}

	embedFn := func(ctx context.Context, text string) ([]float32, error) {
		vectors, err := embedder.EmbedDocuments(ctx, []string{text})
		if err != nil {
			return nil, err
		}
		if len(vectors) == 0 {
			return nil, fmt.Errorf("no embedding returned")
		}
		return vectors[0], nil
	}
	collection, err := db.GetOrCreateCollection(collectionName, nil, embedFn)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}

	store := &Store{collection: collection, embedder: embedder}
	if recreate {
		if err := store.add(ctx, chunks); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// add embeds every chunk in one batch and persists them. Each chunk is
// embedded exactly once.
func (s *Store) add(ctx context.Context, chunks []models.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}
	vectors, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: got %d for %d chunks", len(vectors), len(chunks))
	}

	docs := make([]chromem.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = chromem.Document{
			ID:        chunk.ID,
			Content:   chunk.Content,
			Metadata:  chunk.Metadata,
			Embedding: vectors[i],
		}
	}
	// The pipeline is deliberately sequential end to end.
	if err := s.collection.AddDocuments(ctx, docs, 1); err != nil {
		return fmt.Errorf("failed to index chunks: %w", err)
	}
	return nil
}

// Search returns the k chunks nearest to query. k is capped at the collection
// size, which chromem otherwise rejects.
func (s *Store) Search(ctx context.Context, query string, k int) ([]models.SearchResult, error) {
	if count := s.collection.Count(); k > count {
		k = count
	}
	if k <= 0 {
		return nil, nil
	}

	queryVector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	results, err := s.collection.QueryEmbedding(ctx, queryVector, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	out := make([]models.SearchResult, len(results))
	for i, r := range results {
		out[i] = models.SearchResult{
			Chunk: models.Chunk{
				ID:       r.ID,
				Content:  r.Content,
				Metadata: r.Metadata,
			},
			Score: r.Similarity,
		}
	}
	return out, nil
}

// Count reports the number of indexed chunks.
func (s *Store) Count() int {
	return s.collection.Count()
}
