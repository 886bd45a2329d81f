package docs

import (
	"github.com/google/uuid"

	"github.com/hashira-dev/hashira/pkg/models"
)

// SplitDocuments chunks every document into overlapping fixed-size windows,
// carrying the parent document's metadata onto each chunk. Chunk IDs are
// fresh UUIDs; content and order are deterministic for a given input and
// splitting config.
func SplitDocuments(documents []models.Document, chunkSize, chunkOverlap int) []models.Chunk {
	var chunks []models.Chunk
	for _, doc := range documents {
		for _, window := range ChunkText(doc.Text, chunkSize, chunkOverlap) {
			chunks = append(chunks, models.Chunk{
				ID:       uuid.NewString(),
				Content:  window,
				Metadata: doc.Metadata(),
			})
		}
	}
	return chunks
}

// ChunkText splits text into rune windows of chunkSize with chunkOverlap
// runes shared between neighbors. Rune boundaries keep multi-byte characters
// intact.
func ChunkText(text string, chunkSize, chunkOverlap int) []string {
	if chunkSize <= 0 {
		return nil
	}
	step := chunkSize - chunkOverlap
	if step <= 0 {
		step = chunkSize
	}

	runes := []rune(text)
	var windows []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return windows
}
