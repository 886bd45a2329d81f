package models

// Document represents one extracted documentation file from a GitHub repository.
// The text is pre-cleaned before the record is persisted; records are immutable
// once written to the corpus.
type Document struct {
	Title     string `json:"title"`
	RepoOwner string `json:"repo_owner"`
	RepoName  string `json:"repo_name"`
	Text      string `json:"text"`
}

// Metadata returns the document's source metadata in the form carried by its chunks.
func (d Document) Metadata() map[string]string {
	return map[string]string{
		"title":      d.Title,
		"repo_owner": d.RepoOwner,
		"repo_name":  d.RepoName,
	}
}

// Chunk represents a bounded window of a document's text, the unit of
// embedding and retrieval.
type Chunk struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
}

// SearchResult represents a chunk that matched a similarity query.
type SearchResult struct {
	Chunk Chunk   `json:"chunk"`
	Score float32 `json:"score"`
}
