// Package docs reads the extracted JSONL corpus back into documents and
// splits them into the overlapping chunks the vector store indexes.
package docs

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashira-dev/hashira/pkg/models"
)

// LoadJSONL reads the corpus at path into documents, one JSON object per
// line. Blank lines are skipped; a malformed line stops the load.
func LoadJSONL(path string) ([]models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	var documents []models.Document
	scanner := bufio.NewScanner(f)
	// One record can hold a whole documentation page.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var doc models.Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse corpus line %d: %w", lineNo, err)
		}
		documents = append(documents, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	return documents, nil
}
