package extract

import (
	"archive/tar"
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashira-dev/hashira/pkg/models"
)

func TestCorpusFileName(t *testing.T) {
	day := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "docs_en_2024_01_15.jsonl", CorpusFileName(day))
}

func TestCorpusWriterAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.jsonl")
	writer := NewCorpusWriter(path)

	require.NoError(t, writer.Append(models.Document{
		Title: "a.md", RepoOwner: "huggingface", RepoName: "transformers", Text: "first",
	}))
	require.NoError(t, writer.Append(models.Document{
		Title: "b.md", RepoOwner: "huggingface", RepoName: "transformers", Text: "second",
	}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var docs []models.Document
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var doc models.Document
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &doc))
		docs = append(docs, doc)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, docs, 2)
	assert.Equal(t, "a.md", docs[0].Title)
	assert.Equal(t, "first", docs[0].Text)
	assert.Equal(t, "second", docs[1].Text)
}

func TestCorpusWriterReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.jsonl")
	writer := NewCorpusWriter(path)

	// Resetting a missing file is fine.
	require.NoError(t, writer.Reset())

	require.NoError(t, writer.Append(models.Document{Title: "a.md"}))
	require.NoError(t, writer.Reset())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCorpusWriterArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs_en_2024_01_15.jsonl")
	writer := NewCorpusWriter(path)
	require.NoError(t, writer.Append(models.Document{Title: "a.md", Text: "hello"}))

	tarPath, err := writer.Archive()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "docs_en_2024_01_15.tar"), tarPath)

	f, err := os.Open(tarPath)
	require.NoError(t, err)
	defer f.Close()

	tr := tar.NewReader(f)
	hdr, err := tr.Next()
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(path), hdr.Name)

	content, err := io.ReadAll(tr)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"title":"a.md"`)

	_, err = tr.Next()
	assert.Equal(t, io.EOF, err)
}
