package scribe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocument(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestAttachDocuments_UploadsMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "notes.md", "# Notes")
	writeDocument(t, dir, "chapters/intro.md", "# Intro")
	writeDocument(t, dir, "scratch.txt", "ignore me")

	a, f := newTestAssistant(t)
	ctx := context.Background()
	_, err := a.CreateAgent(ctx, "writer", "")
	require.NoError(t, err)

	count, err := a.AttachDocuments(ctx, dir, "**/*.md")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Contains(t, f.sourceReq.Name, "scribe-")
	assert.Equal(t, DefaultLocalEmbedding, f.sourceReq.EmbeddingModel)
	assert.ElementsMatch(t, []string{"notes.md", "intro.md"}, f.uploads)
	assert.Equal(t, []string{"source-1"}, f.attached)
}

func TestAttachDocuments_NoMatches(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "notes.md", "# Notes")

	a, f := newTestAssistant(t)
	ctx := context.Background()
	_, err := a.CreateAgent(ctx, "writer", "")
	require.NoError(t, err)

	_, err = a.AttachDocuments(ctx, dir, "**/*.rst")
	assert.ErrorIs(t, err, ErrNoDocumentsMatched)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Empty(t, f.uploads, "nothing should be uploaded when no files match")
	assert.Empty(t, f.attached)
}

func TestAttachDocuments_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "docs.md/inner.md", "# Nested") // a directory named like a match

	a, f := newTestAssistant(t)
	ctx := context.Background()
	_, err := a.CreateAgent(ctx, "writer", "")
	require.NoError(t, err)

	count, err := a.AttachDocuments(ctx, dir, "**/*.md")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, []string{"inner.md"}, f.uploads)
}
