package scribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mudler/xlog"

	"github.com/scribekit/scribe/letta"
)

// AttachDocuments uploads every file under dir matching the doublestar
// pattern (e.g. "**/*.md") into a new document source and attaches it to the
// agent's archival memory. Returns the number of files uploaded.
func (a *Assistant) AttachDocuments(ctx context.Context, dir, pattern string) (int, error) {
	id, err := a.agentID()
	if err != nil {
		return 0, err
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return 0, fmt.Errorf("scribe: match documents: %w", err)
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(filepath.Join(dir, m))
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("%w: %q under %s", ErrNoDocumentsMatched, pattern, dir)
	}

	source, err := a.client.Sources.Create(ctx, letta.CreateSourceRequest{
		Name:           "scribe-" + filepath.Base(dir),
		Description:    "Reference documents for the writing assistant",
		EmbeddingModel: a.opts.embedding,
	})
	if err != nil {
		return 0, err
	}

	for _, rel := range files {
		f, err := os.Open(filepath.Join(dir, rel))
		if err != nil {
			return 0, fmt.Errorf("scribe: open document %s: %w", rel, err)
		}
		_, err = a.client.Sources.Upload(ctx, source.ID, filepath.Base(rel), f)
		f.Close()
		if err != nil {
			return 0, err
		}
		xlog.Debug("document uploaded", "source", source.ID, "file", rel)
	}

	if err := a.client.Sources.Attach(ctx, id, source.ID); err != nil {
		return 0, err
	}
	return len(files), nil
}
