package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists transcripts as individual JSON files in a directory.
// Each transcript is stored as {id}.json.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore that saves transcripts to the given
// directory. The directory is created if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create transcript dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes a transcript to disk as JSON.
func (f *FileStore) Save(_ context.Context, t *Transcript) error {
	if t == nil {
		return fmt.Errorf("transcript is nil")
	}

	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}
	if err := os.WriteFile(f.path(t.ID), b, 0o644); err != nil {
		return fmt.Errorf("write transcript file: %w", err)
	}
	return nil
}

// Load reads a transcript from disk by ID.
func (f *FileStore) Load(_ context.Context, id string) (*Transcript, error) {
	b, err := os.ReadFile(f.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("transcript not found: %s", id)
		}
		return nil, fmt.Errorf("read transcript file: %w", err)
	}

	var t Transcript
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("unmarshal transcript: %w", err)
	}
	return &t, nil
}

// Delete removes a transcript file from disk.
func (f *FileStore) Delete(_ context.Context, id string) error {
	if err := os.Remove(f.path(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("transcript not found: %s", id)
		}
		return fmt.Errorf("remove transcript file: %w", err)
	}
	return nil
}

// List returns all transcripts stored on disk.
func (f *FileStore) List(_ context.Context) ([]*Transcript, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("read transcript dir: %w", err)
	}

	var transcripts []*Transcript
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		t, err := f.Load(context.Background(), id)
		if err != nil {
			continue // skip corrupt files
		}
		transcripts = append(transcripts, t)
	}
	return transcripts, nil
}

func (f *FileStore) path(id string) string {
	return filepath.Join(f.dir, id+".json")
}
