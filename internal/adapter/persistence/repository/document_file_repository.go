package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"maintup/internal/domain/entities"
	"maintup/internal/usecase/interfaces"
	"maintup/pkg"
)

const defaultDataFile = "data/ledger.json"

// DocumentFileRepository persists the whole document as one JSON file, raw
// objects straight to disk. Writes go through a temp file plus rename so a
// crash mid-write never leaves a truncated document behind. A process-wide
// RWMutex serializes access; two processes sharing the file still race (last
// write wins at the file level).
type DocumentFileRepository struct {
	mu       sync.RWMutex
	filePath string
}

var _ interfaces.IDocumentRepository = (*DocumentFileRepository)(nil)

// NewDocumentFileRepository creates the data directory and an empty document
// file when none exists yet.
func NewDocumentFileRepository(path string) (*DocumentFileRepository, error) {
	if path == "" {
		path = pkg.GetenvDefault("DATA_FILE", defaultDataFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		data, err := json.MarshalIndent(entities.EmptyRawDocument(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal empty document: %w", err)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return nil, fmt.Errorf("initialize data file: %w", err)
		}
	}
	return &DocumentFileRepository{filePath: path}, nil
}

func (r *DocumentFileRepository) Load(_ context.Context) (entities.RawDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return entities.RawDocument{}, fmt.Errorf("read data file: %w", err)
	}
	var doc entities.RawDocument
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return entities.RawDocument{}, fmt.Errorf("parse data file: %w", err)
		}
	}
	doc.Normalize()
	return doc, nil
}

func (r *DocumentFileRepository) Save(_ context.Context, doc entities.RawDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	tmpPath := r.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp data file: %w", err)
	}
	if err := os.Rename(tmpPath, r.filePath); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
