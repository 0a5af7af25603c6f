package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"maintup/internal/domain/entities"
)

const defaultSnapshotFile = "maintup-data.json"

// snapshot is the locally persisted copy of the document plus the dirty flag.
// It mirrors the wire shape with one extra boolean, so a snapshot file can be
// posted to /sync as-is minus the flag.
type snapshot struct {
	entities.Document
	Unsynced bool `json:"unsynced"`
}

func readSnapshot(path string) (snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return snapshot{}, err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	snap.Normalize()
	return snap, nil
}

func writeSnapshot(path string, snap snapshot) error {
	snap.Normalize()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
