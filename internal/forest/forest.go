// Package forest persists one tenant's forest as a single JSON document.
// Saves are whole-forest snapshots written atomically; there is no partial
// or incremental persistence.
package forest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zigap/skrinja/internal/tree"
)

// Load reads a forest file and reconstructs its Tracker. A missing file is
// not an error: it yields an empty Tracker, covering first use.
func Load(path string) (*tree.Tracker, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return tree.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading forest file: %w", err)
	}

	var snap tree.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing forest file %s: %w", path, err)
	}
	return tree.FromSnapshot(&snap), nil
}

// Save writes the tracker's current snapshot to path. The document is
// written to a temp file in the same directory and renamed into place, so
// a crash mid-write never leaves a truncated forest behind.
func Save(path string, t *tree.Tracker) error {
	data, err := json.MarshalIndent(t.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding forest: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing forest file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing forest file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing forest file: %w", err)
	}
	return nil
}
