package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when an id does not match any stored record.
var ErrNotFound = errors.New("record not found")

// ErrCorrupt wraps a failure to decode a persisted collection. It is
// surfaced at construction so a damaged data file never goes unnoticed.
var ErrCorrupt = errors.New("store file is corrupt")

// loadCollection reads one JSON-array collection file. A missing file is an
// empty collection; malformed JSON is a typed error.
func loadCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return items, nil
}

// writeCollection rewrites the whole collection file. Every mutation goes
// through here; there is no incremental diffing, matching the
// last-writer-wins persistence model.
func writeCollection[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
