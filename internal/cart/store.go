package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists one cart as a JSON file, filling the role the
// browser's localStorage key played for the original storefront.
type FileStore struct {
	path string
}

// NewFileStore stores the cart identified by id under dir.
func NewFileStore(dir, id string) *FileStore {
	return &FileStore{path: filepath.Join(dir, id+".json")}
}

// Load returns the decoded stored item list, nil when nothing has been
// persisted yet, or an error for unreadable/corrupt files.
func (s *FileStore) Load() (any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var stored any
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}
	return stored, nil
}

// Save writes the full item list, replacing whatever was stored before.
func (s *FileStore) Save(items []Line) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to prepare cart directory: %w", err)
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	return nil
}
