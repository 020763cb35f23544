// Package filehandler is a small JSON persistence helper over a data
// directory, used for exported decks.
package filehandler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type FileHandler struct {
	dataDir string
}

// New creates a FileHandler rooted at dataDir, creating the directory if
// needed.
func New(dataDir string) (*FileHandler, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dataDir, err)
	}
	return &FileHandler{dataDir: dataDir}, nil
}

// Save writes v as indented JSON to name inside the data directory.
func (h *FileHandler) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(h.dataDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads name from the data directory and decodes it into v.
func (h *FileHandler) Load(name string, v any) error {
	path := filepath.Join(h.dataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Exists reports whether name is present in the data directory.
func (h *FileHandler) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(h.dataDir, name))
	return err == nil
}

// Delete removes name from the data directory. Deleting a missing file is
// not an error.
func (h *FileHandler) Delete(name string) error {
	err := os.Remove(filepath.Join(h.dataDir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List returns the names of all regular files in the data directory.
func (h *FileHandler) List() ([]string, error) {
	entries, err := os.ReadDir(h.dataDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", h.dataDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Path returns the full path of name inside the data directory.
func (h *FileHandler) Path(name string) string {
	return filepath.Join(h.dataDir, name)
}
