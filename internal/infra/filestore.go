package infra

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrFileNotFound is returned when a blob key has no stored content.
var ErrFileNotFound = errors.New("file not found")

// FileStore is a local blob store for attached documents. Keys follow the
// "{owning_entity_id}_{original_filename}" convention and are grouped under a
// per-kind subdirectory (vehicle policies, sinister files, licenses, …).
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Write(kind, key string, data []byte) error {
	dir := filepath.Join(s.root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, key), data, 0o644)
}

func (s *FileStore) Read(kind, key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(kind, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	return data, err
}

// Path returns the on-disk locator for a stored blob; handlers hand it to the
// file-response writer.
func (s *FileStore) Path(kind, key string) string {
	return filepath.Join(s.root, kind, key)
}

func (s *FileStore) Delete(kind, key string) error {
	err := os.Remove(s.Path(kind, key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrFileNotFound
	}
	return err
}
