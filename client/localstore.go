package client

import (
	"os"
	"path/filepath"
)

// KeyValueStore is the minimal persistence the offline provider needs:
// the browser build used localStorage, the Go build uses a directory
// of files.
type KeyValueStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// FileStore keeps one file per key under a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), value, 0o644)
}
