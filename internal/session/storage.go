package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// Keys mirror the two entries the client keeps in its local storage: the
// serialized account blob and the synthesized token. They are always
// written and removed together with the session lifecycle.
const (
	sessionKey = "luxurydrives_user"
	tokenKey   = "luxurydrives_token"
)

// FileStore is a small key-value store persisted as a single JSON file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore loads the file at path if it exists; a missing file starts
// the store empty.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.values); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

// Delete removes every given key and persists the result once.
func (s *FileStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
	}
	return s.flush()
}

func (s *FileStore) flush() error {
	raw, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
