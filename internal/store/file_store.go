package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileSecretStore is a file-backed [SecretStore]. The whole key space is
// kept in memory and flushed to a single JSON file on every write, which
// gives the atomic-per-key, no-cross-key-transaction semantics the pipeline
// assumes from the platform store.
type fileSecretStore struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	items map[string]string
}

// NewFileSecretStore opens (or creates on first write) the store file at
// path. An empty path or ":memory:" yields a purely in-memory store, used
// in tests.
func NewFileSecretStore(path string) (SecretStore, error) {
	inMemory := path == "" || path == ":memory:"
	s := &fileSecretStore{
		path:     path,
		inMemory: inMemory,
		items:    make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// GetItem implements [SecretStore].
func (s *fileSecretStore) GetItem(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return "", ErrItemNotFound
	}
	return value, nil
}

// SetItem implements [SecretStore].
func (s *fileSecretStore) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return s.persist()
}

// RemoveItem implements [SecretStore].
func (s *fileSecretStore) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return s.persist()
}

func (s *fileSecretStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read secret store file: %w", err)
	}

	items := make(map[string]string)
	if err = json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decode secret store file: %w", err)
	}

	s.items = items
	return nil
}

func (s *fileSecretStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create secret store dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode secret store: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write secret store file: %w", err)
	}

	return nil
}
