// Package kvstore implements the durable key-value store backing the
// portfolio data service. It plays the role browser local storage plays for
// the original single-page application: a handful of well-known string keys
// mapped to opaque values, surviving process restarts.
//
// The whole store is one JSON document on disk. Every Set/Delete rewrites
// the file through a temp-file rename, so a crash mid-write leaves the
// previous document intact - the store is never observed half-written.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys used by the data service and its satellites.
const (
	KeyDatabase  = "portfolio_db"
	KeyCart      = "portfolio_cart"
	KeyAdminAuth = "portfolio_admin_auth"
)

// Store is a file-backed key-value map. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Open loads the store file at path, creating an empty store if the file
// does not exist yet. Opening the same path twice yields independent
// in-memory views; one process owns a store file at a time.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("decode store file %s: %w", path, err)
		}
	}
	return s, nil
}

// Get returns the raw value stored under key, and whether it was present.
// The returned bytes are a copy; callers may retain or mutate them freely.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

// Set stores value under key and flushes the whole document to disk.
// The value must be valid JSON; the store document itself is JSON.
func (s *Store) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("set %q: value is not valid JSON", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := make(json.RawMessage, len(value))
	copy(v, value)
	s.data[key] = v
	return s.flushLocked()
}

// SetString stores a plain string value under key.
func (s *Store) SetString(key, value string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return s.Set(key, encoded)
}

// GetString returns the string stored under key, or "" if absent or not a
// JSON string.
func (s *Store) GetString(key string) (string, bool) {
	raw, ok := s.Get(key)
	if !ok {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}

// Delete removes key and flushes. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flushLocked()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// flushLocked writes the document atomically: marshal, write to a temp file
// in the same directory, fsync, rename over the target. Callers hold s.mu.
func (s *Store) flushLocked() error {
	doc, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".kvstore-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
