// Package store implements the flat key → JSON-array record store that backs
// the local storage driver. Each key maps to one file under the data
// directory, holding a versioned envelope around the record array. Writes are
// atomic (temp file + rename) and the whole store is guarded by a single
// mutex: there is exactly one logical writer at a time.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SchemaVersion is stamped into every persisted collection. A mismatch on
// read surfaces a StorageError instead of silently reinterpreting records.
const SchemaVersion = 1

// Store is a flat key-value store persisted as one JSON file per key.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepares the data directory and returns a ready store.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing data directory.
func (s *Store) Dir() string { return s.dir }

// Get returns the raw document stored under key. A missing key is not an
// error: ok is false and data is nil.
func (s *Store) Get(key string) (data []byte, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &StorageError{Key: key, Err: err}
	}
	return b, true, nil
}

// Set atomically replaces the document stored under key.
func (s *Store) Set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Key: key, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Key: key, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Key: key, Err: err}
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// envelope wraps every persisted collection with an explicit schema version.
type envelope struct {
	Version int             `json:"version"`
	Records json.RawMessage `json:"records"`
}

// LoadCollection reads the record array stored under key. A missing key
// yields an empty slice. Malformed JSON or a schema-version mismatch yields a
// *StorageError — callers decide whether to surface or warn, but the data is
// never silently discarded.
func LoadCollection[T any](s *Store, key string) ([]T, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &StorageError{Key: key, Err: fmt.Errorf("malformed document: %w", err)}
	}
	if env.Version != SchemaVersion {
		return nil, &StorageError{Key: key, Err: fmt.Errorf("schema version %d, want %d", env.Version, SchemaVersion)}
	}

	var records []T
	if err := json.Unmarshal(env.Records, &records); err != nil {
		return nil, &StorageError{Key: key, Err: fmt.Errorf("malformed records: %w", err)}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// SaveCollection persists the record array under key, wrapped in the
// versioned envelope.
func SaveCollection[T any](s *Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	recs, err := json.Marshal(records)
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}
	doc, err := json.Marshal(envelope{Version: SchemaVersion, Records: recs})
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}
	return s.Set(key, doc)
}
