// Package store persists the full account mapping as a single JSON snapshot
// file. The snapshot is the sole source of truth: callers load the whole
// mapping, mutate it in memory, and save the whole mapping back.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/model"
)

// Store reads and writes the account snapshot at a fixed path
type Store struct {
	path string
}

// New creates a Store backed by the snapshot file at path
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file location
func (s *Store) Path() string {
	return s.path
}

// Load parses the snapshot into an account mapping keyed by account number.
// A missing file is not an error: it yields an empty, usable mapping. A file
// that exists but cannot be parsed is fatal to the caller.
func (s *Store) Load() (map[string]*model.Account, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]*model.Account), nil
		}
		return nil, fmt.Errorf("open snapshot %s: %w", s.path, err)
	}
	defer f.Close()

	accounts := make(map[string]*model.Account)
	if err := json.NewDecoder(f).Decode(&accounts); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", s.path, err)
	}
	return accounts, nil
}

// Save serializes the full mapping and overwrites the snapshot unconditionally.
// The write is a plain truncating overwrite; a crash mid-write can leave a
// corrupt file. Indentation is cosmetic, for manual inspection.
func (s *Store) Save(accounts map[string]*model.Account) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create snapshot %s: %w", s.path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(accounts); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot %s: %w", s.path, err)
	}
	return f.Close()
}
