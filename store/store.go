// ABOUTME: Single-key state persistence over BadgerDB
// ABOUTME: Loads and saves the whole AppState as one JSON blob
package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/proxvenda/models"
)

// StateKey is the only key the store ever writes. Every mutation replaces
// the whole blob; last write wins.
const StateKey = "proxvenda_data"

// Store wraps a Badger database holding the serialized application state.
type Store struct {
	db *badger.DB
}

// DefaultPath returns the XDG data directory for the state store.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "proxvenda", "state")
}

// Open opens (or creates) the state store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Load reads the persisted state. A missing key means first run and yields
// the seeded default state. An unreadable blob also falls back to defaults
// instead of failing the whole program.
func (s *Store) Load() (*models.AppState, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(StateKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.NewDefaultState(), nil
	}
	if err != nil {
		return nil, err
	}

	st := &models.AppState{}
	if err := json.Unmarshal(raw, st); err != nil {
		log.Printf("warning: stored state is unreadable, starting fresh: %v", err)
		return models.NewDefaultState(), nil
	}

	// The funnel invariant holds even for hand-edited blobs
	if len(st.Stages) == 0 {
		st.Stages = models.DefaultStages()
	}

	return st, nil
}

// Save overwrites the persisted state wholesale.
func (s *Store) Save(st *models.AppState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(StateKey), raw)
	})
}

// Mutate runs one command against the current state and persists the result
// only when the command is accepted. Rejected commands leave the stored
// blob untouched.
func (s *Store) Mutate(fn func(*models.AppState) error) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return s.Save(st)
}

// Reset drops the stored state. The next Load seeds defaults again.
func (s *Store) Reset() error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(StateKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
