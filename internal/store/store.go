package store

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/benbeisheim/chesscheck-backend/internal/model"
)

// ErrNotFound is returned when no archive exists under the requested ID.
var ErrNotFound = errors.New("game not archived")

const gameKeyPrefix = "game:"

// GameArchive is the persisted form of a game: its state and analysis at
// archive time.
type GameArchive struct {
	ID         string          `json:"id"`
	State      model.GameState `json:"state"`
	Analysis   model.Analysis  `json:"analysis"`
	ArchivedAt time.Time       `json:"archivedAt"`
}

// Store persists game archives in a Badger key-value database, one JSON
// value per game under "game:<id>".
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the archive database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store backed by memory only. Used by tests and
// useful for ephemeral deployments.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame writes the archive under its ID, overwriting any prior archive
// of the same game.
func (s *Store) SaveGame(rec GameArchive) error {
	rec.ArchivedAt = time.Now()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+rec.ID), data)
	})
}

// LoadGame reads the archive stored under id.
func (s *Store) LoadGame(id string) (GameArchive, error) {
	var rec GameArchive

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKeyPrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, err
}

// ListGames returns the IDs of every archived game.
func (s *Store) ListGames() ([]string, error) {
	ids := make([]string, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ids = append(ids, strings.TrimPrefix(key, gameKeyPrefix))
		}
		return nil
	})

	return ids, err
}
