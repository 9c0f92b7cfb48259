// SPDX-License-Identifier: MIT

// Package badgerstore persists shuffle basis expansions in BadgerDB so that
// expensive expansions survive between runs and can be shared by processes
// working on the same weight bound.
//
// Layout: one key per word, "exp/<encoded word>", whose value is the JSON
// encoding of the expansion (word -> rational string). Expansions are pure
// functions of the word, so writes never conflict in meaning.
package badgerstore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/thetasharp/alphabet"
	"github.com/katalvlaran/thetasharp/shuffle"
)

const keyPrefix = "exp/"

// ErrPathRequired is returned by Open for a persistent store without a path.
var ErrPathRequired = errors.New("badgerstore: path is required for persistent store")

// Config holds configuration for a Store.
type Config struct {
	// Path is the database directory; ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM. Useful for tests.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// Logger receives BadgerDB's internal messages; nil silences them.
	Logger *slog.Logger
}

// DefaultConfig returns a persistent configuration rooted at path.
// Cached expansions can always be recomputed, so writes are not synced.
func DefaultConfig(path string) Config {
	return Config{Path: path}
}

// InMemoryConfig returns a RAM-only configuration.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Store is a shuffle.Store backed by BadgerDB. Safe for concurrent use.
type Store struct {
	db *badger.DB
}

var _ shuffle.Store = (*Store)(nil)

// Open opens (creating if needed) the database described by cfg.
// The caller must Close the returned Store.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrPathRequired
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("badgerstore: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerstore: open: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

func key(w alphabet.Word) []byte { return []byte(keyPrefix + string(w)) }

// Load implements shuffle.Store.
func (s *Store) Load(w alphabet.Word) (shuffle.Element, bool, error) {
	var x shuffle.Element
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(w))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		return item.Value(func(val []byte) error { return x.UnmarshalJSON(val) })
	})
	if err != nil {
		return shuffle.Element{}, false, fmt.Errorf("badgerstore: load %q: %w", w, err)
	}

	return x, found, nil
}

// Save implements shuffle.Store.
func (s *Store) Save(w alphabet.Word, x shuffle.Element) error {
	val, err := x.MarshalJSON()
	if err != nil {
		return fmt.Errorf("badgerstore: encode %q: %w", w, err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error { return txn.Set(key(w), val) }); err != nil {
		return fmt.Errorf("badgerstore: save %q: %w", w, err)
	}

	return nil
}

// Len counts the stored expansions.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})

	return n, err
}
