package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/korjavin/pantrychef/pkg/logger"
)

// ErrNotFound is returned by Get when the key has never been written
var ErrNotFound = errors.New("key not found")

// Store represents a BadgerDB storage instance
type Store struct {
	db     *badger.DB
	logger *logger.Logger
}

// New creates a new BadgerDB storage instance
func New(dataDir string) (*Store, error) {
	absPath, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	opts := badger.DefaultOptions(absPath)
	opts.Logger = nil // Disable Badger's internal logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	s := &Store{db: db, logger: logger.New("storage")}
	s.logger.Info("BadgerDB opened at %s", absPath)
	return s, nil
}

// NewInMemory opens a BadgerDB instance that never touches disk
func NewInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory BadgerDB: %w", err)
	}
	return &Store{db: db, logger: logger.New("storage")}, nil
}

// Close closes the BadgerDB database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Set serializes value as JSON and stores it under key
func (s *Store) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return s.SetRaw(key, data)
}

// SetRaw stores data under key in a single read-write transaction.
// Update discards the transaction on every return path.
func (s *Store) SetRaw(key string, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	s.logger.Debug("wrote %s (%d bytes)", key, len(data))
	return nil
}

// GetRaw returns a copy of the bytes stored under key
func (s *Store) GetRaw(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to get value: %w", err)
	}
	return data, nil
}

// RunGC runs garbage collection on the database
func (s *Store) RunGC() error {
	return s.db.RunValueLogGC(0.5)
}

// StartGCRoutine starts a goroutine that periodically runs garbage collection
// until ctx is cancelled
func (s *Store) StartGCRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				err := s.RunGC()
				// Only log when GC actually did something
				if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
					s.logger.Error("BadgerDB GC error: %v", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	s.logger.Info("Started BadgerDB GC routine with interval %v", interval)
}
