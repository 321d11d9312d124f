package settings

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/thep2p/go-staker-manager/internal/model"
)

// LevelDBStore is a Store backed by level db.
type LevelDBStore struct {
	db *leveldb.DB
}

// OpenLevelDBStore opens (or creates) a level db database at path.
func OpenLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return NewLevelDBStore(db), nil
}

// NewLevelDBStore wraps an already opened database.
func NewLevelDBStore(db *leveldb.DB) *LevelDBStore {
	return &LevelDBStore{db: db}
}

// Get implements Store.
func (s *LevelDBStore) Get(network model.Network, key Key) (string, bool, error) {
	buf, err := s.db.Get([]byte(StorageKey(network, key)), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", false, nil
	}
	if errors.Is(err, leveldb.ErrClosed) {
		return "", false, ErrClosed
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", StorageKey(network, key), err)
	}
	return string(buf), true, nil
}

// Set implements Store.
func (s *LevelDBStore) Set(network model.Network, key Key, value string) error {
	return s.SetMany(network, map[Key]string{key: value})
}

// SetMany implements Store. All values land in a single batch.
func (s *LevelDBStore) SetMany(network model.Network, values map[Key]string) error {
	batch := new(leveldb.Batch)
	for k, v := range values {
		batch.Put([]byte(StorageKey(network, k)), []byte(v))
	}
	if err := s.db.Write(batch, nil); err != nil {
		if errors.Is(err, leveldb.ErrClosed) {
			return ErrClosed
		}
		return fmt.Errorf("write settings batch: %w", err)
	}
	return nil
}

// getRaw and putRaw serve prefixed records that are not per-network settings.
func (s *LevelDBStore) getRaw(key string) ([]byte, bool, error) {
	buf, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return buf, true, nil
}

func (s *LevelDBStore) putRaw(key string, value []byte) error {
	return s.db.Put([]byte(key), value, nil)
}

// Close implements Store.
func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
