// Package settings persists the staker selections of every network as
// plain key/value pairs.
package settings

import (
	"errors"
	"fmt"
	"sync"

	"github.com/thep2p/go-staker-manager/internal/model"
)

// Key names one staker setting. The stored key is "<key>-<network>".
type Key string

const (
	ConsensusClient Key = "consensus-client"
	ExecutionClient Key = "execution-client"
	MevBoost        Key = "mevboost"
	FeeRecipient    Key = "fee-recipient"
	Web3Signer      Key = "web3signer"
)

// Keys lists every per-network staker setting.
var Keys = []Key{ConsensusClient, ExecutionClient, MevBoost, FeeRecipient, Web3Signer}

// GlobalKeys lists the settings other packages read as global environment
// variables.
var GlobalKeys = []Key{ConsensusClient, ExecutionClient, MevBoost, FeeRecipient}

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("settings store closed")

// Store is a last-write-wins key/value store for staker settings.
//
// Network and key are always explicit; there is no ambient state.
type Store interface {
	// Get returns the value stored for key on network.
	// The boolean is false when nothing was ever stored.
	Get(network model.Network, key Key) (string, bool, error)

	// Set stores a single value.
	Set(network model.Network, key Key, value string) error

	// SetMany stores all values in one atomic write.
	SetMany(network model.Network, values map[Key]string) error

	// Close releases the underlying resources.
	Close() error
}

// StorageKey returns the raw key under which a setting is persisted.
func StorageKey(network model.Network, key Key) string {
	return fmt.Sprintf("%s-%s", key, network)
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(network model.Network, key Key) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.values[StorageKey(network, key)]
	return v, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(network model.Network, key Key, value string) error {
	return m.SetMany(network, map[Key]string{key: value})
}

// SetMany implements Store.
func (m *MemoryStore) SetMany(network model.Network, values map[Key]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	for k, v := range values {
		m.values[StorageKey(network, k)] = v
	}
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MemoryStore) getRaw(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrClosed
	}
	v, ok := m.values[key]
	return []byte(v), ok, nil
}

func (m *MemoryStore) putRaw(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.values[key] = string(value)
	return nil
}
