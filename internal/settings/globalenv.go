package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/thep2p/go-staker-manager/internal/model"
)

// GlobalEnvs receives staker settings published as global environment
// variables.
type GlobalEnvs interface {
	Publish(envs map[string]string) error
}

// GlobalEnvName returns the variable a setting is published under,
// e.g. CONSENSUS_CLIENT_MAINNET.
func GlobalEnvName(network model.Network, key Key) string {
	return strings.ToUpper(strings.ReplaceAll(StorageKey(network, key), "-", "_"))
}

// EnvFile is a GlobalEnvs kept in a dotenv file.
// Published variables are merged into the variables already in the file.
type EnvFile struct {
	mu   sync.Mutex
	path string
}

// NewEnvFile creates an EnvFile at path. The file is created on first publish.
func NewEnvFile(path string) *EnvFile {
	return &EnvFile{path: path}
}

// Read returns every variable in the file. A missing file reads as empty.
func (f *EnvFile) Read() (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *EnvFile) read() (map[string]string, error) {
	envs, err := godotenv.Read(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read global envs %s: %w", f.path, err)
	}
	return envs, nil
}

// Publish implements GlobalEnvs.
func (f *EnvFile) Publish(envs map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.read()
	if err != nil {
		return err
	}
	for k, v := range envs {
		current[k] = v
	}
	if err := godotenv.Write(current, f.path); err != nil {
		return fmt.Errorf("write global envs %s: %w", f.path, err)
	}
	return nil
}
