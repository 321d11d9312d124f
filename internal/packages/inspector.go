// Package packages reports which DAppNode packages are installed and running.
//
// Container orchestration itself lives outside this repository; the
// Inspector interface is the only view the staker backend needs.
package packages

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrNotInstalled is returned when a package is not installed.
var ErrNotInstalled = errors.New("package not installed")

// InstalledPackage is the runtime state of one installed package.
type InstalledPackage struct {
	DnpName     string `yaml:"dnpName" json:"dnpName"`
	Version     string `yaml:"version" json:"version,omitempty"`
	Running     bool   `yaml:"running" json:"running"`
	Chain       string `yaml:"chain,omitempty" json:"chain,omitempty"`
	AvatarURL   string `yaml:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	IsUpdated   bool   `yaml:"isUpdated" json:"isUpdated"`
}

// Inspector looks up installed packages.
type Inspector interface {
	// Inspect returns the state of dnpName, or ErrNotInstalled.
	Inspect(ctx context.Context, dnpName string) (InstalledPackage, error)
}

// MemoryInspector is an Inspector over a fixed, mutable set of packages.
type MemoryInspector struct {
	mu   sync.RWMutex
	pkgs map[string]InstalledPackage
}

// NewMemoryInspector creates an inspector knowing pkgs.
func NewMemoryInspector(pkgs ...InstalledPackage) *MemoryInspector {
	m := &MemoryInspector{pkgs: make(map[string]InstalledPackage, len(pkgs))}
	for _, p := range pkgs {
		m.pkgs[p.DnpName] = p
	}
	return m
}

// Put adds or replaces a package.
func (m *MemoryInspector) Put(pkg InstalledPackage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pkgs[pkg.DnpName] = pkg
}

// Remove uninstalls a package.
func (m *MemoryInspector) Remove(dnpName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pkgs, dnpName)
}

// Inspect implements Inspector.
func (m *MemoryInspector) Inspect(ctx context.Context, dnpName string) (InstalledPackage, error) {
	if err := ctx.Err(); err != nil {
		return InstalledPackage{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.pkgs[dnpName]
	if !ok {
		return InstalledPackage{}, fmt.Errorf("%s: %w", dnpName, ErrNotInstalled)
	}
	return p, nil
}

// inventory is the on-disk layout read by FileInspector.
type inventory struct {
	Packages []InstalledPackage `yaml:"packages"`
}

// FileInspector reads the package inventory from a YAML file on every call,
// so edits to the file are picked up without a restart.
type FileInspector struct {
	path string
}

// NewFileInspector creates an inspector over the YAML inventory at path.
func NewFileInspector(path string) *FileInspector {
	return &FileInspector{path: path}
}

// Inspect implements Inspector.
func (f *FileInspector) Inspect(ctx context.Context, dnpName string) (InstalledPackage, error) {
	if err := ctx.Err(); err != nil {
		return InstalledPackage{}, err
	}

	inv, err := f.load()
	if err != nil {
		return InstalledPackage{}, err
	}
	for _, p := range inv.Packages {
		if p.DnpName == dnpName {
			return p, nil
		}
	}
	return InstalledPackage{}, fmt.Errorf("%s: %w", dnpName, ErrNotInstalled)
}

func (f *FileInspector) load() (inventory, error) {
	var inv inventory

	buf, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return inv, nil
	}
	if err != nil {
		return inv, fmt.Errorf("read inventory: %w", err)
	}
	if err := yaml.Unmarshal(buf, &inv); err != nil {
		return inv, fmt.Errorf("parse inventory %s: %w", f.path, err)
	}
	return inv, nil
}
