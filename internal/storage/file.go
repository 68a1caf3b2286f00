// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/davetashner/saveactions/internal/testable"
)

// FileName is the project settings file name in a project root.
const FileName = ".saveactions.yaml"

// storageFS is the file system used by this package. Tests override it.
var storageFS testable.FileSystem = testable.DefaultFS

// GlobalDir returns the directory for global saveactions settings.
// It uses $XDG_CONFIG_HOME/saveactions if set, otherwise ~/.config/saveactions.
func GlobalDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "saveactions")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "saveactions")
}

// GlobalPath returns the path to the global settings file.
func GlobalPath() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectPath returns the path to the settings file of a project root.
func ProjectPath(projectRoot string) string {
	return filepath.Join(projectRoot, FileName)
}

// Load reads the settings file from the given project root.
// If the file does not exist, it returns New() and nil error.
func Load(projectRoot string) (*Storage, error) {
	return LoadFile(ProjectPath(projectRoot))
}

// LoadGlobal reads the global settings file.
// If the file does not exist, it returns New() and nil error.
func LoadGlobal() (*Storage, error) {
	return LoadFile(GlobalPath())
}

// LoadFile reads a settings file from path.
func LoadFile(path string) (*Storage, error) {
	data, err := storageFS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}

	s := New()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, creating parent directories. The file is replaced
// atomically through a temporary sibling.
func Save(path string, s *Storage) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := storageFS.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	return atomicWrite(path, data, 0o600)
}

// Write marshals s to YAML and writes it to w.
func Write(w io.Writer, s *Storage) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(s)
}

// atomicWrite writes data to path using a tmp+rename strategy.
// If rename fails, the tmp file is cleaned up.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := storageFS.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := storageFS.Rename(tmp, path); err != nil {
		_ = storageFS.Remove(tmp)
		return err
	}
	return nil
}
