// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

// Package profile resolves external settings profiles (Eclipse preference
// exports, YAML or TOML files) into action sets that can override the
// actions of a settings record.
package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/davetashner/saveactions/internal/action"
	"github.com/davetashner/saveactions/internal/testable"
)

// errUnsupported is returned for profile files with an unknown extension.
var errUnsupported = errors.New("unsupported profile format")

// Profile is an action set read from an external profile file.
type Profile struct {
	// Path is the file the profile was read from.
	Path string

	actions action.Set
}

// Actions returns the selected actions of the profile.
func (p *Profile) Actions() action.Set { return p.actions.Clone() }

// Loader reads profile files. The zero value reads from the OS file system
// and resolves relative paths against the working directory.
type Loader struct {
	// FS is the file system profiles are read from. Nil means testable.DefaultFS.
	FS testable.FileSystem

	// BaseDir anchors relative profile paths, typically the project root.
	BaseDir string
}

// StorageOrDefault resolves path into an action source. Each setting found in
// the profile is overlaid on the fallback's actions; actions the profile
// does not mention keep the fallback's state. An empty path, a missing or
// unreadable file, or a malformed profile all yield fallback unchanged.
func (l Loader) StorageOrDefault(path string, fallback action.Source) action.Source {
	if strings.TrimSpace(path) == "" {
		return fallback
	}
	p, err := l.Load(path, fallback.Actions())
	if err != nil {
		slog.Warn("ignoring settings profile", "path", path, "error", err)
		return fallback
	}
	slog.Debug("loaded settings profile", "path", p.Path, "actions", len(p.actions))
	return p
}

// Load reads the profile at path and overlays it on base.
func (l Loader) Load(path string, base action.Set) (*Profile, error) {
	fsys := l.FS
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	if !filepath.IsAbs(path) && l.BaseDir != "" {
		path = filepath.Join(l.BaseDir, path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var overrides map[action.Action]bool
	switch strings.ToLower(filepath.Ext(path)) {
	case ".epf":
		overrides, err = parseEPF(data)
	case ".yaml", ".yml":
		overrides, err = parseYAML(data)
	case ".toml":
		overrides, err = parseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupported, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	actions := base.Clone()
	if actions == nil {
		actions = action.NewSet()
	}
	for a, on := range overrides {
		if on {
			actions.Add(a)
		} else {
			actions.Remove(a)
		}
	}
	if err := resolvePairs(actions, overrides); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &Profile{Path: path, actions: actions}, nil
}

// resolvePairs keeps at most one half of each exclusive pair selected. An
// action the profile turns on deselects its counterpart; a profile turning
// on both halves is rejected.
func resolvePairs(actions action.Set, overrides map[action.Action]bool) error {
	for _, a := range action.All() {
		if !overrides[a] {
			continue
		}
		other, ok := action.Counterpart(a)
		if !ok {
			continue
		}
		if overrides[other] {
			return fmt.Errorf("selects both %s and %s", a, other)
		}
		actions.Remove(other)
	}
	return nil
}

// Lookup resolves path with a zero Loader.
func Lookup(path string, fallback action.Source) action.Source {
	return Loader{}.StorageOrDefault(path, fallback)
}

// toActions converts a name→bool table into typed overrides, rejecting
// unknown action names.
func toActions(table map[string]bool) (map[action.Action]bool, error) {
	out := make(map[action.Action]bool, len(table))
	for name, on := range table {
		a, err := action.Parse(name)
		if err != nil {
			return nil, err
		}
		out[a] = on
	}
	return out, nil
}
