// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

// Package session wires a settings file, its reconciler and the external
// profile lookup together for one command or request.
package session

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/davetashner/saveactions/internal/profile"
	"github.com/davetashner/saveactions/internal/reconciler"
	"github.com/davetashner/saveactions/internal/storage"
)

// Session is one opened settings scope.
type Session struct {
	// Scope is the scope being edited.
	Scope reconciler.Scope
	// Root is the project root, or "" for the global scope.
	Root string
	// Path is the settings file backing Store.
	Path string
	// Store is the persisted record loaded from Path.
	Store *storage.Storage
	// Reconciler edits Store.
	Reconciler *reconciler.Reconciler
	// Profiles reads external profiles relative to the scope's directory.
	Profiles profile.Loader
}

// Open loads the settings of scope. For the project scope, dir is any
// directory inside the project.
func Open(scope reconciler.Scope, dir string) (*Session, error) {
	s := &Session{Scope: scope}
	baseDir := storage.GlobalDir()
	if scope == reconciler.Project {
		root, err := storage.ResolveProjectRoot(dir)
		if err != nil {
			return nil, err
		}
		s.Root = root
		s.Path = storage.ProjectPath(root)
		baseDir = root
	} else {
		s.Path = storage.GlobalPath()
	}

	store, err := storage.LoadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("loading %s settings: %w", scope, err)
	}
	s.Store = store

	s.Profiles = profile.Loader{BaseDir: baseDir}
	s.Reconciler = reconciler.New(scope, store, reconciler.WithProfileLookup(s.Profiles.StorageOrDefault))
	slog.Debug("opened settings", "scope", scope, "path", s.Path, "status", s.Reconciler.Status())
	return s, nil
}

// Commit applies the working copy to the store and writes the settings
// file. It returns the reconciler status after apply, which is Dirty when an
// external profile overrides the saved selection.
func (s *Session) Commit() (reconciler.Status, error) {
	s.Reconciler.Apply()
	if err := storage.Validate(s.Store); err != nil {
		return s.Reconciler.Status(), err
	}
	if err := storage.Save(s.Path, s.Store); err != nil {
		return s.Reconciler.Status(), fmt.Errorf("writing %s: %w", s.Path, err)
	}
	slog.Info("saved settings", "scope", s.Scope, "path", s.Path)
	return s.Reconciler.Status(), nil
}

// Close releases the reconciler's working copy.
func (s *Session) Close() {
	if s.Reconciler != nil {
		s.Reconciler.Dispose()
	}
}

// Rel returns file relative to the session's project root, or file itself
// when it lies outside the root.
func (s *Session) Rel(file string) string {
	if s.Root == "" {
		return file
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return file
	}
	rel, err := filepath.Rel(s.Root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}
	return rel
}
