// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

// Package mask decides whether a file is covered by the inclusion and
// exclusion file masks of a settings record.
package mask

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher holds inclusion and exclusion glob masks. Exclusions win over
// inclusions; an empty inclusion list includes every file.
type Matcher struct {
	Inclusions []string
	Exclusions []string
}

// Match reports whether the file at rel (relative to the project root) is
// covered by the masks. Each mask is tried against the full slash path and
// against the base name, so "*.java" matches files in any directory.
func (m Matcher) Match(rel string) bool {
	p := filepath.ToSlash(rel)
	p = strings.TrimPrefix(p, "./")

	for _, ex := range m.Exclusions {
		if matches(ex, p) {
			return false
		}
	}
	if len(m.Inclusions) == 0 {
		return true
	}
	for _, in := range m.Inclusions {
		if matches(in, p) {
			return true
		}
	}
	return false
}

func matches(pattern, p string) bool {
	if ok, _ := doublestar.Match(pattern, p); ok {
		return true
	}
	if strings.Contains(pattern, "/") {
		return false
	}
	ok, _ := doublestar.Match(pattern, path.Base(p))
	return ok
}

// ValidatePatterns returns an error naming the first malformed mask.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("empty file mask")
		}
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid file mask %q", p)
		}
	}
	return nil
}
