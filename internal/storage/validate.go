// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package storage

import (
	"fmt"
	"strings"

	"github.com/davetashner/saveactions/internal/mask"
)

// Validate checks all fields of s and returns all errors at once.
func Validate(s *Storage) error {
	var errs []string

	for _, a := range s.actions.Sorted() {
		if !a.Valid() {
			errs = append(errs, fmt.Sprintf("actions: unknown action %q", a))
		}
	}

	for _, m := range s.exclusions {
		if err := mask.ValidatePatterns([]string{m}); err != nil {
			errs = append(errs, fmt.Sprintf("exclusions: %v", err))
		}
	}
	for _, m := range s.inclusions {
		if err := mask.ValidatePatterns([]string{m}); err != nil {
			errs = append(errs, fmt.Sprintf("inclusions: %v", err))
		}
	}

	seen := make(map[string]bool, len(s.quickLists))
	for i, id := range s.quickLists {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, fmt.Sprintf("quick_lists[%d]: empty identifier", i))
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Sprintf("quick_lists[%d]: duplicate identifier %q", i, id))
		}
		seen[id] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("settings validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
