// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package reconciler

import (
	"slices"

	"github.com/davetashner/saveactions/internal/action"
)

// WorkingCopy is the in-memory, possibly unsaved settings state being edited.
// Accessors return snapshots; the presentation layer never aliases the
// reconciler's collections.
type WorkingCopy struct {
	selected          action.Set
	exclusions        []string
	inclusions        []string
	quickLists        []string
	configurationPath string
}

// Selected returns the selected actions.
func (w WorkingCopy) Selected() action.Set { return w.selected.Clone() }

// IsSelected reports whether a is selected.
func (w WorkingCopy) IsSelected(a action.Action) bool { return w.selected.Contains(a) }

// Exclusions returns the exclusion masks, sorted.
func (w WorkingCopy) Exclusions() []string { return slices.Clone(w.exclusions) }

// Inclusions returns the inclusion masks, sorted.
func (w WorkingCopy) Inclusions() []string { return slices.Clone(w.inclusions) }

// QuickLists returns the quick list identifiers in order.
func (w WorkingCopy) QuickLists() []string { return slices.Clone(w.quickLists) }

// ConfigurationPath returns the external profile path, or "".
func (w WorkingCopy) ConfigurationPath() string { return w.configurationPath }

// Clone returns a deep copy.
func (w WorkingCopy) Clone() WorkingCopy {
	return WorkingCopy{
		selected:          w.selected.Clone(),
		exclusions:        slices.Clone(w.exclusions),
		inclusions:        slices.Clone(w.inclusions),
		quickLists:        slices.Clone(w.quickLists),
		configurationPath: w.configurationPath,
	}
}

// LoadWorkingCopy copies the persisted state of store into a fresh working
// copy. On a first launch the selected actions are replaced by the default
// set and the store's first-launch flag is cleared.
func LoadWorkingCopy(store Store, scope Scope) WorkingCopy {
	selected := store.Actions()
	if store.IsFirstLaunch() {
		selected = action.Defaults()
		store.StopFirstLaunch()
	}

	w := WorkingCopy{
		selected:          action.NewSet(),
		exclusions:        normalizeSet(store.Exclusions()),
		inclusions:        normalizeSet(store.Inclusions()),
		quickLists:        slices.Clone(store.QuickLists()),
		configurationPath: store.ConfigurationPath(),
	}
	for _, a := range scope.Actions() {
		if selected.Contains(a) {
			w.selected.Add(a)
		}
	}
	return w
}

// IsModified reports whether w differs from the persisted state of store:
// any action in scope, the configuration path, the mask sets or the quick
// list sequence.
func IsModified(w WorkingCopy, store Store, scope Scope) bool {
	for _, a := range scope.Actions() {
		if store.IsEnabled(a) != w.selected.Contains(a) {
			return true
		}
	}
	if store.ConfigurationPath() != w.configurationPath {
		return true
	}
	return !slices.Equal(normalizeSet(store.Exclusions()), w.exclusions) ||
		!slices.Equal(normalizeSet(store.Inclusions()), w.inclusions) ||
		!slices.Equal(store.QuickLists(), w.quickLists)
}

func normalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
