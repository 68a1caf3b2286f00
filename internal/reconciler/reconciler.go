// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

// Package reconciler keeps an editable working copy of saveactions settings
// in step with its persisted storage. It derives which actions may be
// edited, keeps the exclusive action pairs consistent, detects unsaved
// changes and writes the working copy back on apply.
//
// A Reconciler is driven from a single goroutine (the host's UI or request
// handler); it is not safe for concurrent use.
package reconciler

import (
	"log/slog"
	"slices"

	"github.com/davetashner/saveactions/internal/action"
)

// Scope is the configuration scope a reconciler edits. It is fixed for the
// lifetime of a Reconciler.
type Scope int

// Scopes.
const (
	// Global is the IDE-wide scope.
	Global Scope = iota
	// Project is a per-project scope that may defer to Global.
	Project
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	if s == Global {
		return "global"
	}
	return "project"
}

// Actions returns the actions that exist in the scope. The
// useGlobalConfiguration switch only exists in the project scope.
func (s Scope) Actions() []action.Action {
	all := action.All()
	if s == Project {
		return all
	}
	return slices.DeleteFunc(all, func(a action.Action) bool {
		return a == action.UseGlobalConfiguration
	})
}

// Store is the persisted settings record the reconciler reads and writes.
type Store interface {
	IsFirstLaunch() bool
	StopFirstLaunch()
	Actions() action.Set
	IsEnabled(a action.Action) bool
	SetEnabled(a action.Action, enabled bool)
	Exclusions() []string
	SetExclusions(masks []string)
	Inclusions() []string
	SetInclusions(masks []string)
	QuickLists() []string
	SetQuickLists(ids []string)
	ConfigurationPath() string
	SetConfigurationPath(path string)
}

// ProfileLookup resolves an external profile path into an action source,
// returning fallback when the profile is absent or unreadable.
type ProfileLookup func(path string, fallback action.Source) action.Source

// Toggle is a passive presentation view of one action, such as a checkbox.
type Toggle interface {
	Selected() bool
	SetSelected(selected bool)
	SetEnabled(enabled bool)
}

// Status is the dirty state of a reconciler relative to its store.
type Status int

// Statuses.
const (
	Clean Status = iota
	Dirty
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == Clean {
		return "clean"
	}
	return "dirty"
}

// Reconciler owns the working copy of one scope's settings.
type Reconciler struct {
	scope   Scope
	store   Store
	lookup  ProfileLookup
	working WorkingCopy
	enabled map[action.Action]bool
	views   map[action.Action]Toggle
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithProfileLookup sets the external profile lookup used by Apply. Without
// it, Apply never overrides the working copy.
func WithProfileLookup(lookup ProfileLookup) Option {
	return func(r *Reconciler) { r.lookup = lookup }
}

// New creates a reconciler for store and loads the working copy from it.
func New(scope Scope, store Store, opts ...Option) *Reconciler {
	r := &Reconciler{
		scope: scope,
		store: store,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Reset()
	return r
}

// Scope returns the reconciler's scope.
func (r *Reconciler) Scope() Scope { return r.scope }

// Actions returns the actions that exist in the reconciler's scope.
func (r *Reconciler) Actions() []action.Action { return r.scope.Actions() }

// Reset discards unsaved edits and reloads the working copy from the store.
func (r *Reconciler) Reset() {
	r.working = LoadWorkingCopy(r.store, r.scope)
	r.refresh()
}

// Snapshot returns a copy of the working copy.
func (r *Reconciler) Snapshot() WorkingCopy { return r.working.Clone() }

// IsModified reports whether the working copy differs from the store.
func (r *Reconciler) IsModified() bool {
	return IsModified(r.working, r.store, r.scope)
}

// Status returns Dirty when there are unsaved edits.
func (r *Reconciler) Status() Status {
	if r.IsModified() {
		return Dirty
	}
	return Clean
}

// Apply writes every field of the working copy into the store, replacing
// its previous contents. It then resolves the configuration path through
// the profile lookup; the resulting actions replace the working copy's
// selection as an unsaved preview, leaving the store untouched.
func (r *Reconciler) Apply() {
	for _, a := range r.scope.Actions() {
		r.store.SetEnabled(a, r.working.selected.Contains(a))
	}
	r.store.SetExclusions(slices.Clone(r.working.exclusions))
	r.store.SetInclusions(slices.Clone(r.working.inclusions))
	r.store.SetQuickLists(slices.Clone(r.working.quickLists))
	r.store.SetConfigurationPath(r.working.configurationPath)

	if r.lookup != nil {
		src := r.lookup(r.working.configurationPath, r.store)
		r.selectOnly(src.Actions())
	}
	r.refresh()
	slog.Debug("applied settings", "scope", r.scope, "status", r.Status())
}

// Toggle records that a was selected or deselected by the user. Enablement
// is recomputed and, when a was selected, the other half of its exclusive
// pair is deselected.
func (r *Reconciler) Toggle(a action.Action, selected bool) {
	if !slices.Contains(r.scope.Actions(), a) {
		return
	}
	if selected {
		r.working.selected.Add(a)
		if other, ok := action.Counterpart(a); ok {
			r.working.selected.Remove(other)
		}
	} else {
		r.working.selected.Remove(a)
	}
	r.refresh()
}

// Changed handles a selection event from the view bound to a by reading the
// view's new state.
func (r *Reconciler) Changed(a action.Action) {
	view, ok := r.views[a]
	if !ok {
		return
	}
	r.Toggle(a, view.Selected())
}

// SetExclusions replaces the working exclusion masks.
func (r *Reconciler) SetExclusions(masks []string) { r.working.exclusions = normalizeSet(masks) }

// SetInclusions replaces the working inclusion masks.
func (r *Reconciler) SetInclusions(masks []string) { r.working.inclusions = normalizeSet(masks) }

// SetQuickLists replaces the working quick list identifiers.
func (r *Reconciler) SetQuickLists(ids []string) { r.working.quickLists = slices.Clone(ids) }

// SetConfigurationPath sets the working external profile path.
func (r *Reconciler) SetConfigurationPath(path string) { r.working.configurationPath = path }

// IsSelected reports whether a is selected in the working copy.
func (r *Reconciler) IsSelected(a action.Action) bool { return r.working.selected.Contains(a) }

// IsEditable reports whether the settings may be edited: always in the
// global scope, and in the project scope unless it defers to the global
// configuration.
func (r *Reconciler) IsEditable() bool {
	return r.scope == Global || !r.working.selected.Contains(action.UseGlobalConfiguration)
}

// IsActiveSelected reports whether any activation action is selected.
func (r *Reconciler) IsActiveSelected() bool {
	return r.working.selected.Contains(action.Activate) ||
		r.working.selected.Contains(action.ActivateOnShortcut) ||
		r.working.selected.Contains(action.ActivateOnBatch)
}

// IsEnabled reports whether the view of a accepts input. Actions outside
// the scope are never enabled.
func (r *Reconciler) IsEnabled(a action.Action) bool { return r.enabled[a] }

// Bind attaches a view to a and pushes the current state into it.
func (r *Reconciler) Bind(a action.Action, view Toggle) {
	if r.views == nil {
		r.views = make(map[action.Action]Toggle)
	}
	r.views[a] = view
	r.push(a, view)
}

// Unbind detaches the view of a.
func (r *Reconciler) Unbind(a action.Action) { delete(r.views, a) }

// Dispose releases the working copy and all bound views, leaving an empty
// selection. It is safe to call on a zero Reconciler and more than once.
func (r *Reconciler) Dispose() {
	r.working = WorkingCopy{selected: action.NewSet()}
	clear(r.enabled)
	clear(r.views)
}

// selectOnly replaces the selection of every in-scope action with its
// membership in selected.
func (r *Reconciler) selectOnly(selected action.Set) {
	for _, a := range r.scope.Actions() {
		if selected.Contains(a) {
			r.working.selected.Add(a)
		} else {
			r.working.selected.Remove(a)
		}
	}
}

// refresh recomputes enablement and pushes state to the bound views.
func (r *Reconciler) refresh() {
	if r.working.selected == nil {
		r.working.selected = action.NewSet()
	}
	if r.enabled == nil {
		r.enabled = make(map[action.Action]bool)
	}
	editable := r.IsEditable()
	active := r.IsActiveSelected()
	for _, a := range r.scope.Actions() {
		switch {
		case a == action.UseGlobalConfiguration:
			r.enabled[a] = true
		case action.IsActivation(a):
			r.enabled[a] = editable
		default:
			r.enabled[a] = editable && active
		}
	}
	for a, view := range r.views {
		r.push(a, view)
	}
}

func (r *Reconciler) push(a action.Action, view Toggle) {
	view.SetSelected(r.working.selected.Contains(a))
	view.SetEnabled(r.enabled[a])
}
