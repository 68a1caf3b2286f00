// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

// Package storage holds the persisted saveactions settings record and its
// YAML files for the global and project scopes.
package storage

import (
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/davetashner/saveactions/internal/action"
)

// Storage is the persisted settings record of one scope. Getters return
// copies and setters copy their input, so callers never share backing
// arrays with the record.
type Storage struct {
	firstLaunch       bool
	actions           action.Set
	exclusions        []string
	inclusions        []string
	quickLists        []string
	configurationPath string
}

// New returns an empty record that has not been launched yet.
func New() *Storage {
	return &Storage{
		firstLaunch: true,
		actions:     action.NewSet(),
	}
}

// IsFirstLaunch reports whether defaults have not been applied yet.
func (s *Storage) IsFirstLaunch() bool { return s.firstLaunch }

// StopFirstLaunch clears the first-launch flag. It is a one-way transition.
func (s *Storage) StopFirstLaunch() { s.firstLaunch = false }

// MarkFirstLaunch sets the first-launch flag again so the next load applies
// the default action set.
func (s *Storage) MarkFirstLaunch() { s.firstLaunch = true }

// Actions returns the enabled actions.
func (s *Storage) Actions() action.Set { return s.actions.Clone() }

// IsEnabled reports whether a is enabled.
func (s *Storage) IsEnabled(a action.Action) bool { return s.actions.Contains(a) }

// SetEnabled enables or disables a.
func (s *Storage) SetEnabled(a action.Action, enabled bool) {
	if s.actions == nil {
		s.actions = action.NewSet()
	}
	if enabled {
		s.actions.Add(a)
		return
	}
	s.actions.Remove(a)
}

// Exclusions returns the exclusion file masks, sorted.
func (s *Storage) Exclusions() []string { return slices.Clone(s.exclusions) }

// SetExclusions replaces the exclusion masks. Duplicates collapse.
func (s *Storage) SetExclusions(masks []string) { s.exclusions = NormalizeSet(masks) }

// Inclusions returns the inclusion file masks, sorted.
func (s *Storage) Inclusions() []string { return slices.Clone(s.inclusions) }

// SetInclusions replaces the inclusion masks. Duplicates collapse.
func (s *Storage) SetInclusions(masks []string) { s.inclusions = NormalizeSet(masks) }

// QuickLists returns the quick list identifiers in order.
func (s *Storage) QuickLists() []string { return slices.Clone(s.quickLists) }

// SetQuickLists replaces the quick list identifiers, keeping their order.
func (s *Storage) SetQuickLists(ids []string) { s.quickLists = slices.Clone(ids) }

// ConfigurationPath returns the external profile path, or "" when unset.
func (s *Storage) ConfigurationPath() string { return s.configurationPath }

// SetConfigurationPath sets the external profile path. "" clears it.
func (s *Storage) SetConfigurationPath(path string) { s.configurationPath = path }

// NormalizeSet returns a sorted copy of values without duplicates.
func NormalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// document is the on-disk YAML shape of a Storage.
type document struct {
	FirstLaunch       *bool      `yaml:"first_launch,omitempty"`
	Actions           action.Set `yaml:"actions,omitempty"`
	Exclusions        []string   `yaml:"exclusions,omitempty"`
	Inclusions        []string   `yaml:"inclusions,omitempty"`
	QuickLists        []string   `yaml:"quick_lists,omitempty"`
	ConfigurationPath string     `yaml:"configuration_path,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (s *Storage) MarshalYAML() (any, error) {
	first := s.firstLaunch
	return document{
		FirstLaunch:       &first,
		Actions:           s.actions,
		Exclusions:        s.exclusions,
		Inclusions:        s.inclusions,
		QuickLists:        s.quickLists,
		ConfigurationPath: s.configurationPath,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A missing first_launch key
// counts as a first launch.
func (s *Storage) UnmarshalYAML(node *yaml.Node) error {
	var doc document
	if err := node.Decode(&doc); err != nil {
		return err
	}
	*s = Storage{
		firstLaunch:       doc.FirstLaunch == nil || *doc.FirstLaunch,
		actions:           doc.Actions,
		exclusions:        NormalizeSet(doc.Exclusions),
		inclusions:        NormalizeSet(doc.Inclusions),
		quickLists:        doc.QuickLists,
		configurationPath: doc.ConfigurationPath,
	}
	if s.actions == nil {
		s.actions = action.NewSet()
	}
	return nil
}
