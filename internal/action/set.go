// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package action

import (
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is an unordered set of actions. It serializes to YAML as a sequence in
// declaration order.
type Set map[Action]struct{}

// NewSet returns a set holding the given actions.
func NewSet(actions ...Action) Set {
	s := make(Set, len(actions))
	for _, a := range actions {
		s[a] = struct{}{}
	}
	return s
}

// Add inserts a into the set.
func (s Set) Add(a Action) { s[a] = struct{}{} }

// Remove deletes a from the set.
func (s Set) Remove(a Action) { delete(s, a) }

// Contains reports whether a is in the set. A nil set contains nothing.
func (s Set) Contains(a Action) bool {
	_, ok := s[a]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for a := range s {
		out[a] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same actions.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for a := range s {
		if !other.Contains(a) {
			return false
		}
	}
	return true
}

// Sorted returns the members in declaration order. Unknown actions sort last,
// alphabetically.
func (s Set) Sorted() []Action {
	out := make([]Action, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b Action) int {
		ia, ib := order(a), order(b)
		if ia != ib {
			return ia - ib
		}
		return strings.Compare(string(a), string(b))
	})
	return out
}

// Actions lets a Set act as a Source.
func (s Set) Actions() Set { return s.Clone() }

// MarshalYAML implements yaml.Marshaler.
func (s Set) MarshalYAML() (any, error) {
	names := make([]string, 0, len(s))
	for _, a := range s.Sorted() {
		names = append(names, string(a))
	}
	return names, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Names are kept verbatim so that
// validation can report unknown entries instead of failing the whole decode.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	out := make(Set, len(names))
	for _, n := range names {
		if a, err := Parse(n); err == nil {
			out.Add(a)
			continue
		}
		out.Add(Action(n))
	}
	*s = out
	return nil
}

var declarationIndex = func() map[Action]int {
	m := make(map[Action]int, len(definitions))
	for i, d := range definitions {
		m[d.action] = i
	}
	return m
}()

func order(a Action) int {
	if i, ok := declarationIndex[a]; ok {
		return i
	}
	return len(definitions)
}
