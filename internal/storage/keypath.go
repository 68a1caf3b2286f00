// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// listKeys are the settings keys holding sequences. Values for them are given
// on the command line as comma-separated lists.
var listKeys = map[string]bool{
	"actions":     true,
	"exclusions":  true,
	"inclusions":  true,
	"quick_lists": true,
}

// GetValue retrieves a top-level value from a Storage by key.
func GetValue(s *Storage, key string) (any, error) {
	m, err := storageToMap(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling settings: %w", err)
	}
	val, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("key %q not found", key)
	}
	return val, nil
}

// SetValue sets a value in a raw YAML map. List keys take a comma-separated
// value; "" clears them.
func SetValue(data map[string]any, key string, rawValue string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if listKeys[key] {
		data[key] = splitList(rawValue)
		return nil
	}
	data[key] = coerceValue(rawValue)
	return nil
}

// ValidateKey checks that key names a settings field.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if strings.Contains(key, ".") {
		return fmt.Errorf("key %q: settings keys are not nested", key)
	}
	keys := yamlKeys(reflect.TypeOf(document{}))
	if !keys[key] {
		return fmt.Errorf("unknown key %q; valid keys: %s", key, sortedKeys(keys))
	}
	return nil
}

// FlattenMap recursively flattens a nested map to dot-notation keys.
func FlattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			for sk, sv := range FlattenMap(sub, key) {
				result[sk] = sv
			}
		} else {
			result[key] = v
		}
	}
	return result
}

// ToFlatMap converts a Storage to a flat key map, omitting empty values.
func ToFlatMap(s *Storage) (map[string]any, error) {
	m, err := storageToMap(s)
	if err != nil {
		return nil, err
	}
	return FlattenMap(m, ""), nil
}

// LoadRaw reads a settings file into a generic map. A missing file yields an
// empty map.
func LoadRaw(path string) (map[string]any, error) {
	data, err := storageFS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]any), nil
		}
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// FromMap decodes a raw settings map into a Storage.
func FromMap(m map[string]any) (*Storage, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, err
	}
	s := New()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteFile writes a raw settings map to path atomically.
func WriteFile(path string, m map[string]any) error {
	s, err := FromMap(m)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return Save(path, s)
}

// storageToMap marshals a Storage to a map via YAML round-trip.
func storageToMap(s *Storage) (map[string]any, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// coerceValue parses a string into bool, int, or keeps it as string.
func coerceValue(s string) any {
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return s
}

// yamlKeys extracts yaml tag names from a struct type.
func yamlKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool)
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			keys[name] = true
		}
	}
	return keys
}

// sortedKeys returns a comma-separated sorted list of map keys.
func sortedKeys(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}
