// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package session

import (
	"fmt"

	"github.com/davetashner/saveactions/internal/action"
	"github.com/davetashner/saveactions/internal/mask"
	"github.com/davetashner/saveactions/internal/reconciler"
)

// Trigger is the event that starts save actions.
type Trigger string

// Triggers.
const (
	TriggerSave     Trigger = "save"
	TriggerShortcut Trigger = "shortcut"
	TriggerBatch    Trigger = "batch"
)

var triggerActions = map[Trigger]action.Action{
	TriggerSave:     action.Activate,
	TriggerShortcut: action.ActivateOnShortcut,
	TriggerBatch:    action.ActivateOnBatch,
}

// ParseTrigger validates a trigger name. "" means TriggerSave.
func ParseTrigger(s string) (Trigger, error) {
	if s == "" {
		return TriggerSave, nil
	}
	t := Trigger(s)
	if _, ok := triggerActions[t]; !ok {
		return "", fmt.Errorf("invalid trigger %q (must be save, shortcut, or batch)", s)
	}
	return t, nil
}

// Decision explains whether save actions run for a file.
type Decision struct {
	// File is the path the masks were matched against.
	File string `json:"file"`
	// Run is true when at least one action would run.
	Run bool `json:"run"`
	// Reason explains a negative decision.
	Reason string `json:"reason,omitempty"`
	// Scope is the scope whose settings decided.
	Scope string `json:"scope"`
	// Actions are the actions that would run, in declaration order.
	Actions []action.Action `json:"actions,omitempty"`
	// SkipOnCompileErrors is set when actions are skipped for files that
	// do not compile.
	SkipOnCompileErrors bool `json:"skip_on_compile_errors,omitempty"`
}

// Check decides whether save actions run for file under trigger, using the
// settings of the project containing dir. A project that defers to the
// global configuration is decided by the global settings, with file masks
// still matched relative to the project root.
func Check(dir, file string, trigger Trigger) (*Decision, error) {
	proj, err := Open(reconciler.Project, dir)
	if err != nil {
		return nil, err
	}
	defer proj.Close()

	effective := proj
	if proj.Reconciler.IsSelected(action.UseGlobalConfiguration) {
		global, err := Open(reconciler.Global, "")
		if err != nil {
			return nil, err
		}
		defer global.Close()
		effective = global
	}
	return decide(effective.Reconciler.Snapshot(), effective.Scope, proj.Rel(file), trigger), nil
}

func decide(w reconciler.WorkingCopy, scope reconciler.Scope, rel string, trigger Trigger) *Decision {
	d := &Decision{File: rel, Scope: scope.String()}

	if !w.IsSelected(triggerActions[trigger]) {
		d.Reason = fmt.Sprintf("save actions are not activated on %s", trigger)
		return d
	}

	m := mask.Matcher{Inclusions: w.Inclusions(), Exclusions: w.Exclusions()}
	if !m.Match(rel) {
		d.Reason = "file is not covered by the inclusion and exclusion masks"
		return d
	}

	for _, a := range w.Selected().Sorted() {
		switch {
		case action.IsActivation(a), a == action.UseGlobalConfiguration:
			continue
		case a == action.NoActionIfCompileErrors:
			d.SkipOnCompileErrors = true
			continue
		}
		d.Actions = append(d.Actions, a)
	}
	if len(d.Actions) == 0 {
		d.Reason = "no actions are selected"
		return d
	}
	d.Run = true
	return d
}
