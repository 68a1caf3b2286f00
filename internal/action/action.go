// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

// Package action defines the closed set of save-time actions that can be
// toggled in saveactions settings.
package action

import (
	"fmt"
	"strings"
)

// Action is one toggleable save-time behavior.
type Action string

// Group is the settings section an action is presented in.
type Group string

// Settings sections, in presentation order.
const (
	GroupGeneral     Group = "General"
	GroupFormatting  Group = "Formatting"
	GroupBuild       Group = "Build"
	GroupInspections Group = "Inspections"
	GroupScope       Group = "Scope"
)

// Known actions.
const (
	Activate                                   Action = "activate"
	ActivateOnShortcut                         Action = "activateOnShortcut"
	ActivateOnBatch                            Action = "activateOnBatch"
	NoActionIfCompileErrors                    Action = "noActionIfCompileErrors"
	OrganizeImports                            Action = "organizeImports"
	Reformat                                   Action = "reformat"
	ReformatChangedCode                        Action = "reformatChangedCode"
	Rearrange                                  Action = "rearrange"
	Compile                                    Action = "compile"
	Reload                                     Action = "reload"
	ExecuteAction                              Action = "executeAction"
	FieldCanBeFinal                            Action = "fieldCanBeFinal"
	LocalCanBeFinal                            Action = "localCanBeFinal"
	UnqualifiedFieldAccess                     Action = "unqualifiedFieldAccess"
	UnqualifiedMethodAccess                    Action = "unqualifiedMethodAccess"
	UnqualifiedStaticMemberAccess              Action = "unqualifiedStaticMemberAccess"
	CustomUnqualifiedStaticMemberAccess        Action = "customUnqualifiedStaticMemberAccess"
	MissingOverrideAnnotation                  Action = "missingOverrideAnnotation"
	UseBlocks                                  Action = "useBlocks"
	GenerateSerialVersionUID                   Action = "generateSerialVersionUID"
	UnnecessaryThis                            Action = "unnecessaryThis"
	FinalPrivateMethod                         Action = "finalPrivateMethod"
	UnnecessaryFinalOnLocalVariableOrParameter Action = "unnecessaryFinalOnLocalVariableOrParameter"
	ExplicitTypeCanBeDiamond                   Action = "explicitTypeCanBeDiamond"
	SuppressAnnotation                         Action = "suppressAnnotation"
	UnnecessarySemicolon                       Action = "unnecessarySemicolon"
	SingleStatementInBlock                     Action = "singleStatementInBlock"
	AccessCanBeTightened                       Action = "accessCanBeTightened"
	UseGlobalConfiguration                     Action = "useGlobalConfiguration"
)

type definition struct {
	action       Action
	text         string
	group        Group
	defaultValue bool
}

// definitions is the declaration order used by All and by presentation.
var definitions = []definition{
	{Activate, "Activate save actions on save (before saving each file, performs the configured actions below)", GroupGeneral, true},
	{ActivateOnShortcut, "Activate save actions on shortcut (default \"CTRL + SHIFT + S\")", GroupGeneral, false},
	{ActivateOnBatch, "Activate save actions on batch (\"Code > Save Actions > Execute on multiple files\")", GroupGeneral, false},
	{NoActionIfCompileErrors, "No action if compile errors (applied per file)", GroupGeneral, false},

	{OrganizeImports, "Optimize imports", GroupFormatting, true},
	{Reformat, "Reformat file", GroupFormatting, true},
	{ReformatChangedCode, "Reformat only changed code (only if VCS configured)", GroupFormatting, false},
	{Rearrange, "Rearrange fields and methods", GroupFormatting, false},

	{Compile, "[experimental] Compile files (using \"Build > Build Project\")", GroupBuild, false},
	{Reload, "[experimental] Reload files in running debugger (using \"Run > Reload Changed Classes\")", GroupBuild, false},
	{ExecuteAction, "[experimental] Execute an action (using quick lists at \"Appearance & Behavior > Quick Lists\")", GroupBuild, false},

	{FieldCanBeFinal, "Add final modifier to field", GroupInspections, false},
	{LocalCanBeFinal, "Add final modifier to local variable or parameter", GroupInspections, false},
	{UnqualifiedFieldAccess, "Add this to field access", GroupInspections, false},
	{UnqualifiedMethodAccess, "Add this to method access", GroupInspections, false},
	{UnqualifiedStaticMemberAccess, "Add class qualifier to static member access", GroupInspections, false},
	{CustomUnqualifiedStaticMemberAccess, "Add class qualifier to static member access outside declaring class", GroupInspections, false},
	{MissingOverrideAnnotation, "Add missing @Override annotations", GroupInspections, false},
	{UseBlocks, "Add blocks to if/while/for statements", GroupInspections, false},
	{GenerateSerialVersionUID, "Add a serialVersionUID field for Serializable classes", GroupInspections, false},
	{UnnecessaryThis, "Remove unnecessary this to field and method", GroupInspections, false},
	{FinalPrivateMethod, "Remove final from private method", GroupInspections, false},
	{UnnecessaryFinalOnLocalVariableOrParameter, "Remove unnecessary final to local variable or parameter", GroupInspections, false},
	{ExplicitTypeCanBeDiamond, "Remove explicit generic type for diamond", GroupInspections, false},
	{SuppressAnnotation, "Remove unused suppress warning annotation", GroupInspections, false},
	{UnnecessarySemicolon, "Remove unnecessary semicolon", GroupInspections, false},
	{SingleStatementInBlock, "Remove blocks from if/while/for statements", GroupInspections, false},
	{AccessCanBeTightened, "Change visibility of field or method to lower access", GroupInspections, false},

	{UseGlobalConfiguration, "Use global configuration", GroupScope, false},
}

var byName = func() map[string]definition {
	m := make(map[string]definition, len(definitions))
	for _, d := range definitions {
		m[strings.ToLower(string(d.action))] = d
	}
	return m
}()

// exclusivePairs lists the action pairs of which at most one may be selected.
var exclusivePairs = [][2]Action{
	{Reformat, ReformatChangedCode},
	{UnqualifiedStaticMemberAccess, CustomUnqualifiedStaticMemberAccess},
}

// All returns every action in declaration order.
func All() []Action {
	out := make([]Action, len(definitions))
	for i, d := range definitions {
		out[i] = d.action
	}
	return out
}

// Defaults returns the actions selected on a first launch.
func Defaults() Set {
	s := NewSet()
	for _, d := range definitions {
		if d.defaultValue {
			s.Add(d.action)
		}
	}
	return s
}

// Parse looks up an action by name, ignoring case.
func Parse(name string) (Action, error) {
	d, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown action %q", name)
	}
	return d.action, nil
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	d, ok := byName[strings.ToLower(string(a))]
	return ok && d.action == a
}

// Text returns the human label of the action.
func (a Action) Text() string {
	if d, ok := byName[strings.ToLower(string(a))]; ok {
		return d.text
	}
	return string(a)
}

// Group returns the settings section of the action.
func (a Action) Group() Group {
	if d, ok := byName[strings.ToLower(string(a))]; ok {
		return d.group
	}
	return ""
}

// String implements fmt.Stringer.
func (a Action) String() string { return string(a) }

// IsActivation reports whether a is one of the actions that switch save
// actions on (on save, on shortcut, on batch).
func IsActivation(a Action) bool {
	return a == Activate || a == ActivateOnShortcut || a == ActivateOnBatch
}

// Counterpart returns the other half of the exclusive pair a belongs to.
func Counterpart(a Action) (Action, bool) {
	for _, p := range exclusivePairs {
		switch a {
		case p[0]:
			return p[1], true
		case p[1]:
			return p[0], true
		}
	}
	return "", false
}

// Groups returns the settings sections in presentation order.
func Groups() []Group {
	return []Group{GroupGeneral, GroupFormatting, GroupBuild, GroupInspections, GroupScope}
}

// InGroup returns the actions of g in declaration order.
func InGroup(g Group) []Action {
	var out []Action
	for _, d := range definitions {
		if d.group == g {
			out = append(out, d.action)
		}
	}
	return out
}

// Source is anything that can report a selected action set, such as a
// persisted storage record or an imported profile.
type Source interface {
	Actions() Set
}
