// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/saveactions/internal/action"
	"github.com/davetashner/saveactions/internal/reconciler"
	"github.com/davetashner/saveactions/internal/session"
)

// ShowSettingsInput is the input schema for the show_settings MCP tool.
type ShowSettingsInput struct {
	Path   string `json:"path" jsonschema:"Directory inside the project (defaults to current directory)"`
	Global bool   `json:"global,omitempty" jsonschema:"Show the global settings instead of the project settings"`
}

// ToggleActionInput is the input schema for the toggle_action MCP tool.
type ToggleActionInput struct {
	Path   string `json:"path" jsonschema:"Directory inside the project (defaults to current directory)"`
	Global bool   `json:"global,omitempty" jsonschema:"Edit the global settings instead of the project settings"`
	Action string `json:"action" jsonschema:"Save action name, e.g. reformat or organizeImports"`
	Off    bool   `json:"off,omitempty" jsonschema:"Deselect the action instead of selecting it"`
}

// CheckFileInput is the input schema for the check_file MCP tool.
type CheckFileInput struct {
	Path    string `json:"path" jsonschema:"Directory inside the project (defaults to current directory)"`
	File    string `json:"file" jsonschema:"File to check, absolute or relative to path"`
	Trigger string `json:"trigger,omitempty" jsonschema:"Event that runs save actions: save, shortcut, or batch (default: save)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all saveactions tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_settings",
		Description: "Show the save action settings of a project or the global scope: every action with its selection and whether it can be edited, the file masks, quick lists and profile path.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleShowSettings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_action",
		Description: "Select or deselect one save action and save the settings. Disabled actions are refused. Selecting one half of an exclusive pair deselects the other.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    false,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleToggleAction)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_file",
		Description: "Decide whether save actions run for a file and list the actions that would run.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleCheckFile)
}

func openScope(path string, global bool) (*session.Session, error) {
	pathInfo, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}
	scope := reconciler.Project
	if global {
		scope = reconciler.Global
	}
	return session.Open(scope, pathInfo.ProjectRoot)
}

func handleShowSettings(_ context.Context, _ *mcp.CallToolRequest, input ShowSettingsInput) (*mcp.CallToolResult, any, error) {
	s, err := openScope(input.Path, input.Global)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()
	return jsonResult(s.View())
}

func handleToggleAction(_ context.Context, _ *mcp.CallToolRequest, input ToggleActionInput) (*mcp.CallToolResult, any, error) {
	a, err := action.Parse(input.Action)
	if err != nil {
		return nil, nil, err
	}
	s, err := openScope(input.Path, input.Global)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()

	if !s.Reconciler.IsEnabled(a) {
		return nil, nil, fmt.Errorf("%s is disabled in the %s settings", a, s.Scope)
	}
	s.Reconciler.Toggle(a, !input.Off)
	if _, err := s.Commit(); err != nil {
		return nil, nil, err
	}
	return jsonResult(s.View())
}

func handleCheckFile(_ context.Context, _ *mcp.CallToolRequest, input CheckFileInput) (*mcp.CallToolResult, any, error) {
	if input.File == "" {
		return nil, nil, fmt.Errorf("file is required")
	}
	trigger, err := session.ParseTrigger(input.Trigger)
	if err != nil {
		return nil, nil, err
	}
	pathInfo, err := ResolvePath(input.Path)
	if err != nil {
		return nil, nil, err
	}
	d, err := session.Check(pathInfo.AbsPath, pathInfo.ResolveFile(input.File), trigger)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(d)
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
