// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes saveactions settings and file checks as tools over stdio
// transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davetashner/saveactions/internal/storage"
)

// PathInfo holds the resolved path information for a project.
type PathInfo struct {
	// AbsPath is the absolute, symlink-resolved path.
	AbsPath string
	// ProjectRoot is the git work tree root, which may differ from AbsPath
	// for subdirectories.
	ProjectRoot string
}

// ResolvePath resolves a project path to an absolute path and its project
// root. It returns an error if the path does not exist or is not a
// directory.
func ResolvePath(path string) (*PathInfo, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist", path)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", path)
	}

	root, err := storage.ResolveProjectRoot(absPath)
	if err != nil {
		return nil, err
	}
	return &PathInfo{
		AbsPath:     absPath,
		ProjectRoot: root,
	}, nil
}

// ResolveFile anchors a relative file path at the resolved project path.
func (p *PathInfo) ResolveFile(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(p.AbsPath, file)
}
