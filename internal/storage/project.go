package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/davetashner/saveactions/internal/testable"
)

// gitOpener is used to locate the work tree root. Tests override it.
var gitOpener testable.GitOpener = testable.DefaultGitOpener

// ResolveProjectRoot returns the project root for dir: the root of the git
// work tree containing it, or dir itself when it is not inside a repository.
func ResolveProjectRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", dir, err)
	}
	info, err := storageFS.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", dir)
	}

	repo, err := gitOpener.DetectOpen(abs)
	if err != nil {
		slog.Debug("no git repository, using directory as project root", "dir", abs, "error", err)
		return abs, nil
	}
	root, err := repo.WorktreeRoot()
	if err != nil || root == "" {
		slog.Debug("no work tree, using directory as project root", "dir", abs, "error", err)
		return abs, nil
	}
	return root, nil
}
