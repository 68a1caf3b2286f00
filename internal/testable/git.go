package testable

import (
	"github.com/go-git/go-git/v5"
)

// GitOpener abstracts opening a git repository. Production code uses
// RealGitOpener; tests inject a mock to avoid filesystem dependencies.
type GitOpener interface {
	// DetectOpen opens the repository containing path, searching parent
	// directories for the .git entry.
	DetectOpen(path string) (GitRepository, error)
}

// GitRepository abstracts the subset of *git.Repository used by saveactions.
type GitRepository interface {
	// WorktreeRoot returns the absolute path of the work tree root.
	WorktreeRoot() (string, error)
}

// RealGitOpener is the production implementation of GitOpener.
type RealGitOpener struct{}

// DetectOpen delegates to git.PlainOpenWithOptions with DetectDotGit set.
func (RealGitOpener) DetectOpen(path string) (GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	return &RealGitRepository{repo: repo}, nil
}

// RealGitRepository wraps *git.Repository to satisfy GitRepository.
type RealGitRepository struct {
	repo *git.Repository
}

// WorktreeRoot returns the root of the repository's work tree. Bare
// repositories have none and return git.ErrIsBareRepository.
func (r *RealGitRepository) WorktreeRoot() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", err
	}
	return wt.Filesystem.Root(), nil
}

// DefaultGitOpener is the production GitOpener used as default.
var DefaultGitOpener GitOpener = RealGitOpener{}

// Compile-time interface checks.
var _ GitOpener = RealGitOpener{}
var _ GitRepository = (*RealGitRepository)(nil)
