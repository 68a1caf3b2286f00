package testable

import (
	"github.com/go-git/go-git/v5"
)

// MockGitOpener is a test double for GitOpener.
// Set OpenFunc to control DetectOpen behavior. If nil, DetectOpen returns
// the Repo field (or ErrRepositoryNotExists if Repo is nil).
type MockGitOpener struct {
	// Repo is the repository returned by DetectOpen when OpenFunc is nil.
	Repo GitRepository

	// OpenErr is the error returned by DetectOpen when OpenFunc is nil.
	OpenErr error

	// OpenFunc, if set, is called instead of using Repo/OpenErr.
	OpenFunc func(path string) (GitRepository, error)

	// OpenCalls records the paths passed to DetectOpen.
	OpenCalls []string
}

// DetectOpen records the call and delegates to OpenFunc or returns Repo/OpenErr.
func (m *MockGitOpener) DetectOpen(path string) (GitRepository, error) {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if m.Repo != nil {
		return m.Repo, nil
	}
	return nil, git.ErrRepositoryNotExists
}

// MockGitRepository is a test double for GitRepository.
type MockGitRepository struct {
	// Root is returned by WorktreeRoot().
	Root string
	// RootErr is the error returned by WorktreeRoot().
	RootErr error
}

// WorktreeRoot returns Root and RootErr.
func (m *MockGitRepository) WorktreeRoot() (string, error) {
	return m.Root, m.RootErr
}

// Compile-time interface checks.
var _ GitOpener = (*MockGitOpener)(nil)
var _ GitRepository = (*MockGitRepository)(nil)
