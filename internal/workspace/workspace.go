// Package workspace manages the throwaway output directory the preview server
// builds into when no output path is given.
package workspace

import (
	"log/slog"
	"os"

	"github.com/cpawithai/sitebuild/internal/errors"
	"github.com/cpawithai/sitebuild/internal/logfields"
)

const dirPrefix = "sitebuild-preview-"

// Manager owns one ephemeral directory under baseDir.
type Manager struct {
	baseDir string
	path    string
}

// NewManager returns a Manager rooted at baseDir (the system temp dir when empty).
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir}
}

// Create makes a fresh, uniquely named directory.
func (m *Manager) Create() error {
	if err := os.MkdirAll(m.baseDir, 0o750); err != nil {
		return errors.WorkspaceError("create", err).WithContext("path", m.baseDir)
	}
	dir, err := os.MkdirTemp(m.baseDir, dirPrefix)
	if err != nil {
		return errors.WorkspaceError("create", err).WithContext("path", m.baseDir)
	}
	m.path = dir
	slog.Debug("Created workspace", logfields.Path(dir))
	return nil
}

// Path returns the workspace directory, or "" before Create.
func (m *Manager) Path() string {
	return m.path
}

// Cleanup removes the workspace directory. It is safe to call more than once.
func (m *Manager) Cleanup() error {
	if m.path == "" {
		return nil
	}
	if err := os.RemoveAll(m.path); err != nil {
		return errors.WorkspaceCleanupFailed(m.path, err)
	}
	slog.Debug("Cleaned up workspace", logfields.Path(m.path))
	m.path = ""
	return nil
}
