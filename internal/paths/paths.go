// Package paths resolves the directory backing a cltodo invocation: either
// a project-local store under the detected version-control root, or the
// global per-user store under the home directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store directory and file names.
const (
	StoreDirName = ".cltodo"
	DBFileName   = "data.db"
)

// platformDir holds platform lookups that can be overridden in tests.
var platformDir = struct {
	homeDir func() (string, error)
}{
	homeDir: os.UserHomeDir,
}

// GlobalDir returns the global per-user store directory, ~/.cltodo.
// Failure to resolve the home directory is an environment error the caller
// treats as fatal.
func GlobalDir() (string, error) {
	home, err := platformDir.homeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, StoreDirName), nil
}

// ProjectRoot walks upward from dir looking for a version-control root,
// marked by a .git entry. A .git file counts too, so worktrees and
// submodule checkouts resolve like ordinary clones. Returns the root and
// true when found.
func ProjectRoot(dir string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ResolveStoreDir decides which store directory backs this invocation.
// Precedence: an explicit data directory wins outright; then the global
// flag forces the home store; otherwise the project store under the
// detected version-control root of cwd, falling back to the global store
// when cwd is not inside a repository.
func ResolveStoreDir(cwd, explicit string, global bool) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if global {
		return GlobalDir()
	}
	if root, ok := ProjectRoot(cwd); ok {
		return filepath.Join(root, StoreDirName), nil
	}
	return GlobalDir()
}

// Ensure creates dir and any missing ancestors.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	return nil
}

// DBPath returns the database file path inside a store directory.
func DBPath(dir string) string {
	return filepath.Join(dir, DBFileName)
}
