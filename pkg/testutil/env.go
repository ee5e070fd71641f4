// Package testutil provides test environment helpers and fake
// collaborators for the interactive pickers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/mailmate-tools/texttemplate/pkg/paths"
)

// TestEnvironment isolates a test from the real home directory and
// host-application environment variables.
type TestEnvironment struct {
	HomeDir    string
	ConfigPath string

	t *testing.T
}

// NewTestEnvironment creates an isolated environment rooted in a temp
// directory. HOME and the XDG base variables point inside it, and the
// MM_* variables start unset.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	for _, v := range []string{paths.EnvEditFilepath, paths.EnvLineNumber, paths.EnvToFirstName, paths.EnvToFullName} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}

	// xdg caches base directories at init time
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return &TestEnvironment{
		HomeDir:    home,
		ConfigPath: filepath.Join(home, paths.ConfigFileName),
		t:          t,
	}
}

// WriteFile creates a file under the environment's home directory and
// returns its path.
func (e *TestEnvironment) WriteFile(relPath, content string) string {
	e.t.Helper()

	path := filepath.Join(e.HomeDir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", relPath, err)
	}
	return path
}

// MkdirAll creates a directory under the environment's home directory
// and returns its path.
func (e *TestEnvironment) MkdirAll(relPath string) string {
	e.t.Helper()

	path := filepath.Join(e.HomeDir, relPath)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.t.Fatalf("failed to create directory %s: %v", relPath, err)
	}
	return path
}

// ReadFile reads a file by absolute path, failing the test on error
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		e.t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
