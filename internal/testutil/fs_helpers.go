// Package testutil provides helpers shared by tasktree tests: file setup,
// environment isolation and recording stand-ins for the output writer and
// process exit.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// envVars lists variables outside the TASKTREE_ prefix that change rendering
var envVars = []string{"NO_COLOR"}

// IsolateEnv points HOME at a fresh temp dir and clears every TASKTREE_*
// variable so a developer's own config never leaks into a test. Values are
// restored when the test ends. Returns the new HOME.
// Cannot be combined with t.Parallel().
func IsolateEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "TASKTREE_") {
			unset(t, key)
		}
	}
	for _, key := range envVars {
		unset(t, key)
	}

	return home
}

// unset removes key for the rest of the test. t.Setenv registers the
// restore before the variable is dropped.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
}
