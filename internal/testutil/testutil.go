// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/expi-showcase/internal/logging"
)

// QuietLogs points the file logger at a temp file for the duration of the
// test and returns its path.
func QuietLogs(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure("") })
	return path
}

// ReadLog returns the log written so far, or "" when nothing was logged.
func ReadLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("failed to read log %s: %v", path, err)
	}
	return string(data)
}

// Fixture returns the path of a file under the repository's testdata dir.
func Fixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(repoRoot(t), "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("missing fixture %s: %v", name, err)
	}
	return path
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
