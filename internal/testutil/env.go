// Package testutil provides helpers for running binstage tests in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// EnvPrefix is the environment variable prefix read by the binstage CLI.
const EnvPrefix = "BINSTAGE_"

// SetupTestEnv moves the test into a fresh temporary working directory and
// clears any BINSTAGE_* variables inherited from the caller's shell, so
// relative paths such as ./dist and ./bin land inside the temp dir.
//
// Cleanup is handled by t.TempDir, t.Chdir and t.Setenv.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, EnvPrefix) {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	return tmpDir
}

// StageBinary writes a fake binary at
// <root>/<tool>_<goos>_<label>/<name> with mode 0755 and returns its path.
func StageBinary(t *testing.T, root, tool, goos, label, name string, content []byte) string {
	t.Helper()

	dir := filepath.Join(root, tool+"_"+goos+"_"+label)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create staging directory %s: %v", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("failed to stage binary %s: %v", path, err)
	}
	// WriteFile is subject to umask; force the mode tests assert on.
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatalf("failed to chmod staged binary %s: %v", path, err)
	}

	return path
}

// Snapshot returns the relative path and size of every file under root.
// Tests compare snapshots to prove a command made no filesystem changes.
func Snapshot(t *testing.T, root string) map[string]int64 {
	t.Helper()

	files := map[string]int64{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			files[rel+string(filepath.Separator)] = 0
			return nil
		}
		files[rel] = info.Size()
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", root, err)
	}

	return files
}
