package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary directory structure for testing
	tmpDir, err := os.MkdirTemp("", "scenario-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Join(tmpDir, "nested"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	files := []string{
		"users.so",
		"orders.so",
		"fixture.so",
		".hidden.so",
		"config.ini",
		"nested/deep.so",
	}
	for _, file := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, file), []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner(".so")

	t.Run("lists top level plugins only", func(t *testing.T) {
		entries, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// fixture.so is a unit file too; the discoverer decides what runs
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d: %v", len(entries), entries)
		}

		found := make(map[string]string)
		for _, e := range entries {
			found[e.Name] = e.Path
		}
		for _, name := range []string{"users", "orders", "fixture"} {
			if found[name] != filepath.Join(tmpDir, name+".so") {
				t.Errorf("expected entry %s, got %v", name, found)
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "config.ini"))
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}
