package file

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirSetCreatesOnce(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a", "jpg")

	dirs := NewDirSet()
	if err := dirs.Ensure(target); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if fi, err := os.Stat(target); err != nil || !fi.IsDir() {
		t.Fatalf("dir not created: %v", err)
	}

	// a memoized dir is not touched again, even if it vanished meanwhile
	if err := os.Remove(target); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := dirs.Ensure(target); err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if Exists(target) {
		t.Fatalf("expected memoized Ensure to skip MkdirAll")
	}
	if dirs.Len() != 1 {
		t.Fatalf("expected 1 memoized dir, got %d", dirs.Len())
	}
}

func TestEnsureDirFailsUnderFile(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	dirs := NewDirSet()
	if err := dirs.Ensure(filepath.Join(blocker, "sub")); err == nil {
		t.Fatalf("expected error creating dir below a file")
	}
	if dirs.Len() != 0 {
		t.Fatalf("failed dir must not be memoized")
	}
	if err := EnsureDir(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestCommit(t *testing.T) {
	root := t.TempDir()
	tmp := filepath.Join(root, "x.part")
	final := filepath.Join(root, "x.jpg")
	if err := os.WriteFile(tmp, []byte("data"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Commit(tmp, final); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if Exists(tmp) {
		t.Fatalf("temp should be gone after commit")
	}
	b, err := os.ReadFile(final)
	if err != nil || string(b) != "data" {
		t.Fatalf("final content: %q, %v", b, err)
	}

	if err := Commit(filepath.Join(root, "missing.part"), final); err == nil {
		t.Fatalf("expected error for missing temp")
	}
}
