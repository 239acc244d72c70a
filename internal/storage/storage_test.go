package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadAllMissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")

	if err := WriteAll(path, "hello\nworld\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, err := ReadAll(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello\nworld\n" {
		t.Errorf("expected round-tripped text, got %q", text)
	}
}

func TestWriteAllOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := WriteAll(path, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WriteAll(path, "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, _ := ReadAll(path)
	if text != "second" {
		t.Errorf("expected 'second', got %q", text)
	}
}

func TestWriteAllPreservesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := WriteAll(path, "y"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected mode 0600 preserved, got %v", info.Mode().Perm())
	}
}

func TestWriteAllLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := WriteAll(path, "content"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the document in %s, found %d entries", dir, len(entries))
	}
}
