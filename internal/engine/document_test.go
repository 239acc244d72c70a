package engine

import (
	"path/filepath"
	"testing"
)

func TestNewDocument(t *testing.T) {
	d := NewDocument("hello\nworld", "")
	if d.Buffer().Text() != "hello\nworld" {
		t.Errorf("unexpected text %q", d.Buffer().Text())
	}
	if d.ID().String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a generated document id")
	}
	if len(d.Blocks()) != 2 {
		t.Errorf("expected 2 syntax lines, got %d", len(d.Blocks()))
	}
	if d.LongestLine() != 5 {
		t.Errorf("expected longest line 5, got %d", d.LongestLine())
	}
	if d.IsEdited() {
		t.Error("fresh document should be clean")
	}
}

func TestDocumentEditRefreshesDerivedState(t *testing.T) {
	d := NewDocument("ab", "")
	d.Insert("\nlonger line", 2)

	if len(d.Blocks()) != 2 {
		t.Errorf("expected 2 syntax lines after edit, got %d", len(d.Blocks()))
	}
	if d.LongestLine() != 11 {
		t.Errorf("expected longest line 11, got %d", d.LongestLine())
	}
	if !d.IsEdited() {
		t.Error("document should be dirty after an edit")
	}
}

func TestDocumentNotifiesSubscribers(t *testing.T) {
	d := NewDocument("abc", "")
	calls := 0
	d.Subscribe(func() { calls++ })

	d.InsertChar('X', 1)
	d.Remove(0, 1)
	d.Undo()
	d.Redo()

	if calls != 4 {
		t.Errorf("expected 4 notifications, got %d", calls)
	}
}

func TestDocumentUndoRedo(t *testing.T) {
	d := NewDocument("abc", "")
	d.InsertChar('X', 1)

	pos, ok := d.Undo()
	if !ok || d.Buffer().Text() != "abc" || pos != 1 {
		t.Errorf("expected undo to 'abc' with cursor 1, got %q cursor %d", d.Buffer().Text(), pos)
	}

	pos, ok = d.Redo()
	if !ok || d.Buffer().Text() != "aXbc" || pos != 2 {
		t.Errorf("expected redo to 'aXbc' with cursor 2, got %q cursor %d", d.Buffer().Text(), pos)
	}

	if _, ok := d.Redo(); ok {
		t.Error("expected no further redo")
	}
}

func TestDocumentRemoveUndoRestoresText(t *testing.T) {
	d := NewDocument("hello world", "")
	d.Remove(5, 11)
	if d.Buffer().Text() != "hello" {
		t.Fatalf("expected 'hello', got %q", d.Buffer().Text())
	}
	if _, ok := d.Undo(); !ok || d.Buffer().Text() != "hello world" {
		t.Errorf("expected undo to restore text, got %q", d.Buffer().Text())
	}
}

func TestDocumentSaveWithoutPath(t *testing.T) {
	d := NewDocument("abc", "")
	if err := d.Save(); err != ErrNoPath {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}

func TestDocumentSaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	d := NewDocument("hello\n", path)
	d.InsertChar('!', 5)

	if err := d.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.IsEdited() {
		t.Error("document should be clean after save")
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reopened.Buffer().Text() != "hello!\n" {
		t.Errorf("expected saved text, got %q", reopened.Buffer().Text())
	}
	if reopened.Path() != path {
		t.Errorf("expected path %q, got %q", path, reopened.Path())
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
