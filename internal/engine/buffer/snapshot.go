package buffer

// Snapshot is an immutable copy of a buffer's state.
// It is taken synchronously on the owning goroutine and may then be read
// from any goroutine, for example by a background save serializing the
// document while the user keeps editing.
type Snapshot struct {
	text     string
	lenChars int
	lenUTF16 int
	lines    int
}

// Snapshot returns an immutable copy of the current state.
func (b *Buffer) Snapshot() *Snapshot {
	return &Snapshot{
		text:     string(b.runes),
		lenChars: len(b.runes),
		lenUTF16: b.lenUTF16,
		lines:    len(b.lineStarts),
	}
}

// Text returns the full content at the time of the snapshot.
func (s *Snapshot) Text() string {
	return s.text
}

// LenChars returns the char length at the time of the snapshot.
func (s *Snapshot) LenChars() int {
	return s.lenChars
}

// LenUTF16 returns the UTF-16 length at the time of the snapshot.
func (s *Snapshot) LenUTF16() int {
	return s.lenUTF16
}

// LineCount returns the line count at the time of the snapshot.
func (s *Snapshot) LineCount() int {
	return s.lines
}
