package piecetable

// Snapshot is a by-value copy of a table's piece list and add buffer,
// suitable for handing to a reader that must not observe subsequent
// mutations, or for restoring an earlier state (e.g. external session
// replay). The original buffer is immutable for the table's lifetime and
// is not copied.
type Snapshot struct {
	pieces  []Piece
	addText string
	length  int64
}

// Snapshot returns a deep copy of the current piece list and add buffer.
func (t *PieceTable) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	pieces := make([]Piece, len(t.pieces))
	copy(pieces, t.pieces)
	return Snapshot{
		pieces:  pieces,
		addText: t.add.String(),
		length:  t.length,
	}
}

// Restore replaces the table's piece list and add buffer with s. The
// original buffer is left untouched. Restore still bumps version() even
// when the restored content is byte-identical to the current content,
// matching the invariant that the counter strictly increases on every
// mutation.
func (t *PieceTable) Restore(s Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pieces := make([]Piece, len(s.pieces))
	copy(pieces, s.pieces)
	t.pieces = pieces

	t.add.Reset()
	t.add.WriteString(s.addText)

	t.length = s.length
	t.lineIndex = nil
	t.version++
}
