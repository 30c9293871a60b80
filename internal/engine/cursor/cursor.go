package cursor

// Cursor is an alias for Selection: an editing point is always represented
// as an anchor/head pair plus a desired column, whether or not it currently
// has a selected range. This mirrors how the selection set already treated
// a "cursor" as a zero-width selection; Cursor exists only so call sites
// that never deal with selections can say what they mean.
type Cursor = Selection

// NewCursor creates a cursor with no selection at pos.
func NewCursor(pos Position) Cursor {
	return NewCursorSelection(pos)
}
