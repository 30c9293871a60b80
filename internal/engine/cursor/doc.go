// Package cursor provides cursor and selection management for text editing.
//
// The cursor package handles:
//
//   - Single cursor positioning with the Cursor alias
//   - Text selections with anchor/head model via Selection type
//   - Multi-cursor support with CursorSet
//   - Desired-column bookkeeping for vertical motion
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The selection can extend forward (head after anchor) or
// backward (head before anchor), preserving the user's selection direction.
// Position is (line, column) in code-unit coordinates, not a byte offset.
//
// Multi-Cursor Support:
//
// CursorSet manages multiple selections that are:
//   - Kept sorted by position
//   - Automatically merged when overlapping or coincident
//   - Clamped together to a document's current line lengths
//
// Document applies each command's edits to cursors in offset-descending
// order, so earlier cursors never need their positions adjusted for a
// later cursor's edit; this package does not transform cursors against
// arbitrary edits the way a byte-offset cursor model would need to.
//
// Basic usage:
//
//	sel := cursor.NewCursorSelection(cursor.Position{Line: 0, Column: 10})
//	sel = sel.Extend(cursor.Position{Line: 0, Column: 20})
//
//	cs := cursor.NewCursorSet(sel)
//	cs.AddCursor(cursor.Position{Line: 2, Column: 0})
//
// Thread Safety:
//
// Selection is an immutable value type and safe for concurrent use.
// CursorSet is not thread-safe and should be protected by external
// synchronization if accessed concurrently; Document provides that.
package cursor
