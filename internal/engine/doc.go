// Package engine provides the core text editor engine for Keystorm.
//
// The engine package is the facade over the editing core: a piece-table
// document, a multi-cursor set, and a linear undo stack, combined into one
// thread-safe command surface that the dispatcher/app layers drive.
//
// # Architecture
//
// The facade is built on several sub-packages:
//
//   - piecetable: append-only text storage plus piece list, O(log n)
//     position/offset conversion via a lazily rebuilt line index
//   - cursor: multi-cursor and selection management with merge/sort
//     invariants
//   - history: recorded operations/actions for undo and redo
//   - bracket: lexical matching-bracket lookup
//   - autoindent: newline indentation, dedent-on-close, and auto-pair rules
//
// # Thread Safety
//
// All Document operations are thread-safe. A read-write mutex allows
// concurrent reads (Content, Line, OffsetToPosition, ...) while serializing
// writes. The cursor set carries no concurrency guarantees of its own; the
// piece table and undo stack also take their own internal locks.
//
// # Basic Usage
//
//	doc := engine.NewDocument(engine.WithContent("Hello, World!"))
//	doc.Insert("!!!")
//	doc.Undo()
//
// # Multi-Cursor Support
//
//	doc := engine.NewDocument(engine.WithContent("foo bar foo"))
//	cs := doc.Cursors() // a copy; apply it with SetCursors
//	cs.AddCursor(piecetable.Position{Line: 0, Column: 8})
//	doc.SetCursors(cs)
//	doc.Insert("X") // inserts at every cursor, offset-descending
//
// # Undo/Redo
//
//	doc.Insert("Hello")
//	doc.Insert(" World")
//	doc.Undo() // removes " World"
//	doc.Undo() // removes "Hello"
//	doc.Redo() // restores "Hello"
//
// Group several commands into one undo action by calling
// Document.BeginGroup before them and Document.EndGroup after them
// (Document.CancelGroup drops the group's undo record instead).
//
// # Read-Only Mode
//
//	doc := engine.NewDocument(engine.WithContent("fixed"), engine.WithReadOnly())
//	err := doc.Insert("x") // err == engine.ErrReadOnly
package engine
