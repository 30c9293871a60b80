// Package history provides the linear undo/redo stack for the text editor
// engine.
//
// # Operations and actions
//
// An Operation is one kind-tagged edit: an insert records the text it
// added and where; a delete records the text it removed and where it
// started. An Action groups every operation produced by one user command,
// plus the cursor snapshots immediately before and after it ran.
//
// UndoStack only records and replays actions; it does not apply edits
// itself. Document owns the inversion rules — undoing an insert deletes,
// undoing a delete inserts, operations invert in reverse order within an
// action — and calls Push/Undo/Redo accordingly.
//
//	stack := history.NewUndoStack(1000)
//	stack.Push(action)
//	if action, ok := stack.Undo(); ok {
//	    // apply action.Operations.Invert(), then restore action.CursorsBefore
//	}
//
// # Grouping
//
// Several Document commands can be folded into one undo action:
//
//	scope := stack.GroupScope(cursorsBefore)
//	// ... multiple commands ...
//	scope.End(cursorsAfter)
package history
