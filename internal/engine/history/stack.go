package history

import (
	"errors"
	"sync"
)

// Common errors for undo-stack operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// UndoStack is a linear history of grouped edit actions. It records
// operations and cursor snapshots; it does not itself apply edits to a
// document, since Document owns the inversion rules (undoing an insert
// deletes, undoing a delete inserts) and the order in which operations
// are re-applied.
type UndoStack struct {
	mu sync.Mutex

	undone []Action
	redone []Action

	grouping           bool
	groupOps           OperationList
	groupCursorsBefore []Selection

	maxEntries int
}

const defaultMaxEntries = 1000

// NewUndoStack creates an undo stack retaining at most maxEntries actions.
// A non-positive maxEntries falls back to a sensible default.
func NewUndoStack(maxEntries int) *UndoStack {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &UndoStack{maxEntries: maxEntries}
}

// Push appends action to the undo stack and clears the redo tail. While a
// group is open (BeginGroup/EndGroup), the action's operations are folded
// into the open group instead of becoming their own entry.
func (u *UndoStack) Push(action Action) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.grouping {
		u.groupOps = append(u.groupOps, action.Operations...)
		return
	}
	u.pushLocked(action)
}

func (u *UndoStack) pushLocked(action Action) {
	u.undone = append(u.undone, action)
	u.redone = nil

	if len(u.undone) > u.maxEntries {
		excess := len(u.undone) - u.maxEntries
		u.undone = u.undone[excess:]
	}
}

// Undo pops the most recent action onto the redo stack and returns it for
// the caller to invert and apply. Returns false if the undo stack is empty.
func (u *UndoStack) Undo() (Action, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.undone) == 0 {
		return Action{}, false
	}
	action := u.undone[len(u.undone)-1]
	u.undone = u.undone[:len(u.undone)-1]
	u.redone = append(u.redone, action)
	return action, true
}

// Redo pops the most recently undone action back onto the undo stack and
// returns it. Returns false if the redo stack is empty.
func (u *UndoStack) Redo() (Action, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.redone) == 0 {
		return Action{}, false
	}
	action := u.redone[len(u.redone)-1]
	u.redone = u.redone[:len(u.redone)-1]
	u.undone = append(u.undone, action)
	return action, true
}

// CanUndo reports whether Undo would return an action.
func (u *UndoStack) CanUndo() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.undone) > 0
}

// CanRedo reports whether Redo would return an action.
func (u *UndoStack) CanRedo() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.redone) > 0
}

// UndoCount returns the number of actions available to undo.
func (u *UndoStack) UndoCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.undone)
}

// RedoCount returns the number of actions available to redo.
func (u *UndoStack) RedoCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.redone)
}

// BeginGroup starts accumulating operations from subsequent Push calls into
// one action, recording cursorsBefore as the group's starting cursor
// snapshot. Nested calls are ignored; only the outermost group applies.
func (u *UndoStack) BeginGroup(cursorsBefore []Selection) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.grouping {
		return
	}
	u.grouping = true
	u.groupOps = nil
	u.groupCursorsBefore = cursorsBefore
}

// EndGroup closes the open group, pushing its accumulated operations as a
// single action with cursorsAfter as the ending snapshot. A group with no
// operations is discarded without creating an entry.
func (u *UndoStack) EndGroup(cursorsAfter []Selection) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.grouping {
		return
	}
	u.grouping = false

	if len(u.groupOps) == 0 {
		u.groupOps = nil
		u.groupCursorsBefore = nil
		return
	}

	u.pushLocked(Action{
		Operations:    u.groupOps,
		CursorsBefore: u.groupCursorsBefore,
		CursorsAfter:  cursorsAfter,
	})
	u.groupOps = nil
	u.groupCursorsBefore = nil
}

// CancelGroup discards the open group without recording history. Edits
// already applied to the document are unaffected; only their undo record
// is dropped.
func (u *UndoStack) CancelGroup() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.grouping = false
	u.groupOps = nil
	u.groupCursorsBefore = nil
}

// IsGrouping reports whether a group is currently open.
func (u *UndoStack) IsGrouping() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.grouping
}

// Clear discards all undo/redo history.
func (u *UndoStack) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.undone = nil
	u.redone = nil
	u.grouping = false
	u.groupOps = nil
	u.groupCursorsBefore = nil
}

// SetMaxEntries changes the retained action limit, trimming the oldest
// entries if the stack already exceeds it.
func (u *UndoStack) SetMaxEntries(max int) {
	if max <= 0 {
		max = defaultMaxEntries
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.maxEntries = max
	if len(u.undone) > max {
		excess := len(u.undone) - max
		u.undone = u.undone[excess:]
	}
}

// MaxEntries returns the retained action limit.
func (u *UndoStack) MaxEntries() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.maxEntries
}
