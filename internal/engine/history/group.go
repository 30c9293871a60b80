package history

// GroupScope provides a defer-friendly way to group several Document
// commands into one undo action.
//
//	scope := stack.GroupScope(cursorsBefore)
//	defer scope.Cancel() // no effect once End has run
//	// ... multiple Document commands ...
//	scope.End(cursorsAfter)
type GroupScope struct {
	stack  *UndoStack
	active bool
}

// GroupScope starts a new group, recording cursorsBefore as its starting
// cursor snapshot.
func (u *UndoStack) GroupScope(cursorsBefore []Selection) *GroupScope {
	u.BeginGroup(cursorsBefore)
	return &GroupScope{stack: u, active: true}
}

// End closes the scope, recording cursorsAfter as the group's ending
// snapshot. Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End(cursorsAfter []Selection) {
	if g.active {
		g.stack.EndGroup(cursorsAfter)
		g.active = false
	}
}

// Cancel discards the scope without recording an undo entry.
func (g *GroupScope) Cancel() {
	if g.active {
		g.stack.CancelGroup()
		g.active = false
	}
}

// Transaction runs fn inside a group, using cursorsBefore as the group's
// starting snapshot and the return value of afterFn() as its ending
// snapshot. If fn returns an error the group is cancelled and no undo entry
// is recorded.
func (u *UndoStack) Transaction(cursorsBefore []Selection, fn func() error, afterFn func() []Selection) error {
	u.BeginGroup(cursorsBefore)
	if err := fn(); err != nil {
		u.CancelGroup()
		return err
	}
	u.EndGroup(afterFn())
	return nil
}

// Checkpoint marks a position in the undo stack to later undo back to.
type Checkpoint struct {
	undoDepth int
}

// CreateCheckpoint captures the current undo depth.
func (u *UndoStack) CreateCheckpoint() Checkpoint {
	u.mu.Lock()
	defer u.mu.Unlock()
	return Checkpoint{undoDepth: len(u.undone)}
}

// UndoToCheckpoint calls apply once per action needed to return to cp,
// stopping if the stack is exhausted first.
func (u *UndoStack) UndoToCheckpoint(cp Checkpoint, apply func(Action)) {
	for u.UndoCount() > cp.undoDepth {
		action, ok := u.Undo()
		if !ok {
			return
		}
		apply(action)
	}
}
