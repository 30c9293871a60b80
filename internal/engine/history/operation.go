package history

import (
	"github.com/dshills/keystorm/internal/engine/cursor"
	"github.com/dshills/keystorm/internal/engine/piecetable"
)

// Position is an alias for piecetable.Position for convenience.
type Position = piecetable.Position

// Selection is an alias for cursor.Selection for convenience.
type Selection = cursor.Selection

// Kind identifies what an Operation did to the document.
type Kind uint8

const (
	// KindInsert records text inserted at Position.
	KindInsert Kind = iota
	// KindDelete records text removed starting at Position.
	KindDelete
)

func (k Kind) String() string {
	if k == KindDelete {
		return "delete"
	}
	return "insert"
}

// Operation is one undoable edit: an insert records the text it added at
// Position; a delete records the text it removed, anchored at the start of
// the removed range.
type Operation struct {
	Kind     Kind
	Position Position
	Text     string
}

// NewInsertOperation records an insertion of text at pos.
func NewInsertOperation(pos Position, text string) Operation {
	return Operation{Kind: KindInsert, Position: pos, Text: text}
}

// NewDeleteOperation records a deletion of text starting at pos.
func NewDeleteOperation(pos Position, text string) Operation {
	return Operation{Kind: KindDelete, Position: pos, Text: text}
}

// Invert returns the operation that undoes op: an insert becomes a delete
// of the same text at the same position and vice versa.
func (op Operation) Invert() Operation {
	switch op.Kind {
	case KindInsert:
		return Operation{Kind: KindDelete, Position: op.Position, Text: op.Text}
	default:
		return Operation{Kind: KindInsert, Position: op.Position, Text: op.Text}
	}
}

// OperationList is a sequence of operations applied (or to be inverted)
// together.
type OperationList []Operation

// Invert returns the inverse of every operation, in reverse order, so that
// applying the result undoes the original list end-to-start.
func (ops OperationList) Invert() OperationList {
	result := make(OperationList, len(ops))
	for i, op := range ops {
		result[len(ops)-1-i] = op.Invert()
	}
	return result
}

// Action is one grouped undo unit: all operations of a single user command
// (or, under grouping, several composed commands), plus the cursor state
// immediately before and after.
type Action struct {
	Operations    OperationList
	CursorsBefore []Selection
	CursorsAfter  []Selection
}

// Invert returns the action that undoes a, with operations reversed and
// before/after cursor snapshots swapped.
func (a Action) Invert() Action {
	return Action{
		Operations:    a.Operations.Invert(),
		CursorsBefore: a.CursorsAfter,
		CursorsAfter:  a.CursorsBefore,
	}
}
