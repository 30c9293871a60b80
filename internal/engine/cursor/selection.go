package cursor

import (
	"fmt"

	"github.com/dshills/keystorm/internal/engine/piecetable"
)

// Position is an alias for piecetable.Position for convenience.
type Position = piecetable.Position

// Range is an alias for piecetable.Range for convenience.
type Range = piecetable.Range

// Selection represents one cursor's state: an anchor/head pair plus the
// preferred column for vertical motion. When Anchor == Head the selection
// is empty and denotes a plain cursor with no selected text; the type is
// shared between the two the way the source's Selection is, rather than
// splitting Cursor and Selection into separate entries in the set.
//
// DesiredColumn is preserved across vertical moves and reset by every
// horizontal move; it lets the cursor "remember" a column past the end of
// an intervening shorter line.
type Selection struct {
	Anchor        Position
	Head          Position
	DesiredColumn int
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Position) Selection {
	return Selection{Anchor: anchor, Head: head, DesiredColumn: head.Column}
}

// NewCursorSelection creates a selection representing a cursor with no
// extent at pos.
func NewCursorSelection(pos Position) Selection {
	return Selection{Anchor: pos, Head: pos, DesiredColumn: pos.Column}
}

// NewRangeSelection creates a forward selection covering r.
func NewRangeSelection(r Range) Selection {
	return Selection{Anchor: r.Start, Head: r.End, DesiredColumn: r.End.Column}
}

// IsEmpty reports whether the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor.Equal(s.Head)
}

// Range returns the selection as an ordered (Start <= End) range.
func (s Selection) Range() Range {
	if !s.Head.Before(s.Anchor) {
		return Range{Start: s.Anchor, End: s.Head}
	}
	return Range{Start: s.Head, End: s.Anchor}
}

// Start returns the lower-bound position of the selection.
func (s Selection) Start() Position {
	return s.Range().Start
}

// End returns the upper-bound position of the selection.
func (s Selection) End() Position {
	return s.Range().End
}

// Cursor returns the head position, i.e. where typing would occur.
func (s Selection) Cursor() Position {
	return s.Head
}

// IsForward reports whether the selection extends forward (head >= anchor).
func (s Selection) IsForward() bool {
	return !s.Head.Before(s.Anchor)
}

// IsBackward reports whether the selection extends backward (head < anchor).
func (s Selection) IsBackward() bool {
	return s.Head.Before(s.Anchor)
}

// Extend returns a selection with the anchor fixed and head moved to pos,
// resetting DesiredColumn to pos's column (callers doing vertical moves
// should instead set DesiredColumn explicitly after calling Extend).
func (s Selection) Extend(pos Position) Selection {
	return Selection{Anchor: s.Anchor, Head: pos, DesiredColumn: pos.Column}
}

// MoveTo collapses the selection to a cursor at pos.
func (s Selection) MoveTo(pos Position) Selection {
	return Selection{Anchor: pos, Head: pos, DesiredColumn: pos.Column}
}

// Collapse collapses the selection to a cursor at its head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head, DesiredColumn: s.Head.Column}
}

// CollapseToStart collapses the selection to a cursor at its start.
func (s Selection) CollapseToStart() Selection {
	start := s.Start()
	return Selection{Anchor: start, Head: start, DesiredColumn: start.Column}
}

// CollapseToEnd collapses the selection to a cursor at its end.
func (s Selection) CollapseToEnd() Selection {
	end := s.End()
	return Selection{Anchor: end, Head: end, DesiredColumn: end.Column}
}

// Flip returns a selection with anchor and head swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Head, Head: s.Anchor, DesiredColumn: s.Anchor.Column}
}

// Normalize returns a forward selection (anchor <= head).
func (s Selection) Normalize() Selection {
	if s.IsForward() {
		return s
	}
	return s.Flip()
}

// Contains reports whether pos lies strictly within [start, end).
func (s Selection) Contains(pos Position) bool {
	r := s.Range()
	return !pos.Before(r.Start) && pos.Before(r.End)
}

// ContainsInclusive reports whether pos lies within [start, end].
func (s Selection) ContainsInclusive(pos Position) bool {
	r := s.Range()
	return !pos.Before(r.Start) && !pos.After(r.End)
}

// Overlaps reports whether s and other share any position.
func (s Selection) Overlaps(other Selection) bool {
	return s.Range().Overlaps(other.Range())
}

// Touches reports whether s and other overlap or are adjacent.
func (s Selection) Touches(other Selection) bool {
	sr, or := s.Range(), other.Range()
	return !sr.Start.After(or.End) && !or.Start.After(sr.End)
}

// Merge merges two overlapping or adjacent selections into their union. The
// result is always forward, with Head (and therefore the cursor's
// reported position) at the union's end, matching the "head side of the
// union" merge rule.
func (s Selection) Merge(other Selection) Selection {
	sr, or := s.Range(), other.Range()
	start := sr.Start
	if or.Start.Before(start) {
		start = or.Start
	}
	end := sr.End
	if or.End.After(end) {
		end = or.End
	}
	return Selection{Anchor: start, Head: end, DesiredColumn: end.Column}
}

// String returns a human-readable representation.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d,%d)", s.Head.Line, s.Head.Column)
	}
	dir := "->"
	if s.IsBackward() {
		dir = "<-"
	}
	return fmt.Sprintf("Selection(%d,%d%s%d,%d)", s.Anchor.Line, s.Anchor.Column, dir, s.Head.Line, s.Head.Column)
}

// Equals reports whether two selections have the same anchor and head.
// DesiredColumn is not compared: it is motion bookkeeping, not identity.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor.Equal(other.Anchor) && s.Head.Equal(other.Head)
}

// SameRange reports whether two selections cover the same range regardless
// of direction.
func (s Selection) SameRange(other Selection) bool {
	sr, or := s.Range(), other.Range()
	return sr.Start.Equal(or.Start) && sr.End.Equal(or.End)
}
