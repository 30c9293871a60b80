package cursor

import "sort"

// CursorSet manages an ordered, non-overlapping set of cursors/selections.
// The first entry after normalization is the "primary" cursor.
type CursorSet struct {
	selections []Selection
}

// NewCursorSet creates a cursor set with a single selection.
func NewCursorSet(initial Selection) *CursorSet {
	return &CursorSet{selections: []Selection{initial}}
}

// NewCursorSetAt creates a cursor set with a single cursor at pos.
func NewCursorSetAt(pos Position) *CursorSet {
	return &CursorSet{selections: []Selection{NewCursorSelection(pos)}}
}

// NewCursorSetFromSlice creates a normalized cursor set from selections. An
// empty slice yields a single cursor at (0,0).
func NewCursorSetFromSlice(selections []Selection) *CursorSet {
	if len(selections) == 0 {
		return &CursorSet{selections: []Selection{NewCursorSelection(Position{})}}
	}
	cs := &CursorSet{selections: make([]Selection, len(selections))}
	copy(cs.selections, selections)
	cs.normalize()
	return cs
}

// Primary returns the primary cursor.
func (cs *CursorSet) Primary() Selection {
	if len(cs.selections) == 0 {
		return Selection{}
	}
	return cs.selections[0]
}

// PrimaryCursor returns the primary cursor's head position.
func (cs *CursorSet) PrimaryCursor() Position {
	return cs.Primary().Head
}

// All returns a sorted copy of all cursors, safe to modify.
func (cs *CursorSet) All() []Selection {
	result := make([]Selection, len(cs.selections))
	copy(result, cs.selections)
	return result
}

// Count returns the number of cursors.
func (cs *CursorSet) Count() int {
	return len(cs.selections)
}

// IsMulti reports whether there is more than one cursor.
func (cs *CursorSet) IsMulti() bool {
	return len(cs.selections) > 1
}

// SetSingle collapses the set to one cursor at pos.
func (cs *CursorSet) SetSingle(pos Position) {
	cs.selections = []Selection{NewCursorSelection(pos)}
}

// SetPosition moves the primary cursor to pos. When extend is true, the
// current position becomes (or remains) the anchor of a growing selection;
// otherwise the cursor collapses to pos.
func (cs *CursorSet) SetPosition(pos Position, extend bool) {
	if len(cs.selections) == 0 {
		cs.selections = []Selection{NewCursorSelection(pos)}
		return
	}
	primary := cs.selections[0]
	if extend {
		cs.selections[0] = primary.Extend(pos)
	} else {
		cs.selections[0] = NewCursorSelection(pos)
	}
	cs.selections = cs.selections[:1]
}

// AddCursor adds a cursor at pos if no existing cursor already sits there,
// then normalizes.
func (cs *CursorSet) AddCursor(pos Position) {
	for _, sel := range cs.selections {
		if sel.IsEmpty() && sel.Head.Equal(pos) {
			return
		}
	}
	cs.selections = append(cs.selections, NewCursorSelection(pos))
	cs.normalize()
}

// AddCursorWithSelection adds a selection from anchor to head, then
// normalizes (merging it into any overlapping existing selection).
func (cs *CursorSet) AddCursorWithSelection(anchor, head Position) {
	cs.selections = append(cs.selections, NewSelection(anchor, head))
	cs.normalize()
}

// ClearSecondary keeps only the primary cursor.
func (cs *CursorSet) ClearSecondary() {
	if len(cs.selections) > 1 {
		cs.selections = cs.selections[:1]
	}
}

// ClearSelections keeps every cursor's position but drops its selection.
func (cs *CursorSet) ClearSelections() {
	for i, sel := range cs.selections {
		cs.selections[i] = sel.Collapse()
	}
	cs.normalize()
}

// Move applies fn to every cursor's head position. When extend is true, the
// prior position becomes the anchor of a (possibly already existing)
// selection; otherwise each cursor collapses to its new position. Results
// are always merged to restore the no-overlap invariant.
func (cs *CursorSet) Move(fn func(Selection) Position, extend bool) {
	for i, sel := range cs.selections {
		newPos := fn(sel)
		if extend {
			anchor := sel.Anchor
			if sel.IsEmpty() {
				anchor = sel.Head
			}
			cs.selections[i] = Selection{Anchor: anchor, Head: newPos, DesiredColumn: sel.DesiredColumn}
		} else {
			cs.selections[i] = Selection{Anchor: newPos, Head: newPos, DesiredColumn: sel.DesiredColumn}
		}
	}
	cs.normalize()
}

// UpdateDesiredColumn sets every cursor's DesiredColumn to its current
// head column. Call this after horizontal moves only; vertical moves must
// preserve the existing DesiredColumn instead.
func (cs *CursorSet) UpdateDesiredColumn() {
	for i, sel := range cs.selections {
		cs.selections[i].DesiredColumn = sel.Head.Column
	}
}

// SelectAll replaces the set with one selection from (0,0) to endPos.
func (cs *CursorSet) SelectAll(endPos Position) {
	cs.selections = []Selection{NewSelection(Position{}, endPos)}
}

// SetSelections replaces the set with list, normalizing it. An empty list
// yields a primary cursor at (0,0).
func (cs *CursorSet) SetSelections(list []Selection) {
	if len(list) == 0 {
		cs.selections = []Selection{NewCursorSelection(Position{})}
		return
	}
	cs.selections = make([]Selection, len(list))
	copy(cs.selections, list)
	cs.normalize()
}

// Selections returns every selection range.
func (cs *CursorSet) Selections() []Range {
	ranges := make([]Range, len(cs.selections))
	for i, sel := range cs.selections {
		ranges[i] = sel.Range()
	}
	return ranges
}

// SelectedRanges returns ranges for non-empty selections only.
func (cs *CursorSet) SelectedRanges() []Range {
	var ranges []Range
	for _, sel := range cs.selections {
		if !sel.IsEmpty() {
			ranges = append(ranges, sel.Range())
		}
	}
	return ranges
}

// Snapshot returns a copy of all cursors, suitable for storing on an undo
// action and later passing to Restore.
func (cs *CursorSet) Snapshot() []Selection {
	return cs.All()
}

// Restore replaces the cursor set with a previously captured snapshot.
func (cs *CursorSet) Restore(snapshot []Selection) {
	cs.SetSelections(snapshot)
}

// Clamp clamps every cursor to positions reachable within a document of
// the given line count, using lineLength to clamp columns per line.
func (cs *CursorSet) Clamp(lineCount int, lineLength func(line int) int) {
	clampPos := func(p Position) Position {
		if lineCount <= 0 {
			return Position{}
		}
		if p.Line >= lineCount {
			p.Line = lineCount - 1
		}
		if p.Line < 0 {
			p.Line = 0
		}
		if max := lineLength(p.Line); p.Column > max {
			p.Column = max
		}
		if p.Column < 0 {
			p.Column = 0
		}
		return p
	}
	for i, sel := range cs.selections {
		cs.selections[i] = Selection{
			Anchor:        clampPos(sel.Anchor),
			Head:          clampPos(sel.Head),
			DesiredColumn: sel.DesiredColumn,
		}
	}
	cs.normalize()
}

// Clone returns a deep copy of the cursor set.
func (cs *CursorSet) Clone() *CursorSet {
	clone := &CursorSet{selections: make([]Selection, len(cs.selections))}
	copy(clone.selections, cs.selections)
	return clone
}

// Equals reports whether two cursor sets hold the same selections in the
// same order.
func (cs *CursorSet) Equals(other *CursorSet) bool {
	if other == nil || cs.Count() != other.Count() {
		return false
	}
	for i, sel := range cs.selections {
		if !sel.Equals(other.selections[i]) {
			return false
		}
	}
	return true
}

// normalize sorts cursors by position and merges overlapping/adjacent
// selections (invariant 5: no shared positions, no overlapping selections).
func (cs *CursorSet) normalize() {
	if len(cs.selections) <= 1 {
		return
	}

	sort.Slice(cs.selections, func(i, j int) bool {
		si, sj := cs.selections[i].Start(), cs.selections[j].Start()
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		// Same start: larger range first so it absorbs the smaller on merge.
		return cs.selections[j].End().Before(cs.selections[i].End())
	})

	merged := cs.selections[:1]
	for _, sel := range cs.selections[1:] {
		last := &merged[len(merged)-1]
		if !sel.Start().After(last.End()) {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}
	cs.selections = merged
}
