package cursor

import "testing"

func pos(line, col int) Position { return Position{Line: line, Column: col} }

func TestSelectionIsEmpty(t *testing.T) {
	s := NewCursorSelection(pos(0, 5))
	if !s.IsEmpty() {
		t.Fatalf("expected empty selection")
	}
	s = s.Extend(pos(0, 8))
	if s.IsEmpty() {
		t.Fatalf("expected non-empty selection after Extend")
	}
}

func TestSelectionRangeOrdering(t *testing.T) {
	s := NewSelection(pos(1, 5), pos(0, 2))
	r := s.Range()
	if !r.Start.Equal(pos(0, 2)) || !r.End.Equal(pos(1, 5)) {
		t.Fatalf("Range() = %+v, want Start (0,2) End (1,5)", r)
	}
	if !s.IsBackward() {
		t.Fatalf("expected backward selection")
	}
}

func TestSelectionMerge(t *testing.T) {
	a := NewSelection(pos(0, 0), pos(0, 5))
	b := NewSelection(pos(0, 3), pos(0, 8))
	m := a.Merge(b)
	if !m.Start().Equal(pos(0, 0)) || !m.End().Equal(pos(0, 8)) {
		t.Fatalf("Merge() = %+v, want (0,0)-(0,8)", m)
	}
	if !m.Head.Equal(pos(0, 8)) {
		t.Fatalf("merged Head = %+v, want the union's end (0,8)", m.Head)
	}
}

func TestCursorSetNormalizeSortsAndMerges(t *testing.T) {
	cs := NewCursorSetFromSlice([]Selection{
		NewSelection(pos(2, 0), pos(2, 3)),
		NewSelection(pos(0, 0), pos(0, 2)),
		NewSelection(pos(0, 1), pos(0, 4)),
	})
	all := cs.All()
	if len(all) != 2 {
		t.Fatalf("Count() = %d, want 2 (overlapping pair merged)", len(all))
	}
	if !all[0].Start().Equal(pos(0, 0)) || !all[0].End().Equal(pos(0, 4)) {
		t.Errorf("all[0] = %+v, want merged (0,0)-(0,4)", all[0])
	}
	if !all[1].Start().Equal(pos(2, 0)) {
		t.Errorf("all[1] = %+v, want start (2,0)", all[1])
	}
}

func TestCursorSetNoSharedPosition(t *testing.T) {
	cs := NewCursorSetFromSlice([]Selection{
		NewCursorSelection(pos(1, 1)),
		NewCursorSelection(pos(1, 1)),
	})
	if cs.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (coincident cursors merge)", cs.Count())
	}
}

func TestCursorSetAddCursorSkipsDuplicate(t *testing.T) {
	cs := NewCursorSetAt(pos(0, 0))
	cs.AddCursor(pos(0, 0))
	if cs.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (duplicate position not added)", cs.Count())
	}
	cs.AddCursor(pos(1, 0))
	if cs.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", cs.Count())
	}
}

func TestCursorSetMoveExtend(t *testing.T) {
	cs := NewCursorSetAt(pos(0, 0))
	cs.Move(func(s Selection) Position { return pos(0, 3) }, true)
	p := cs.Primary()
	if !p.Anchor.Equal(pos(0, 0)) || !p.Head.Equal(pos(0, 3)) {
		t.Fatalf("Primary() = %+v, want anchor (0,0) head (0,3)", p)
	}
}

func TestCursorSetMoveCollapsesWithoutExtend(t *testing.T) {
	cs := NewCursorSetFromSlice([]Selection{NewSelection(pos(0, 0), pos(0, 5))})
	cs.Move(func(s Selection) Position { return pos(0, 7) }, false)
	p := cs.Primary()
	if !p.IsEmpty() || !p.Head.Equal(pos(0, 7)) {
		t.Fatalf("Primary() = %+v, want collapsed cursor at (0,7)", p)
	}
}

func TestCursorSetSelectAll(t *testing.T) {
	cs := NewCursorSetAt(pos(0, 0))
	cs.SelectAll(pos(3, 2))
	if cs.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", cs.Count())
	}
	p := cs.Primary()
	if !p.Anchor.Equal(pos(0, 0)) || !p.Head.Equal(pos(3, 2)) {
		t.Fatalf("Primary() = %+v, want (0,0)-(3,2)", p)
	}
}

func TestCursorSetSetSelectionsEmptyFallsBackToOrigin(t *testing.T) {
	cs := NewCursorSetAt(pos(5, 5))
	cs.SetSelections(nil)
	if cs.Count() != 1 || !cs.Primary().Head.Equal(pos(0, 0)) {
		t.Fatalf("expected single cursor at (0,0), got %+v", cs.Primary())
	}
}

func TestCursorSetClampClampsColumnsAndLines(t *testing.T) {
	cs := NewCursorSetFromSlice([]Selection{
		NewCursorSelection(pos(0, 50)),
		NewCursorSelection(pos(10, 0)),
	})
	lineLen := func(line int) int {
		if line == 0 {
			return 3
		}
		return 0
	}
	cs.Clamp(2, lineLen)
	all := cs.All()
	if !all[0].Head.Equal(pos(0, 3)) {
		t.Errorf("all[0] = %+v, want column clamped to 3", all[0])
	}
	if !all[1].Head.Equal(pos(1, 0)) {
		t.Errorf("all[1] = %+v, want line clamped to 1", all[1])
	}
}

func TestCursorSetSnapshotRestore(t *testing.T) {
	cs := NewCursorSetFromSlice([]Selection{
		NewCursorSelection(pos(0, 0)),
		NewCursorSelection(pos(1, 0)),
	})
	snap := cs.Snapshot()
	cs.SetSingle(pos(9, 9))
	cs.Restore(snap)
	if cs.Count() != 2 {
		t.Fatalf("Count() after restore = %d, want 2", cs.Count())
	}
	if !cs.Primary().Head.Equal(pos(0, 0)) {
		t.Fatalf("Primary() after restore = %+v, want (0,0)", cs.Primary())
	}
}

func TestUpdateDesiredColumn(t *testing.T) {
	cs := NewCursorSetAt(pos(0, 0))
	cs.Move(func(s Selection) Position { return pos(0, 4) }, false)
	cs.UpdateDesiredColumn()
	if cs.Primary().DesiredColumn != 4 {
		t.Fatalf("DesiredColumn = %d, want 4", cs.Primary().DesiredColumn)
	}
}
