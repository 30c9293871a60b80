package piecetable

import "testing"

func TestNewFromString(t *testing.T) {
	tbl := NewFromString("hello")
	if got := tbl.Content(); got != "hello" {
		t.Fatalf("Content() = %q, want %q", got, "hello")
	}
	if got := tbl.Length(); got != 5 {
		t.Fatalf("Length() = %d, want 5", got)
	}
	if got := tbl.Version(); got != 0 {
		t.Fatalf("Version() = %d, want 0", got)
	}
}

func TestEmptyDocumentHasOneLine(t *testing.T) {
	tbl := New()
	if got := tbl.LineCount(); got != 1 {
		t.Fatalf("LineCount() = %d, want 1", got)
	}
	if got := tbl.Line(0); got != "" {
		t.Fatalf("Line(0) = %q, want empty", got)
	}
}

func TestNoTrailingNewlineStillOneLine(t *testing.T) {
	tbl := NewFromString("abc")
	if got := tbl.LineCount(); got != 1 {
		t.Fatalf("LineCount() = %d, want 1", got)
	}
}

func TestInsertAtBoundary(t *testing.T) {
	tbl := NewFromString("ac")
	tbl.Insert(1, "b")
	if got := tbl.Content(); got != "abc" {
		t.Fatalf("Content() = %q, want %q", got, "abc")
	}
	if got := tbl.Version(); got != 1 {
		t.Fatalf("Version() = %d, want 1", got)
	}
}

func TestInsertEmptyTextIsNoop(t *testing.T) {
	tbl := NewFromString("abc")
	tbl.Insert(1, "")
	if got := tbl.Version(); got != 0 {
		t.Fatalf("Version() = %d, want 0 (no-op)", got)
	}
}

func TestInsertClampsOffset(t *testing.T) {
	tbl := NewFromString("abc")
	tbl.Insert(100, "X")
	if got := tbl.Content(); got != "abcX" {
		t.Fatalf("Content() = %q, want %q", got, "abcX")
	}
	tbl2 := NewFromString("abc")
	tbl2.Insert(-5, "X")
	if got := tbl2.Content(); got != "Xabc" {
		t.Fatalf("Content() = %q, want %q", got, "Xabc")
	}
}

func TestInsertSplitsPiece(t *testing.T) {
	tbl := NewFromString("hello world")
	tbl.Insert(5, ",")
	if got := tbl.Content(); got != "hello, world" {
		t.Fatalf("Content() = %q, want %q", got, "hello, world")
	}
}

func TestDeleteSpansOnePiece(t *testing.T) {
	tbl := NewFromString("hello")
	removed := tbl.Delete(1, 3)
	if removed != "el" {
		t.Fatalf("Delete removed = %q, want %q", removed, "el")
	}
	if got := tbl.Content(); got != "hlo" {
		t.Fatalf("Content() = %q, want %q", got, "hlo")
	}
}

func TestDeleteStraddlesMiddleOfPiece(t *testing.T) {
	tbl := NewFromString("abcdef")
	tbl.Insert(3, "XYZ") // three pieces: "abc"+"XYZ"+"def"
	// Content is now "abcXYZdef"; delete across the boundary between pieces.
	removed := tbl.Delete(2, 7) // "cXYZd"
	if removed != "cXYZd" {
		t.Fatalf("Delete removed = %q, want %q", removed, "cXYZd")
	}
	if got := tbl.Content(); got != "abef" {
		t.Fatalf("Content() = %q, want %q", got, "abef")
	}
}

func TestDeleteSpansManyPieces(t *testing.T) {
	tbl := NewFromString("")
	tbl.Insert(0, "a")
	tbl.Insert(1, "b")
	tbl.Insert(2, "c")
	tbl.Insert(3, "d")
	// content "abcd" across four pieces
	removed := tbl.Delete(1, 3)
	if removed != "bc" {
		t.Fatalf("Delete removed = %q, want %q", removed, "bc")
	}
	if got := tbl.Content(); got != "ad" {
		t.Fatalf("Content() = %q, want %q", got, "ad")
	}
}

func TestDeleteNoopWhenStartGEEnd(t *testing.T) {
	tbl := NewFromString("abc")
	removed := tbl.Delete(2, 2)
	if removed != "" {
		t.Fatalf("Delete removed = %q, want empty", removed)
	}
	if got := tbl.Version(); got != 0 {
		t.Fatalf("Version() = %d, want 0 (no-op)", got)
	}
}

func TestReplace(t *testing.T) {
	tbl := NewFromString("hello world")
	removed := tbl.Replace(0, 5, "goodbye")
	if removed != "hello" {
		t.Fatalf("Replace removed = %q, want %q", removed, "hello")
	}
	if got := tbl.Content(); got != "goodbye world" {
		t.Fatalf("Content() = %q, want %q", got, "goodbye world")
	}
}

func TestVersionStrictlyIncreases(t *testing.T) {
	tbl := NewFromString("abc")
	var last uint64
	ops := []func(){
		func() { tbl.Insert(0, "x") },
		func() { tbl.Delete(0, 1) },
		func() { tbl.Replace(0, 1, "y") },
		func() { tbl.Restore(tbl.Snapshot()) },
	}
	for i, op := range ops {
		op()
		v := tbl.Version()
		if v <= last {
			t.Fatalf("op %d: version %d did not strictly increase from %d", i, v, last)
		}
		last = v
	}
}

func TestLineCountAndContent(t *testing.T) {
	tbl := NewFromString("one\ntwo\nthree")
	if got := tbl.LineCount(); got != 3 {
		t.Fatalf("LineCount() = %d, want 3", got)
	}
	for i, want := range []string{"one", "two", "three"} {
		if got := tbl.Line(i); got != want {
			t.Errorf("Line(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestLineOutOfRangeReturnsEmpty(t *testing.T) {
	tbl := NewFromString("one\ntwo")
	if got := tbl.Line(5); got != "" {
		t.Fatalf("Line(5) = %q, want empty", got)
	}
}

func TestPositionOffsetBijection(t *testing.T) {
	tbl := NewFromString("one\ntwo\nthree")
	for o := int64(0); o <= tbl.Length(); o++ {
		p := tbl.OffsetToPosition(o)
		back := tbl.PositionToOffset(p)
		if back != o {
			t.Errorf("offset %d -> %v -> %d, want %d", o, p, back, o)
		}
	}
}

func TestPositionToOffsetClampsColumn(t *testing.T) {
	tbl := NewFromString("ab\ncd")
	// line 0 has length 2; column 10 should clamp to end of line 0.
	o := tbl.PositionToOffset(Position{Line: 0, Column: 10})
	if o != 2 {
		t.Fatalf("PositionToOffset clamped column -> %d, want 2", o)
	}
}

func TestPositionToOffsetLineBeyondLastReturnsLength(t *testing.T) {
	tbl := NewFromString("ab\ncd")
	o := tbl.PositionToOffset(Position{Line: 99, Column: 0})
	if o != tbl.Length() {
		t.Fatalf("PositionToOffset beyond last line -> %d, want %d", o, tbl.Length())
	}
}

func TestSnapshotRestore(t *testing.T) {
	tbl := NewFromString("hello")
	snap := tbl.Snapshot()
	tbl.Insert(5, " world")
	if got := tbl.Content(); got != "hello world" {
		t.Fatalf("Content() after insert = %q", got)
	}
	tbl.Restore(snap)
	if got := tbl.Content(); got != "hello" {
		t.Fatalf("Content() after restore = %q, want %q", got, "hello")
	}
	// Further edits must still work against the restored add buffer.
	tbl.Insert(5, "!")
	if got := tbl.Content(); got != "hello!" {
		t.Fatalf("Content() after post-restore insert = %q, want %q", got, "hello!")
	}
}

func TestContentRoundTripAgainstModel(t *testing.T) {
	model := []byte("start")
	tbl := NewFromString(string(model))

	insert := func(off int, s string) {
		model = append(model[:off:off], append([]byte(s), model[off:]...)...)
		tbl.Insert(int64(off), s)
	}
	del := func(s, e int) {
		model = append(model[:s:s], model[e:]...)
		tbl.Delete(int64(s), int64(e))
	}

	insert(0, "X")
	insert(len(model), "Y")
	insert(3, "mid")
	del(1, 4)
	del(len(model)-1, len(model))

	if got := tbl.Content(); got != string(model) {
		t.Fatalf("Content() = %q, want model %q", got, string(model))
	}
	if int64(len(model)) != tbl.Length() {
		t.Fatalf("Length() = %d, want %d", tbl.Length(), len(model))
	}
}

func TestLineIndexConsistency(t *testing.T) {
	tbl := NewFromString("alpha\nbeta\ngamma\n")
	tbl.Insert(5, "!") // inside line 0, invalidates index
	for i := 0; i < tbl.LineCount(); i++ {
		line := tbl.Line(i)
		for _, r := range line {
			if r == '\n' {
				t.Errorf("line %d contains newline", i)
			}
		}
		start := tbl.PositionToOffset(Position{Line: i, Column: 0})
		wantStart := tbl.OffsetToPosition(start)
		if wantStart.Line != i || wantStart.Column != 0 {
			t.Errorf("line %d start offset %d round-trips to %v, want column 0", i, start, wantStart)
		}
	}
}
