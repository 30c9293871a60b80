package piecetable

import "sort"

// ensureLineIndexLocked rebuilds the line index if it was invalidated by a
// mutation. Callers must hold t.mu (read or write).
func (t *PieceTable) ensureLineIndexLocked() {
	if t.lineIndex != nil {
		return
	}
	idx := []int64{0}
	var offset int64
	for _, p := range t.pieces {
		text := t.pieceText(p)
		for i := 0; i < len(text); i++ {
			offset++
			if text[i] == '\n' {
				idx = append(idx, offset)
			}
		}
	}
	t.lineIndex = idx
}

// lineByteRangeLocked returns the [start, end) byte offsets of line i,
// excluding its terminating newline. Callers must hold t.mu and have
// already called ensureLineIndexLocked.
func (t *PieceTable) lineByteRangeLocked(i int) (start, end int64, ok bool) {
	if i < 0 || i >= len(t.lineIndex) {
		return 0, 0, false
	}
	start = t.lineIndex[i]
	if i+1 < len(t.lineIndex) {
		end = t.lineIndex[i+1] - 1
	} else {
		end = t.length
	}
	return start, end, true
}

// lineForOffsetLocked returns the line index containing byte offset o via
// binary search on the line index. Callers must hold t.mu and have already
// called ensureLineIndexLocked.
func (t *PieceTable) lineForOffsetLocked(o int64) int {
	n := len(t.lineIndex)
	i := sort.Search(n, func(i int) bool { return t.lineIndex[i] > o })
	return i - 1
}

func (t *PieceTable) positionToOffsetLocked(p Position) int64 {
	line := p.Line
	if line < 0 {
		line = 0
	}
	if line >= len(t.lineIndex) {
		return t.length
	}
	start, end, ok := t.lineByteRangeLocked(line)
	if !ok {
		return t.length
	}
	lineText := t.rangeByOffsetLocked(start, end)
	col := p.Column
	if col < 0 {
		col = 0
	}
	if maxCol := utf16Len(lineText); col > maxCol {
		col = maxCol
	}
	return start + int64(byteOffsetFromUTF16Column(lineText, col))
}

func (t *PieceTable) offsetToPositionLocked(o int64) Position {
	o = clamp64(o, 0, t.length)
	line := t.lineForOffsetLocked(o)
	if line < 0 {
		line = 0
	}
	lineStart := t.lineIndex[line]
	column := utf16Len(t.rangeByOffsetLocked(lineStart, o))
	return Position{Line: line, Column: column}
}
