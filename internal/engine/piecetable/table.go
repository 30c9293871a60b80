package piecetable

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// RevisionID is an opaque, monotonically increasing token over the same
// counter version() exposes as a plain integer. It exists so callers that
// want a comparable cache key (see the concurrency model's change-detection
// protocol) don't reach past the API into the raw counter, mirroring
// internal/engine/buffer.RevisionID alongside the plain integer it wraps.
type RevisionID uint64

// PieceTable is a mutable text document backed by an immutable original
// string, an append-only add buffer, and an ordered piece list splicing
// spans of the two together.
type PieceTable struct {
	mu sync.RWMutex

	original string
	add      strings.Builder

	pieces  []Piece
	length  int64
	version uint64

	// lineIndex[i] is the absolute byte offset of the start of line i.
	// nil means invalidated; rebuilt lazily on the next query that needs it.
	lineIndex []int64
}

// New returns an empty table: one piece-less document with a single empty
// line.
func New() *PieceTable {
	return NewFromString("")
}

// NewFromString returns a table whose original buffer is s, referenced by a
// single initial piece (or no pieces at all if s is empty).
func NewFromString(s string) *PieceTable {
	t := &PieceTable{original: s}
	if len(s) > 0 {
		t.pieces = []Piece{{Source: SourceOriginal, Start: 0, Length: int64(len(s))}}
	}
	t.length = int64(len(s))
	return t
}

// Length returns the total content length in bytes.
func (t *PieceTable) Length() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.length
}

// Version returns the monotonic mutation counter.
func (t *PieceTable) Version() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.version
}

// Revision returns the current version wrapped as an opaque comparable
// token.
func (t *PieceTable) Revision() RevisionID {
	return RevisionID(t.Version())
}

// LineCount returns the number of lines; an empty document has one empty
// line, and a document with no trailing newline still has one final line.
func (t *PieceTable) LineCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureLineIndexLocked()
	return len(t.lineIndex)
}

// Content materializes the full document. O(n).
func (t *PieceTable) Content() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rangeByOffsetLocked(0, t.length)
}

// Line returns the content of line i excluding its terminating newline.
// Out-of-range i returns "".
func (t *PieceTable) Line(i int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureLineIndexLocked()
	s, e, ok := t.lineByteRangeLocked(i)
	if !ok {
		return ""
	}
	return t.rangeByOffsetLocked(s, e)
}

// LineLength returns the UTF-16 code-unit length of line i, excluding the
// newline. Out-of-range i returns 0.
func (t *PieceTable) LineLength(i int) int {
	return utf16Len(t.Line(i))
}

// RangeByOffset returns the content between two byte offsets, clamped to
// [0, length()].
func (t *PieceTable) RangeByOffset(s, e int64) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rangeByOffsetLocked(s, e)
}

// RangeByPosition returns the content between two positions.
func (t *PieceTable) RangeByPosition(p, q Position) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureLineIndexLocked()
	so := t.positionToOffsetLocked(p)
	eo := t.positionToOffsetLocked(q)
	return t.rangeByOffsetLocked(so, eo)
}

// PositionToOffset converts a (line, column) pair to a byte offset, clamping
// column to the line's length. A line beyond the last returns length().
func (t *PieceTable) PositionToOffset(p Position) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureLineIndexLocked()
	return t.positionToOffsetLocked(p)
}

// OffsetToPosition converts a byte offset, clamped to [0, length()], to a
// (line, column) pair.
func (t *PieceTable) OffsetToPosition(o int64) Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureLineIndexLocked()
	return t.offsetToPositionLocked(o)
}

// Insert splices text at offset, clamped to [0, length()]. A no-op for
// empty text.
func (t *PieceTable) Insert(offset int64, text string) {
	if text == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.insertLocked(offset, text)
}

// Delete removes the content in [s, e) and returns the removed text. A
// no-op (returning "") when s >= e after clamping.
func (t *PieceTable) Delete(s, e int64) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deleteLocked(s, e)
}

// Replace deletes [s, e) then inserts text at s, returning the removed
// text.
func (t *PieceTable) Replace(s, e int64, text string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	removed := t.deleteLocked(s, e)
	if text != "" {
		t.insertLocked(s, text)
	}
	return removed
}

func clamp64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (t *PieceTable) insertLocked(offset int64, text string) {
	offset = clamp64(offset, 0, t.length)

	addStart := int64(t.add.Len())
	t.add.WriteString(text)
	newPiece := Piece{Source: SourceAdd, Start: addStart, Length: int64(len(text))}

	if len(t.pieces) == 0 {
		t.pieces = []Piece{newPiece}
	} else {
		newPieces := make([]Piece, 0, len(t.pieces)+2)
		var cursor int64
		inserted := false
		for _, p := range t.pieces {
			pStart, pEnd := cursor, cursor+p.Length
			cursor = pEnd
			switch {
			case inserted:
				newPieces = append(newPieces, p)
			case offset == pStart:
				newPieces = append(newPieces, newPiece, p)
				inserted = true
			case offset > pStart && offset < pEnd:
				local := offset - pStart
				newPieces = append(newPieces,
					Piece{p.Source, p.Start, local},
					newPiece,
					Piece{p.Source, p.Start + local, p.Length - local},
				)
				inserted = true
			default:
				newPieces = append(newPieces, p)
			}
		}
		if !inserted {
			newPieces = append(newPieces, newPiece)
		}
		t.pieces = newPieces
	}

	t.length += int64(len(text))
	t.lineIndex = nil
	t.version++
}

func (t *PieceTable) deleteLocked(start, end int64) string {
	start = clamp64(start, 0, t.length)
	end = clamp64(end, 0, t.length)
	if start >= end {
		return ""
	}

	var removed strings.Builder
	newPieces := make([]Piece, 0, len(t.pieces))
	var cursor int64
	for _, p := range t.pieces {
		pStart, pEnd := cursor, cursor+p.Length
		cursor = pEnd

		switch {
		case pEnd <= start || pStart >= end:
			// Entirely outside the deletion range: kept untouched.
			newPieces = append(newPieces, p)
		case pStart >= start && pEnd <= end:
			// Entirely inside: dropped.
			removed.WriteString(t.pieceText(p))
		default:
			// Straddles one or both ends of the piece.
			text := t.pieceText(p)
			localStart := maxInt64(start, pStart) - pStart
			localEnd := minInt64(end, pEnd) - pStart
			removed.WriteString(text[localStart:localEnd])
			if localStart > 0 {
				newPieces = append(newPieces, Piece{p.Source, p.Start, localStart})
			}
			if localEnd < p.Length {
				newPieces = append(newPieces, Piece{p.Source, p.Start + localEnd, p.Length - localEnd})
			}
		}
	}

	t.pieces = newPieces
	t.length -= end - start
	t.lineIndex = nil
	t.version++
	return removed.String()
}

func (t *PieceTable) rangeByOffsetLocked(s, e int64) string {
	s = clamp64(s, 0, t.length)
	e = clamp64(e, 0, t.length)
	if s >= e {
		return ""
	}

	var b strings.Builder
	b.Grow(int(e - s))
	var cursor int64
	for _, p := range t.pieces {
		pStart, pEnd := cursor, cursor+p.Length
		cursor = pEnd
		if pEnd <= s {
			continue
		}
		if pStart >= e {
			break
		}
		localStart := maxInt64(s, pStart) - pStart
		localEnd := minInt64(e, pEnd) - pStart
		text := t.pieceText(p)
		b.WriteString(text[localStart:localEnd])
	}
	return b.String()
}

func (t *PieceTable) pieceText(p Piece) string {
	if p.Source == SourceOriginal {
		return t.original[p.Start : p.Start+p.Length]
	}
	s := t.add.String()
	return s[p.Start : p.Start+p.Length]
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// utf16Len returns the number of UTF-16 code units s would occupy.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// byteOffsetFromUTF16Column walks s and returns the byte offset of the
// given UTF-16 column, clamped to len(s) if column exceeds the line.
// Mirrors internal/engine/buffer's byteOffsetFromUTF16Column helper.
func byteOffsetFromUTF16Column(s string, column int) int {
	if column <= 0 {
		return 0
	}
	units := 0
	for i, r := range s {
		if units >= column {
			return i
		}
		if r == utf8.RuneError {
			units++
			continue
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return len(s)
}
