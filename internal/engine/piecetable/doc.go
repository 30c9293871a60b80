// Package piecetable implements the document's primary text storage: an
// append-only add buffer plus an ordered list of pieces referencing either
// the original construction string or the add buffer.
//
// Insert and delete rewrite the piece list without copying the whole
// document. A line index, built lazily from the piece list, supports
// position/offset conversion by binary search and is invalidated on every
// mutation.
//
// PieceTable is safe for concurrent read access and serializes mutations
// with an internal RWMutex, matching the locking granularity
// internal/engine/buffer.Buffer used around its rope. Position columns are
// counted in UTF-16 code units (see Position), independent of the table's
// own UTF-8 byte storage.
package piecetable
