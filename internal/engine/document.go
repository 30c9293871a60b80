package engine

import (
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dshills/keystorm/internal/engine/autoindent"
	"github.com/dshills/keystorm/internal/engine/cursor"
	"github.com/dshills/keystorm/internal/engine/history"
	"github.com/dshills/keystorm/internal/engine/piecetable"
)

// Re-export commonly used types for convenience.
type (
	// Position is a (line, column) pair, column in UTF-16 code units.
	Position = piecetable.Position

	// Range is an ordered (start, end) pair of positions.
	Range = piecetable.Range

	// Selection is a cursor's anchor/head/desired-column state.
	Selection = cursor.Selection

	// RevisionID is an opaque, monotonically increasing version token.
	RevisionID = piecetable.RevisionID

	// Operation is one recorded insert or delete.
	Operation = history.Operation

	// OperationList is a sequence of Operations, as recorded in one Action.
	OperationList = history.OperationList
)

// ChangeEvent is delivered to change listeners after a mutating command.
type ChangeEvent struct {
	Operations OperationList
	Version    uint64
}

// ChangeListener observes mutating commands.
type ChangeListener func(ChangeEvent)

// CursorListener observes cursor-set changes, mutating or not.
type CursorListener func([]Selection)

// Document is the top-level command executor: one piece table, one cursor
// set, one undo stack, plus document-level state (options, dirty flag,
// file-path/language hints).
type Document struct {
	mu sync.RWMutex

	table   *piecetable.PieceTable
	cursors *cursor.CursorSet
	undo    *history.UndoStack

	tabSize        int
	insertSpaces   bool
	autoIndent     AutoIndentMode
	maxUndoEntries int
	readOnly       bool

	filePath string
	language string

	savedContent string
	dirty        bool

	changeListeners []ChangeListener
	cursorListeners []CursorListener

	// initContent is consumed once by NewDocument; it has no meaning after
	// construction.
	initContent string
}

// NewDocument creates a Document from the given options.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		tabSize:        DefaultTabSize,
		insertSpaces:   DefaultInsertSpaces,
		autoIndent:     DefaultAutoIndentMode,
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.table = piecetable.NewFromString(d.initContent)
	d.cursors = cursor.NewCursorSetAt(Position{})
	d.undo = history.NewUndoStack(d.maxUndoEntries)
	d.savedContent = d.initContent
	return d
}

// ----------------------------------------------------------------------------
// Query API
// ----------------------------------------------------------------------------

// Content returns the full document text.
func (d *Document) Content() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.Content()
}

// Length returns the total content length in bytes.
func (d *Document) Length() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.Length()
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.LineCount()
}

// Line returns the content of line i, excluding its newline.
func (d *Document) Line(i int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.Line(i)
}

// LineLength returns the UTF-16 code-unit length of line i.
func (d *Document) LineLength(i int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.LineLength(i)
}

// Version returns the monotonic mutation counter.
func (d *Document) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.Version()
}

// Revision returns the current version as an opaque comparable token.
func (d *Document) Revision() RevisionID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.Revision()
}

// PositionToOffset converts a position to a byte offset.
func (d *Document) PositionToOffset(p Position) int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.PositionToOffset(p)
}

// OffsetToPosition converts a byte offset to a position.
func (d *Document) OffsetToPosition(o int64) Position {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.OffsetToPosition(o)
}

// RangeByPosition returns the content between two positions.
func (d *Document) RangeByPosition(p, q Position) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.RangeByPosition(p, q)
}

// IsDirty reports whether the content differs from the last save point.
func (d *Document) IsDirty() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dirty
}

// MarkSaved records the current content as the save point and clears dirty.
func (d *Document) MarkSaved() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.savedContent = d.table.Content()
	d.dirty = false
}

// FilePath returns the document's recorded file-path hint.
func (d *Document) FilePath() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.filePath
}

// SetFilePath updates the document's recorded file-path hint.
func (d *Document) SetFilePath(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filePath = path
}

// Language returns the document's recorded language tag.
func (d *Document) Language() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.language
}

// IsReadOnly reports whether editing commands are rejected.
func (d *Document) IsReadOnly() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.readOnly
}

// ----------------------------------------------------------------------------
// Cursor API
// ----------------------------------------------------------------------------

// Cursors returns a clone of the cursor set, safe for the caller to inspect
// or mutate without affecting the document.
func (d *Document) Cursors() *cursor.CursorSet {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cursors.Clone()
}

// SetCursors replaces the document's cursor set.
func (d *Document) SetCursors(cs *cursor.CursorSet) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursors = cs.Clone()
	d.emitCursorChangeLocked()
}

// PrimaryCursor returns the primary cursor's head position.
func (d *Document) PrimaryCursor() Position {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cursors.PrimaryCursor()
}

// SelectedText returns the primary selection's text, or "" if empty.
func (d *Document) SelectedText() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sel := d.cursors.Primary()
	if sel.IsEmpty() {
		return ""
	}
	return d.table.RangeByPosition(sel.Start(), sel.End())
}

// SelectedRanges returns the ranges of every non-empty selection.
func (d *Document) SelectedRanges() []Range {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cursors.SelectedRanges()
}

// ----------------------------------------------------------------------------
// Events
// ----------------------------------------------------------------------------

// OnChange registers fn to be called once after every successful mutating
// command. It returns a function that unregisters fn.
func (d *Document) OnChange(fn ChangeListener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.changeListeners = append(d.changeListeners, fn)
	idx := len(d.changeListeners) - 1
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if idx < len(d.changeListeners) {
			d.changeListeners[idx] = nil
		}
	}
}

// OnCursorChange registers fn to be called whenever the cursor set changes,
// mutating or not.
func (d *Document) OnCursorChange(fn CursorListener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursorListeners = append(d.cursorListeners, fn)
	idx := len(d.cursorListeners) - 1
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if idx < len(d.cursorListeners) {
			d.cursorListeners[idx] = nil
		}
	}
}

func (d *Document) emitChangeLocked(ops OperationList, version uint64) {
	ev := ChangeEvent{Operations: ops, Version: version}
	for _, fn := range d.changeListeners {
		if fn != nil {
			fn(ev)
		}
	}
}

func (d *Document) emitCursorChangeLocked() {
	snapshot := d.cursors.Snapshot()
	for _, fn := range d.cursorListeners {
		if fn != nil {
			fn(snapshot)
		}
	}
}

// ----------------------------------------------------------------------------
// Position-level helpers shared by editing and motion commands
// ----------------------------------------------------------------------------

// charAt returns the UTF-16 code unit at p as a rune.
func (d *Document) charAt(p Position) (rune, bool) {
	if p.Line < 0 || p.Line >= d.table.LineCount() {
		return 0, false
	}
	units := utf16.Encode([]rune(d.table.Line(p.Line)))
	if p.Column < 0 || p.Column >= len(units) {
		return 0, false
	}
	return rune(units[p.Column]), true
}

// prevCodeUnit returns the position one column before p, crossing a line
// boundary if p is at column 0. ok is false at the document start.
func (d *Document) prevCodeUnit(p Position) (Position, bool) {
	if p.Column > 0 {
		return Position{Line: p.Line, Column: p.Column - 1}, true
	}
	if p.Line > 0 {
		pl := p.Line - 1
		return Position{Line: pl, Column: d.table.LineLength(pl)}, true
	}
	return p, false
}

// nextCodeUnit returns the position one column after p, crossing a line
// boundary at end of line. ok is false at the document end.
func (d *Document) nextCodeUnit(p Position) (Position, bool) {
	w := d.table.LineLength(p.Line)
	if p.Column < w {
		return Position{Line: p.Line, Column: p.Column + 1}, true
	}
	if p.Line+1 < d.table.LineCount() {
		return Position{Line: p.Line + 1, Column: 0}, true
	}
	return p, false
}

func (d *Document) indentOptions() autoindent.Options {
	return autoindent.Options{TabSize: d.tabSize, InsertSpaces: d.insertSpaces}
}

// applyOperation performs the literal effect of op against the piece table:
// an insert operation inserts its text, a delete operation removes
// len(op.Text) bytes starting at op.Position. This is used both to replay a
// recorded action (redo) and, given an already-inverted operation, to undo
// one.
func (d *Document) applyOperation(op Operation) {
	offset := d.table.PositionToOffset(op.Position)
	switch op.Kind {
	case history.KindInsert:
		d.table.Insert(offset, op.Text)
	case history.KindDelete:
		d.table.Delete(offset, offset+int64(len(op.Text)))
	}
}

func (d *Document) recomputeDirty() {
	d.dirty = d.table.Content() != d.savedContent
}

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

// singleRune reports whether text is exactly one rune, returning it.
func singleRune(text string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) {
		return 0, false
	}
	return r, true
}

// ----------------------------------------------------------------------------
// Editing commands
// ----------------------------------------------------------------------------

// Insert inserts text at every cursor, processed in offset-descending order
// so earlier cursors never need their positions adjusted for a later
// cursor's edit. A selection at a cursor is deleted first. Single-rune text
// consults the auto-pair table: typing an opener may insert its closer too,
// and typing a closer already at the cursor skips over it instead of
// duplicating it.
func (d *Document) Insert(text string) error {
	if text == "" {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readOnly {
		return ErrReadOnly
	}

	cursorsBefore := d.cursors.Snapshot()
	all := d.cursors.All()
	newSelections := make([]Selection, len(all))
	var ops OperationList

	pairRune, isSingleRune := singleRune(text)

	for i := len(all) - 1; i >= 0; i-- {
		sel := all[i]
		if !sel.IsEmpty() {
			start, end := sel.Start(), sel.End()
			so, eo := d.table.PositionToOffset(start), d.table.PositionToOffset(end)
			removed := d.table.Delete(so, eo)
			ops = append(ops, history.NewDeleteOperation(start, removed))
			sel = cursor.NewCursorSelection(start)
		}

		if isSingleRune {
			charAfter, hasAfter := d.charAt(sel.Head)
			if autoindent.IsCloser(pairRune) && autoindent.ShouldSkipClosing(pairRune, charAfter, hasAfter) {
				newPos, _ := d.nextCodeUnit(sel.Head)
				newSelections[i] = cursor.NewCursorSelection(newPos)
				continue
			}
			if autoindent.ShouldPair(pairRune, charAfter, hasAfter) {
				closer, _ := autoindent.CloserFor(pairRune)
				full := string(pairRune) + string(closer)
				offset := d.table.PositionToOffset(sel.Head)
				d.table.Insert(offset, full)
				ops = append(ops, history.NewInsertOperation(sel.Head, full))
				mid := d.table.OffsetToPosition(offset + int64(len(string(pairRune))))
				newSelections[i] = cursor.NewCursorSelection(mid)
				continue
			}
		}

		offset := d.table.PositionToOffset(sel.Head)
		d.table.Insert(offset, text)
		ops = append(ops, history.NewInsertOperation(sel.Head, text))
		newHead := d.table.OffsetToPosition(offset + int64(len(text)))
		newSelections[i] = cursor.NewCursorSelection(newHead)
	}

	d.cursors.SetSelections(newSelections)
	d.cursors.UpdateDesiredColumn()
	cursorsAfter := d.cursors.Snapshot()

	d.undo.Push(history.Action{Operations: ops, CursorsBefore: cursorsBefore, CursorsAfter: cursorsAfter})
	d.dirty = true
	d.emitChangeLocked(ops, d.table.Version())
	d.emitCursorChangeLocked()
	return nil
}

// Backspace deletes one column before each cursor, or its selection if
// non-empty. A no-op at the document start. When the characters immediately
// surrounding an empty cursor form a recognized auto-pair, both are deleted
// together.
func (d *Document) Backspace() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readOnly {
		return ErrReadOnly
	}

	cursorsBefore := d.cursors.Snapshot()
	all := d.cursors.All()
	newSelections := make([]Selection, len(all))
	var ops OperationList
	changed := false

	for i := len(all) - 1; i >= 0; i-- {
		sel := all[i]
		if !sel.IsEmpty() {
			start, end := sel.Start(), sel.End()
			so, eo := d.table.PositionToOffset(start), d.table.PositionToOffset(end)
			removed := d.table.Delete(so, eo)
			ops = append(ops, history.NewDeleteOperation(start, removed))
			newSelections[i] = cursor.NewCursorSelection(start)
			changed = true
			continue
		}

		prev, ok := d.prevCodeUnit(sel.Head)
		if !ok {
			newSelections[i] = sel
			continue
		}

		deleteStart := prev
		deleteEnd := sel.Head
		charBefore, _ := d.charAt(prev)
		if charAfter, hasAfter := d.charAt(sel.Head); hasAfter && autoindent.ShouldDeletePair(charBefore, charAfter) {
			if next, ok := d.nextCodeUnit(sel.Head); ok {
				deleteEnd = next
			}
		}

		so := d.table.PositionToOffset(deleteStart)
		eo := d.table.PositionToOffset(deleteEnd)
		removed := d.table.Delete(so, eo)
		ops = append(ops, history.NewDeleteOperation(deleteStart, removed))
		newSelections[i] = cursor.NewCursorSelection(deleteStart)
		changed = true
	}

	if !changed {
		return nil
	}

	d.cursors.SetSelections(newSelections)
	d.cursors.UpdateDesiredColumn()
	cursorsAfter := d.cursors.Snapshot()

	d.undo.Push(history.Action{Operations: ops, CursorsBefore: cursorsBefore, CursorsAfter: cursorsAfter})
	d.dirty = true
	d.emitChangeLocked(ops, d.table.Version())
	d.emitCursorChangeLocked()
	return nil
}

// DeleteForward deletes one column after each cursor, or its selection if
// non-empty. A no-op at the document end.
func (d *Document) DeleteForward() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readOnly {
		return ErrReadOnly
	}

	cursorsBefore := d.cursors.Snapshot()
	all := d.cursors.All()
	newSelections := make([]Selection, len(all))
	var ops OperationList
	changed := false

	for i := len(all) - 1; i >= 0; i-- {
		sel := all[i]
		if !sel.IsEmpty() {
			start, end := sel.Start(), sel.End()
			so, eo := d.table.PositionToOffset(start), d.table.PositionToOffset(end)
			removed := d.table.Delete(so, eo)
			ops = append(ops, history.NewDeleteOperation(start, removed))
			newSelections[i] = cursor.NewCursorSelection(start)
			changed = true
			continue
		}

		next, ok := d.nextCodeUnit(sel.Head)
		if !ok {
			newSelections[i] = sel
			continue
		}

		so := d.table.PositionToOffset(sel.Head)
		eo := d.table.PositionToOffset(next)
		removed := d.table.Delete(so, eo)
		ops = append(ops, history.NewDeleteOperation(sel.Head, removed))
		newSelections[i] = cursor.NewCursorSelection(sel.Head)
		changed = true
	}

	if !changed {
		return nil
	}

	d.cursors.SetSelections(newSelections)
	d.cursors.UpdateDesiredColumn()
	cursorsAfter := d.cursors.Snapshot()

	d.undo.Push(history.Action{Operations: ops, CursorsBefore: cursorsBefore, CursorsAfter: cursorsAfter})
	d.dirty = true
	d.emitChangeLocked(ops, d.table.Version())
	d.emitCursorChangeLocked()
	return nil
}

// Newline inserts '\n' plus computed indentation at every cursor. In
// AutoIndentFull mode, a cursor sitting between an opener and its matching
// closer gets a third, blank indented line inserted between them, and lands
// on that middle line.
func (d *Document) Newline() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readOnly {
		return ErrReadOnly
	}

	cursorsBefore := d.cursors.Snapshot()
	all := d.cursors.All()
	newSelections := make([]Selection, len(all))
	var ops OperationList

	for i := len(all) - 1; i >= 0; i-- {
		sel := all[i]
		if !sel.IsEmpty() {
			start, end := sel.Start(), sel.End()
			so, eo := d.table.PositionToOffset(start), d.table.PositionToOffset(end)
			removed := d.table.Delete(so, eo)
			ops = append(ops, history.NewDeleteOperation(start, removed))
			sel = cursor.NewCursorSelection(start)
		}

		head := sel.Head
		var fullText string
		var landingColumn int

		if d.autoIndent == AutoIndentNone {
			fullText = "\n"
			landingColumn = 0
		} else {
			contentBeforeCursor := d.table.RangeByPosition(Position{Line: head.Line}, head)
			var charBefore rune
			if prev, ok := d.prevCodeUnit(head); ok {
				charBefore, _ = d.charAt(prev)
			}
			charAfter, _ := d.charAt(head)
			mode := autoindent.ModeKeep
			if d.autoIndent == AutoIndentFull {
				mode = autoindent.ModeFull
			}
			result := autoindent.NewLineIndent(contentBeforeCursor, charBefore, charAfter, mode, d.indentOptions())
			if result.HasExtraLine {
				fullText = "\n" + result.Indent + "\n" + result.ExtraLine
			} else {
				fullText = "\n" + result.Indent
			}
			landingColumn = utf16Len(result.Indent)
		}

		offset := d.table.PositionToOffset(head)
		d.table.Insert(offset, fullText)
		ops = append(ops, history.NewInsertOperation(head, fullText))
		newSelections[i] = cursor.NewCursorSelection(Position{Line: head.Line + 1, Column: landingColumn})
	}

	d.cursors.SetSelections(newSelections)
	d.cursors.UpdateDesiredColumn()
	cursorsAfter := d.cursors.Snapshot()

	d.undo.Push(history.Action{Operations: ops, CursorsBefore: cursorsBefore, CursorsAfter: cursorsAfter})
	d.dirty = true
	d.emitChangeLocked(ops, d.table.Version())
	d.emitCursorChangeLocked()
	return nil
}

// InsertWithAutoDedent types ch, first checking whether the line before an
// empty cursor is entirely whitespace and ch is a closing bracket: if so,
// the current line's leading whitespace is replaced with the indentation of
// the line holding the matching opener before ch is inserted. Otherwise it
// behaves exactly like Insert(ch).
func (d *Document) InsertWithAutoDedent(ch string) error {
	r, ok := singleRune(ch)
	if !ok {
		return d.Insert(ch)
	}

	d.mu.Lock()
	if d.readOnly {
		d.mu.Unlock()
		return ErrReadOnly
	}

	// Auto-dedent only ever applies to a single empty primary cursor typing
	// a closer on an otherwise-blank line; any other shape falls back to a
	// plain insert.
	all := d.cursors.All()
	if d.autoIndent != AutoIndentFull || len(all) != 1 || !all[0].IsEmpty() || !autoindent.IsCloser(r) {
		d.mu.Unlock()
		return d.Insert(ch)
	}

	sel := all[0]
	lineBeforeCursor := d.table.RangeByPosition(Position{Line: sel.Head.Line}, sel.Head)
	if !autoindent.ShouldDedentOnChar(lineBeforeCursor, r) {
		d.mu.Unlock()
		return d.Insert(ch)
	}

	indent, found := autoindent.MatchingBracketIndent(d.table, sel.Head.Line, r)
	if !found {
		d.mu.Unlock()
		return d.Insert(ch)
	}

	cursorsBefore := d.cursors.Snapshot()

	lineStart := Position{Line: sel.Head.Line, Column: 0}
	so := d.table.PositionToOffset(lineStart)
	eo := d.table.PositionToOffset(sel.Head)
	removed := d.table.Delete(so, eo)

	replacement := indent + ch
	d.table.Insert(so, replacement)

	ops := OperationList{
		history.NewDeleteOperation(lineStart, removed),
		history.NewInsertOperation(lineStart, replacement),
	}

	newHead := Position{Line: sel.Head.Line, Column: utf16Len(replacement)}
	d.cursors.SetSelections([]Selection{cursor.NewCursorSelection(newHead)})
	d.cursors.UpdateDesiredColumn()
	cursorsAfter := d.cursors.Snapshot()

	d.undo.Push(history.Action{Operations: ops, CursorsBefore: cursorsBefore, CursorsAfter: cursorsAfter})
	d.dirty = true
	d.emitChangeLocked(ops, d.table.Version())
	d.emitCursorChangeLocked()
	d.mu.Unlock()
	return nil
}

// Outdent removes up to one indent unit of leading whitespace from every
// cursor's line: one tab, or up to tabSize leading spaces.
func (d *Document) Outdent() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readOnly {
		return ErrReadOnly
	}

	cursorsBefore := d.cursors.Snapshot()
	all := d.cursors.All()

	lineSet := map[int]bool{}
	for _, sel := range all {
		lineSet[sel.Start().Line] = true
		lineSet[sel.End().Line] = true
	}
	lines := make([]int, 0, len(lineSet))
	for l := range lineSet {
		lines = append(lines, l)
	}
	sortIntsDescending(lines)

	var ops OperationList
	changed := false
	for _, line := range lines {
		text := d.table.Line(line)
		removeWidth := outdentWidth(text, d.tabSize)
		if removeWidth == 0 {
			continue
		}
		start := Position{Line: line, Column: 0}
		end := Position{Line: line, Column: removeWidth}
		so := d.table.PositionToOffset(start)
		eo := d.table.PositionToOffset(end)
		removed := d.table.Delete(so, eo)
		ops = append(ops, history.NewDeleteOperation(start, removed))
		changed = true
	}

	if !changed {
		return nil
	}

	d.cursors.Clamp(d.table.LineCount(), d.table.LineLength)
	cursorsAfter := d.cursors.Snapshot()

	d.undo.Push(history.Action{Operations: ops, CursorsBefore: cursorsBefore, CursorsAfter: cursorsAfter})
	d.dirty = true
	d.emitChangeLocked(ops, d.table.Version())
	d.emitCursorChangeLocked()
	return nil
}

// outdentWidth returns the column width of whitespace to remove from the
// start of line: one tab, or up to tabSize spaces, whichever the line's
// leading whitespace starts with.
func outdentWidth(line string, tabSize int) int {
	units := []rune(line)
	if len(units) == 0 {
		return 0
	}
	if units[0] == '\t' {
		return 1
	}
	n := 0
	for n < len(units) && n < tabSize && units[n] == ' ' {
		n++
	}
	return n
}

func sortIntsDescending(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] < xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// ----------------------------------------------------------------------------
// Undo/redo
// ----------------------------------------------------------------------------

// Undo inverts the most recently pushed action and restores the cursor set
// to its pre-action snapshot. A no-op when there is nothing to undo.
func (d *Document) Undo() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readOnly {
		return ErrReadOnly
	}

	action, ok := d.undo.Undo()
	if !ok {
		return nil
	}

	inverted := action.Operations.Invert()
	for _, op := range inverted {
		d.applyOperation(op)
	}
	d.cursors.Restore(action.CursorsBefore)
	d.recomputeDirty()
	d.emitChangeLocked(inverted, d.table.Version())
	d.emitCursorChangeLocked()
	return nil
}

// Redo reapplies the most recently undone action and restores the cursor
// set to its post-action snapshot. A no-op when there is nothing to redo.
func (d *Document) Redo() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readOnly {
		return ErrReadOnly
	}

	action, ok := d.undo.Redo()
	if !ok {
		return nil
	}

	for _, op := range action.Operations {
		d.applyOperation(op)
	}
	d.cursors.Restore(action.CursorsAfter)
	d.recomputeDirty()
	d.emitChangeLocked(action.Operations, d.table.Version())
	d.emitCursorChangeLocked()
	return nil
}

// CanUndo reports whether Undo would do anything.
func (d *Document) CanUndo() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.undo.CanUndo()
}

// CanRedo reports whether Redo would do anything.
func (d *Document) CanRedo() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.undo.CanRedo()
}

// BeginGroup opens an undo group so several Document commands fold into one
// undo action. Call EndGroup to close it.
func (d *Document) BeginGroup() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.undo.BeginGroup(d.cursors.Snapshot())
}

// EndGroup closes a group opened by BeginGroup.
func (d *Document) EndGroup() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.undo.EndGroup(d.cursors.Snapshot())
}

// CancelGroup discards a group opened by BeginGroup without recording it.
func (d *Document) CancelGroup() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.undo.CancelGroup()
}
