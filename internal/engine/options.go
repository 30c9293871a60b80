package engine

// Default configuration values.
const (
	DefaultTabSize        = 4
	DefaultInsertSpaces   = true
	DefaultMaxUndoEntries = 1000
	DefaultAutoIndentMode = AutoIndentFull
)

// AutoIndentMode selects how newline() and insertWithAutoDedent() behave.
type AutoIndentMode int

const (
	// AutoIndentNone never indents a new line.
	AutoIndentNone AutoIndentMode = iota
	// AutoIndentKeep carries the current line's leading whitespace forward.
	AutoIndentKeep
	// AutoIndentFull additionally opens a block after a trailing opener and
	// dedents a line before a typed closer.
	AutoIndentFull
)

// Option configures a Document during creation.
type Option func(*Document)

// WithContent sets the document's initial text.
func WithContent(content string) Option {
	return func(d *Document) {
		d.initContent = content
	}
}

// WithTabSize sets the column width of a tab for indentation arithmetic.
func WithTabSize(size int) Option {
	return func(d *Document) {
		if size > 0 {
			d.tabSize = size
		}
	}
}

// WithInsertSpaces selects whether indentation inserts spaces (true) or a
// single tab (false).
func WithInsertSpaces(insertSpaces bool) Option {
	return func(d *Document) {
		d.insertSpaces = insertSpaces
	}
}

// WithAutoIndent sets the auto-indent mode.
func WithAutoIndent(mode AutoIndentMode) Option {
	return func(d *Document) {
		d.autoIndent = mode
	}
}

// WithFilePath records a file-path hint on the document.
func WithFilePath(path string) Option {
	return func(d *Document) {
		d.filePath = path
	}
}

// WithLanguage records a language tag on the document (e.g. for a future
// syntax-highlighting consumer; the core itself never reads it).
func WithLanguage(language string) Option {
	return func(d *Document) {
		d.language = language
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(d *Document) {
		if max > 0 {
			d.maxUndoEntries = max
		}
	}
}

// WithReadOnly creates a read-only document. Editing commands return
// ErrReadOnly; query and cursor methods are unaffected.
func WithReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}
