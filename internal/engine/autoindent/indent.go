package autoindent

import (
	"strings"

	"github.com/dshills/keystorm/internal/engine/bracket"
)

// Mode selects how newline indentation is computed.
type Mode int

const (
	// ModeKeep carries the current line's leading whitespace forward and
	// nothing else.
	ModeKeep Mode = iota
	// ModeFull additionally increases indent after an opener and splits
	// opener/closer pairs onto their own lines.
	ModeFull
)

// Options controls indent-unit sizing.
type Options struct {
	TabSize      int
	InsertSpaces bool
}

// IndentUnit returns the string inserted for one level of indentation.
func IndentUnit(opts Options) string {
	if opts.InsertSpaces {
		return strings.Repeat(" ", opts.TabSize)
	}
	return "\t"
}

// LeadingWhitespace returns the longest run of spaces and tabs at the start
// of line.
func LeadingWhitespace(line string) string {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return line[:i]
		}
	}
	return line
}

// NewLineResult is what newline() should insert: Indent on the new line,
// and, when HasExtraLine is true, ExtraLine as the indentation of a third
// line onto which the closer after the cursor is pushed, so the cursor can
// land on a blank indented line between opener and closer.
type NewLineResult struct {
	Indent       string
	ExtraLine    string
	HasExtraLine bool
}

// NewLineIndent computes the indentation for the line created by pressing
// enter with the cursor between charBefore and charAfter, contentBeforeCursor
// being the current line's text up to the cursor.
func NewLineIndent(contentBeforeCursor string, charBefore, charAfter rune, mode Mode, opts Options) NewLineResult {
	base := LeadingWhitespace(contentBeforeCursor)
	if mode != ModeFull {
		return NewLineResult{Indent: base}
	}

	indent := base
	if IsOpener(charBefore) {
		indent = base + IndentUnit(opts)
	}

	if closer, ok := CloserFor(charBefore); ok && closer == charAfter {
		return NewLineResult{Indent: indent, ExtraLine: base, HasExtraLine: true}
	}
	return NewLineResult{Indent: indent}
}

// ShouldDedentOnChar reports whether typing ch, a closer, on a line that is
// entirely whitespace so far is a dedent trigger. The new indentation is
// chosen by the caller (Document uses MatchingBracketIndent).
func ShouldDedentOnChar(lineBeforeCursor string, ch rune) bool {
	return IsCloser(ch) && strings.TrimSpace(lineBeforeCursor) == ""
}

var scopeOpeners = map[rune]rune{'(': ')', '[': ']', '{': '}'}

func scopeOpenerFor(closer rune) (rune, bool) {
	for o, c := range scopeOpeners {
		if c == closer {
			return o, true
		}
	}
	return 0, false
}

// MatchingBracketIndent scans backward from the line above currentLine for
// the nearest opener that closeChar would close, tracking one depth counter
// per bracket type so already-balanced pairs are skipped. closeChar hasn't
// been typed yet, so this does not require (and doesn't look for) a closer
// already present in the text, unlike a full matching-bracket lookup.
func MatchingBracketIndent(lines bracket.LineSource, currentLine int, closeChar rune) (string, bool) {
	if currentLine <= 0 || currentLine > lines.LineCount() {
		return "", false
	}
	depth := map[rune]int{'(': 0, '[': 0, '{': 0}
	for line := currentLine - 1; line >= 0; line-- {
		text := []rune(lines.Line(line))
		for i := len(text) - 1; i >= 0; i-- {
			ch := text[i]
			if opener, isClose := scopeOpenerFor(ch); isClose {
				depth[opener]++
				continue
			}
			if _, isOpen := scopeOpeners[ch]; isOpen {
				if depth[ch] > 0 {
					depth[ch]--
					continue
				}
				if scopeOpeners[ch] != closeChar {
					continue
				}
				return LeadingWhitespace(lines.Line(line)), true
			}
		}
	}
	return "", false
}
