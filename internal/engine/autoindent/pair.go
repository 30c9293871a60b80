package autoindent

import "unicode"

// pairs is the fixed auto-pair table: typing a key inserts it together
// with its value, with the cursor left between them.
var pairs = map[rune]rune{
	'{':  '}',
	'[':  ']',
	'(':  ')',
	'"':  '"',
	'\'': '\'',
	'`':  '`',
}

// IsOpener reports whether ch has an entry in the auto-pair table.
func IsOpener(ch rune) bool {
	_, ok := pairs[ch]
	return ok
}

// CloserFor returns the closer paired with opener, if any.
func CloserFor(opener rune) (rune, bool) {
	c, ok := pairs[opener]
	return c, ok
}

// IsCloser reports whether ch is any auto-pair table's closer.
func IsCloser(ch rune) bool {
	for _, c := range pairs {
		if c == ch {
			return true
		}
	}
	return false
}

// ShouldPair reports whether typing opener should insert its closer too.
// Pairing is suppressed when the character right after the cursor is
// neither whitespace, absent, nor itself a closer.
func ShouldPair(opener rune, charAfter rune, hasCharAfter bool) bool {
	if !IsOpener(opener) {
		return false
	}
	if !hasCharAfter {
		return true
	}
	return unicode.IsSpace(charAfter) || IsCloser(charAfter)
}

// ShouldSkipClosing reports whether typing ch, a closer that already sits
// immediately after the cursor, should move past it instead of inserting a
// second copy.
func ShouldSkipClosing(ch rune, charAfter rune, hasCharAfter bool) bool {
	return hasCharAfter && IsCloser(ch) && ch == charAfter
}

// ShouldDeletePair reports whether backspace between charBefore and
// charAfter should delete both, because they are a recognized pair.
func ShouldDeletePair(charBefore, charAfter rune) bool {
	closer, ok := CloserFor(charBefore)
	return ok && closer == charAfter
}
