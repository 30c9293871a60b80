package autoindent

import (
	"testing"

	"github.com/dshills/keystorm/internal/engine/bracket"
)

func TestLeadingWhitespace(t *testing.T) {
	cases := map[string]string{
		"  foo":  "  ",
		"\tfoo":  "\t",
		"foo":    "",
		"   ":    "   ",
		"":       "",
		" \tfoo": " \t",
	}
	for in, want := range cases {
		if got := LeadingWhitespace(in); got != want {
			t.Errorf("LeadingWhitespace(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIndentUnit(t *testing.T) {
	if got := IndentUnit(Options{TabSize: 2, InsertSpaces: true}); got != "  " {
		t.Errorf("IndentUnit(spaces) = %q, want two spaces", got)
	}
	if got := IndentUnit(Options{TabSize: 4, InsertSpaces: false}); got != "\t" {
		t.Errorf("IndentUnit(tabs) = %q, want a tab", got)
	}
}

func TestNewLineIndentKeepMode(t *testing.T) {
	res := NewLineIndent("  foo", 'o', 0, ModeKeep, Options{TabSize: 2, InsertSpaces: true})
	if res.Indent != "  " || res.HasExtraLine {
		t.Errorf("NewLineIndent(keep) = %+v, want indent \"  \" and no extra line", res)
	}
}

func TestNewLineIndentFullAfterOpener(t *testing.T) {
	res := NewLineIndent("if (x) {", '{', 0, ModeFull, Options{TabSize: 2, InsertSpaces: true})
	if res.Indent != "  " || res.HasExtraLine {
		t.Errorf("NewLineIndent(full, opener) = %+v, want indent \"  \" and no extra line", res)
	}
}

func TestNewLineIndentFullBetweenBracePair(t *testing.T) {
	// Mirrors the "if (x) {}" scenario: cursor between { and }.
	res := NewLineIndent("if (x) {", '{', '}', ModeFull, Options{TabSize: 2, InsertSpaces: true})
	if res.Indent != "  " {
		t.Errorf("Indent = %q, want \"  \"", res.Indent)
	}
	if !res.HasExtraLine || res.ExtraLine != "" {
		t.Errorf("ExtraLine = %+v, want HasExtraLine=true ExtraLine=\"\"", res)
	}
}

func TestNewLineIndentFullNoOpenerJustKeeps(t *testing.T) {
	res := NewLineIndent("  foo;", ';', 0, ModeFull, Options{TabSize: 2, InsertSpaces: true})
	if res.Indent != "  " || res.HasExtraLine {
		t.Errorf("NewLineIndent(full, no opener) = %+v, want indent \"  \" and no extra line", res)
	}
}

func TestShouldDedentOnChar(t *testing.T) {
	if !ShouldDedentOnChar("    ", '}') {
		t.Errorf("expected dedent before closing brace on whitespace-only line")
	}
	if ShouldDedentOnChar("  x", '}') {
		t.Errorf("did not expect dedent when line has non-whitespace content")
	}
	if ShouldDedentOnChar("    ", 'x') {
		t.Errorf("did not expect dedent for a non-closer character")
	}
	if !ShouldDedentOnChar("", ')') {
		t.Errorf("expected dedent on an empty line too")
	}
}

type testLines []string

func (l testLines) LineCount() int    { return len(l) }
func (l testLines) Line(i int) string { return l[i] }

func TestMatchingBracketIndent(t *testing.T) {
	lines := testLines{"function f() {", "  return 1;", ""}
	indent, ok := MatchingBracketIndent(lines, 2, '}')
	if !ok {
		t.Fatalf("expected a matching bracket")
	}
	if indent != "" {
		t.Errorf("indent = %q, want empty (opener's line has no leading whitespace)", indent)
	}
}

func TestMatchingBracketIndentNested(t *testing.T) {
	lines := testLines{"  if (x) {", "    doStuff();", "  "}
	indent, ok := MatchingBracketIndent(lines, 2, '}')
	if !ok {
		t.Fatalf("expected a matching bracket")
	}
	if indent != "  " {
		t.Errorf("indent = %q, want two spaces", indent)
	}
}

func TestMatchingBracketIndentNoEnclosingBracket(t *testing.T) {
	lines := testLines{"foo();", ""}
	_, ok := MatchingBracketIndent(lines, 1, '}')
	if ok {
		t.Fatalf("expected no match: no unmatched opener before this line")
	}
}

func TestMatchingBracketIndentLineOutOfRange(t *testing.T) {
	lines := testLines{"foo"}
	if _, ok := MatchingBracketIndent(lines, 5, '}'); ok {
		t.Fatalf("expected no match for an out-of-range line")
	}
}

var _ bracket.LineSource = testLines{}
