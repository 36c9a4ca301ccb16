package vimaction

import (
	"testing"

	"github.com/kestrelcode/modaledit/internal/textbuffer"
)

func TestMoveWordForwardThreeWords(t *testing.T) {
	s := textbuffer.NewFromText("alpha beta gamma delta")
	r := Handle(s, Action{Verb: MoveWordForward, Count: 3})
	if r.State.CursorRow != 0 || r.State.CursorCol != 17 {
		t.Fatalf("cursor = (%d,%d), want (0,17)", r.State.CursorRow, r.State.CursorCol)
	}
}

func TestChangeWordForwardActsLikeChangeToWordEnd(t *testing.T) {
	s := textbuffer.NewFromText("alpha beta gamma delta")
	r := Handle(s, Action{Verb: ChangeWordForward, Count: 1})
	r.State = textbuffer.ReplaceRange(r.State, r.State.CursorRow, r.State.CursorCol, r.State.CursorRow, r.State.CursorCol, "x")
	if got := r.State.Text(); got != "x beta gamma delta" {
		t.Fatalf("Text() = %q, want %q", got, "x beta gamma delta")
	}
	if !r.EnterInsert {
		t.Fatal("EnterInsert = false, want true")
	}
}

func TestDeleteWordForwardConsumesTrailingWhitespace(t *testing.T) {
	s := textbuffer.NewFromText("alpha beta")
	r := Handle(s, Action{Verb: DeleteWordForward, Count: 1})
	if got := r.State.Text(); got != "beta" {
		t.Fatalf("Text() = %q, want %q", got, "beta")
	}
}

func TestDeleteCharReportsYankedText(t *testing.T) {
	s := textbuffer.NewFromText("abc")
	r := Handle(s, Action{Verb: DeleteChar, Count: 1})
	if got := r.State.Text(); got != "bc" {
		t.Fatalf("Text() = %q, want %q", got, "bc")
	}
	if r.Yanked != "a" {
		t.Fatalf("Yanked = %q, want %q", r.Yanked, "a")
	}
	if !r.Changed {
		t.Fatal("Changed = false, want true")
	}
}

func TestDeleteLineKeepsNonEmptyInvariant(t *testing.T) {
	s := textbuffer.NewFromText("only")
	r := Handle(s, Action{Verb: DeleteLine, Count: 1})
	if len(r.State.Lines) != 1 || r.State.Lines[0] != "" {
		t.Fatalf("Lines = %v, want single empty line", r.State.Lines)
	}
}

func TestDeleteLineLeavesCursorAtColumnZero(t *testing.T) {
	s := textbuffer.NewFromText("foo\n  bar")
	r := Handle(s, Action{Verb: DeleteLine, Count: 1})
	if r.State.CursorCol != 0 {
		t.Fatalf("CursorCol = %d, want 0 (not the remaining line's indent)", r.State.CursorCol)
	}
	if got := r.State.Text(); got != "  bar" {
		t.Fatalf("Text() = %q, want %q", got, "  bar")
	}
}

func TestYankLineIsLinewise(t *testing.T) {
	s := textbuffer.NewFromText("one\ntwo")
	r := Handle(s, Action{Verb: YankLine, Count: 1})
	if !textbuffer.JoinedClipboardIsLinewise(r.State.Clipboard) {
		t.Fatalf("Clipboard = %q, want trailing newline", r.State.Clipboard)
	}
}

func TestPasteLinewiseInsertsBelow(t *testing.T) {
	s := textbuffer.NewFromText("one\ntwo")
	s.Clipboard = "yanked\n"
	r := Handle(s, Action{Verb: Paste})
	if got := r.State.Text(); got != "one\nyanked\ntwo" {
		t.Fatalf("Text() = %q, want %q", got, "one\nyanked\ntwo")
	}
}

func TestPasteCharwiseSplicesAfterCursor(t *testing.T) {
	s := textbuffer.NewFromText("ac")
	s.Clipboard = "b"
	s.CursorCol = 0
	r := Handle(s, Action{Verb: Paste})
	if got := r.State.Text(); got != "abc" {
		t.Fatalf("Text() = %q, want %q", got, "abc")
	}
}

func TestInnerWordSelectsContiguousRun(t *testing.T) {
	s := textbuffer.NewFromText("foo.bar baz")
	s.CursorCol = 1 // inside "foo"
	r := Handle(s, Action{Verb: DeleteInnerWord})
	if got := r.State.Text(); got != ".bar baz" {
		t.Fatalf("Text() = %q, want %q", got, ".bar baz")
	}
}

func TestMatchingPairJumps(t *testing.T) {
	s := textbuffer.NewFromText("foo(bar)baz")
	r := Handle(s, Action{Verb: MoveMatchingPair})
	if r.State.CursorCol != 7 {
		t.Fatalf("CursorCol = %d, want 7", r.State.CursorCol)
	}
}

func TestSearchForwardWrapsAround(t *testing.T) {
	s := textbuffer.NewFromText("needle first\nsecond\nneedle third")
	s.CursorRow = 2
	s.CursorCol = 5
	r := Handle(s, Action{Verb: Search, Query: "needle", Direction: textbuffer.Forward})
	if !r.SearchFound || r.State.CursorRow != 0 {
		t.Fatalf("search wrap = row %d found %v, want row 0 found true", r.State.CursorRow, r.SearchFound)
	}
}

func TestToggleCaseFlipsAndAdvances(t *testing.T) {
	s := textbuffer.NewFromText("aB")
	r := Handle(s, Action{Verb: ToggleCase})
	if got := r.State.Text(); got != "AB" {
		t.Fatalf("Text() = %q, want %q", got, "AB")
	}
	if r.State.CursorCol != 1 {
		t.Fatalf("CursorCol = %d, want 1", r.State.CursorCol)
	}
}

func TestReplaceCharKeepsCursorInPlace(t *testing.T) {
	s := textbuffer.NewFromText("abc")
	s.CursorCol = 1
	r := Handle(s, Action{Verb: ReplaceChar, Char: 'X'})
	if got := r.State.Text(); got != "aXc" {
		t.Fatalf("Text() = %q, want %q", got, "aXc")
	}
	if r.State.CursorCol != 1 {
		t.Fatalf("CursorCol = %d, want 1", r.State.CursorCol)
	}
}

func TestMotionVerbsDoNotPushUndo(t *testing.T) {
	s := textbuffer.NewFromText("hello world")
	r := Handle(s, Action{Verb: MoveWordForward, Count: 1})
	if len(r.State.UndoStack) != 0 {
		t.Fatalf("UndoStack after motion = %d entries, want 0", len(r.State.UndoStack))
	}
}
