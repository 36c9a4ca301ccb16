package textbuffer

import "testing"

func TestReplaceRangeWithinLine(t *testing.T) {
	s := NewFromText("hello world")
	s = ReplaceRange(s, 0, 6, 0, 11, "there")
	if got := s.Text(); got != "hello there" {
		t.Fatalf("Text() = %q, want %q", got, "hello there")
	}
	if s.CursorRow != 0 || s.CursorCol != 11 {
		t.Fatalf("cursor = (%d,%d), want (0,11)", s.CursorRow, s.CursorCol)
	}
	if s.PreferredCol != nil {
		t.Fatalf("PreferredCol = %v, want nil", s.PreferredCol)
	}
}

func TestReplaceRangeInsertingNewlines(t *testing.T) {
	s := NewFromText("foobar")
	s = ReplaceRange(s, 0, 3, 0, 3, "\n")
	if got := s.Text(); got != "foo\nbar" {
		t.Fatalf("Text() = %q, want %q", got, "foo\nbar")
	}
	if s.CursorRow != 1 || s.CursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want (1,0)", s.CursorRow, s.CursorCol)
	}
}

func TestReplaceRangeDeletingEverythingKeepsInvariant(t *testing.T) {
	s := NewFromText("only line")
	s = ReplaceRange(s, 0, 0, 0, RuneLen("only line"), "")
	if len(s.Lines) != 1 || s.Lines[0] != "" {
		t.Fatalf("Lines = %v, want single empty line", s.Lines)
	}
}

func TestReplaceRangeAcrossMultipleLines(t *testing.T) {
	s := NewFromText("one\ntwo\nthree")
	s = ReplaceRange(s, 0, 1, 2, 2, "X")
	if got := s.Text(); got != "oXree" {
		t.Fatalf("Text() = %q, want %q", got, "oXree")
	}
}

func TestPushUndoThenUndoRestoresExactState(t *testing.T) {
	s := NewFromText("hello")
	before := s.snapshot()
	s = PushUndo(s)
	s = ReplaceRange(s, 0, 0, 0, 5, "goodbye")
	if s.Text() == "hello" {
		t.Fatal("mutation did not change text")
	}
	s = Undo(s)
	if s.Text() != "hello" {
		t.Fatalf("Undo() text = %q, want %q", s.Text(), "hello")
	}
	if s.CursorRow != before.CursorRow || s.CursorCol != before.CursorCol {
		t.Fatalf("Undo() cursor = (%d,%d), want (%d,%d)", s.CursorRow, s.CursorCol, before.CursorRow, before.CursorCol)
	}
}

func TestUndoOnEmptyStackIsNoop(t *testing.T) {
	s := NewFromText("x")
	s2 := Undo(s)
	if s2.Text() != s.Text() {
		t.Fatalf("Undo() on empty stack changed text: %q", s2.Text())
	}
}

func TestUndoStackBounded(t *testing.T) {
	s := New()
	for i := 0; i < MaxUndoDepth+10; i++ {
		s = PushUndo(s)
	}
	if len(s.UndoStack) != MaxUndoDepth {
		t.Fatalf("UndoStack length = %d, want %d", len(s.UndoStack), MaxUndoDepth)
	}
}
