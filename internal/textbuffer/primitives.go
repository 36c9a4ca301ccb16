package textbuffer

import "strings"

// ReplaceRange slices [startCol, endCol) out of the line range
// [startRow, endRow] (endRow's slice runs to endCol, startRow's from
// startCol) and splices text in its place. text may itself contain
// "\n", producing new lines. The cursor is placed at the end of the
// inserted text and PreferredCol is cleared, matching every vim
// mutation verb's contract (spec §4.B).
//
// This is the single workhorse every mutation-producing action composes
// with PushUndo.
func ReplaceRange(s State, startRow, startCol, endRow, endCol int, text string) State {
	if startRow < 0 {
		startRow = 0
	}
	if endRow >= len(s.Lines) {
		endRow = len(s.Lines) - 1
	}
	if endRow < startRow {
		endRow = startRow
	}

	before := RuneSlice(s.Lines[startRow], 0, startCol)
	after := RuneSlice(s.Lines[endRow], endCol, RuneLen(s.Lines[endRow]))

	inserted := splitLines(text)
	newLines := make([]string, 0, len(s.Lines)-(endRow-startRow+1)+len(inserted))
	newLines = append(newLines, s.Lines[:startRow]...)

	if len(inserted) == 1 {
		newLines = append(newLines, before+inserted[0]+after)
	} else {
		newLines = append(newLines, before+inserted[0])
		newLines = append(newLines, inserted[1:len(inserted)-1]...)
		newLines = append(newLines, inserted[len(inserted)-1]+after)
	}
	newLines = append(newLines, s.Lines[endRow+1:]...)

	if len(newLines) == 0 {
		newLines = []string{""}
	}
	s.Lines = newLines

	// Cursor lands at the end of the inserted text.
	if len(inserted) == 1 {
		s.CursorRow = startRow
		s.CursorCol = startCol + RuneLen(inserted[0])
	} else {
		s.CursorRow = startRow + len(inserted) - 1
		s.CursorCol = RuneLen(inserted[len(inserted)-1])
	}
	s.PreferredCol = nil
	return s.clampCursor()
}

// PushUndo appends the pre-mutation snapshot of s onto the undo stack,
// discarding the oldest entry once MaxUndoDepth is exceeded.
func PushUndo(s State) State {
	stack := append(s.UndoStack, s.snapshot())
	if len(stack) > MaxUndoDepth {
		stack = stack[len(stack)-MaxUndoDepth:]
	}
	s.UndoStack = stack
	return s
}

// Undo pops the most recent snapshot and installs it wholesale. If the
// stack is empty, s is returned unchanged.
func Undo(s State) State {
	if len(s.UndoStack) == 0 {
		return s
	}
	last := s.UndoStack[len(s.UndoStack)-1]
	rest := s.UndoStack[:len(s.UndoStack)-1]
	s = last.restore(s)
	s.UndoStack = rest
	return s.clampCursor()
}

// LineText returns the text of the row the cursor sits on.
func (s State) LineText() string {
	return s.Lines[s.CursorRow]
}

// Clone returns a deep-enough copy of s for tests that mutate the
// returned value's Lines slice independently.
func (s State) Clone() State {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	s.Lines = lines
	stack := make([]Snapshot, len(s.UndoStack))
	copy(stack, s.UndoStack)
	s.UndoStack = stack
	return s
}

// JoinedClipboardIsLinewise reports whether clipboard content represents
// a linewise yank/delete (spec's "linewise clipboard" — terminated by a
// trailing newline).
func JoinedClipboardIsLinewise(clipboard string) bool {
	return strings.HasSuffix(clipboard, "\n")
}
