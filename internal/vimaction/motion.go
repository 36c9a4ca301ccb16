// Package vimaction is the pure reducer: (textbuffer.State, Action) ->
// Result. Motion verbs never push undo and never touch Lines or
// Clipboard; mutation verbs push undo iff they would actually change
// the buffer.
package vimaction

import (
	"github.com/kestrelcode/modaledit/internal/textbuffer"
)

func clampCount(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// moveLeft decrements the column; on column 0 it steps to the end of
// the previous line (its last character, or 0 for an empty line).
func moveLeft(s textbuffer.State, n int) textbuffer.State {
	for i := 0; i < n; i++ {
		if s.CursorCol > 0 {
			s.CursorCol--
			continue
		}
		if s.CursorRow == 0 {
			break
		}
		s.CursorRow--
		llen := textbuffer.RuneLen(s.Lines[s.CursorRow])
		if llen == 0 {
			s.CursorCol = 0
		} else {
			s.CursorCol = llen - 1
		}
	}
	s.PreferredCol = nil
	return s
}

// moveRight increments the column; at the last character it steps to
// the next line's column 0. Combining marks are skipped so the cursor
// never rests on one.
func moveRight(s textbuffer.State, n int) textbuffer.State {
	for i := 0; i < n; i++ {
		line := []rune(s.Lines[s.CursorRow])
		llen := len(line)
		if llen == 0 {
			if s.CursorRow < len(s.Lines)-1 {
				s.CursorRow++
				s.CursorCol = 0
			}
			continue
		}
		if s.CursorCol >= llen-1 {
			if s.CursorRow < len(s.Lines)-1 {
				s.CursorRow++
				s.CursorCol = 0
			}
			// else: already at buffer end, stay put.
		} else {
			s.CursorCol++
		}
		s = skipCombiningForward(s)
	}
	s.PreferredCol = nil
	return s
}

func skipCombiningForward(s textbuffer.State) textbuffer.State {
	for {
		line := []rune(s.Lines[s.CursorRow])
		if s.CursorCol >= len(line) || !textbuffer.IsCombiningMark(line[s.CursorCol]) {
			return s
		}
		if s.CursorCol < len(line)-1 {
			s.CursorCol++
			continue
		}
		if s.CursorRow < len(s.Lines)-1 {
			s.CursorRow++
			s.CursorCol = 0
			continue
		}
		return s
	}
}

func moveVertical(s textbuffer.State, rows int) textbuffer.State {
	preferred := s.CursorCol
	if s.PreferredCol != nil {
		preferred = *s.PreferredCol
	}
	newRow := s.CursorRow + rows
	if newRow < 0 {
		newRow = 0
	}
	if newRow >= len(s.Lines) {
		newRow = len(s.Lines) - 1
	}
	maxCol := textbuffer.RuneLen(s.Lines[newRow]) - 1
	if maxCol < 0 {
		maxCol = 0
	}
	targetCol := preferred
	if targetCol > maxCol {
		targetCol = maxCol
	}
	s.CursorRow = newRow
	s.CursorCol = targetCol
	p := preferred
	s.PreferredCol = &p
	return s
}

func moveUp(s textbuffer.State, n int) textbuffer.State    { return moveVertical(s, -n) }
func moveDown(s textbuffer.State, n int) textbuffer.State  { return moveVertical(s, n) }

// ─── word motion primitives ─────────────────────────────────────────────────

func classAtPos(lines []string, row, col int) textbuffer.CharClass {
	line := []rune(lines[row])
	if col >= len(line) {
		return textbuffer.ClassWhitespace
	}
	return textbuffer.Classify(line[col])
}

func stepFwd(lines []string, row, col int) (int, int, bool) {
	llen := textbuffer.RuneLen(lines[row])
	if col < llen {
		return row, col + 1, true
	}
	if row < len(lines)-1 {
		return row + 1, 0, true
	}
	return row, col, false
}

func stepBack(lines []string, row, col int) (int, int, bool) {
	if col > 0 {
		return row, col - 1, true
	}
	if row > 0 {
		return row - 1, textbuffer.RuneLen(lines[row-1]), true
	}
	return row, col, false
}

func wordForwardOnce(lines []string, row, col int) (int, int) {
	if classAtPos(lines, row, col) != textbuffer.ClassWhitespace {
		cls := classAtPos(lines, row, col)
		for {
			nrow, ncol, ok := stepFwd(lines, row, col)
			if !ok {
				return row, col
			}
			if classAtPos(lines, nrow, ncol) != cls {
				row, col = nrow, ncol
				break
			}
			row, col = nrow, ncol
		}
	}
	for classAtPos(lines, row, col) == textbuffer.ClassWhitespace {
		nrow, ncol, ok := stepFwd(lines, row, col)
		if !ok {
			return row, col
		}
		row, col = nrow, ncol
	}
	return row, col
}

func wordBackwardOnce(lines []string, row, col int) (int, int) {
	nrow, ncol, ok := stepBack(lines, row, col)
	if !ok {
		return row, col
	}
	row, col = nrow, ncol
	for classAtPos(lines, row, col) == textbuffer.ClassWhitespace {
		nrow, ncol, ok := stepBack(lines, row, col)
		if !ok {
			return row, col
		}
		row, col = nrow, ncol
	}
	cls := classAtPos(lines, row, col)
	for {
		nrow, ncol, ok := stepBack(lines, row, col)
		if !ok {
			break
		}
		if classAtPos(lines, nrow, ncol) != cls {
			break
		}
		row, col = nrow, ncol
	}
	return row, col
}

func wordEndOnce(lines []string, row, col int) (int, int) {
	nrow, ncol, ok := stepFwd(lines, row, col)
	if !ok {
		return row, col
	}
	row, col = nrow, ncol
	for classAtPos(lines, row, col) == textbuffer.ClassWhitespace {
		nrow, ncol, ok := stepFwd(lines, row, col)
		if !ok {
			return row, col
		}
		row, col = nrow, ncol
	}
	cls := classAtPos(lines, row, col)
	for {
		nrow, ncol, ok := stepFwd(lines, row, col)
		if !ok {
			break
		}
		if classAtPos(lines, nrow, ncol) != cls {
			break
		}
		row, col = nrow, ncol
	}
	return row, col
}

// trimTrailingWhitespace walks (row,col) backward over a run of
// whitespace, landing right after the last non-whitespace character.
// Used so cw/dw-style operators reproduce Vim's cw==ce special case
// (change stops at the end of the word; delete consumes the gap).
func trimTrailingWhitespace(lines []string, startRow, startCol, row, col int) (int, int) {
	for row != startRow || col != startCol {
		pr, pc, ok := stepBack(lines, row, col)
		if !ok {
			break
		}
		if classAtPos(lines, pr, pc) != textbuffer.ClassWhitespace {
			break
		}
		row, col = pr, pc
	}
	return row, col
}

func moveWordForward(s textbuffer.State, n int) textbuffer.State {
	row, col := s.CursorRow, s.CursorCol
	for i := 0; i < n; i++ {
		row, col = wordForwardOnce(s.Lines, row, col)
	}
	s.CursorRow, s.CursorCol = row, col
	s.PreferredCol = nil
	return s
}

func moveWordBackward(s textbuffer.State, n int) textbuffer.State {
	row, col := s.CursorRow, s.CursorCol
	for i := 0; i < n; i++ {
		row, col = wordBackwardOnce(s.Lines, row, col)
	}
	s.CursorRow, s.CursorCol = row, col
	s.PreferredCol = nil
	return s
}

func moveWordEnd(s textbuffer.State, n int) textbuffer.State {
	row, col := s.CursorRow, s.CursorCol
	for i := 0; i < n; i++ {
		row, col = wordEndOnce(s.Lines, row, col)
	}
	s.CursorRow, s.CursorCol = row, col
	s.PreferredCol = nil
	return s
}

func moveToLineStart(s textbuffer.State) textbuffer.State {
	s.CursorCol = 0
	s.PreferredCol = nil
	return s
}

func moveToLineEnd(s textbuffer.State) textbuffer.State {
	llen := textbuffer.RuneLen(s.LineText())
	if llen > 0 {
		llen--
	}
	s.CursorCol = llen
	s.PreferredCol = nil
	return s
}

func firstNonWhitespaceCol(line string) int {
	runes := []rune(line)
	for i, r := range runes {
		if !isSpace(r) {
			return i
		}
	}
	return 0
}

func isSpace(r rune) bool {
	return textbuffer.Classify(r) == textbuffer.ClassWhitespace
}

func moveToFirstNonWhitespace(s textbuffer.State) textbuffer.State {
	s.CursorCol = firstNonWhitespaceCol(s.LineText())
	s.PreferredCol = nil
	return s
}

func moveToFirstLine(s textbuffer.State) textbuffer.State {
	s.CursorRow = 0
	s.CursorCol = 0
	s.PreferredCol = nil
	return clampCursorForMotionHelper(s)
}

func moveToLastLine(s textbuffer.State) textbuffer.State {
	s.CursorRow = len(s.Lines) - 1
	s.CursorCol = 0
	s.PreferredCol = nil
	return clampCursorForMotionHelper(s)
}

// moveToLine jumps to the 1-based line N, clamped to the buffer.
func moveToLine(s textbuffer.State, n int) textbuffer.State {
	row := n - 1
	if row < 0 {
		row = 0
	}
	if row >= len(s.Lines) {
		row = len(s.Lines) - 1
	}
	s.CursorRow = row
	s.CursorCol = 0
	s.PreferredCol = nil
	return clampCursorForMotionHelper(s)
}

var openers = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}
var closers = map[rune]rune{')': '(', ']': '[', '}': '{', '>': '<'}

// moveToMatchingPair scans the current line forward from the cursor for
// a bracket; if found, scans across lines (tracking depth) for its
// partner. No match leaves the state unchanged.
func moveToMatchingPair(s textbuffer.State) textbuffer.State {
	line := []rune(s.LineText())
	pos := -1
	var ch rune
	for i := s.CursorCol; i < len(line); i++ {
		if _, ok := openers[line[i]]; ok {
			pos, ch = i, line[i]
			break
		}
		if _, ok := closers[line[i]]; ok {
			pos, ch = i, line[i]
			break
		}
	}
	if pos == -1 {
		return s
	}
	if closeCh, isOpen := openers[ch]; isOpen {
		if row, col, ok := scanForward(s.Lines, s.CursorRow, pos, ch, closeCh); ok {
			s.CursorRow, s.CursorCol = row, col
		}
	} else {
		openCh := closers[ch]
		if row, col, ok := scanBackward(s.Lines, s.CursorRow, pos, openCh, ch); ok {
			s.CursorRow, s.CursorCol = row, col
		}
	}
	s.PreferredCol = nil
	return s
}

func scanForward(lines []string, row, col int, open, close rune) (int, int, bool) {
	depth := 0
	for {
		line := []rune(lines[row])
		for ; col < len(line); col++ {
			switch line[col] {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return row, col, true
				}
			}
		}
		row++
		col = 0
		if row >= len(lines) {
			return 0, 0, false
		}
	}
}

func scanBackward(lines []string, row, col int, open, close rune) (int, int, bool) {
	depth := 0
	for {
		line := []rune(lines[row])
		for ; col >= 0; col-- {
			switch line[col] {
			case close:
				depth++
			case open:
				depth--
				if depth == 0 {
					return row, col, true
				}
			}
		}
		row--
		if row < 0 {
			return 0, 0, false
		}
		col = textbuffer.RuneLen(lines[row]) - 1
	}
}

// FindResult is the outcome of a same-line character search.
type FindResult struct {
	Col    int
	Found  bool
}

// findCharInLine scans the current line only for ch, stopping one column
// short of the target when exclusive (t/T semantics).
func findCharInLine(line string, fromCol int, ch rune, forward, exclusive bool) FindResult {
	runes := []rune(line)
	if forward {
		for i := fromCol + 1; i < len(runes); i++ {
			if runes[i] == ch {
				if exclusive {
					return FindResult{Col: i - 1, Found: true}
				}
				return FindResult{Col: i, Found: true}
			}
		}
	} else {
		for i := fromCol - 1; i >= 0; i-- {
			if runes[i] == ch {
				if exclusive {
					return FindResult{Col: i + 1, Found: true}
				}
				return FindResult{Col: i, Found: true}
			}
		}
	}
	return FindResult{Found: false}
}

// clampCursorForMotionHelper re-clamps the cursor column after a row jump
// without disturbing PreferredCol semantics the caller already set.
func clampCursorForMotionHelper(s textbuffer.State) textbuffer.State {
	maxCol := textbuffer.RuneLen(s.Lines[s.CursorRow])
	if s.CursorCol > maxCol {
		s.CursorCol = maxCol
	}
	if s.CursorCol < 0 {
		s.CursorCol = 0
	}
	return s
}
