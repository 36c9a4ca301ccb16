package vimaction

import (
	"strings"

	"github.com/kestrelcode/modaledit/internal/textbuffer"
)

// posBefore reports whether (r1,c1) sorts before (r2,c2).
func posBefore(r1, c1, r2, c2 int) bool {
	if r1 != r2 {
		return r1 < r2
	}
	return c1 < c2
}

func orderPositions(r1, c1, r2, c2 int) (int, int, int, int) {
	if posBefore(r1, c1, r2, c2) {
		return r1, c1, r2, c2
	}
	return r2, c2, r1, c1
}

// DeleteRangeExclusive deletes the half-open span between two
// arbitrary, possibly unordered positions. Used by the controller to
// compose a pending operator with a plain motion ("the region a
// matching motion would traverse", spec.md §4.C change_movement) for
// motions that have no dedicated paired verb of their own.
func DeleteRangeExclusive(s textbuffer.State, r1, c1, r2, c2 int) (textbuffer.State, string, bool) {
	sr, sc, er, ec := orderPositions(r1, c1, r2, c2)
	return replaceAndYank(s, sr, sc, er, ec, "", true)
}

// replaceAndYank splices text into [startRow,startCol)-[endRow,endCol)
// and returns the removed span as its second result; State.Clipboard is
// left unchanged.
func replaceAndYank(s textbuffer.State, startRow, startCol, endRow, endCol int, insert string, push bool) (textbuffer.State, string, bool) {
	removed := extractRange(s, startRow, startCol, endRow, endCol)
	if removed == "" && insert == "" {
		return s, "", false
	}
	if push {
		s = textbuffer.PushUndo(s)
	}
	s = textbuffer.ReplaceRange(s, startRow, startCol, endRow, endCol, insert)
	return s, removed, true
}

func extractRange(s textbuffer.State, startRow, startCol, endRow, endCol int) string {
	if startRow < 0 {
		startRow = 0
	}
	if endRow >= len(s.Lines) {
		endRow = len(s.Lines) - 1
	}
	if startRow == endRow {
		return textbuffer.RuneSlice(s.Lines[startRow], startCol, endCol)
	}
	var b strings.Builder
	b.WriteString(textbuffer.RuneSlice(s.Lines[startRow], startCol, textbuffer.RuneLen(s.Lines[startRow])))
	for r := startRow + 1; r < endRow; r++ {
		b.WriteByte('\n')
		b.WriteString(s.Lines[r])
	}
	b.WriteByte('\n')
	b.WriteString(textbuffer.RuneSlice(s.Lines[endRow], 0, endCol))
	return b.String()
}

// deleteCharForward is 'x': delete the character under the cursor.
func deleteCharForward(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	llen := textbuffer.RuneLen(s.LineText())
	end := s.CursorCol + n
	if end > llen {
		end = llen
	}
	if end <= s.CursorCol {
		return s, "", false
	}
	return replaceAndYank(s, s.CursorRow, s.CursorCol, s.CursorRow, end, "", true)
}

// deleteCharBackward is 'X': delete the character before the cursor.
func deleteCharBackward(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	start := s.CursorCol - n
	if start < 0 {
		start = 0
	}
	if start >= s.CursorCol {
		return s, "", false
	}
	return replaceAndYank(s, s.CursorRow, start, s.CursorRow, s.CursorCol, "", true)
}

// wordForwardRange computes the [start,end) range of an n-repeated w
// motion. When trim is true (the cw/ce-style Vim special case), any
// trailing whitespace swallowed by the final word-jump is trimmed off
// so the range stops at the end of the last touched word.
func wordForwardRange(s textbuffer.State, n int, trim bool) (int, int, int, int) {
	row, col := s.CursorRow, s.CursorCol
	for i := 0; i < n; i++ {
		row, col = wordForwardOnce(s.Lines, row, col)
	}
	if trim {
		row, col = trimTrailingWhitespace(s.Lines, s.CursorRow, s.CursorCol, row, col)
	}
	return s.CursorRow, s.CursorCol, row, col
}

func wordEndRange(s textbuffer.State, n int) (int, int, int, int) {
	row, col := s.CursorRow, s.CursorCol
	for i := 0; i < n; i++ {
		row, col = wordEndOnce(s.Lines, row, col)
	}
	// inclusive end -> exclusive end is one codepoint further.
	nrow, ncol, ok := stepFwd(s.Lines, row, col)
	if !ok {
		nrow, ncol = row, col+1
	}
	return s.CursorRow, s.CursorCol, nrow, ncol
}

func wordBackwardRange(s textbuffer.State, n int) (int, int, int, int) {
	row, col := s.CursorRow, s.CursorCol
	for i := 0; i < n; i++ {
		row, col = wordBackwardOnce(s.Lines, row, col)
	}
	return row, col, s.CursorRow, s.CursorCol
}

func deleteWordForward(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	sr, sc, er, ec := wordForwardRange(s, n, false)
	return replaceAndYank(s, sr, sc, er, ec, "", true)
}

func changeWordForward(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	sr, sc, er, ec := wordForwardRange(s, n, true)
	return replaceAndYank(s, sr, sc, er, ec, "", true)
}

func deleteWordEnd(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	sr, sc, er, ec := wordEndRange(s, n)
	return replaceAndYank(s, sr, sc, er, ec, "", true)
}

func changeWordEnd(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	return deleteWordEnd(s, n)
}

func deleteWordBackward(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	sr, sc, er, ec := wordBackwardRange(s, n)
	return replaceAndYank(s, sr, sc, er, ec, "", true)
}

func changeWordBackward(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	return deleteWordBackward(s, n)
}

// deleteLines removes n whole lines starting at the cursor row, keeping
// the buffer's non-empty invariant. The removed lines are returned in
// linewise form (each ending in "\n"); State.Clipboard is left unchanged.
func deleteLines(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	start := s.CursorRow
	end := start + n
	if end > len(s.Lines) {
		end = len(s.Lines)
	}
	var b strings.Builder
	for r := start; r < end; r++ {
		b.WriteString(s.Lines[r])
		b.WriteByte('\n')
	}
	removed := b.String()
	s = textbuffer.PushUndo(s)
	remaining := append([]string{}, s.Lines[:start]...)
	remaining = append(remaining, s.Lines[end:]...)
	s.Lines = remaining
	if len(s.Lines) == 0 {
		s.Lines = []string{""}
	}
	if s.CursorRow >= len(s.Lines) {
		s.CursorRow = len(s.Lines) - 1
	}
	s.CursorCol = 0
	s.PreferredCol = nil
	return s, removed, true
}

// changeLines replaces n whole lines' text with a single empty line,
// leaving the cursor poised for INSERT.
func changeLines(s textbuffer.State, n int) (textbuffer.State, string, bool) {
	start := s.CursorRow
	end := start + n
	if end > len(s.Lines) {
		end = len(s.Lines)
	}
	var b strings.Builder
	for r := start; r < end; r++ {
		b.WriteString(s.Lines[r])
		b.WriteByte('\n')
	}
	removed := b.String()
	s = textbuffer.PushUndo(s)
	remaining := append([]string{}, s.Lines[:start]...)
	remaining = append(remaining, "")
	remaining = append(remaining, s.Lines[end:]...)
	s.Lines = remaining
	s.CursorRow = start
	s.CursorCol = 0
	s.PreferredCol = nil
	return s, removed, true
}

func deleteToEndOfLine(s textbuffer.State) (textbuffer.State, string, bool) {
	llen := textbuffer.RuneLen(s.LineText())
	return replaceAndYank(s, s.CursorRow, s.CursorCol, s.CursorRow, llen, "", true)
}

func changeToEndOfLine(s textbuffer.State) (textbuffer.State, string, bool) {
	return deleteToEndOfLine(s)
}

func deleteToLineStart(s textbuffer.State) (textbuffer.State, string, bool) {
	return replaceAndYank(s, s.CursorRow, 0, s.CursorRow, s.CursorCol, "", true)
}

// toggleCase is '~': flip the case of the character under the cursor
// and advance.
func toggleCase(s textbuffer.State) textbuffer.State {
	line := []rune(s.LineText())
	if s.CursorCol >= len(line) {
		return s
	}
	c := line[s.CursorCol]
	var flipped rune
	switch {
	case 'a' <= c && c <= 'z':
		flipped = c - ('a' - 'A')
	case 'A' <= c && c <= 'Z':
		flipped = c + ('a' - 'A')
	default:
		return s
	}
	s = textbuffer.PushUndo(s)
	s = textbuffer.ReplaceRange(s, s.CursorRow, s.CursorCol, s.CursorRow, s.CursorCol+1, string(flipped))
	return s
}

func replaceChar(s textbuffer.State, ch rune) (textbuffer.State, bool) {
	llen := textbuffer.RuneLen(s.LineText())
	if s.CursorCol >= llen {
		return s, false
	}
	origRow, origCol := s.CursorRow, s.CursorCol
	s = textbuffer.PushUndo(s)
	s = textbuffer.ReplaceRange(s, origRow, origCol, origRow, origCol+1, string(ch))
	s.CursorRow, s.CursorCol = origRow, origCol
	return s, true
}

func openLineBelow(s textbuffer.State) textbuffer.State {
	s = textbuffer.PushUndo(s)
	llen := textbuffer.RuneLen(s.Lines[s.CursorRow])
	s = textbuffer.ReplaceRange(s, s.CursorRow, llen, s.CursorRow, llen, "\n")
	return s
}

func openLineAbove(s textbuffer.State) textbuffer.State {
	s = textbuffer.PushUndo(s)
	s = textbuffer.ReplaceRange(s, s.CursorRow, 0, s.CursorRow, 0, "\n")
	s.CursorRow--
	s.CursorCol = textbuffer.RuneLen(s.Lines[s.CursorRow])
	return s
}

// paste implements 'p' (after true) and 'P': linewise clipboard contents
// (trailing "\n") insert as whole lines; charwise contents splice at
// the cursor.
func paste(s textbuffer.State, after bool) (textbuffer.State, bool) {
	if s.Clipboard == "" {
		return s, false
	}
	s = textbuffer.PushUndo(s)
	if textbuffer.JoinedClipboardIsLinewise(s.Clipboard) {
		text := strings.TrimSuffix(s.Clipboard, "\n")
		row := s.CursorRow
		if after {
			row++
		}
		insertAt := row
		if insertAt > len(s.Lines) {
			insertAt = len(s.Lines)
		}
		newLines := strings.Split(text, "\n")
		lines := append([]string{}, s.Lines[:insertAt]...)
		lines = append(lines, newLines...)
		lines = append(lines, s.Lines[insertAt:]...)
		s.Lines = lines
		s.CursorRow = insertAt
		s.CursorCol = firstNonWhitespaceCol(s.Lines[insertAt])
	} else {
		col := s.CursorCol
		if after && textbuffer.RuneLen(s.LineText()) > 0 {
			col++
		}
		s = textbuffer.ReplaceRange(s, s.CursorRow, col, s.CursorRow, col, s.Clipboard)
	}
	s.PreferredCol = nil
	return s, true
}

// innerWordRange finds the run of characters sharing the cursor's
// class (word-char vs. non-word-char, per Vim's iw text object).
func innerWordRange(s textbuffer.State) (int, int) {
	line := []rune(s.LineText())
	if len(line) == 0 {
		return 0, 0
	}
	col := s.CursorCol
	if col >= len(line) {
		col = len(line) - 1
	}
	isWord := textbuffer.IsWordCharStrict(line[col])
	start, end := col, col
	for start > 0 && textbuffer.IsWordCharStrict(line[start-1]) == isWord {
		start--
	}
	for end < len(line)-1 && textbuffer.IsWordCharStrict(line[end+1]) == isWord {
		end++
	}
	return start, end + 1
}

func yankInnerWord(s textbuffer.State) (textbuffer.State, string) {
	start, end := innerWordRange(s)
	text := textbuffer.RuneSlice(s.LineText(), start, end)
	s.Clipboard = text
	return s, text
}

func deleteInnerWord(s textbuffer.State) (textbuffer.State, string, bool) {
	start, end := innerWordRange(s)
	return replaceAndYank(s, s.CursorRow, start, s.CursorRow, end, "", true)
}

func changeInnerWord(s textbuffer.State) (textbuffer.State, string, bool) {
	return deleteInnerWord(s)
}

func yankLine(s textbuffer.State, n int) (textbuffer.State, string) {
	end := s.CursorRow + n
	if end > len(s.Lines) {
		end = len(s.Lines)
	}
	var b strings.Builder
	for r := s.CursorRow; r < end; r++ {
		b.WriteString(s.Lines[r])
		b.WriteByte('\n')
	}
	text := b.String()
	s.Clipboard = text
	return s, text
}

// search scans forward (or backward) from the cursor for query,
// wrapping around the buffer exactly once.
func search(s textbuffer.State, query string, dir textbuffer.SearchDirection) (textbuffer.State, bool) {
	if query == "" {
		return s, false
	}
	n := len(s.Lines)
	if dir == textbuffer.Forward {
		for i := 0; i <= n; i++ {
			row := (s.CursorRow + i) % n
			fromCol := 0
			if i == 0 {
				fromCol = s.CursorCol + 1
			}
			if idx := indexRuneAfter(s.Lines[row], query, fromCol); idx >= 0 {
				s.CursorRow, s.CursorCol = row, idx
				s.PreferredCol = nil
				s.LastSearchQuery = query
				s.LastDirection = dir
				return s, true
			}
		}
		return s, false
	}
	for i := 0; i <= n; i++ {
		row := ((s.CursorRow-i)%n + n) % n
		upto := textbuffer.RuneLen(s.Lines[row])
		if i == 0 {
			upto = s.CursorCol
		}
		if idx := lastIndexRuneBefore(s.Lines[row], query, upto); idx >= 0 {
			s.CursorRow, s.CursorCol = row, idx
			s.PreferredCol = nil
			s.LastSearchQuery = query
			s.LastDirection = dir
			return s, true
		}
	}
	return s, false
}

func indexRuneAfter(line, query string, from int) int {
	runes := []rune(line)
	q := []rune(query)
	if from < 0 {
		from = 0
	}
	for i := from; i+len(q) <= len(runes); i++ {
		if string(runes[i:i+len(q)]) == query {
			return i
		}
	}
	return -1
}

func lastIndexRuneBefore(line, query string, upto int) int {
	runes := []rune(line)
	q := []rune(query)
	if upto > len(runes) {
		upto = len(runes)
	}
	best := -1
	for i := 0; i+len(q) <= upto; i++ {
		if string(runes[i:i+len(q)]) == query {
			best = i
		}
	}
	return best
}
