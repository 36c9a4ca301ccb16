package vimaction

import "github.com/kestrelcode/modaledit/internal/textbuffer"

// Handle is the engine's single entry point: every verb funnels
// through here and returns a brand new State plus a description of
// what happened. It never mutates its input.
func Handle(s textbuffer.State, a Action) Result {
	n := clampCount(a.Count)

	switch a.Verb {
	case MoveLeft:
		return Result{State: moveLeft(s, n)}
	case MoveRight:
		return Result{State: moveRight(s, n)}
	case MoveUp:
		return Result{State: moveUp(s, n)}
	case MoveDown:
		return Result{State: moveDown(s, n)}
	case MoveWordForward:
		return Result{State: moveWordForward(s, n)}
	case MoveWordBackward:
		return Result{State: moveWordBackward(s, n)}
	case MoveWordEnd:
		return Result{State: moveWordEnd(s, n)}
	case MoveLineStart:
		return Result{State: moveToLineStart(s)}
	case MoveLineEnd:
		return Result{State: moveToLineEnd(s)}
	case MoveFirstNonWhitespace:
		return Result{State: moveToFirstNonWhitespace(s)}
	case MoveFirstLine:
		return Result{State: moveToFirstLine(s)}
	case MoveLastLine:
		return Result{State: moveToLastLine(s)}
	case MoveToLine:
		line := a.Line
		if line == 0 {
			line = len(s.Lines)
		}
		return Result{State: moveToLine(s, line)}
	case MoveMatchingPair:
		return Result{State: moveToMatchingPair(s)}
	case FindCharForward:
		res := findCharInLine(s.LineText(), s.CursorCol, a.Char, true, a.Exclusive)
		if !res.Found {
			return Result{State: s}
		}
		s.CursorCol = res.Col
		s.PreferredCol = nil
		return Result{State: s}
	case FindCharBackward:
		res := findCharInLine(s.LineText(), s.CursorCol, a.Char, false, a.Exclusive)
		if !res.Found {
			return Result{State: s}
		}
		s.CursorCol = res.Col
		s.PreferredCol = nil
		return Result{State: s}

	case DeleteChar:
		ns, yanked, changed := deleteCharForward(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	case DeleteCharBefore:
		ns, yanked, changed := deleteCharBackward(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	case DeleteWordForward:
		ns, yanked, changed := deleteWordForward(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	case ChangeWordForward:
		ns, yanked, changed := changeWordForward(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked, EnterInsert: true}
	case DeleteWordBackward:
		ns, yanked, changed := deleteWordBackward(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	case ChangeWordBackward:
		ns, yanked, changed := changeWordBackward(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked, EnterInsert: true}
	case DeleteWordEnd:
		ns, yanked, changed := deleteWordEnd(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	case ChangeWordEnd:
		ns, yanked, changed := changeWordEnd(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked, EnterInsert: true}
	case DeleteLine:
		ns, yanked, changed := deleteLines(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	case ChangeLine:
		ns, yanked, changed := changeLines(s, n)
		return Result{State: ns, Changed: changed, Yanked: yanked, EnterInsert: true}
	case DeleteToEndOfLine:
		ns, yanked, changed := deleteToEndOfLine(s)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	case ChangeToEndOfLine:
		ns, yanked, changed := changeToEndOfLine(s)
		return Result{State: ns, Changed: changed, Yanked: yanked, EnterInsert: true}
	case DeleteToLineStart:
		ns, yanked, changed := deleteToLineStart(s)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	case ToggleCase:
		ns := toggleCase(s)
		return Result{State: ns, Changed: ns.Text() != s.Text()}
	case ReplaceChar:
		ns, changed := replaceChar(s, a.Char)
		return Result{State: ns, Changed: changed}
	case OpenLineBelow:
		return Result{State: openLineBelow(s), Changed: true, EnterInsert: true}
	case OpenLineAbove:
		return Result{State: openLineAbove(s), Changed: true, EnterInsert: true}
	case Paste:
		ns, changed := paste(s, true)
		return Result{State: ns, Changed: changed}
	case PasteBefore:
		ns, changed := paste(s, false)
		return Result{State: ns, Changed: changed}
	case YankLine:
		ns, yanked := yankLine(s, n)
		return Result{State: ns, Yanked: yanked}
	case YankInnerWord:
		ns, yanked := yankInnerWord(s)
		return Result{State: ns, Yanked: yanked}
	case DeleteInnerWord:
		ns, yanked, changed := deleteInnerWord(s)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	case ChangeInnerWord:
		ns, yanked, changed := changeInnerWord(s)
		return Result{State: ns, Changed: changed, Yanked: yanked, EnterInsert: true}

	case Yank, YankSelection:
		return handleSelectionYank(s, a)
	case DeleteSelection:
		return handleSelectionDelete(s, a, false)
	case ChangeSelection:
		return handleSelectionDelete(s, a, true)

	case Search:
		ns, found := search(s, a.Query, a.Direction)
		return Result{State: ns, SearchFound: found}
	case SearchNext:
		dir := s.LastDirection
		ns, found := search(s, s.LastSearchQuery, dir)
		return Result{State: ns, SearchFound: found}
	case SearchPrev:
		dir := textbuffer.Forward
		if s.LastDirection == textbuffer.Forward {
			dir = textbuffer.Backward
		}
		ns, found := search(s, s.LastSearchQuery, dir)
		return Result{State: ns, SearchFound: found}

	case EnterInsertAtCursor:
		return Result{State: s, EnterInsert: true}
	case EnterInsertAfter:
		return Result{State: moveRightForInsert(s), EnterInsert: true}
	case EnterInsertLineStart:
		return Result{State: moveToFirstNonWhitespace(s), EnterInsert: true}
	case EnterInsertLineEnd:
		ns := s
		ns.CursorCol = textbuffer.RuneLen(ns.LineText())
		ns.PreferredCol = nil
		return Result{State: ns, EnterInsert: true}
	}

	return Result{State: s}
}

// moveRightForInsert is 'a': step one column right even at end of
// line, since INSERT mode allows the cursor one past the last char.
func moveRightForInsert(s textbuffer.State) textbuffer.State {
	llen := textbuffer.RuneLen(s.LineText())
	if s.CursorCol < llen {
		s.CursorCol++
	}
	s.PreferredCol = nil
	return s
}

func normalizeSelection(s textbuffer.State, a Action) (int, int, int, int) {
	r1, c1 := a.SelStart.Row, a.SelStart.Col
	r2, c2 := a.SelEnd.Row, a.SelEnd.Col
	return orderPositions(r1, c1, r2, c2)
}

func handleSelectionYank(s textbuffer.State, a Action) Result {
	if !a.HasSelection {
		return Result{State: s}
	}
	startRow, startCol, endRow, endCol := normalizeSelection(s, a)
	if a.Linewise {
		ns, yanked := yankLine(withCursor(s, startRow), endRow-startRow+1)
		return Result{State: ns, Yanked: yanked}
	}
	text := extractRange(s, startRow, startCol, endRow, endCol+1)
	s.Clipboard = text
	return Result{State: s, Yanked: text}
}

func handleSelectionDelete(s textbuffer.State, a Action, enterInsert bool) Result {
	if !a.HasSelection {
		return Result{State: s}
	}
	startRow, startCol, endRow, endCol := normalizeSelection(s, a)
	if a.Linewise {
		if enterInsert {
			ns, yanked, changed := changeLines(withCursor(s, startRow), endRow-startRow+1)
			return Result{State: ns, Changed: changed, Yanked: yanked, EnterInsert: true}
		}
		ns, yanked, changed := deleteLines(withCursor(s, startRow), endRow-startRow+1)
		return Result{State: ns, Changed: changed, Yanked: yanked}
	}
	ns, yanked, changed := replaceAndYank(s, startRow, startCol, endRow, endCol+1, "", true)
	return Result{State: ns, Changed: changed, Yanked: yanked, EnterInsert: enterInsert}
}

func withCursor(s textbuffer.State, row int) textbuffer.State {
	s.CursorRow = row
	s.CursorCol = 0
	return s
}
