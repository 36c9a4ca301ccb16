package vimcontroller

import (
	"github.com/kestrelcode/modaledit/internal/textbuffer"
	"github.com/kestrelcode/modaledit/internal/vimaction"
)

func isDigit(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// sequenceFor maps arrow keys onto their h/j/k/l equivalents, per
// spec.md §4.D ("arrow keys map to h/j/k/l").
func sequenceFor(key Key) string {
	switch key.Name {
	case "left":
		return "h"
	case "down":
		return "j"
	case "up":
		return "k"
	case "right":
		return "l"
	}
	return key.Sequence
}

func (c *Controller) inVisual() bool {
	return c.Mode == textbuffer.ModeVisual || c.Mode == textbuffer.ModeVisualLine
}

func (c *Controller) enterVisual(line bool) {
	pos := textbuffer.Position{Row: c.Buffer.CursorRow, Col: c.Buffer.CursorCol}
	c.Buffer.SelectionAnchor = &pos
	if line {
		c.setMode(textbuffer.ModeVisualLine)
	} else {
		c.setMode(textbuffer.ModeVisual)
	}
}

func (c *Controller) exitVisual() {
	c.Buffer.SelectionAnchor = nil
	c.setMode(textbuffer.ModeNormal)
}

func (c *Controller) selectionAction(verb vimaction.Verb, enterInsert bool) Result2 {
	anchor := c.Buffer.SelectionAnchor
	if anchor == nil {
		return Result2{}
	}
	a := vimaction.Action{
		Verb:         verb,
		HasSelection: true,
		SelStart:     *anchor,
		SelEnd:       textbuffer.Position{Row: c.Buffer.CursorRow, Col: c.Buffer.CursorCol},
		Linewise:     c.Mode == textbuffer.ModeVisualLine,
	}
	r := vimaction.Handle(c.Buffer, a)
	c.Buffer = r.State
	c.exitVisual()
	if enterInsert {
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
	}
	return Result2{Changed: r.Changed, Yanked: r.Yanked}
}

// Result2 avoids colliding with vimaction.Result while still giving
// callers the bits the NORMAL/VISUAL dispatcher cares about.
type Result2 struct {
	Changed bool
	Yanked  string
}

func dirVerbFor(seq string) (vimaction.Verb, bool) {
	switch seq {
	case "h":
		return vimaction.MoveLeft, true
	case "j":
		return vimaction.MoveDown, true
	case "k":
		return vimaction.MoveUp, true
	case "l":
		return vimaction.MoveRight, true
	}
	return 0, false
}

func (c *Controller) handleNormalOrVisual(key Key) bool {
	seq := sequenceFor(key)
	n := c.count()
	style := c.Ports.vimModeStyle()

	if digit, ok := isDigit(seq); ok {
		if digit == 0 && c.Count == 0 {
			// '0' with no pending count is a motion, not a digit.
		} else if digit != 0 || c.Count > 0 {
			c.Count = c.Count*10 + digit
			return true
		}
	}

	if key.Name == "escape" {
		if c.inVisual() {
			c.exitVisual()
		}
		c.resetPending()
		return true
	}

	// Selection toggles.
	switch seq {
	case "v":
		if c.Mode == textbuffer.ModeVisual {
			c.exitVisual()
		} else {
			c.enterVisual(false)
		}
		c.resetPending()
		return true
	case "V":
		if c.Mode == textbuffer.ModeVisualLine {
			c.exitVisual()
		} else {
			c.enterVisual(true)
		}
		c.resetPending()
		return true
	}

	if dirVerb, ok := dirVerbFor(seq); ok {
		if style == "bash-vim" && c.Mode == textbuffer.ModeNormal && c.PendingOperator == "" && (seq == "j" || seq == "k") {
			return false
		}
		if c.PendingOperator == "c" && !c.PendingInner {
			before := c.Buffer
			moved := vimaction.Handle(before, vimaction.Action{Verb: dirVerb, Count: n}).State
			ns, _, changed := vimaction.DeleteRangeExclusive(before, before.CursorRow, before.CursorCol, moved.CursorRow, moved.CursorCol)
			c.Buffer = ns
			if changed {
				// Not recorded in LastCommand: change_movement(dir, n)
				// has no single-verb replay shape in the repeat record.
				c.setMode(textbuffer.ModeInsert)
				c.beginInsertRecording()
			}
			c.resetPending()
			return true
		}
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: dirVerb, Count: n})
		c.Buffer = r.State
		c.resetPending()
		return true
	}

	switch seq {
	case "w", "b", "e":
		return c.handleWordMotion(seq, n)
	case "d", "c", "y":
		return c.handleOperatorKey(seq, n)
	case "g":
		if c.PendingOperator == "g" {
			c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.MoveFirstLine}).State
			c.resetPending()
			return true
		}
		c.PendingOperator = "g"
		return true
	case "G":
		if style == "bash-vim" && c.PendingOperator == "" {
			return false
		}
		if c.Count > 0 {
			c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.MoveToLine, Line: c.Count}).State
		} else {
			c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.MoveLastLine}).State
		}
		c.resetPending()
		return true
	case "x":
		if c.inVisual() {
			c.selectionAction(vimaction.DeleteSelection, false)
			c.resetPending()
			return true
		}
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.DeleteChar, Count: n})
		c.Buffer = r.State
		if r.Changed {
			c.recordLastCommand(vimaction.DeleteChar, n, 0, "")
		}
		c.resetPending()
		return true
	case "X":
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.DeleteCharBefore, Count: n})
		c.Buffer = r.State
		if r.Changed {
			c.recordLastCommand(vimaction.DeleteCharBefore, n, 0, "")
		}
		c.resetPending()
		return true
	case "~":
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.ToggleCase, Count: n})
		c.Buffer = r.State
		if r.Changed {
			c.recordLastCommand(vimaction.ToggleCase, n, 0, "")
		}
		c.resetPending()
		return true
	case "i":
		if c.PendingOperator == "d" || c.PendingOperator == "c" || c.PendingOperator == "y" {
			c.PendingInner = true
			return true
		}
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
		c.resetPending()
		return true
	case "a":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.EnterInsertAfter}).State
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
		c.resetPending()
		return true
	case "I":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.EnterInsertLineStart}).State
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
		c.resetPending()
		return true
	case "A":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.EnterInsertLineEnd}).State
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
		c.resetPending()
		return true
	case "o":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.OpenLineBelow}).State
		c.recordLastCommand(vimaction.OpenLineBelow, 1, 0, "")
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
		c.resetPending()
		return true
	case "O":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.OpenLineAbove}).State
		c.recordLastCommand(vimaction.OpenLineAbove, 1, 0, "")
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
		c.resetPending()
		return true
	case "0":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.MoveLineStart}).State
		c.resetPending()
		return true
	case "$":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.MoveLineEnd}).State
		c.resetPending()
		return true
	case "^":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.MoveFirstNonWhitespace}).State
		c.resetPending()
		return true
	case "%":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.MoveMatchingPair}).State
		c.resetPending()
		return true
	case "D":
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.DeleteToEndOfLine})
		c.Buffer = r.State
		if r.Changed {
			c.recordLastCommand(vimaction.DeleteToEndOfLine, 1, 0, "")
		}
		c.resetPending()
		return true
	case "C":
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.ChangeToEndOfLine})
		c.Buffer = r.State
		if r.Changed {
			c.recordLastCommand(vimaction.ChangeToEndOfLine, 1, 0, "")
		}
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
		c.resetPending()
		return true
	case "u":
		c.Buffer = textbuffer.Undo(c.Buffer)
		c.resetPending()
		return true
	case "r":
		c.PendingReplace = true
		return true
	case "p":
		ns, changed := applyPaste(c.Buffer, true)
		c.Buffer = ns
		if changed {
			c.recordLastCommand(vimaction.Paste, 1, 0, "")
		}
		c.resetPending()
		return true
	case "P":
		ns, changed := applyPaste(c.Buffer, false)
		c.Buffer = ns
		if changed {
			c.recordLastCommand(vimaction.PasteBefore, 1, 0, "")
		}
		c.resetPending()
		return true
	case "n":
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.SearchNext})
		c.Buffer = r.State
		c.resetPending()
		return true
	case "N":
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.SearchPrev})
		c.Buffer = r.State
		c.resetPending()
		return true
	case ";":
		if c.LastFind != nil {
			c.doFind(*c.LastFind, n)
		}
		c.resetPending()
		return true
	case ",":
		if c.LastFind != nil {
			inv := *c.LastFind
			inv.Forward = !inv.Forward
			c.doFind(inv, n)
		}
		c.resetPending()
		return true
	case ".":
		c.repeatLastCommand()
		c.resetPending()
		return true
	case "f", "F", "t", "T":
		c.PendingFind = &PendingFind{Forward: seq == "f" || seq == "t", Exclusive: seq == "t" || seq == "T"}
		return true
	case ":":
		if c.Ports.commandModeDisabled() {
			return c.insertLiteral(seq)
		}
		c.CommandBuffer = seq
		c.Ports.notifyCommandBuffer(seq)
		c.setMode(textbuffer.ModeCommand)
		c.resetPending()
		return true
	case "/", "?":
		if style == "bash-vim" {
			return false
		}
		if c.Ports.commandModeDisabled() {
			return c.insertLiteral(seq)
		}
		c.CommandBuffer = seq
		c.Ports.notifyCommandBuffer(seq)
		c.setMode(textbuffer.ModeCommand)
		c.resetPending()
		return true
	}

	// Unknown key: clear all pending state, report handled (consumed).
	c.resetPending()
	return true
}

func (c *Controller) insertLiteral(seq string) bool {
	c.Buffer = textbuffer.PushUndo(c.Buffer)
	c.Buffer = textbuffer.ReplaceRange(c.Buffer, c.Buffer.CursorRow, c.Buffer.CursorCol, c.Buffer.CursorRow, c.Buffer.CursorCol, seq)
	c.setMode(textbuffer.ModeInsert)
	c.beginInsertRecording()
	c.resetPending()
	return true
}

func applyPaste(s textbuffer.State, after bool) (textbuffer.State, bool) {
	verb := vimaction.PasteBefore
	if after {
		verb = vimaction.Paste
	}
	r := vimaction.Handle(s, vimaction.Action{Verb: verb})
	return r.State, r.Changed
}

// handleWordMotion dispatches w/b/e as a plain motion, as the d/c
// paired mutation, or as the inner-word variant when pending_inner is
// set (diw/ciw/yiw — 'w' is the only text-object selector the spec
// recognises).
func (c *Controller) handleWordMotion(seq string, n int) bool {
	if c.PendingInner {
		verb, ok := innerWordVerb(c.PendingOperator)
		if !ok || seq != "w" {
			c.resetPending()
			return true
		}
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: verb})
		c.Buffer = r.State
		if r.Changed {
			c.recordLastCommand(verb, 1, 0, "")
		}
		if r.EnterInsert {
			c.setMode(textbuffer.ModeInsert)
			c.beginInsertRecording()
		}
		c.resetPending()
		return true
	}

	if c.inVisual() {
		motionVerb := wordMotionVerb(seq)
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: motionVerb, Count: n}).State
		return true
	}

	switch c.PendingOperator {
	case "d":
		verb := deletePairFor(seq)
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: verb, Count: n})
		c.Buffer = r.State
		if r.Changed {
			c.recordLastCommand(verb, n, 0, "")
		}
		c.resetPending()
		return true
	case "c":
		verb := changePairFor(seq)
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: verb, Count: n})
		c.Buffer = r.State
		if r.Changed {
			c.recordLastCommand(verb, n, 0, "")
		}
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
		c.resetPending()
		return true
	default:
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: wordMotionVerb(seq), Count: n}).State
		c.resetPending()
		return true
	}
}

func wordMotionVerb(seq string) vimaction.Verb {
	switch seq {
	case "w":
		return vimaction.MoveWordForward
	case "b":
		return vimaction.MoveWordBackward
	default:
		return vimaction.MoveWordEnd
	}
}

func deletePairFor(seq string) vimaction.Verb {
	switch seq {
	case "w":
		return vimaction.DeleteWordForward
	case "b":
		return vimaction.DeleteWordBackward
	default:
		return vimaction.DeleteWordEnd
	}
}

func changePairFor(seq string) vimaction.Verb {
	switch seq {
	case "w":
		return vimaction.ChangeWordForward
	case "b":
		return vimaction.ChangeWordBackward
	default:
		return vimaction.ChangeWordEnd
	}
}

func innerWordVerb(op string) (vimaction.Verb, bool) {
	switch op {
	case "d":
		return vimaction.DeleteInnerWord, true
	case "c":
		return vimaction.ChangeInnerWord, true
	case "y":
		return vimaction.YankInnerWord, true
	}
	return 0, false
}

// handleOperatorKey handles the first press of d/c/y (arm the
// operator), a repeated press (dd/cc/yy, the line-wise verb), and the
// VISUAL-mode case where d/c/y act on the live selection.
func (c *Controller) handleOperatorKey(seq string, n int) bool {
	if c.inVisual() {
		switch seq {
		case "d":
			c.selectionAction(vimaction.DeleteSelection, false)
		case "c":
			c.selectionAction(vimaction.ChangeSelection, true)
		case "y":
			c.selectionAction(vimaction.YankSelection, false)
		}
		c.resetPending()
		return true
	}

	if c.PendingOperator == seq {
		switch seq {
		case "d":
			r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.DeleteLine, Count: n})
			c.Buffer = r.State
			if r.Changed {
				c.recordLastCommand(vimaction.DeleteLine, n, 0, "")
			}
		case "c":
			r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.ChangeLine, Count: n})
			c.Buffer = r.State
			if r.Changed {
				c.recordLastCommand(vimaction.ChangeLine, n, 0, "")
			}
			c.setMode(textbuffer.ModeInsert)
			c.beginInsertRecording()
		case "y":
			r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.YankLine, Count: n})
			c.Buffer = r.State
		}
		c.resetPending()
		return true
	}

	c.PendingOperator = seq
	return true
}
