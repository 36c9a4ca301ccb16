package vimcontroller

import (
	"github.com/kestrelcode/modaledit/internal/textbuffer"
	"github.com/kestrelcode/modaledit/internal/vimaction"
)

// recordLastCommand is called only by mutation verbs, and only after
// they succeed (spec.md §4.D): motion verbs never update it.
func (c *Controller) recordLastCommand(verb vimaction.Verb, count int, ch rune, insertedText string) {
	c.LastCommand = &LastCommand{Verb: verb, Count: count, Char: ch, InsertedText: insertedText}
}

// beginInsertRecording starts capturing literal typed text for the
// '.'-repeat of an insert-producing mutation (cw, cc, C, o, O, i, a,
// A, I). This supplements spec.md's {type, count} record so a bare
// '.' after typing reproduces the same inserted text, not just the
// same deletion.
func (c *Controller) beginInsertRecording() {
	c.recordingInsert = true
	c.insertRecording.Reset()
}

func (c *Controller) endInsertRecording() {
	if !c.recordingInsert {
		return
	}
	c.recordingInsert = false
	if c.LastCommand != nil {
		c.LastCommand.InsertedText = c.insertRecording.String()
	}
}

// repeatLastCommand implements '.': re-dispatch through the same
// executor the initial invocation used, including replaying any
// recorded inserted text for commands that transition to INSERT.
func (c *Controller) repeatLastCommand() {
	if c.LastCommand == nil {
		return
	}
	lc := *c.LastCommand
	r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: lc.Verb, Count: lc.Count, Char: lc.Char})
	c.Buffer = r.State
	if r.EnterInsert && lc.InsertedText != "" {
		c.Buffer = textbuffer.PushUndo(c.Buffer)
		c.Buffer = textbuffer.ReplaceRange(c.Buffer, c.Buffer.CursorRow, c.Buffer.CursorCol, c.Buffer.CursorRow, c.Buffer.CursorCol, lc.InsertedText)
		if c.Buffer.CursorCol > 0 {
			c.Buffer.CursorCol--
		}
		c.setMode(textbuffer.ModeNormal)
		return
	}
	if r.EnterInsert {
		c.setMode(textbuffer.ModeInsert)
		c.beginInsertRecording()
	}
}
