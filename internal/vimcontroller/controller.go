package vimcontroller

import (
	"strings"

	"github.com/kestrelcode/modaledit/internal/textbuffer"
	"github.com/kestrelcode/modaledit/internal/vimaction"
)

// Key is a single keystroke event, matching spec.md §6's shape.
type Key struct {
	Name       string
	Sequence   string
	Ctrl       bool
	Meta       bool
	Shift      bool
	Paste      bool
	Insertable bool
}

// PendingFind records direction/inclusivity while awaiting the target
// character for f/F/t/T, and (once resolved) the last successful find
// for ; and ,.
type PendingFind struct {
	Forward   bool
	Exclusive bool
	Char      rune
}

// LastCommand is the flat repeat record '.' re-dispatches, modeled on
// a plain tagged struct rather than a closure so repeat is just
// "invoke vimaction.Handle again with the same Action".
type LastCommand struct {
	Verb         vimaction.Verb
	Count        int
	Char         rune
	InsertedText string
}

// Controller is the modal key-to-action state machine. Buffer is the
// single source of truth for text; everything else is pending-command
// bookkeeping that resets on escape or mode transition.
type Controller struct {
	Mode          textbuffer.Mode
	Buffer        textbuffer.State
	CommandBuffer string

	Count           int
	PendingOperator string // "", "g", "d", "c", "y"
	PendingChord    string // "", "ctrl_x"
	PendingReplace  bool
	PendingInner    bool
	PendingFind     *PendingFind
	LastFind        *PendingFind
	LastCommand     *LastCommand

	Ports Ports

	insertRecording strings.Builder
	recordingInsert bool
}

// New returns a controller ready to accept keys, starting in INSERT
// mode (a chat prompt is ready for typing by default) with an empty
// buffer.
func New(ports Ports) *Controller {
	return &Controller{
		Mode:   textbuffer.ModeInsert,
		Buffer: textbuffer.New(),
		Ports:  ports,
	}
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

// resetPending clears every transient field; called on escape and on
// every completed NORMAL/VISUAL command unless that command
// deliberately retains state (g, pending operators awaiting a motion).
func (c *Controller) resetPending() {
	c.Count = 0
	c.PendingOperator = ""
	c.PendingInner = false
	c.PendingReplace = false
	c.PendingFind = nil
}

func (c *Controller) setMode(m textbuffer.Mode) {
	if c.Mode == m {
		return
	}
	c.Mode = m
	c.Ports.notifyMode(m)
}

func (c *Controller) count() int {
	if c.Count <= 0 {
		return 1
	}
	return c.Count
}

// HandleKey is the engine's single entry point: translate one keystroke
// into zero or more buffer mutations, returning whether the key was
// consumed by the vim engine (false means the caller should let some
// other collaborator — history navigation, completion, clipboard paste
// — act on it instead).
func (c *Controller) HandleKey(key Key) bool {
	if key.Name == "" && key.Sequence == "" {
		c.Ports.warn("vimcontroller: received key with no name or sequence")
		return false
	}

	if c.PendingReplace {
		ch, ok := firstRune(key.Sequence)
		c.PendingReplace = false
		if ok {
			r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.ReplaceChar, Char: ch})
			if r.Changed {
				c.Buffer = r.State
				c.recordLastCommand(vimaction.ReplaceChar, 1, ch, "")
			}
		}
		c.resetPending()
		return true
	}

	if c.PendingFind != nil {
		ch, ok := firstRune(key.Sequence)
		pf := *c.PendingFind
		c.PendingFind = nil
		if ok {
			pf.Char = ch
			c.doFind(pf, c.count())
			c.LastFind = &pf
		}
		c.resetPending()
		return true
	}

	if c.PendingChord == "ctrl_x" {
		c.PendingChord = ""
		if key.Ctrl && key.Name == "e" {
			if c.Ports.ExternalEditor != nil {
				c.Ports.ExternalEditor.Open(c.Buffer.Text())
			}
		}
		return true
	}

	if key.Ctrl && key.Name == "x" {
		c.PendingChord = "ctrl_x"
		return true
	}

	switch c.Mode {
	case textbuffer.ModeInsert:
		return c.handleInsert(key)
	case textbuffer.ModeCommand:
		return c.handleCommand(key)
	default:
		return c.handleNormalOrVisual(key)
	}
}

func (c *Controller) doFind(pf PendingFind, n int) {
	for i := 0; i < n; i++ {
		r := vimaction.Handle(c.Buffer, vimaction.Action{
			Verb:      findVerb(pf.Forward),
			Char:      pf.Char,
			Exclusive: pf.Exclusive,
		})
		c.Buffer = r.State
	}
}

func findVerb(forward bool) vimaction.Verb {
	if forward {
		return vimaction.FindCharForward
	}
	return vimaction.FindCharBackward
}

// ─── INSERT mode ─────────────────────────────────────────────────────────

// explicitly-not-handled key names per spec.md §4.D's INSERT allow-list:
// Tab, Up, Down, Ctrl+R, Ctrl+V.
func insertPassThrough(key Key) bool {
	switch key.Name {
	case "tab", "up", "down":
		return true
	}
	if key.Ctrl && (key.Name == "r" || key.Name == "v") {
		return true
	}
	return false
}

func (c *Controller) handleInsert(key Key) bool {
	if key.Name == "escape" {
		c.resetPending()
		c.endInsertRecording()
		if c.Buffer.CursorCol > 0 {
			c.Buffer.CursorCol--
		}
		c.Buffer.PreferredCol = nil
		c.setMode(textbuffer.ModeNormal)
		return true
	}

	if key.Ctrl && key.Name == "w" {
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.DeleteWordBackward, Count: 1})
		c.Buffer = r.State
		return true
	}
	if key.Ctrl && key.Name == "u" {
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.DeleteToLineStart})
		c.Buffer = r.State
		return true
	}

	if key.Name == "return" && !key.Ctrl && !key.Meta {
		if c.Ports.Submit != nil {
			trimmed := strings.TrimSpace(c.Buffer.Text())
			if trimmed != "" {
				c.Ports.Submit(c.Buffer.Text())
				c.Buffer = textbuffer.New()
				return true
			}
		}
		return false
	}

	if insertPassThrough(key) {
		return false
	}

	// Leading '!' on an empty buffer triggers the host's shell-mode;
	// not ours to consume.
	if key.Insertable && key.Sequence == "!" && len(c.Buffer.Lines) == 1 && c.Buffer.Lines[0] == "" {
		return false
	}

	if key.Name == "backspace" {
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.DeleteCharBefore, Count: 1})
		c.Buffer = r.State
		return true
	}
	switch key.Name {
	case "left":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.MoveLeft, Count: 1}).State
		return true
	case "right":
		c.Buffer = vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.MoveRight, Count: 1}).State
		return true
	}

	if key.Insertable && key.Sequence != "" {
		c.Buffer = textbuffer.PushUndo(c.Buffer)
		c.Buffer = textbuffer.ReplaceRange(c.Buffer, c.Buffer.CursorRow, c.Buffer.CursorCol, c.Buffer.CursorRow, c.Buffer.CursorCol, key.Sequence)
		if c.recordingInsert {
			c.insertRecording.WriteString(key.Sequence)
		}
		return true
	}
	return false
}
