package vimcontroller

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/kestrelcode/modaledit/internal/textbuffer"
	"github.com/kestrelcode/modaledit/internal/vimaction"
)

// handleCommand drives the `:`/`/`/`?` ex sub-mode: accumulate
// printable keys into CommandBuffer, backspace trims one code point
// (falling back to NORMAL once the buffer would empty), Enter
// dispatches, Escape exits without dispatch.
func (c *Controller) handleCommand(key Key) bool {
	if key.Name == "escape" {
		c.CommandBuffer = ""
		c.Ports.notifyCommandBuffer("")
		c.setMode(textbuffer.ModeNormal)
		return true
	}

	if key.Name == "backspace" {
		runes := []rune(c.CommandBuffer)
		if len(runes) <= 1 {
			c.CommandBuffer = ""
			c.Ports.notifyCommandBuffer("")
			c.setMode(textbuffer.ModeNormal)
			return true
		}
		c.CommandBuffer = string(runes[:len(runes)-1])
		c.Ports.notifyCommandBuffer(c.CommandBuffer)
		return true
	}

	if key.Name == "return" {
		c.dispatchCommand()
		return true
	}

	if key.Insertable && key.Sequence != "" {
		c.CommandBuffer += key.Sequence
		c.Ports.notifyCommandBuffer(c.CommandBuffer)
		return true
	}
	return true
}

func (c *Controller) dispatchCommand() {
	buf := c.CommandBuffer
	c.CommandBuffer = ""
	c.Ports.notifyCommandBuffer("")
	c.setMode(textbuffer.ModeNormal)
	if buf == "" {
		return
	}

	prefix := buf[0]
	rest := buf[1:]

	switch prefix {
	case ':':
		if c.Ports.ExCommand != nil {
			name := strings.TrimSpace(rest)
			if !IsRecognizedExCommand(name) {
				if closest, ok := ClosestExCommand(name); ok {
					name = closest
				}
			}
			c.Ports.ExCommand(name)
		}
	case '/':
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.Search, Query: rest, Direction: textbuffer.Forward})
		c.Buffer = r.State
	case '?':
		r := vimaction.Handle(c.Buffer, vimaction.Action{Verb: vimaction.Search, Query: rest, Direction: textbuffer.Backward})
		c.Buffer = r.State
	}
}

// recognizedExCommands is the minimal stub table (spec.md §4.D): `q`,
// `w`, `wq` are recognised; everything else is unrecognised. Exposed
// so a host ExCommand implementation can reuse it without duplicating
// this list.
var recognizedExCommands = []string{"q", "w", "wq"}

// IsRecognizedExCommand reports whether name (the text after `:`) is
// one of the stub ex commands the core spec names.
func IsRecognizedExCommand(name string) bool {
	name = strings.TrimSpace(name)
	for _, c := range recognizedExCommands {
		if c == name {
			return true
		}
	}
	return false
}

// ClosestExCommand fuzzy-matches an ex command name against the
// recognised table, the same way the palette resolves a partial command
// title. A name matches only if its characters occur in order within a
// table entry, so a name such as `wg` (no entry contains a `g`) is not
// resolved. Returns ("", false) when nothing scores above matchThreshold.
const matchThreshold = 0

func ClosestExCommand(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	matches := fuzzy.Find(name, recognizedExCommands)
	if len(matches) == 0 || matches[0].Score <= matchThreshold {
		return "", false
	}
	return recognizedExCommands[matches[0].Index], true
}
