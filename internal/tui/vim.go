package tui

// ─── Vim Mode for Modaledit TUI ──────────────────────────────────────────────
//
// The chat prompt's textarea is driven entirely by internal/vimcontroller:
// every key routed to it translates into a Key, HandleKey mutates the
// engine's own textbuffer.State, and the textarea is resynced from that
// buffer afterward (syncTextarea). This file now only owns:
//   • the VimState wrapper around *vimcontroller.Controller and the ports
//     wiring that lets the engine reach this model's clipboard/$EDITOR/
//     config/status-toast collaborators
//   • translateKey, converting Bubble Tea's msg.String() shape into the
//     engine's Key
//   • the chat viewport's own, unrelated vim-flavoured scroll bindings
//     (j/k/gg/G/Ctrl-d/Ctrl-u/Ctrl-f/Ctrl-b/yy) — a different feature from
//     prompt editing, kept on its own small counter/lastKey state

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/kestrelcode/modaledit/internal/textbuffer"
	"github.com/kestrelcode/modaledit/internal/vimcontroller"
)

// ─── Prompt engine wiring ─────────────────────────────────────────────────

// VimState wraps the modal engine that drives the chat prompt's textarea.
type VimState struct {
	ctrl *vimcontroller.Controller
}

func newVimState() VimState {
	return VimState{ctrl: vimcontroller.New(vimcontroller.Ports{})}
}

func (vs VimState) mode() textbuffer.Mode {
	if vs.ctrl == nil {
		return textbuffer.ModeInsert
	}
	return vs.ctrl.Mode
}

// wireVimPorts refreshes the engine's Ports and the history navigator's
// function-valued ports against the current model on every keystroke.
// Both hold closures over *Model; since Update passes Model by value on
// every call, a pointer captured once at construction would go stale the
// instant the caller's local copy is discarded, so this is rebuilt fresh
// each time instead of cached on the struct.
func (m *Model) wireVimPorts() {
	m.vimState.ctrl.Ports = vimcontroller.Ports{
		Clipboard:      osClipboard{},
		ExternalEditor: externalEditorPort{m: m},
		Settings:       vimSettings{m: m},
		Submit: func(text string) {
			m.historyNav.SubmitValue(text)
		},
		Warn: func(format string, args ...any) {
			m.setStatus(fmt.Sprintf(format, args...))
		},
		ExCommand: func(name string) bool {
			// The prompt isn't a file: :w/:q/:wq are acknowledged so
			// ex-mode doesn't feel broken, but there's nothing to save
			// or quit.
			return vimcontroller.IsRecognizedExCommand(name)
		},
	}

	m.historyNav.IsActive = func() bool {
		return m.vimState.mode() == textbuffer.ModeInsert
	}
	m.historyNav.CurrentDraft = func() string {
		return m.vimState.ctrl.Buffer.Text()
	}
	m.historyNav.OnChange = func(text string) {
		m.setPromptText(text)
	}
	m.historyNav.Submit = func(text string) {
		m.pendingCmd = m.submitPromptText(text)
	}
}

// setPromptText installs text as the engine's buffer with the cursor at
// its end, then resyncs the textarea — the shape history navigation and
// the alt+enter newline insert both need.
func (m *Model) setPromptText(text string) {
	buf := textbuffer.NewFromText(text)
	buf.CursorRow = len(buf.Lines) - 1
	buf.CursorCol = textbuffer.RuneLen(buf.Lines[buf.CursorRow])
	m.vimState.ctrl.Buffer = buf
	m.syncTextarea()
}

// syncTextarea pushes the engine buffer's text and cursor back onto the
// rendering textarea. SetValue resets the textarea's own cursor to the
// end, so cursor placement always happens after it.
func (m *Model) syncTextarea() {
	buf := m.vimState.ctrl.Buffer
	m.textarea.SetValue(buf.Text())
	total := m.textarea.LineCount()
	for i := total - 1; i > buf.CursorRow; i-- {
		m.textarea.CursorUp()
	}
	m.textarea.SetCursor(buf.CursorCol)
}

// translateKey converts a Bubble Tea msg.String() key into the engine's
// Key shape: ctrl+/alt+/shift+ prefixes become the matching modifier
// bits, a short list of named keys keep their spec-facing names (esc →
// escape, enter → return), and everything else is treated as literal,
// insertable text.
func translateKey(s string) vimcontroller.Key {
	var key vimcontroller.Key
	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok {
		key.Ctrl = true
		s = rest
	}
	if rest, ok := strings.CutPrefix(s, "alt+"); ok {
		key.Meta = true
		s = rest
	}
	if rest, ok := strings.CutPrefix(s, "shift+"); ok {
		key.Shift = true
		s = rest
	}

	switch s {
	case "esc":
		key.Name = "escape"
		return key
	case "enter":
		key.Name = "return"
		return key
	case "tab", "backspace", "up", "down", "left", "right":
		key.Name = s
		return key
	}

	if key.Ctrl || key.Meta {
		key.Name = s
		return key
	}

	key.Sequence = s
	key.Insertable = s != ""
	return key
}

// ─── Status bar rendering ─────────────────────────────────────────────────

// RenderVimMode returns a styled mode badge for the footer.
func (m *Model) RenderVimMode() string {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	mode := m.vimState.mode()
	if mode == textbuffer.ModeInsert {
		return badge.Background(lipgloss.Color("#A6E3A1")).Foreground(lipgloss.Color("#1E1E2E")).Render("INSERT")
	}
	if mode == textbuffer.ModeCommand {
		s := badge.Background(lipgloss.Color("#F9E2AF")).Foreground(lipgloss.Color("#1E1E2E")).Render("COMMAND")
		return s + dimStyle.Render(" "+m.vimState.ctrl.CommandBuffer)
	}

	s := badge.Background(lipgloss.Color("#89B4FA")).Foreground(lipgloss.Color("#1E1E2E")).Render(mode.String())
	ctrl := m.vimState.ctrl
	if ctrl.Count > 0 {
		s += dimStyle.Render(fmt.Sprintf(" %d", ctrl.Count))
	}
	if ctrl.PendingOperator != "" {
		s += dimStyle.Render(" " + ctrl.PendingOperator + "…")
	}
	if ctrl.PendingReplace {
		s += dimStyle.Render(" r…")
	}
	return s
}

// ─── Viewport vim navigation ──────────────────────────────────────────────

// viewportVimState accumulates the numeric count and double-key prefix
// (gg, yy) for the chat viewport's scroll bindings — unrelated to the
// prompt's modal engine, kept separate on purpose.
type viewportVimState struct {
	countStr string
	lastKey  string
}

func (vs *viewportVimState) count() int {
	if vs.countStr == "" {
		return 1
	}
	n := 0
	for _, c := range vs.countStr {
		if c < '0' || c > '9' {
			return 1
		}
		n = n*10 + int(c-'0')
	}
	if n <= 0 {
		n = 1
	}
	if n > 999 {
		n = 999
	}
	return n
}

func (vs *viewportVimState) reset() {
	vs.countStr = ""
	vs.lastKey = ""
}

// handleVimViewport handles vim scroll keys when the viewport (chat history) is focused.
// Returns true if the key was consumed.
func (m *Model) handleVimViewport(key string) bool {
	vs := &m.viewportVim
	count := vs.count()

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		vs.countStr += key
		return true
	}
	if key == "0" && vs.countStr != "" {
		vs.countStr += "0"
		return true
	}

	consumed := true
	switch key {
	case "j", "down":
		m.viewport.LineDown(count)
		vs.reset()
	case "k", "up":
		m.viewport.LineUp(count)
		vs.reset()

	case "ctrl+d":
		for i := 0; i < count; i++ {
			m.viewport.HalfViewDown()
		}
		vs.reset()
	case "ctrl+u":
		for i := 0; i < count; i++ {
			m.viewport.HalfViewUp()
		}
		vs.reset()
	case "ctrl+f", "pgdown":
		for i := 0; i < count; i++ {
			m.viewport.ViewDown()
		}
		vs.reset()
	case "ctrl+b", "pgup":
		for i := 0; i < count; i++ {
			m.viewport.ViewUp()
		}
		vs.reset()

	case "G":
		m.viewport.GotoBottom()
		vs.reset()
	case "g":
		if vs.lastKey == "g" {
			m.viewport.GotoTop()
			vs.reset()
		} else {
			vs.lastKey = "g"
		}

	case "h", "left", "l", "right":
		vs.reset()

	case "y":
		if vs.lastKey == "y" {
			content := m.viewport.View()
			if err := clipboard.WriteAll(content); err == nil {
				m.setStatus("Yanked viewport to clipboard")
			}
			vs.reset()
		} else {
			vs.lastKey = "y"
		}

	case "i":
		m.focusTextarea()
		vs.reset()

	default:
		vs.reset()
		consumed = false
	}

	return consumed
}
