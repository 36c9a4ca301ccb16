package tui

// clipboard.go — adapts the OS clipboard to vimcontroller.Clipboard. The
// engine never imports atotto/clipboard directly; this is its only call
// site, mirroring how the teacher's vim.go used to call clipboard.ReadAll/
// WriteAll straight from the key handlers.

import "github.com/atotto/clipboard"

type osClipboard struct{}

func (osClipboard) Read() (string, error) { return clipboard.ReadAll() }
func (osClipboard) Write(s string) error  { return clipboard.WriteAll(s) }

// vimSettings adapts *Model (and its *config.Config) to vimcontroller.
// Settings. cfg.TUI is a pointer and may be nil (no tui block in the
// config file), so both lookups fall back to the documented defaults.
type vimSettings struct {
	m *Model
}

func (s vimSettings) VimModeStyle() string {
	if s.m == nil || s.m.Config == nil || s.m.Config.TUI == nil || s.m.Config.TUI.VimModeStyle == "" {
		return "vim-editor"
	}
	return s.m.Config.TUI.VimModeStyle
}

func (s vimSettings) DisableVimCommandMode() bool {
	if s.m == nil || s.m.Config == nil || s.m.Config.TUI == nil {
		return false
	}
	return s.m.Config.TUI.DisableVimCommandMode
}

// externalEditorPort adapts Model.openExternalEditor (the bound $EDITOR
// flow, normally reached via the ctrl+e shortcut) to the engine's
// fire-and-forget ExternalEditor port for the Ctrl+X Ctrl+E chord.
// openExternalEditor returns a tea.Cmd that must flow back through Bubble
// Tea's own Update loop to actually suspend the program and run $EDITOR;
// Open has no return value, so it stashes the Cmd on the model for
// updateChat to collect once HandleKey returns.
type externalEditorPort struct {
	m *Model
}

func (e externalEditorPort) Open(string) {
	if e.m == nil {
		return
	}
	_, cmd := e.m.openExternalEditor()
	e.m.pendingCmd = cmd
}
