// Package vimcontroller is the modal key-to-action state machine that
// sits in front of internal/vimaction's pure reducer. It owns the
// buffer, the pending-operator bookkeeping, and the capability bundle
// (Ports) through which it reaches the surrounding application.
package vimcontroller

import "github.com/kestrelcode/modaledit/internal/textbuffer"

// Clipboard bridges the engine's in-process register to the host OS
// clipboard. Distinct from textbuffer.State.Clipboard, which is always
// the single unnamed in-process register the core spec defines.
type Clipboard interface {
	Read() (string, error)
	Write(string) error
}

// ExternalEditor launches $EDITOR on the current buffer text. Fire and
// forget: the controller does not await it.
type ExternalEditor interface {
	Open(text string)
}

// Settings is read on every dispatch; the controller never caches
// these values.
type Settings interface {
	VimModeStyle() string // "vim-editor" (default) | "bash-vim"
	DisableVimCommandMode() bool
}

// Observer is notified after a state transition is committed. It must
// never feed a synthetic key back into HandleKey.
type Observer interface {
	OnModeChange(textbuffer.Mode)
	OnCommandBufferChange(string)
}

// Ports is the capability bundle passed into New. Every field may be
// nil; the controller degrades gracefully (Ctrl+X Ctrl+E becomes a
// no-op without an ExternalEditor, Enter never submits without Submit,
// a nil Settings means the vim-editor style with command mode enabled,
// and so on).
type Ports struct {
	Clipboard      Clipboard
	ExternalEditor ExternalEditor
	Settings       Settings
	Observer       Observer

	// Submit is called on Enter in INSERT with non-empty trimmed text.
	Submit func(text string)

	// Warn reports malformed key input or other debug-level
	// conditions; mirrors the teacher's Model.setStatus toast path
	// rather than pulling in a logging library.
	Warn func(format string, args ...any)

	// ExCommand handles a recognised `:w`/`:q`/`:wq` name; returning
	// false means "not recognised" (no-op either way, per spec.md's
	// open question — wiring the action up is left to the host).
	ExCommand func(name string) bool
}

func (p Ports) warn(format string, args ...any) {
	if p.Warn != nil {
		p.Warn(format, args...)
	}
}

func (p Ports) vimModeStyle() string {
	if p.Settings == nil {
		return "vim-editor"
	}
	return p.Settings.VimModeStyle()
}

func (p Ports) commandModeDisabled() bool {
	if p.Settings == nil {
		return false
	}
	return p.Settings.DisableVimCommandMode()
}

func (p Ports) notifyMode(m textbuffer.Mode) {
	if p.Observer != nil {
		p.Observer.OnModeChange(m)
	}
}

func (p Ports) notifyCommandBuffer(s string) {
	if p.Observer != nil {
		p.Observer.OnCommandBufferChange(s)
	}
}
