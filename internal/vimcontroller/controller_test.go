package vimcontroller

import (
	"testing"

	"github.com/kestrelcode/modaledit/internal/textbuffer"
)

func charKey(s string) Key {
	return Key{Sequence: s, Insertable: true}
}

func namedKey(name string) Key {
	return Key{Name: name}
}

func newNormalController(text string) *Controller {
	c := New(Ports{})
	c.Buffer = textbuffer.NewFromText(text)
	c.Mode = textbuffer.ModeNormal
	return c
}

func TestScenario1InsertThenEscape(t *testing.T) {
	c := newNormalController("")
	c.HandleKey(charKey("i"))
	c.HandleKey(charKey("h"))
	c.HandleKey(charKey("i"))
	c.HandleKey(namedKey("escape"))

	if got := c.Buffer.Text(); got != "hi" {
		t.Fatalf("Text() = %q, want %q", got, "hi")
	}
	if c.Buffer.CursorRow != 0 || c.Buffer.CursorCol != 1 {
		t.Fatalf("cursor = (%d,%d), want (0,1)", c.Buffer.CursorRow, c.Buffer.CursorCol)
	}
	if c.Mode != textbuffer.ModeNormal {
		t.Fatalf("Mode = %v, want NORMAL", c.Mode)
	}
}

func TestScenario2CountWordMotion(t *testing.T) {
	c := newNormalController("alpha beta gamma delta")
	c.HandleKey(charKey("3"))
	c.HandleKey(charKey("w"))

	if c.Buffer.CursorRow != 0 || c.Buffer.CursorCol != 17 {
		t.Fatalf("cursor = (%d,%d), want (0,17)", c.Buffer.CursorRow, c.Buffer.CursorCol)
	}
}

func TestScenario3ChangeWord(t *testing.T) {
	c := newNormalController("alpha beta gamma delta")
	c.HandleKey(charKey("c"))
	c.HandleKey(charKey("w"))
	c.HandleKey(charKey("x"))
	c.HandleKey(namedKey("escape"))

	if got := c.Buffer.Text(); got != "x beta gamma delta" {
		t.Fatalf("Text() = %q, want %q", got, "x beta gamma delta")
	}
	if c.Buffer.CursorRow != 0 || c.Buffer.CursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", c.Buffer.CursorRow, c.Buffer.CursorCol)
	}
}

func TestScenario4LinewiseYankAndPaste(t *testing.T) {
	c := newNormalController("foo\nbar")
	c.HandleKey(charKey("y"))
	c.HandleKey(charKey("y"))
	c.HandleKey(charKey("j"))
	c.HandleKey(charKey("p"))

	if got := c.Buffer.Text(); got != "foo\nbar\nfoo" {
		t.Fatalf("Text() = %q, want %q", got, "foo\nbar\nfoo")
	}
}

func TestScenario5UndoAfterChange(t *testing.T) {
	c := newNormalController("alpha beta gamma delta")
	c.HandleKey(charKey("c"))
	c.HandleKey(charKey("w"))
	c.HandleKey(charKey("x"))
	c.HandleKey(namedKey("escape"))
	c.HandleKey(charKey("u"))

	if got := c.Buffer.Text(); got != "alpha beta gamma delta" {
		t.Fatalf("Text() = %q, want %q", got, "alpha beta gamma delta")
	}
	if c.Buffer.CursorRow != 0 || c.Buffer.CursorCol != 0 {
		t.Fatalf("cursor after undo = (%d,%d), want (0,0)", c.Buffer.CursorRow, c.Buffer.CursorCol)
	}
}

func TestDotRepeatsDeleteChar(t *testing.T) {
	c := newNormalController("abcdef")
	c.HandleKey(charKey("x"))
	c.HandleKey(charKey("."))
	if got := c.Buffer.Text(); got != "cdef" {
		t.Fatalf("Text() = %q, want %q", got, "cdef")
	}
}

func TestDotRepeatsChangeWithInsertedText(t *testing.T) {
	c := newNormalController("alpha beta")
	c.HandleKey(charKey("c"))
	c.HandleKey(charKey("w"))
	c.HandleKey(charKey("X"))
	c.HandleKey(namedKey("escape"))
	// Cursor now sits on the inserted "X" at the start of the line.
	c.HandleKey(charKey("."))
	// cw on the one-letter word "X" replaces it with the recorded "X".
	if got := c.Buffer.Text(); got != "X beta" {
		t.Fatalf("Text() = %q, want %q", got, "X beta")
	}
}

func TestOperatorArmsAndClearsOnUnknownKey(t *testing.T) {
	c := newNormalController("abc")
	c.HandleKey(charKey("d"))
	if c.PendingOperator != "d" {
		t.Fatalf("PendingOperator = %q, want %q", c.PendingOperator, "d")
	}
	c.HandleKey(charKey("x")) // x is not a composable motion -> clears pending
	if c.PendingOperator != "" {
		t.Fatalf("PendingOperator = %q, want empty after unrelated key", c.PendingOperator)
	}
}

func TestVisualModeDeleteSelection(t *testing.T) {
	c := newNormalController("abcdef")
	c.HandleKey(charKey("v"))
	c.HandleKey(charKey("l"))
	c.HandleKey(charKey("l"))
	c.HandleKey(charKey("x"))
	if got := c.Buffer.Text(); got != "def" {
		t.Fatalf("Text() = %q, want %q", got, "def")
	}
	if c.Mode != textbuffer.ModeNormal {
		t.Fatalf("Mode = %v, want NORMAL after visual delete", c.Mode)
	}
}

func TestEscapeExitsVisualMode(t *testing.T) {
	c := newNormalController("abcdef")
	c.HandleKey(charKey("v"))
	c.HandleKey(charKey("l"))
	c.HandleKey(namedKey("escape"))
	if c.Mode != textbuffer.ModeNormal {
		t.Fatalf("Mode = %v, want NORMAL after escape from VISUAL", c.Mode)
	}
	if c.Buffer.SelectionAnchor != nil {
		t.Fatal("SelectionAnchor not cleared after escape from VISUAL")
	}
}

func TestCommandModeSearch(t *testing.T) {
	c := newNormalController("one\ntwo\nneedle")
	c.HandleKey(charKey(":"))
	// Overwrite with a search prefix instead, since ':' already entered COMMAND.
	c.CommandBuffer = "/needle"
	c.HandleKey(namedKey("return"))
	if c.Buffer.CursorRow != 2 {
		t.Fatalf("CursorRow = %d, want 2", c.Buffer.CursorRow)
	}
}

func TestBashVimStylePassesJKThrough(t *testing.T) {
	c := newNormalController("one\ntwo")
	c.Ports = Ports{Settings: fakeSettings{style: "bash-vim"}}
	if c.HandleKey(charKey("j")) {
		t.Fatal("HandleKey(j) = true, want false (pass-through) in bash-vim style")
	}
}

type fakeSettings struct {
	style    string
	disabled bool
}

func (f fakeSettings) VimModeStyle() string        { return f.style }
func (f fakeSettings) DisableVimCommandMode() bool { return f.disabled }
