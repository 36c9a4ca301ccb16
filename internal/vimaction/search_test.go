package vimaction

import (
	"testing"

	"github.com/kestrelcode/modaledit/internal/textbuffer"
)

// TestSearchNextAfterPrevFlipsDirection exercises the N/n direction-flip
// Open Question decision: N reverses State.LastDirection itself (rather
// than always searching backward), so a later n continues in whichever
// direction N left behind.
func TestSearchNextAfterPrevFlipsDirection(t *testing.T) {
	s := textbuffer.NewFromText("target\nfiller\ntarget")
	s.CursorRow, s.CursorCol = 0, 0 // sits on the first "target"
	s.LastSearchQuery = "target"
	s.LastDirection = textbuffer.Forward

	// N while LastDirection is Forward flips to Backward and wraps to
	// the other "target", on line 2.
	r := Handle(s, Action{Verb: SearchPrev})
	if !r.SearchFound {
		t.Fatal("SearchFound = false, want true")
	}
	if r.State.CursorRow != 2 || r.State.CursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want (2,0)", r.State.CursorRow, r.State.CursorCol)
	}
	if r.State.LastDirection != textbuffer.Backward {
		t.Fatalf("LastDirection = %v, want Backward", r.State.LastDirection)
	}

	// n should continue in the direction N left behind (Backward),
	// wrapping back around to line 0 rather than advancing forward.
	r2 := Handle(r.State, Action{Verb: SearchNext})
	if !r2.SearchFound {
		t.Fatal("SearchFound = false, want true")
	}
	if r2.State.CursorRow != 0 || r2.State.CursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", r2.State.CursorRow, r2.State.CursorCol)
	}
	if r2.State.LastDirection != textbuffer.Backward {
		t.Fatalf("LastDirection = %v, want Backward", r2.State.LastDirection)
	}
}
