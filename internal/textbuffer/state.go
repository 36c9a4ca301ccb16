package textbuffer

// Mode enumerates controller modes. Lives here (not in vimcontroller) so
// that State.SelectionAnchor's invariant can be checked without an
// import cycle between textbuffer and vimcontroller.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeVisualLine
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL_LINE"
	case ModeCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// SearchDirection is the direction of a / ? n N search.
type SearchDirection int

const (
	Forward SearchDirection = iota
	Backward
)

// Position is a (row, col) pair in code-point coordinates.
type Position struct {
	Row int
	Col int
}

// MaxUndoDepth bounds State.UndoStack; pushing past it discards the oldest.
const MaxUndoDepth = 100

// State is the buffer's single logical value. It is updated by
// copy-on-write: every mutating operation in internal/vimaction returns a
// new State rather than mutating its receiver in place.
//
// Invariants (see spec §3 / §8):
//   - len(Lines) >= 1; a cleared buffer is []string{""}, never empty.
//   - 0 <= CursorRow < len(Lines).
//   - 0 <= CursorCol <= RuneLen(Lines[CursorRow]).
//   - SelectionAnchor != nil iff the owning controller's mode is
//     VISUAL or VISUAL_LINE (textbuffer itself does not enforce this;
//     vimcontroller does, since Mode is controller-owned).
type State struct {
	Lines           []string
	CursorRow       int
	CursorCol       int
	PreferredCol    *int
	SelectionAnchor *Position
	Clipboard       string
	LastSearchQuery string
	LastDirection   SearchDirection
	UndoStack       []Snapshot
}

// Snapshot is a pre-mutation copy of the parts of State that undo
// restores wholesale. It deliberately excludes UndoStack itself: the
// undo history has no back-references to itself.
type Snapshot struct {
	Lines           []string
	CursorRow       int
	CursorCol       int
	PreferredCol    *int
	SelectionAnchor *Position
	Clipboard       string
	LastSearchQuery string
	LastDirection   SearchDirection
}

// New returns a fresh buffer: a single empty line, cursor at the origin.
func New() State {
	return State{Lines: []string{""}}
}

// NewFromText splits text on "\n" into the initial line set. An empty
// string still yields the single-empty-line invariant via New's shape.
func NewFromText(text string) State {
	lines := splitLines(text)
	if len(lines) == 0 {
		lines = []string{""}
	}
	return State{Lines: lines}
}

func splitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	var lines []string
	start := 0
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	lines = append(lines, text[start:])
	return lines
}

// Text joins Lines back into a single "\n"-separated string.
func (s State) Text() string {
	out := s.Lines[0]
	for _, l := range s.Lines[1:] {
		out += "\n" + l
	}
	return out
}

// clampCursor clamps CursorRow/CursorCol into valid bounds, restoring the
// buffer invariants after a mutation. Every primitive that changes Lines
// or cursor fields must route through this (directly or via ReplaceRange)
// before returning.
func (s State) clampCursor() State {
	if len(s.Lines) == 0 {
		s.Lines = []string{""}
	}
	if s.CursorRow < 0 {
		s.CursorRow = 0
	}
	if s.CursorRow >= len(s.Lines) {
		s.CursorRow = len(s.Lines) - 1
	}
	maxCol := RuneLen(s.Lines[s.CursorRow])
	if s.CursorCol < 0 {
		s.CursorCol = 0
	}
	if s.CursorCol > maxCol {
		s.CursorCol = maxCol
	}
	return s
}

func (s State) snapshot() Snapshot {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	var anchor *Position
	if s.SelectionAnchor != nil {
		a := *s.SelectionAnchor
		anchor = &a
	}
	var preferred *int
	if s.PreferredCol != nil {
		p := *s.PreferredCol
		preferred = &p
	}
	return Snapshot{
		Lines:           lines,
		CursorRow:       s.CursorRow,
		CursorCol:       s.CursorCol,
		PreferredCol:    preferred,
		SelectionAnchor: anchor,
		Clipboard:       s.Clipboard,
		LastSearchQuery: s.LastSearchQuery,
		LastDirection:   s.LastDirection,
	}
}

func (snap Snapshot) restore(s State) State {
	s.Lines = snap.Lines
	s.CursorRow = snap.CursorRow
	s.CursorCol = snap.CursorCol
	s.PreferredCol = snap.PreferredCol
	s.SelectionAnchor = snap.SelectionAnchor
	s.Clipboard = snap.Clipboard
	s.LastSearchQuery = snap.LastSearchQuery
	s.LastDirection = snap.LastDirection
	return s
}
