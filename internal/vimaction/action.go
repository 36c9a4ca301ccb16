package vimaction

import "github.com/kestrelcode/modaledit/internal/textbuffer"

// Verb names every motion and mutation the reducer understands. Motion
// verbs only ever read and reposition; mutation verbs may push undo.
type Verb int

const (
	MoveLeft Verb = iota
	MoveRight
	MoveUp
	MoveDown
	MoveWordForward
	MoveWordBackward
	MoveWordEnd
	MoveLineStart
	MoveLineEnd
	MoveFirstNonWhitespace
	MoveFirstLine
	MoveLastLine
	MoveToLine
	MoveMatchingPair
	FindCharForward
	FindCharBackward

	DeleteChar
	DeleteCharBefore
	DeleteWordForward
	ChangeWordForward
	DeleteWordBackward
	ChangeWordBackward
	DeleteWordEnd
	ChangeWordEnd
	DeleteLine
	ChangeLine
	DeleteToEndOfLine
	ChangeToEndOfLine
	DeleteToLineStart
	ToggleCase
	ReplaceChar
	OpenLineBelow
	OpenLineAbove
	Paste
	PasteBefore
	Yank
	YankLine
	YankSelection
	YankInnerWord
	DeleteInnerWord
	ChangeInnerWord
	DeleteSelection
	ChangeSelection

	Search
	SearchNext
	SearchPrev

	EnterInsertAtCursor  // i
	EnterInsertAfter     // a
	EnterInsertLineStart // I
	EnterInsertLineEnd   // A
)

// Action is the single tagged-union value dispatched to Handle. Only
// the fields relevant to Verb are read; the rest are zero.
type Action struct {
	Verb Verb
	Count int

	Char rune // find/replace target

	Direction textbuffer.SearchDirection
	Query     string

	Text string // insert payload (e.g. typed character)

	Line int // 1-based, for MoveToLine

	Linewise  bool
	Exclusive bool // t/T vs f/F: stop one short of the matched character

	HasSelection bool
	SelStart     textbuffer.Position
	SelEnd       textbuffer.Position
}

// Result is what a single Handle call produces.
type Result struct {
	State textbuffer.State

	// Changed reports whether the buffer text actually differs from
	// the input, i.e. whether this call should count toward the
	// "last mutating command" repeat record.
	Changed bool

	// EnterInsert signals the controller to switch to INSERT mode
	// after this action (cw, cc, C, o, O, i, a, ...).
	EnterInsert bool

	Yanked string

	SearchFound bool
}
