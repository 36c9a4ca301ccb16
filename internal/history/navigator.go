// Package history implements the history-navigation controller: a
// peer of the vim input controller at the prompt level, walking
// previously submitted entries without losing the in-progress draft.
package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const maxEntries = 50

// Navigator is a pure state holder on the tuple (history_index,
// original_draft), parameterised by a read-only message list and the
// external collaborators it needs to reach the live buffer.
//
// history_index == -1 means "at the live draft" (not navigating).
type Navigator struct {
	messages []string // oldest first
	index    int
	original string
	file     string

	// IsActive gates navigate_up/navigate_down; nil means always
	// active. The prompt wires this to "the vim controller is in
	// INSERT mode", the mode in which Up/Down are handed to history
	// instead of the editor.
	IsActive func() bool

	// CurrentDraft fetches the live buffer text; called exactly once
	// per navigation session, at the moment history_index leaves -1.
	CurrentDraft func() string

	// OnChange pushes a history entry (or the restored draft) back
	// into the live buffer.
	OnChange func(text string)

	// Submit is the external submit port invoked by Submit().
	Submit func(text string)
}

// New returns a Navigator backed by file for persistence, loading any
// existing entries.
func New(file string) *Navigator {
	n := &Navigator{index: -1, file: file}
	n.load()
	return n
}

// DefaultFilePath is the teacher's own history location, unchanged.
func DefaultFilePath() string {
	base, _ := os.UserHomeDir()
	return filepath.Join(base, ".local", "share", "modaledit", "prompt-history.jsonl")
}

func (n *Navigator) active() bool {
	return n.IsActive == nil || n.IsActive()
}

func (n *Navigator) emit(text string) {
	if n.OnChange != nil {
		n.OnChange(text)
	}
}

func (n *Navigator) captureDraft() string {
	if n.CurrentDraft != nil {
		return n.CurrentDraft()
	}
	return ""
}

// messageAt maps a history_index in [0, len-1] to the corresponding
// entry, most-recent-first.
func (n *Navigator) messageAt(index int) string {
	return n.messages[len(n.messages)-1-index]
}

// NavigateUp is `navigate_up()`: walks one step further into the
// past, capturing the draft on the first step of a session.
func (n *Navigator) NavigateUp() bool {
	if !n.active() || len(n.messages) == 0 {
		return false
	}
	if n.index == -1 {
		n.original = n.captureDraft()
		n.index = 0
	} else if n.index < len(n.messages)-1 {
		n.index++
	}
	n.emit(n.messageAt(n.index))
	return true
}

// NavigateDown is `navigate_down()`: walks one step toward the
// present, restoring the captured draft on exit.
func (n *Navigator) NavigateDown() bool {
	if n.index == -1 {
		return false
	}
	n.index--
	if n.index == -1 {
		n.emit(n.original)
		n.original = ""
		return true
	}
	n.emit(n.messageAt(n.index))
	return true
}

// GoToIndex is `go_to_index(i)`: clamps i into [-1, len-1] and jumps
// directly, capturing the draft exactly once if this transitions away
// from -1.
func (n *Navigator) GoToIndex(i int) {
	if i < -1 {
		i = -1
	}
	if max := len(n.messages) - 1; i > max {
		i = max
	}
	if n.index == -1 && i != -1 {
		n.original = n.captureDraft()
	}
	n.index = i
	if i == -1 {
		n.emit(n.original)
		n.original = ""
		return
	}
	n.emit(n.messageAt(i))
}

// SubmitValue is `submit(value)`: trims value, invokes the external
// submit port if non-empty, appends it to history, and resets
// navigation state unconditionally.
func (n *Navigator) SubmitValue(value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed != "" {
		if n.Submit != nil {
			n.Submit(trimmed)
		}
		n.append(trimmed)
	}
	n.index = -1
	n.original = ""
}

// append records value as the newest entry, deduplicating an
// immediate repeat the way the teacher's PromptHistory.Append does,
// and persists to disk.
func (n *Navigator) append(value string) {
	if len(n.messages) > 0 && n.messages[len(n.messages)-1] == value {
		return
	}
	n.messages = append(n.messages, value)
	if len(n.messages) > maxEntries {
		n.messages = n.messages[len(n.messages)-maxEntries:]
	}
	n.persist()
}

// load reads history entries from disk, oldest first.
func (n *Navigator) load() {
	if n.file == "" {
		return
	}
	f, err := os.Open(n.file)
	if err != nil {
		return
	}
	defer f.Close()

	var entries []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		var s string
		if err := json.Unmarshal([]byte(line), &s); err == nil && s != "" {
			entries = append(entries, s)
		}
	}
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}
	n.messages = entries
}

func (n *Navigator) persist() {
	if n.file == "" {
		return
	}
	_ = os.MkdirAll(filepath.Dir(n.file), 0o755)
	f, err := os.Create(n.file)
	if err != nil {
		return
	}
	defer f.Close()
	for _, e := range n.messages {
		b, _ := json.Marshal(e)
		_, _ = f.Write(b)
		_, _ = f.Write([]byte("\n"))
	}
}
