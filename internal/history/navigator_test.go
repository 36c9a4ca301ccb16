package history

import "testing"

func newTestNavigator(messages []string, draft string) *Navigator {
	n := &Navigator{index: -1, messages: append([]string(nil), messages...)}
	n.CurrentDraft = func() string { return draft }
	var last string
	n.OnChange = func(text string) { last = text }
	_ = last
	return n
}

func emitted(n *Navigator, fn func()) string {
	var got string
	n.OnChange = func(text string) { got = text }
	fn()
	return got
}

func TestHistoryRoundTrip(t *testing.T) {
	n := newTestNavigator([]string{"one", "two", "three"}, "draft")

	want := []string{"three", "two", "one", "two", "three", "draft"}
	var got []string
	got = append(got, emitted(n, func() { n.NavigateUp() }))
	got = append(got, emitted(n, func() { n.NavigateUp() }))
	got = append(got, emitted(n, func() { n.NavigateUp() }))
	got = append(got, emitted(n, func() { n.NavigateDown() }))
	got = append(got, emitted(n, func() { n.NavigateDown() }))
	got = append(got, emitted(n, func() { n.NavigateDown() }))

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
	if n.index != -1 {
		t.Fatalf("index = %d, want -1 after returning to draft", n.index)
	}
}

func TestNavigateUpNoOpWhenEmpty(t *testing.T) {
	n := newTestNavigator(nil, "draft")
	if n.NavigateUp() {
		t.Fatal("NavigateUp() = true with no messages, want false")
	}
}

func TestNavigateUpNoOpWhenInactive(t *testing.T) {
	n := newTestNavigator([]string{"one"}, "draft")
	n.IsActive = func() bool { return false }
	if n.NavigateUp() {
		t.Fatal("NavigateUp() = true while inactive, want false")
	}
}

func TestNavigateUpClampsAtOldest(t *testing.T) {
	n := newTestNavigator([]string{"one", "two"}, "draft")
	n.NavigateUp()
	n.NavigateUp()
	got := emitted(n, func() { n.NavigateUp() })
	if got != "one" {
		t.Fatalf("NavigateUp() at oldest = %q, want %q", got, "one")
	}
}

func TestNavigateDownNoOpAtDraft(t *testing.T) {
	n := newTestNavigator([]string{"one"}, "draft")
	if n.NavigateDown() {
		t.Fatal("NavigateDown() = true at draft (-1), want false")
	}
}

func TestGoToIndexClampsAndCapturesDraftOnce(t *testing.T) {
	n := newTestNavigator([]string{"one", "two", "three"}, "draft")
	got := emitted(n, func() { n.GoToIndex(99) })
	if got != "one" {
		t.Fatalf("GoToIndex(99) = %q, want %q (clamped to oldest)", got, "one")
	}
	// A second jump must not re-capture the draft.
	got = emitted(n, func() { n.GoToIndex(0) })
	if got != "three" {
		t.Fatalf("GoToIndex(0) = %q, want %q", got, "three")
	}
	got = emitted(n, func() { n.GoToIndex(-5) })
	if got != "draft" {
		t.Fatalf("GoToIndex(-5) = %q, want original draft %q", got, "draft")
	}
}

func TestSubmitResetsNavigationAndAppends(t *testing.T) {
	n := newTestNavigator([]string{"one"}, "draft")
	n.NavigateUp()

	var submitted string
	n.Submit = func(text string) { submitted = text }
	n.SubmitValue("  two  ")

	if submitted != "two" {
		t.Fatalf("Submit port received %q, want %q", submitted, "two")
	}
	if n.index != -1 || n.original != "" {
		t.Fatalf("navigation state not reset after submit: index=%d original=%q", n.index, n.original)
	}
	if len(n.messages) != 2 || n.messages[1] != "two" {
		t.Fatalf("messages = %v, want appended entry", n.messages)
	}
}

func TestSubmitIgnoresBlankValue(t *testing.T) {
	n := newTestNavigator(nil, "draft")
	called := false
	n.Submit = func(string) { called = true }
	n.SubmitValue("   ")
	if called {
		t.Fatal("Submit port invoked for blank value")
	}
	if len(n.messages) != 0 {
		t.Fatalf("messages = %v, want empty after blank submit", n.messages)
	}
}

func TestAppendDeduplicatesImmediateRepeat(t *testing.T) {
	n := newTestNavigator([]string{"one"}, "draft")
	n.SubmitValue("one")
	if len(n.messages) != 1 {
		t.Fatalf("messages = %v, want dedup to keep a single entry", n.messages)
	}
}
