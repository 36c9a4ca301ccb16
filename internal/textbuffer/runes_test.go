package textbuffer

import "testing"

func TestRuneLenCountsCodePointsNotBytes(t *testing.T) {
	s := "café" // 'é' is a single code point here
	if got := RuneLen(s); got != 4 {
		t.Fatalf("RuneLen(%q) = %d, want 4", s, got)
	}
}

func TestRuneSliceClampsOutOfRange(t *testing.T) {
	if got := RuneSlice("abc", -5, 100); got != "abc" {
		t.Fatalf("RuneSlice out of range = %q, want %q", got, "abc")
	}
	if got := RuneSlice("abc", 2, 1); got != "" {
		t.Fatalf("RuneSlice with start>=end = %q, want empty", got)
	}
}

func TestIsWordCharStrict(t *testing.T) {
	cases := map[rune]bool{
		'a': true, 'Z': true, '9': true, '_': true,
		' ': false, '-': false, '.': false,
	}
	for c, want := range cases {
		if got := IsWordCharStrict(c); got != want {
			t.Errorf("IsWordCharStrict(%q) = %v, want %v", c, got, want)
		}
	}
}

func TestIsCombiningMark(t *testing.T) {
	// U+0301 COMBINING ACUTE ACCENT
	if !IsCombiningMark('́') {
		t.Fatal("expected U+0301 to be a combining mark")
	}
	if IsCombiningMark('a') {
		t.Fatal("'a' should not be a combining mark")
	}
}

func TestIsWordCharWithCombining(t *testing.T) {
	if !IsWordCharWithCombining('́') {
		t.Fatal("combining mark should count as word-with-combining")
	}
	if !IsWordCharWithCombining('a') {
		t.Fatal("'a' should count as word-with-combining")
	}
	if IsWordCharWithCombining(' ') {
		t.Fatal("space should not count as word-with-combining")
	}
}
