// Package textbuffer implements the deterministic, code-point addressed
// line buffer the Vim engine operates on.
package textbuffer

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// combining merges the three Unicode categories that visually attach to
// a preceding base character (nonspacing, spacing-combining, enclosing).
var combining = rangetable.Merge(unicode.Mn, unicode.Mc, unicode.Me)

// RuneLen returns the code-point length of s.
func RuneLen(s string) int {
	return len([]rune(s))
}

// RuneSlice returns the code points of s in [start, end), clamped to the
// valid range. start and end are code-point offsets, not byte offsets.
func RuneSlice(s string, start, end int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// IsWordCharStrict reports whether c is a Vim "word" character: a
// letter, digit, or underscore.
func IsWordCharStrict(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

// IsCombiningMark reports whether c is a Unicode combining mark, i.e. a
// code point that attaches to the preceding base character.
func IsCombiningMark(c rune) bool {
	return unicode.Is(combining, c)
}

// IsWordCharWithCombining reports whether c is a strict word character
// or any combining mark.
func IsWordCharWithCombining(c rune) bool {
	return IsWordCharStrict(c) || IsCombiningMark(c)
}

// CharClass classifies a code point for word-motion (w, b, e)
// purposes: word characters, whitespace, and "other" punctuation each
// form their own contiguous run.
type CharClass int

const (
	ClassWhitespace CharClass = iota
	ClassWord
	ClassOther
)

// Classify returns c's CharClass.
func Classify(c rune) CharClass {
	switch {
	case unicode.IsSpace(c):
		return ClassWhitespace
	case IsWordCharWithCombining(c):
		return ClassWord
	default:
		return ClassOther
	}
}
