// Package strs provides string helpers that keep call sites short:
// truncation, delimiter-based pop/shift and whole-word matching.
package strs

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Ellipsis marks the elided part of a truncated string.
const Ellipsis = "..."

var (
	// ErrInvalidPosition is returned by Truncate for an unknown Position.
	ErrInvalidPosition = errors.New("strs: unknown truncate position")

	// ErrInvalidLength is returned by Truncate for a negative length.
	ErrInvalidLength = errors.New("strs: length must not be negative")
)

// Position selects which part of a string Truncate removes.
type Position int

const (
	// Left keeps the end of the string: "...world".
	Left Position = iota
	// Center keeps both ends: "hel...rld".
	Center
	// Right keeps the start of the string: "hello...".
	Right
)

func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Truncate shortens value to maxLength runes and marks the cut with
// [Ellipsis]. Strings already within maxLength are returned unchanged.
//
// With Center the kept runes are split between both ends, the extra one
// going to the front:
//
//	strs.Truncate("abcdefghij", 4, strs.Center) // → "ab...ij"
func Truncate(value string, maxLength int, pos Position) (string, error) {
	if maxLength < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, maxLength)
	}
	if pos < Left || pos > Right {
		return "", fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	runes := []rune(value)
	n := len(runes)
	if n <= maxLength {
		return value, nil
	}
	switch pos {
	case Right:
		return string(runes[:maxLength]) + Ellipsis, nil
	case Left:
		return Ellipsis + string(runes[n-maxLength:]), nil
	}
	front := maxLength - maxLength/2
	back := maxLength / 2
	return string(runes[:front]) + Ellipsis + string(runes[n-back:]), nil
}

// Pop splits s by delimiter, removes amount segments from the end and joins
// the rest back together.
//
//	strs.Pop("a/b/c/d", "/", 2) // → "a/b"
func Pop(s, delimiter string, amount int) string {
	return strings.Join(lo.DropRight(strings.Split(s, delimiter), max(amount, 0)), delimiter)
}

// Shift splits s by delimiter, removes amount segments from the start and
// joins the rest back together.
//
//	strs.Shift("a/b/c/d", "/", 1) // → "b/c/d"
func Shift(s, delimiter string, amount int) string {
	return strings.Join(lo.Drop(strings.Split(s, delimiter), max(amount, 0)), delimiter)
}

// PopEx removes the last delimited segment from s and returns the shortened
// string together with the removed segment. When delimiter does not occur in
// s, s is returned unchanged and ok is false.
//
//	rest, last, _ := strs.PopEx("doug,30,manager", ",") // "doug,30", "manager"
func PopEx(s, delimiter string) (rest, popped string, ok bool) {
	i := strings.LastIndex(s, delimiter)
	if delimiter == "" || i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(delimiter):], true
}

// ShiftEx removes the first delimited segment from s and returns the
// shortened string together with the removed segment. When delimiter does
// not occur in s, s is returned unchanged and ok is false.
//
//	rest, first, _ := strs.ShiftEx("doug,30,manager", ",") // "30,manager", "doug"
func ShiftEx(s, delimiter string) (rest, shifted string, ok bool) {
	first, after, found := strings.Cut(s, delimiter)
	if delimiter == "" || !found {
		return s, "", false
	}
	return after, first, true
}

func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// ContainsWord reports whether word occurs in haystack as a whole word,
// ignoring case.
func ContainsWord(haystack, word string) bool {
	return wordPattern(word).MatchString(haystack)
}

// ReplaceWord replaces every whole-word, case-insensitive occurrence of
// word in haystack with replacement.
func ReplaceWord(haystack, word, replacement string) string {
	return wordPattern(word).ReplaceAllLiteralString(haystack, replacement)
}

// ReplaceWords applies [ReplaceWord] for each old, new pair in order.
// A trailing unpaired argument is ignored.
//
//	strs.ReplaceWords("the cat sat", "cat", "dog", "sat", "ran") // → "the dog ran"
func ReplaceWords(haystack string, oldnew ...string) string {
	for i := 0; i+1 < len(oldnew); i += 2 {
		haystack = ReplaceWord(haystack, oldnew[i], oldnew[i+1])
	}
	return haystack
}

// Matches returns the leftmost match of pattern in subject followed by its
// submatches. It returns an empty slice when nothing matches.
func Matches(pattern, subject string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	m := re.FindStringSubmatch(subject)
	if m == nil {
		return []string{}, nil
	}
	return m, nil
}
