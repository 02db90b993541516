// Package normalize converts numeric spans in Vietnamese text to their
// spelled-out word form for speech synthesis input.
//
// Normalize is the single entry point: it collapses whitespace, splits
// alphanumeric runs, and replaces every recognized datetime, date, decimal,
// and integer span with spoken Vietnamese, leaving other text intact.
//
// Recognition is an ordered sequence of pattern passes over the whole text:
//
//	datetime -> slash date -> dash date -> year-first date ->
//	comma decimal -> dot decimal -> generic integer
//
// The order is an invariant: each later pattern is a syntactic subset of an
// earlier one's tokens (a date's year is itself a valid integer), so later
// passes run only on text the earlier, more specific passes have already
// consumed. Reordering silently changes output for any text containing more
// than one numeric category.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Input is NFC-composed before recognition, so text carrying decomposed
//     combining marks comes back in composed form even when it is digit free.
//   - Dates are always read day-first; DD/MM vs MM/DD is not disambiguated.
//   - Digits inside URLs, emails, and identifiers are converted like any
//     other number (the original system behaves the same way).
//   - Negative numbers, currency symbols, and ordinals are not recognized.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ldblckrs-258/vixtts-demo/tokenizer"
)

// maxInputBytes is the maximum input size for Normalize.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// Normalize converts every recognized numeric, date, and datetime span in s
// to spoken Vietnamese words. Whitespace is collapsed to single spaces and
// trimmed, and alphanumeric runs are space-separated. Digit-free text with
// already-collapsed whitespace passes through unchanged.
// Returns the input unchanged for empty or oversized (>1 MiB) input.
// Normalize never fails: unconvertible fragments pass through as-is.
func Normalize(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}
	s = norm.NFC.String(s)

	s = collapseSpace(s)
	s = separateAlphanumeric(s)

	// Underscores are word characters for the \b patterns below and would
	// mask token boundaries, so they become spaces before recognition.
	s = strings.ReplaceAll(s, "_", " ")

	for _, p := range passes {
		s = p.apply(s)
	}

	// Hyphens are replaced only after recognition: date and datetime passes
	// consume the hyphens that belong to them, identifier hyphens remain
	// and are tokenized away here.
	s = strings.ReplaceAll(s, "-", " ")

	s = reDigitGlue.ReplaceAllString(s, "$1 $2")
	return collapseSpace(s)
}

// collapseSpace folds whitespace runs into single spaces and trims the ends.
func collapseSpace(s string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(s, " "))
}

// separateAlphanumeric inserts a single space at every boundary between a
// letter run and a digit run, in either direction: "22T583XYZ" becomes
// "22 T 583 XYZ". Boundaries against any other character class are left
// untouched.
func separateAlphanumeric(s string) string {
	tokens := tokenizer.WordTokens(s)
	if len(tokens) < 2 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/8)

	prevSplittable := false
	for _, tok := range tokens {
		splittable := tok.Type == tokenizer.Word || tok.Type == tokenizer.Number
		if splittable && prevSplittable {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
		prevSplittable = splittable
	}

	return b.String()
}
