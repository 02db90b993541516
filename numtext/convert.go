// Unexported conversion functions for Vietnamese number-to-text conversion.
package numtext

import (
	"strconv"
	"strings"
)

const (
	growSmall   = 32  // estimated bytes for a 0-999 conversion
	growConvert = 96  // estimated bytes for a full grouped conversion
	growDecimal = 128 // estimated bytes for a decimal conversion

	digitWordBytes = 8 // estimated bytes per digit word, space included
)

// convert converts a digit string to Vietnamese cardinal text.
// Leading zeros are stripped; an all-zero string reads as "không".
// Strings longer than maxConvertDigits after stripping are read digit by
// digit. Non-digit input is returned unchanged.
func convert(s string) string {
	if !allDigits(s) {
		return s
	}

	t := strings.TrimLeft(s, "0")
	if t == "" {
		return wordZero
	}
	if len(t) > maxConvertDigits {
		return convertDigits(t)
	}

	n, err := strconv.ParseUint(t, 10, 64)
	if err != nil {
		return s
	}
	if n < 1000 {
		return convertSmall(n)
	}
	return convertGroups(n)
}

// convertSmall converts n in [0, 999] to Vietnamese text.
func convertSmall(n uint64) string {
	var b strings.Builder
	b.Grow(growSmall)
	writeSmall(&b, n)
	return b.String()
}

// writeSmall writes a number in [0, 999] as Vietnamese text into b.
// This is the irregularity core: "mười" for the 1x tens, "lẻ" when the tens
// position inside a hundreds group is empty, and the tens-place units forms
// mốt/tư/lăm after a spoken tens part.
func writeSmall(b *strings.Builder, n uint64) {
	if n == 0 {
		b.WriteString(wordZero)
		return
	}

	h := n / 100
	r := n % 100

	if h > 0 {
		b.WriteString(digits[h])
		b.WriteByte(' ')
		b.WriteString(wordHundred)
		if r == 0 {
			return
		}
		b.WriteByte(' ')
		if r < 10 {
			b.WriteString(wordOdd)
			b.WriteByte(' ')
			b.WriteString(digits[r])
			return
		}
	}

	t := r / 10
	o := r % 10

	switch {
	case t == 0:
		// Bare units digit: no hundreds context, no tens-place override.
		b.WriteString(digits[o])
	case t == 1:
		b.WriteString(wordTen)
		if o > 0 {
			b.WriteByte(' ')
			b.WriteString(unitsAfterTens[o])
		}
	default:
		b.WriteString(digits[t])
		b.WriteByte(' ')
		b.WriteString(wordTens)
		if o > 0 {
			b.WriteByte(' ')
			b.WriteString(unitsAfterTens[o])
		}
	}
}

// convertGroups converts n >= 1000 by splitting it into little-endian
// base-1000 groups and composing them from the most significant down.
// Zero groups are skipped entirely, so no "không" appears mid-number.
// A later group whose value has no hundreds digit but a non-zero tens digit
// takes an explicit empty-hundreds marker: 2023 reads "hai nghìn không trăm
// hai mươi ba", while a single-digit later group is rendered bare: 1005 reads
// "một nghìn năm".
func convertGroups(n uint64) string {
	var groups [7]uint64
	count := 0
	for n > 0 {
		groups[count] = n % 1000
		n /= 1000
		count++
	}

	var b strings.Builder
	b.Grow(growConvert)

	for i := count - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
			if g >= 10 && g < 100 {
				b.WriteString(wordZero)
				b.WriteByte(' ')
				b.WriteString(wordHundred)
				b.WriteByte(' ')
			}
		}
		writeSmall(&b, g)
		if i > 0 && i < len(scales) {
			b.WriteByte(' ')
			b.WriteString(scales[i])
		}
	}

	return b.String()
}

// convertDigits reads s one digit at a time, space-joined.
// The caller must ensure s is non-empty and all ASCII digits.
func convertDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * digitWordBytes)
	for i := 0; i < len(s); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[s[i]-'0'])
	}
	return b.String()
}

// convertDecimal converts an integer part and a fractional part to
// "<integer> phẩy <digit> <digit> ...". Fractional digits are read
// individually so leading zeros stay audible: "05" reads "không năm".
// The caller must ensure fracPart is non-empty and all ASCII digits.
func convertDecimal(intPart, fracPart string) string {
	var b strings.Builder
	b.Grow(growDecimal)
	b.WriteString(convert(intPart))
	b.WriteByte(' ')
	b.WriteString(wordPoint)
	for i := 0; i < len(fracPart); i++ {
		b.WriteByte(' ')
		b.WriteString(digits[fracPart[i]-'0'])
	}
	return b.String()
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
