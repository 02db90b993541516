// Package datetext composes spoken Vietnamese date and time phrases from
// numeric components.
//
// The package builds the canonical phrase forms used by the speech front end:
//
//   - ConvertDate produces "ngày <day> tháng <month> năm <year>".
//   - ConvertTime produces "giờ <hour> phút <minute> giây <second>".
//   - ConvertDatetime joins both for a full timestamp.
//
// Components are digit strings as captured from text: leading zeros are
// trimmed ("05" reads as "năm"), and a component that is empty after trimming
// reads as zero. Months use the month-name table with the irregular "tư" for
// month 4; anything outside "1".."12" falls back to cardinal number reading.
//
// All functions are safe for concurrent use by multiple goroutines.
package datetext

import (
	"strings"

	"github.com/ldblckrs-258/vixtts-demo/numtext"
)

const growPhrase = 128 // estimated bytes for a full datetime phrase

// ConvertDate returns the spoken form "ngày <day> tháng <month> năm <year>".
// Day and month are leading-zero trimmed before conversion; the year is read
// as a cardinal ("2023" -> "hai nghìn không trăm hai mươi ba").
func ConvertDate(day, month, year string) string {
	var b strings.Builder
	b.Grow(growPhrase)
	writeDate(&b, day, month, year)
	return b.String()
}

// ConvertTime returns the spoken form "giờ <hour> phút <minute> giây <second>".
// Each component is leading-zero trimmed, so "00" reads as "không".
func ConvertTime(hour, minute, second string) string {
	var b strings.Builder
	b.Grow(growPhrase)
	writeTime(&b, hour, minute, second)
	return b.String()
}

// ConvertDatetime returns the full spoken timestamp: the date phrase followed
// by the time phrase. Components arrive in year-first order, matching the
// YYYY-MM-DD HH:MM:SS source format.
func ConvertDatetime(year, month, day, hour, minute, second string) string {
	var b strings.Builder
	b.Grow(2 * growPhrase)
	writeDate(&b, day, month, year)
	b.WriteByte(' ')
	writeTime(&b, hour, minute, second)
	return b.String()
}

func writeDate(b *strings.Builder, day, month, year string) {
	day = trimZeros(day)
	month = trimZeros(month)

	monthText, ok := months[month]
	if !ok {
		monthText = numtext.Convert(month)
	}

	b.WriteString(wordDay)
	b.WriteByte(' ')
	b.WriteString(numtext.Convert(day))
	b.WriteByte(' ')
	b.WriteString(wordMonth)
	b.WriteByte(' ')
	b.WriteString(monthText)
	b.WriteByte(' ')
	b.WriteString(wordYear)
	b.WriteByte(' ')
	b.WriteString(numtext.Convert(trimZeros(year)))
}

func writeTime(b *strings.Builder, hour, minute, second string) {
	b.WriteString(wordHour)
	b.WriteByte(' ')
	b.WriteString(numtext.Convert(trimZeros(hour)))
	b.WriteByte(' ')
	b.WriteString(wordMinute)
	b.WriteByte(' ')
	b.WriteString(numtext.Convert(trimZeros(minute)))
	b.WriteByte(' ')
	b.WriteString(wordSecond)
	b.WriteByte(' ')
	b.WriteString(numtext.Convert(trimZeros(second)))
}

// trimZeros strips leading zeros; a component that becomes empty is zero.
func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}
