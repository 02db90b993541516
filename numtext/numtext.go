// Package numtext converts numeric strings to spoken Vietnamese text.
//
// The package provides three reading styles:
//
//   - Convert turns a digit string into cardinal Vietnamese text.
//   - ConvertDecimal reads a decimal value as "<integer> phẩy <digit>...".
//   - ConvertDigits reads a digit string one digit at a time.
//
// Convert groups digits in thousands up to 18 digits ("hai triệu ba trăm
// nghìn chín mươi lăm"); longer strings fall back to digit-by-digit reading
// so precision is never lost. Conversion is fail-soft: input that is not a
// digit string is returned unchanged rather than reported as an error, which
// suits a best-effort speech-synthesis front end.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Signs, separators, and non-ASCII digits are not accepted; callers
//     pass bare ASCII digit runs (the normalize package's patterns do).
//   - There is no words-to-number parse: Vietnamese number text is ambiguous
//     ("năm" is both five and the year marker).
package numtext

// Convert returns the Vietnamese cardinal text for the digit string s.
// Leading zeros are stripped; "0", "00", ... return "không".
// Strings longer than 18 significant digits are read digit by digit.
// Input containing any non-digit character is returned unchanged.
func Convert(s string) string {
	if s == "" {
		return s
	}
	return convert(s)
}

// ConvertDecimal returns the Vietnamese reading of a decimal number given as
// separate integer and fractional digit strings, joined with "phẩy".
// Fractional digits are read individually ("3","14" -> "ba phẩy một bốn").
// Returns an empty string when either part is not a digit string.
func ConvertDecimal(intPart, fracPart string) string {
	if !allDigits(intPart) || !allDigits(fracPart) {
		return ""
	}
	return convertDecimal(intPart, fracPart)
}

// ConvertDigits reads s one digit at a time ("091" -> "không chín một").
// Used for very long numbers, phone numbers, and code sequences.
// Input containing any non-digit character is returned unchanged.
func ConvertDigits(s string) string {
	if !allDigits(s) {
		return s
	}
	return convertDigits(s)
}
