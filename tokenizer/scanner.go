package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// wordTokens splits s into class-run tokens with a rune-by-rune scan.
// The caller guarantees s is non-empty.
//
// Class priority per rune (highest first):
//   - ASCII digit -> Number (non-ASCII digits classify as Symbol so the
//     normalizer never mistakes them for convertible numerals)
//   - unicode.IsSpace -> Space
//   - unicode.IsLetter -> Word
//   - unicode.IsPunct -> Punctuation
//   - anything else -> Symbol
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case isDigitByte(s[i]):
			end := i + 1
			for end < len(s) && isDigitByte(s[end]) {
				end++
			}
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Number})
			i = end

		case unicode.IsSpace(r):
			end := scanRun(s, i+size, unicode.IsSpace)
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Space})
			i = end

		case unicode.IsLetter(r):
			end := scanRun(s, i+size, unicode.IsLetter)
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Word})
			i = end

		case unicode.IsPunct(r):
			end := i + size
			// Merge consecutive identical punctuation for cases like "--" and "...".
			for end < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[end:])
				if nr != r {
					break
				}
				end += ns
			}
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Punctuation})
			i = end

		default:
			tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
			i += size
		}
	}

	return tokens
}

// scanRun advances from pos while runes satisfy pred and returns the end offset.
func scanRun(s string, pos int, pred func(rune) bool) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !pred(r) {
			break
		}
		pos += size
	}
	return pos
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
