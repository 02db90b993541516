// Package tokenizer splits text into character-class tokens with byte
// offsets, as the substrate for numeric text normalization.
//
// Tokens are maximal runs of a single class: Word (letters), Number (ASCII
// digits), Space (whitespace), Punctuation, and Symbol for everything else.
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the original string.
//
// Unlike a general word tokenizer, Word tokens never absorb digits and
// Number tokens never absorb separators: the normalize package needs digit
// runs isolated so that "22T583" splits into "22", "T" and "583".
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import "fmt"

// wordsPerTokenEstimate is the estimated ratio of total tokens to word tokens,
// used to pre-allocate the words slice in the Words convenience function.
const wordsPerTokenEstimate = 2

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Maximal run of letters (any script)
	Number                       // Maximal run of ASCII digits
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) - _ etc.
	Symbol                       // Everything else: emoji, math symbols, etc.
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Space:
		return "Space"
	case Punctuation:
		return "Punctuation"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("xin")[0:3].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// WordTokens splits text into all tokens with metadata.
// The byte offset invariant s[t.Start:t.End] == t.Text holds for every token.
// Concatenating all token texts reconstructs the original string.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(s)
}

// Words returns only Word-type token texts from the text.
// For full control, use WordTokens and filter by Type.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(s)
	words := make([]string, 0, len(tokens)/wordsPerTokenEstimate)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
