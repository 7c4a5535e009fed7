package morphemes

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrTokenMismatch is returned when analyzer tokens do not line up with the text they were produced from.
var ErrTokenMismatch = errors.New("tokens do not match text")

// IsSpace reports whether r is one of the characters analyzers drop and RestoreSpacing puts back.
// U+200D (zero width joiner) is not here - it glues emoji together and analyzers keep it.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	case '\u200b', '\u200c', '\u2060', '\ufeff':
		return true
	}
	return false
}

// RestoreSpacing interleaves analyzer tokens with whitespace tokens (tagged TagSpace), one per whitespace character,
// at positions they occupied in text. Leading and trailing whitespace of text is ignored, so nothing is emitted after
// last token.
//
// Tokens must be text with whitespace removed, in order. When text runs out before tokens do ErrTokenMismatch is
// returned along with whatever was restored so far.
func RestoreSpacing(text string, tokens []Token) ([]Token, error) {

	text = strings.TrimSpace(text)

	results := make([]Token, 0, len(tokens)+len(tokens)/2)
	ptr := 0
	for i, t := range tokens {
		for {
			if ptr >= len(text) {
				return results, fmt.Errorf("token %d %q at offset %d: %w", i, t.Surface, ptr, ErrTokenMismatch)
			}
			r, size := utf8.DecodeRuneInString(text[ptr:])
			if !IsSpace(r) {
				break
			}
			results = append(results, Token{Surface: text[ptr : ptr+size], Tag: TagSpace})
			ptr += size
		}
		results = append(results, t)
		ptr += len(t.Surface)
	}
	return results, nil
}
