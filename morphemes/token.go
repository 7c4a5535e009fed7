package morphemes

import (
	"strings"
)

// TagSpace is synthetic tag for whitespace, analyzers never produce it.
const TagSpace = "SP"

// Token is a single analyzer unit: text span and its part-of-speech tag.
type Token struct {
	Surface string
	Tag     string
}

func (t Token) String() string {
	return t.Surface + "/" + t.Tag
}

// IsSpace reports whether token was inserted by RestoreSpacing.
func (t Token) IsSpace() bool {
	return t.Tag == TagSpace
}

// Surfaces extracts surface strings from tokens.
func Surfaces(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Surface)
	}
	return out
}

// Join concatenates surfaces of all tokens.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Surface)
	}
	return b.String()
}

// Backend identifies which family of analyzers has been selected. Callers use it to decide which conventions apply
// to analyzer output.
type Backend string

// Known backends.
const (
	BackendNone   Backend = ""
	BackendMeCab  Backend = "mecab"
	BackendKoNLPy Backend = "konlpy"
	BackendPeCab  Backend = "pecab"
)

func (b Backend) String() string {
	if b == BackendNone {
		return "none"
	}
	return string(b)
}
