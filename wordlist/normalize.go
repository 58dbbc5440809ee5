package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Reason says why a line was or wasn't accepted.
type Reason int

const (
	Accepted Reason = iota
	NotAlpha
	TooShort
	TooLong
)

func (r Reason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case NotAlpha:
		return "not-alpha"
	case TooShort:
		return "too-short"
	case TooLong:
		return "too-long"
	}
	return "unknown"
}

var stripper = strings.NewReplacer("\r\n", "", "\n", "", " ", "")

// Normalizer turns a raw line into a candidate word. It is not safe for
// concurrent use.
type Normalizer struct {
	MinLength int
	MaxLength int

	caser cases.Caser
}

func NewNormalizer(minLength, maxLength int) *Normalizer {
	return &Normalizer{
		MinLength: minLength,
		MaxLength: maxLength,
		caser:     cases.Lower(language.Und),
	}
}

// Normalize strips line terminators and spaces and lowercases the line.
// The word is usable only if the Reason is Accepted; length is counted in
// runes and both bounds are inclusive.
func (n *Normalizer) Normalize(line string) (string, Reason) {
	word := n.caser.String(stripper.Replace(line))
	if !IsAlpha(word) {
		return word, NotAlpha
	}
	l := utf8.RuneCountInString(word)
	if l < n.MinLength {
		return word, TooShort
	}
	if l > n.MaxLength {
		return word, TooLong
	}
	return word, Accepted
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
