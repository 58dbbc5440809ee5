package index

import (
	"errors"
	"strings"
	"unicode"
)

const wildcard = '*'

var (
	ErrNestedBrackets  = errors.New("nested brackets not supported")
	ErrUnpairedBracket = errors.New("unpaired bracket found")
	ErrStarInExclusion = errors.New("* inside [] not allowed")
	ErrIllegalInput    = errors.New("illegal input")
	ErrEmptyPattern    = errors.New("pattern has no letter positions")
)

// Pattern is a parsed search pattern such as "g*e**(su)[ab]".
//
// Letters and * outside brackets are the positional mask. Letters in ()
// must fill some of the * positions, as many times as they are listed; a *
// inside () allows other letters in the remaining * positions as well.
// Without any () group other letters are always allowed. Letters in [] may
// not fill any * position.
type Pattern struct {
	Mask        []rune
	Required    map[rune]int
	Excluded    map[rune]bool
	AllowOthers bool
}

func ParsePattern(s string) (*Pattern, error) {
	p := &Pattern{
		Required: make(map[rune]int),
		Excluded: make(map[rune]bool),
	}
	inRequired, inExcluded, sawRequired := false, false, false
	for _, ch := range strings.ToLower(s) {
		switch {
		case ch == '(':
			if inRequired || inExcluded {
				return nil, ErrNestedBrackets
			}
			inRequired, sawRequired = true, true
		case ch == ')':
			if !inRequired {
				return nil, ErrUnpairedBracket
			}
			inRequired = false
		case ch == '[':
			if inRequired || inExcluded {
				return nil, ErrNestedBrackets
			}
			inExcluded = true
		case ch == ']':
			if !inExcluded {
				return nil, ErrUnpairedBracket
			}
			inExcluded = false
		case unicode.IsLetter(ch):
			switch {
			case inRequired:
				p.Required[ch]++
			case inExcluded:
				p.Excluded[ch] = true
			default:
				p.Mask = append(p.Mask, ch)
			}
		case ch == wildcard:
			switch {
			case inRequired:
				p.AllowOthers = true
			case inExcluded:
				return nil, ErrStarInExclusion
			default:
				p.Mask = append(p.Mask, ch)
			}
		default:
			return nil, ErrIllegalInput
		}
	}
	if inRequired || inExcluded {
		return nil, ErrUnpairedBracket
	}
	if len(p.Mask) == 0 {
		return nil, ErrEmptyPattern
	}
	if !sawRequired {
		p.AllowOthers = true
	}
	return p, nil
}

// Len is the word length the pattern matches.
func (p *Pattern) Len() int {
	return len(p.Mask)
}

func (p *Pattern) Matches(word string) bool {
	letters := []rune(word)
	if len(letters) != len(p.Mask) {
		return false
	}
	used := make(map[rune]int)
	for i, ch := range letters {
		if ch == p.Mask[i] {
			continue
		}
		switch {
		case p.Mask[i] != wildcard:
			return false
		case p.Excluded[ch]:
			return false
		case used[ch] < p.Required[ch]:
			used[ch]++
		case !p.AllowOthers:
			return false
		}
	}
	for ch, n := range p.Required {
		if used[ch] < n {
			return false
		}
	}
	return true
}

type SearchResult struct {
	Pattern string
	Words   []string
}

func (sr *SearchResult) Count() int {
	return len(sr.Words)
}

// Search returns words matching pattern at tier maxTier or easier, easiest
// tier first and alphabetical within a tier.
func (idx *Index) Search(pattern string, maxTier int) (*SearchResult, error) {
	p, err := ParsePattern(pattern)
	if err != nil {
		return nil, err
	}
	res := &SearchResult{Pattern: pattern}
	byTier := idx.byLength[p.Len()]
	for _, t := range idx.tiersUpTo(p.Len(), maxTier) {
		for _, w := range byTier[t] {
			if p.Matches(w) {
				res.Words = append(res.Words, w)
			}
		}
	}
	return res, nil
}
