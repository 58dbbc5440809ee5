package index

import (
	"testing"

	"github.com/matryer/is"
)

func TestParsePatternErrors(t *testing.T) {
	is := is.New(t)
	type tc struct {
		pattern string
		err     error
	}
	cases := []tc{
		{"g*e**(s(u))", ErrNestedBrackets},
		{"g*e**([u])", ErrNestedBrackets},
		{"g*e**[(u)]", ErrNestedBrackets},
		{"g*e**)", ErrUnpairedBracket},
		{"g*e**]", ErrUnpairedBracket},
		{"g*e**(su", ErrUnpairedBracket},
		{"g*e**[ab", ErrUnpairedBracket},
		{"g*e**[*]", ErrStarInExclusion},
		{"g?e**", ErrIllegalInput},
		{"g e**", ErrIllegalInput},
		{"(ab)", ErrEmptyPattern},
		{"", ErrEmptyPattern},
	}
	for _, c := range cases {
		_, err := ParsePattern(c.pattern)
		is.Equal(err, c.err)
	}
}

func TestParsePattern(t *testing.T) {
	is := is.New(t)
	p, err := ParsePattern("G*E**(SSU*)[AB]")
	is.NoErr(err)
	is.Equal(string(p.Mask), "g*e**")
	is.Equal(p.Required, map[rune]int{'s': 2, 'u': 1})
	is.Equal(p.Excluded, map[rune]bool{'a': true, 'b': true})
	is.True(p.AllowOthers)
	is.Equal(p.Len(), 5)

	p, err = ParsePattern("*****")
	is.NoErr(err)
	is.True(p.AllowOthers)

	p, err = ParsePattern("*****(es)")
	is.NoErr(err)
	is.True(!p.AllowOthers)
}

func TestMatches(t *testing.T) {
	is := is.New(t)
	type tc struct {
		pattern string
		word    string
		match   bool
	}
	cases := []tc{
		{"*****", "apple", true},
		{"*****", "apples", false},
		{"a****", "apple", true},
		{"b****", "apple", false},
		// exactly the required letters fill the wildcards
		{"g*e**(uss)", "guess", true},
		{"g*e**(uss)", "guest", false},
		{"g*e**(us*)", "guest", true},
		{"g*e**(us*)[t]", "guest", false},
		// a required letter twice needs two wildcard positions
		{"*****(pp*)", "apple", true},
		{"*****(ppp*)", "apple", false},
		{"*****[x]", "apple", true},
		{"*****[p]", "apple", false},
		// mask letters are not subject to exclusion
		{"a****[a]", "apple", true},
	}
	for _, c := range cases {
		p, err := ParsePattern(c.pattern)
		is.NoErr(err)
		is.Equal(p.Matches(c.word), c.match)
	}
}

func TestSearch(t *testing.T) {
	is := is.New(t)
	idx := testIndex(t)

	res, err := idx.Search("g*e**(s*)", 5)
	is.NoErr(err)
	is.Equal(res.Words, []string{"guess", "guest"})
	is.Equal(res.Count(), 2)

	res, err = idx.Search("g*e**(s*)", 1)
	is.NoErr(err)
	is.Equal(res.Words, []string{"guess"})

	// easiest tier first, alphabetical within a tier
	res, err = idx.Search("*****[xz]", 5)
	is.NoErr(err)
	is.Equal(res.Words, []string{
		"apple", "bread", "guess", "house", "queen",
		"audio", "chair", "guest",
		"abbey", "sugar",
		"gusto",
		"kayak",
	})

	res, err = idx.Search("*******", 5)
	is.NoErr(err)
	is.Equal(res.Count(), 0)

	_, err = idx.Search("(ab", 5)
	is.Equal(err, ErrUnpairedBracket)
}
