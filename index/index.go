// Package index answers questions about a trimmed word list: whether a word
// is playable at a difficulty, a random word, and pattern searches.
package index

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/wordtiers/cache"
	"github.com/domino14/wordtiers/config"
	"github.com/domino14/wordtiers/tiers"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrTooDifficult = errors.New("the word is too difficult")
)

type Index struct {
	minLength int
	maxLength int
	maxTier   int
	tiers     map[string]int
	// length -> tier -> words, each bucket sorted
	byLength map[int]map[int][]string
}

// New indexes entries whose length lies within [minLength, maxLength].
func New(entries []tiers.Entry, minLength, maxLength int) *Index {
	idx := &Index{
		minLength: minLength,
		maxLength: maxLength,
		tiers:     make(map[string]int),
		byLength:  make(map[int]map[int][]string),
	}
	for _, e := range entries {
		l := utf8.RuneCountInString(e.Word)
		if l < minLength || l > maxLength {
			continue
		}
		idx.tiers[e.Word] = e.Rank
		if idx.byLength[l] == nil {
			idx.byLength[l] = make(map[int][]string)
		}
		idx.byLength[l][e.Rank] = append(idx.byLength[l][e.Rank], e.Word)
		idx.maxTier = max(idx.maxTier, e.Rank)
	}
	for _, byTier := range idx.byLength {
		for _, words := range byTier {
			slices.Sort(words)
		}
	}
	return idx
}

func Load(r io.Reader, minLength, maxLength int) (*Index, error) {
	entries, err := tiers.Read(r)
	if err != nil {
		return nil, err
	}
	return New(entries, minLength, maxLength), nil
}

func LoadFile(path string, minLength, maxLength int) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tiered word list: %w", err)
	}
	defer f.Close()
	return Load(f, minLength, maxLength)
}

func loadFunc(cfg *config.Config, key string) (any, error) {
	return LoadFile(key, cfg.GetInt(config.ConfigMinLength), cfg.GetInt(config.ConfigMaxLength))
}

// Get returns the index of the configured output file, loading it once per
// process.
func Get(cfg *config.Config) (*Index, error) {
	obj, err := cache.Load(cfg, cfg.OutputPath(), loadFunc)
	if err != nil {
		return nil, err
	}
	return obj.(*Index), nil
}

func (idx *Index) Len() int {
	return len(idx.tiers)
}

// MaxTier is the hardest tier present.
func (idx *Index) MaxTier() int {
	return idx.maxTier
}

func (idx *Index) Tier(word string) (int, bool) {
	t, ok := idx.tiers[strings.ToLower(word)]
	return t, ok
}

// Check returns nil if word is playable at maxTier. The empty word stands
// for a randomly chosen one and is always fine.
func (idx *Index) Check(word string, maxTier int) error {
	if word == "" {
		return nil
	}
	t, ok := idx.Tier(word)
	if !ok {
		return ErrNotFound
	}
	if t > maxTier {
		return ErrTooDifficult
	}
	return nil
}

// tiersUpTo returns the tiers present for length l that are at most maxTier,
// easiest first.
func (idx *Index) tiersUpTo(l, maxTier int) []int {
	ts := lo.Filter(lo.Keys(idx.byLength[l]), func(t int, _ int) bool {
		return t <= maxTier
	})
	slices.Sort(ts)
	return ts
}

// Random picks uniformly among words of the given length at tier maxTier or
// easier.
func (idx *Index) Random(length, maxTier int) (string, error) {
	byTier := idx.byLength[length]
	ts := idx.tiersUpTo(length, maxTier)
	total := lo.SumBy(ts, func(t int) int { return len(byTier[t]) })
	if total == 0 {
		return "", ErrNotFound
	}
	n := frand.Intn(total)
	for _, t := range ts {
		if n < len(byTier[t]) {
			return byTier[t][n], nil
		}
		n -= len(byTier[t])
	}
	// unreachable: n < total
	return "", ErrNotFound
}
