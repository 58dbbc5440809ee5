// Package tiers builds the word-to-tier mapping out of a ranked set of word
// lists and writes it out sorted.
package tiers

import (
	"fmt"
	"io"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordtiers/config"
	"github.com/domino14/wordtiers/wordlist"
)

// DifficultyMap maps a normalized word to the rank of the first source that
// contained it.
type DifficultyMap map[string]int

type Entry struct {
	Word string
	Rank int
}

// Sorted returns the entries ordered by word.
func (m DifficultyMap) Sorted() []Entry {
	words := lo.Keys(m)
	slices.Sort(words)
	entries := make([]Entry, len(words))
	for i, w := range words {
		entries[i] = Entry{Word: w, Rank: m[w]}
	}
	return entries
}

// SourceCounts tallies what happened to the lines of one source.
type SourceCounts struct {
	Source     wordlist.Source
	Lines      int
	Accepted   int
	Duplicates int
	NotAlpha   int
	TooShort   int
	TooLong    int
}

func (sc *SourceCounts) record(r wordlist.Reason) {
	switch r {
	case wordlist.Accepted:
		sc.Accepted++
	case wordlist.NotAlpha:
		sc.NotAlpha++
	case wordlist.TooShort:
		sc.TooShort++
	case wordlist.TooLong:
		sc.TooLong++
	}
}

// Builder accumulates a DifficultyMap. Sources must be added in rank order;
// a word already present is never overwritten.
type Builder struct {
	norm  *wordlist.Normalizer
	words DifficultyMap
}

func NewBuilder(norm *wordlist.Normalizer) *Builder {
	return &Builder{norm: norm, words: DifficultyMap{}}
}

// Add reads every line of r as a word from src.
func (b *Builder) Add(src wordlist.Source, r io.Reader) (SourceCounts, error) {
	counts := SourceCounts{Source: src}
	err := wordlist.EachLine(r, func(line string) {
		counts.Lines++
		word, reason := b.norm.Normalize(line)
		if reason != wordlist.Accepted {
			counts.record(reason)
			return
		}
		if _, ok := b.words[word]; ok {
			counts.Duplicates++
			return
		}
		b.words[word] = src.Rank
		counts.Accepted++
	})
	if err != nil {
		return counts, fmt.Errorf("reading word source %s: %w", src.Path, err)
	}
	return counts, nil
}

// AddSource opens src and adds it. A missing file is an error.
func (b *Builder) AddSource(src wordlist.Source) (SourceCounts, error) {
	f, err := wordlist.Open(src.Path)
	if err != nil {
		return SourceCounts{Source: src}, err
	}
	defer f.Close()
	return b.Add(src, f)
}

func (b *Builder) Map() DifficultyMap {
	return b.words
}

type Result struct {
	Entries    []Entry
	Sources    []SourceCounts
	OutputPath string
}

// Build reads every source in order. It stops at the first source that
// cannot be read.
func Build(norm *wordlist.Normalizer, sources []wordlist.Source) (*Result, error) {
	b := NewBuilder(norm)
	res := &Result{}
	for _, src := range sources {
		counts, err := b.AddSource(src)
		if err != nil {
			return nil, err
		}
		log.Debug().
			Str("source", src.Name).
			Int("tier", src.Rank).
			Int("lines", counts.Lines).
			Int("accepted", counts.Accepted).
			Int("duplicates", counts.Duplicates).
			Int("not-alpha", counts.NotAlpha).
			Int("too-short", counts.TooShort).
			Int("too-long", counts.TooLong).
			Msg("read word source")
		res.Sources = append(res.Sources, counts)
	}
	res.Entries = b.Map().Sorted()
	return res, nil
}

// Run builds the mapping from the configured sources and writes it to the
// configured output path. Nothing is written unless every source was read.
func Run(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res, err := Build(cfg.Normalizer(), cfg.Sources())
	if err != nil {
		return nil, err
	}
	res.OutputPath = cfg.OutputPath()
	if err := WriteFile(res.OutputPath, res.Entries); err != nil {
		return nil, err
	}
	log.Info().
		Int("words", len(res.Entries)).
		Int("sources", len(res.Sources)).
		Str("output", res.OutputPath).
		Msg("wrote tiered word list")
	return res, nil
}
