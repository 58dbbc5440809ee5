// Package report summarizes a trim run.
package report

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordtiers/stats"
	"github.com/domino14/wordtiers/tiers"
)

type SourceSummary struct {
	Name       string `yaml:"name"`
	Path       string `yaml:"path"`
	Tier       int    `yaml:"tier"`
	Lines      int    `yaml:"lines"`
	Accepted   int    `yaml:"accepted"`
	Duplicates int    `yaml:"duplicates"`
	NotAlpha   int    `yaml:"not_alpha"`
	TooShort   int    `yaml:"too_short"`
	TooLong    int    `yaml:"too_long"`
}

type Report struct {
	Output      string          `yaml:"output"`
	Digest      string          `yaml:"xxhash64"`
	Words       int             `yaml:"words"`
	PerTier     map[int]int     `yaml:"per_tier"`
	LengthMean  float64         `yaml:"length_mean"`
	LengthStdev float64         `yaml:"length_stdev"`
	Sources     []SourceSummary `yaml:"sources"`
}

func New(res *tiers.Result, digest uint64) *Report {
	var lengths stats.Statistic
	for _, e := range res.Entries {
		lengths.Push(float64(utf8.RuneCountInString(e.Word)))
	}
	return &Report{
		Output: res.OutputPath,
		Digest: fmt.Sprintf("%016x", digest),
		Words:  len(res.Entries),
		PerTier: lo.CountValuesBy(res.Entries, func(e tiers.Entry) int {
			return e.Rank
		}),
		LengthMean:  lengths.Mean(),
		LengthStdev: lengths.Stdev(),
		Sources: lo.Map(res.Sources, func(sc tiers.SourceCounts, _ int) SourceSummary {
			return SourceSummary{
				Name:       sc.Source.Name,
				Path:       sc.Source.Path,
				Tier:       sc.Source.Rank,
				Lines:      sc.Lines,
				Accepted:   sc.Accepted,
				Duplicates: sc.Duplicates,
				NotAlpha:   sc.NotAlpha,
				TooShort:   sc.TooShort,
				TooLong:    sc.TooLong,
			}
		}),
	}
}

// Digest is the xxhash64 of the file at path.
func Digest(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Log emits the summary at info level.
func (r *Report) Log() {
	ev := log.Info().
		Str("output", r.Output).
		Str("xxhash64", r.Digest).
		Int("words", r.Words).
		Float64("length-mean", r.LengthMean).
		Float64("length-stdev", r.LengthStdev)
	for _, s := range r.Sources {
		ev = ev.Int(fmt.Sprintf("tier-%d", s.Tier), r.PerTier[s.Tier])
	}
	ev.Msg("trim summary")
}
