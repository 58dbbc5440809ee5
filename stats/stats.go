package stats

import (
	"io"
	"math"
	"slices"

	"github.com/aybabtme/uniplot/histogram"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean and variance over pushed values.
type Statistic struct {
	n    int
	mean float64
	// sum of squared differences from the current mean (Welford)
	m2 float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Iterations() int {
	return s.n
}

// LengthHistogram prints one bar per word length from the shortest to the
// longest in lengths. The label of the bar for length n reads "n-n+1", a
// half-open range. Nothing is printed for an empty input.
func LengthHistogram(w io.Writer, lengths []int, width int) error {
	if len(lengths) == 0 {
		return nil
	}
	shortest, longest := slices.Min(lengths), slices.Max(lengths)
	hist := histogram.Histogram{
		Count:   len(lengths),
		Buckets: make([]histogram.Bucket, longest-shortest+1),
	}
	for i := range hist.Buckets {
		hist.Buckets[i].Min = float64(shortest + i)
		hist.Buckets[i].Max = float64(shortest + i + 1)
	}
	for _, l := range lengths {
		b := &hist.Buckets[l-shortest]
		b.Count++
		hist.Max = max(hist.Max, b.Count)
	}
	return histogram.Fprint(w, hist, histogram.Linear(width))
}
