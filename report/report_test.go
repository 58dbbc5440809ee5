package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordtiers/tiers"
	"github.com/domino14/wordtiers/wordlist"
)

func testResult() *tiers.Result {
	srcs := wordlist.NewSources([]string{"easy.csv", "hard.csv"})
	return &tiers.Result{
		OutputPath: "Trimmed.csv",
		Entries: []tiers.Entry{
			{Word: "apple", Rank: 1},
			{Word: "bread", Rank: 1},
			{Word: "ephemera", Rank: 2},
		},
		Sources: []tiers.SourceCounts{
			{Source: srcs[0], Lines: 4, Accepted: 2, TooShort: 2},
			{Source: srcs[1], Lines: 3, Accepted: 1, Duplicates: 1, NotAlpha: 1},
		},
	}
}

func TestNew(t *testing.T) {
	r := New(testResult(), 0xdeadbeef)
	assert.Equal(t, "00000000deadbeef", r.Digest)
	assert.Equal(t, 3, r.Words)
	assert.Equal(t, map[int]int{1: 2, 2: 1}, r.PerTier)
	assert.InDelta(t, 6.0, r.LengthMean, 1e-9)
	assert.InDelta(t, 1.7320508075688772, r.LengthStdev, 1e-9)
	require.Len(t, r.Sources, 2)
	assert.Equal(t, SourceSummary{
		Name: "hard", Path: "hard.csv", Tier: 2,
		Lines: 3, Accepted: 1, Duplicates: 1, NotAlpha: 1,
	}, r.Sources[1])
}

func TestWriteYAML(t *testing.T) {
	r := New(testResult(), 1)
	var buf bytes.Buffer
	require.NoError(t, r.WriteYAML(&buf))

	var back Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *r, back)
	assert.Contains(t, buf.String(), "not_alpha: 1")
}

func TestDigest(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "Trimmed.csv")
	content := []byte("apple,1\nbread,1\n")
	require.NoError(t, os.WriteFile(p, content, 0644))

	d, err := Digest(p)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64(content), d)

	_, err = Digest(filepath.Join(dir, "nope.csv"))
	assert.Error(t, err)
}
