// Package testhelpers sets up word lists and configs for tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/domino14/wordtiers/config"
	"github.com/domino14/wordtiers/wordlist"
)

func lines(words []string) []byte {
	content := strings.Join(words, "\n")
	if len(words) > 0 {
		content += "\n"
	}
	return []byte(content)
}

// WriteWordList writes one word per line to dir/name and returns the path.
func WriteWordList(t testing.TB, dir, name string, words ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, lines(words), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

// PreloadWordList registers an in-memory word list at dir/name without
// touching the filesystem, and returns the path. Use a fresh dir per test;
// a path can only be registered once per process.
func PreloadWordList(t testing.TB, dir, name string, words ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	wordlist.Preload(p, lines(words))
	return p
}

// Config returns a default config rooted at dataPath, with the given
// sources in priority order when any are passed.
func Config(t testing.TB, dataPath string, sources ...string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Load(nil); err != nil {
		t.Fatal(err)
	}
	cfg.Set(config.ConfigDataPath, dataPath)
	if len(sources) > 0 {
		cfg.Set(config.ConfigSources, sources)
	}
	return cfg
}
