package wordlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/domino14/word-golib/cache"
)

// Source is one input word list. Rank is its 1-based position in the
// configured order; lower ranks take precedence.
type Source struct {
	Name string
	Path string
	Rank int
}

func (s Source) String() string {
	return fmt.Sprintf("%s (tier %d)", s.Name, s.Rank)
}

// NewSources ranks paths in the order given.
func NewSources(paths []string) []Source {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		base := filepath.Base(p)
		sources[i] = Source{
			Name: strings.TrimSuffix(base, filepath.Ext(base)),
			Path: p,
			Rank: i + 1,
		}
	}
	return sources
}

// Preload registers the contents of a word list under path. A later Open of
// the same path reads these bytes instead of the filesystem. The first
// registration for a path wins.
func Preload(path string, data []byte) {
	cache.Precache(path, data)
}

// Open opens a word list, preloaded or on disk. A missing file yields an
// error wrapping fs.ErrNotExist.
func Open(path string) (io.ReadCloser, error) {
	f, _, err := cache.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word source %s: %w", path, err)
	}
	return f, nil
}

// maxLineLength is the longest line handed to callers. Anything past it is
// dropped; such a line is far too long to be a word anyway.
const maxLineLength = 1 << 20

// EachLine calls fn with every line of r, terminators removed. Lines end at
// "\n", "\r\n" or a lone "\r".
func EachLine(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 2*maxLineLength)
	scanner.Split(splitLines(maxLineLength))
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

// splitLines is bufio.ScanLines with lone carriage returns as terminators.
// A line longer than maxLen is returned truncated, once, and the rest of it
// is skipped.
func splitLines(maxLen int) bufio.SplitFunc {
	skipping := false
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
			advance := i + 1
			if data[i] == '\r' {
				if advance == len(data) && !atEOF {
					// might be the first half of \r\n
					return 0, nil, nil
				}
				if advance < len(data) && data[advance] == '\n' {
					advance++
				}
			}
			if skipping {
				skipping = false
				return advance, nil, nil
			}
			return advance, data[:i], nil
		}
		if len(data) >= maxLen {
			if skipping {
				return len(data), nil, nil
			}
			skipping = true
			return len(data), data[:maxLen], nil
		}
		if atEOF {
			if skipping {
				return len(data), nil, nil
			}
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
