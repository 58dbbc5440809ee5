package dbexport

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordtiers/tiers"
)

func TestExportAndLookup(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "words.db")
	entries := []tiers.Entry{
		{Word: "apple", Rank: 1},
		{Word: "gusto", Rank: 4},
		{Word: "zebra", Rank: 2},
	}
	is.NoErr(Export(ctx, dbPath, entries))

	tier, err := Lookup(ctx, dbPath, "gusto")
	is.NoErr(err)
	is.Equal(tier, 4)

	_, err = Lookup(ctx, dbPath, "kayak")
	is.Equal(err, ErrNotFound)
}

func TestExportReplacesTable(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "words.db")
	is.NoErr(Export(ctx, dbPath, []tiers.Entry{{Word: "apple", Rank: 1}}))
	is.NoErr(Export(ctx, dbPath, []tiers.Entry{{Word: "apple", Rank: 3}, {Word: "bread", Rank: 1}}))

	tier, err := Lookup(ctx, dbPath, "apple")
	is.NoErr(err)
	is.Equal(tier, 3)
}
