// Package dbexport writes a tiered word list into a SQLite database, for
// consumers that would rather query than parse CSV.
package dbexport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/domino14/wordtiers/tiers"
)

var ErrNotFound = errors.New("word not found")

const schema = `
DROP TABLE IF EXISTS words;
CREATE TABLE words (
	word TEXT PRIMARY KEY,
	tier INTEGER NOT NULL
);
CREATE INDEX words_tier ON words (tier);
`

// Export replaces the words table in the database at dbPath with entries,
// in a single transaction.
func Export(ctx context.Context, dbPath string, entries []tiers.Entry) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO words (word, tier) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Word, e.Rank); err != nil {
			return fmt.Errorf("inserting %s: %w", e.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Str("db", dbPath).Int("words", len(entries)).Msg("exported words")
	return nil
}

// Lookup returns the tier stored for word.
func Lookup(ctx context.Context, dbPath, word string) (int, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	defer db.Close()

	var tier int
	err = db.QueryRowContext(ctx, "SELECT tier FROM words WHERE word = ?", word).Scan(&tier)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return tier, nil
}
