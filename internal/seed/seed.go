// Package seed fills an empty database with a fixed set of sample records.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrNotEmpty = errors.New("database already contains movies (use --reset to replace them)")

type Options struct {
	// Reset deletes every existing row before inserting.
	Reset bool
}

type Summary struct {
	Users       int
	Movies      int
	FamousGeese int
	GooseQuotes int
}

// Children come before their parents so foreign keys hold while deleting.
var resetStatements = []string{
	"DELETE FROM goose_quotes",
	"DELETE FROM famous_geese",
	"DELETE FROM movies",
	"DELETE FROM users",
}

const (
	insertUser        = "INSERT INTO users (id, name, email) VALUES (:id, :name, :email)"
	insertMovie       = "INSERT INTO movies (id, title, director, release_date) VALUES (:id, :title, :director, :release_date)"
	insertFamousGoose = "INSERT INTO famous_geese (id, name, movie_id, character, description) VALUES (:id, :name, :movie_id, :character, :description)"
	insertGooseQuote  = "INSERT INTO goose_quotes (id, goose_id, quote, context, timestamp) VALUES (:id, :goose_id, :quote, :context, :timestamp)"
)

// Run inserts the sample data in a single transaction. Against the remote
// database the transaction is sent as one ordered batch on commit.
func Run(ctx context.Context, db *sqlx.DB, opts Options) (Summary, error) {
	if !opts.Reset {
		var count int
		if err := db.GetContext(ctx, &count, "SELECT COUNT(*) AS count FROM movies"); err != nil {
			return Summary{}, fmt.Errorf("failed to count movies: %w", err)
		}
		if count > 0 {
			return Summary{}, ErrNotEmpty
		}
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if opts.Reset {
		for _, statement := range resetStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return Summary{}, fmt.Errorf("failed to reset: %w", err)
			}
		}
	}

	if err := insertAll(ctx, tx, insertUser, users); err != nil {
		return Summary{}, err
	}
	if err := insertAll(ctx, tx, insertMovie, movies); err != nil {
		return Summary{}, err
	}
	if err := insertAll(ctx, tx, insertFamousGoose, famousGeese); err != nil {
		return Summary{}, err
	}
	if err := insertAll(ctx, tx, insertGooseQuote, gooseQuotes); err != nil {
		return Summary{}, err
	}

	if err := tx.Commit(); err != nil {
		return Summary{}, fmt.Errorf("failed to commit seed data: %w", err)
	}

	return Summary{
		Users:       len(users),
		Movies:      len(movies),
		FamousGeese: len(famousGeese),
		GooseQuotes: len(gooseQuotes),
	}, nil
}

func insertAll[T any](ctx context.Context, tx *sqlx.Tx, query string, records []T) error {
	for _, record := range records {
		if _, err := tx.NamedExecContext(ctx, query, record); err != nil {
			return fmt.Errorf("failed to insert: %w", err)
		}
	}

	return nil
}
