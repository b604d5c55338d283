package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mies/cinegoose/internal/models"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("not found")

const (
	movieColumns = "id, title, director, release_date, created_at, updated_at"
	gooseColumns = "id, name, movie_id, character, description, created_at, updated_at"
	quoteColumns = "id, goose_id, quote, context, timestamp, created_at, updated_at"
	userColumns  = "id, name, email, created_at, updated_at"
)

// Store runs the queries behind the REST API. It works the same against the
// local and the remote database.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return list[models.Movie](ctx, s.db, "SELECT "+movieColumns+" FROM movies ORDER BY id")
}

func (s *Store) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	return get[models.Movie](ctx, s.db, "SELECT "+movieColumns+" FROM movies WHERE id = ?", id)
}

func (s *Store) CreateMovie(ctx context.Context, movie models.NewMovie) (*models.Movie, error) {
	return get[models.Movie](ctx, s.db,
		"INSERT INTO movies (title, director, release_date) VALUES (?, ?, ?) RETURNING "+movieColumns,
		movie.Title, movie.Director, movie.ReleaseDate)
}

func (s *Store) ListFamousGeese(ctx context.Context) ([]models.FamousGoose, error) {
	return list[models.FamousGoose](ctx, s.db, "SELECT "+gooseColumns+" FROM famous_geese ORDER BY id")
}

func (s *Store) GetFamousGoose(ctx context.Context, id int64) (*models.FamousGoose, error) {
	return get[models.FamousGoose](ctx, s.db, "SELECT "+gooseColumns+" FROM famous_geese WHERE id = ?", id)
}

func (s *Store) CreateFamousGoose(ctx context.Context, goose models.NewFamousGoose) (*models.FamousGoose, error) {
	return get[models.FamousGoose](ctx, s.db,
		"INSERT INTO famous_geese (name, movie_id, character, description) VALUES (?, ?, ?, ?) RETURNING "+gooseColumns,
		goose.Name, goose.MovieID, goose.Character, goose.Description)
}

func (s *Store) ListGooseQuotes(ctx context.Context) ([]models.GooseQuote, error) {
	return list[models.GooseQuote](ctx, s.db, "SELECT "+quoteColumns+" FROM goose_quotes ORDER BY id")
}

func (s *Store) GetGooseQuote(ctx context.Context, id int64) (*models.GooseQuote, error) {
	return get[models.GooseQuote](ctx, s.db, "SELECT "+quoteColumns+" FROM goose_quotes WHERE id = ?", id)
}

func (s *Store) CreateGooseQuote(ctx context.Context, quote models.NewGooseQuote) (*models.GooseQuote, error) {
	return get[models.GooseQuote](ctx, s.db,
		"INSERT INTO goose_quotes (goose_id, quote, context, timestamp) VALUES (?, ?, ?, ?) RETURNING "+quoteColumns,
		quote.GooseID, quote.Quote, quote.Context, quote.Timestamp)
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, s.db, "SELECT "+userColumns+" FROM users ORDER BY id")
}

func (s *Store) CreateUser(ctx context.Context, user models.NewUser) (*models.User, error) {
	return get[models.User](ctx, s.db,
		"INSERT INTO users (name, email) VALUES (?, ?) RETURNING "+userColumns,
		user.Name, user.Email)
}

func list[T any](ctx context.Context, db sqlx.QueryerContext, query string, args ...any) ([]T, error) {
	items := []T{}

	if err := sqlx.SelectContext(ctx, db, &items, query, args...); err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return items, nil
}

func get[T any](ctx context.Context, db sqlx.QueryerContext, query string, args ...any) (*T, error) {
	var item T

	err := sqlx.GetContext(ctx, db, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return &item, nil
}
