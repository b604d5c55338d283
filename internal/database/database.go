package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mies/cinegoose/d1"
	"github.com/mies/cinegoose/internal/config"
	"github.com/mies/cinegoose/internal/localdb"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Both targets speak the SQLite dialect, so sqlx binds with "?" either way.
const driverName = "sqlite3"

// Open connects to the database selected by cfg: the remote D1 database in
// production, otherwise the newest local database file under the state dir.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sqlx.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		logger.Info("using remote D1 database", "account_id", cfg.D1.AccountID, "database_id", cfg.D1.DatabaseID)
		return OpenRemote(ctx, cfg.D1, logger)
	}

	path, err := localdb.Find(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("%w (try starting the local dev server once to create it)", err)
	}

	logger.Info("using local database", "path", path)

	return OpenLocal(ctx, path)
}

// OpenRemote returns a handle whose statements are executed over the D1 HTTP API.
func OpenRemote(ctx context.Context, cfg config.D1Config, logger *slog.Logger) (*sqlx.DB, error) {
	connector, err := d1.NewConnector(d1.Config{
		Credentials: d1.Credentials{
			AccountID:  cfg.AccountID,
			DatabaseID: cfg.DatabaseID,
			APIToken:   cfg.APIToken,
		},
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D1 connector: %w", err)
	}

	db := sqlx.NewDb(sql.OpenDB(connector), driverName)

	if err := ping(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// OpenLocal opens a SQLite database file with foreign keys enforced.
func OpenLocal(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	if err := ping(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func ping(ctx context.Context, db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// Migrate applies every pending migration. It reports the schema version
// after the run.
func Migrate(db *sql.DB) (uint, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return 0, fmt.Errorf("failed to load migrations: %w", err)
	}
	defer source.Close()

	target, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return 0, fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Closing m would close db as well, which belongs to the caller.
	m, err := migrate.NewWithInstance("iofs", source, driverName, target)
	if err != nil {
		return 0, fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}

	if dirty {
		return version, fmt.Errorf("migration %d left the schema dirty", version)
	}

	return version, nil
}
