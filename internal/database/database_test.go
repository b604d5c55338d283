package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mies/cinegoose/internal/config"
	"github.com/mies/cinegoose/internal/d1test"
	"github.com/mies/cinegoose/internal/database"
	"github.com/mies/cinegoose/internal/localdb"
	"github.com/mies/cinegoose/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesSchema(t *testing.T) {
	db, err := database.OpenLocal(context.Background(), filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	version, err := database.Migrate(db.DB)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	var tables []string
	require.NoError(t, db.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'schema_%' ORDER BY name"))
	assert.Equal(t, []string{"famous_geese", "goose_quotes", "movies", "users"}, tables)

	version, err = database.Migrate(db.DB)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := database.OpenLocal(context.Background(), filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	_, err = database.Migrate(db.DB)
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO famous_geese (name, movie_id, character) VALUES ('Orphan', 42, 'Nobody')")
	assert.Error(t, err)
}

func TestOpenFindsLocalDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v3", "d1", "db.sqlite")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg := config.DefaultConfig()
	cfg.StateDir = dir

	db, err := database.Open(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping())
}

func TestOpenWithoutLocalDatabase(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StateDir = t.TempDir()

	_, err := database.Open(context.Background(), cfg, logger.Discard())
	assert.ErrorIs(t, err, localdb.ErrNotFound)
}

func TestOpenProductionRequiresCredentials(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Environment = config.EnvironmentProduction

	_, err := database.Open(context.Background(), cfg, logger.Discard())
	assert.ErrorIs(t, err, config.ErrMissingCredentials)
}

func TestMigrateOverRemoteDatabase(t *testing.T) {
	backing, err := database.OpenLocal(context.Background(), filepath.Join(t.TempDir(), "remote.sqlite"))
	require.NoError(t, err)
	defer backing.Close()

	server := d1test.NewServer(t, backing.DB)

	db, err := database.OpenRemote(context.Background(), config.D1Config{
		AccountID:  d1test.Credentials.AccountID,
		DatabaseID: d1test.Credentials.DatabaseID,
		APIToken:   d1test.Credentials.APIToken,
		BaseURL:    server.URL,
		Timeout:    5 * time.Second,
	}, logger.Discard())
	require.NoError(t, err)
	defer db.Close()

	version, err := database.Migrate(db.DB)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	var count int
	require.NoError(t, backing.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'goose_quotes'"))
	assert.Equal(t, 1, count)

	var remote int
	require.NoError(t, db.Get(&remote, "SELECT COUNT(*) AS n FROM movies"))
	assert.Equal(t, 0, remote)
}

func TestOpenRemoteRejectsBadToken(t *testing.T) {
	backing, err := database.OpenLocal(context.Background(), filepath.Join(t.TempDir(), "remote.sqlite"))
	require.NoError(t, err)
	defer backing.Close()

	server := d1test.NewServer(t, backing.DB)

	_, err = database.OpenRemote(context.Background(), config.D1Config{
		AccountID:  d1test.Credentials.AccountID,
		DatabaseID: d1test.Credentials.DatabaseID,
		APIToken:   "wrong",
		BaseURL:    server.URL,
	}, logger.Discard())
	assert.Error(t, err)
}
