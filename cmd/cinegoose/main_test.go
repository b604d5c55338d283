package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mies/cinegoose/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCommand()
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestMigrateAndSeed(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	stateDir := t.TempDir()
	path := filepath.Join(stateDir, "v3", "d1", "local.sqlite")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	require.NoError(t, run(t, "--state-dir", stateDir, "--log-level", "ERROR", "migrate"))
	require.NoError(t, run(t, "--state-dir", stateDir, "--log-level", "ERROR", "seed"))

	assert.ErrorIs(t, run(t, "--state-dir", stateDir, "--log-level", "ERROR", "seed"), errReported)
	require.NoError(t, run(t, "--state-dir", stateDir, "--log-level", "ERROR", "seed", "--reset"))

	db, err := database.OpenLocal(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	var movies int
	require.NoError(t, db.Get(&movies, "SELECT COUNT(*) FROM movies"))
	assert.Positive(t, movies)
}

func TestSeedWithoutLocalDatabase(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	err := run(t, "--state-dir", t.TempDir(), "--log-level", "ERROR", "seed")
	assert.ErrorIs(t, err, errReported)
}

func TestProductionRequiresCredentials(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "")
	t.Setenv("CLOUDFLARE_DATABASE_ID", "")
	t.Setenv("CLOUDFLARE_D1_TOKEN", "")

	err := run(t, "--env", "production", "--prod-vars", filepath.Join(t.TempDir(), "missing.vars"), "--log-level", "ERROR", "migrate")
	assert.Error(t, err)
}
