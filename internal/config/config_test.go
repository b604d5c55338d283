package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, cfg.IsProduction())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("CINEGOOSE_PROD_VARS", "")
	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "acc")
	t.Setenv("CLOUDFLARE_DATABASE_ID", "db")
	t.Setenv("CLOUDFLARE_D1_TOKEN", "token")
	t.Setenv("CLOUDFLARE_D1_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "acc", cfg.D1.AccountID)
	assert.Equal(t, "db", cfg.D1.DatabaseID)
	assert.Equal(t, "token", cfg.D1.APIToken)
	assert.Equal(t, 5*time.Second, cfg.D1.Timeout)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadProdVarsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".prod.vars")
	require.NoError(t, os.WriteFile(path, []byte(
		"CLOUDFLARE_ACCOUNT_ID=file-acc\nCLOUDFLARE_DATABASE_ID=file-db\nCLOUDFLARE_D1_TOKEN=file-token\n",
	), 0o600))

	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CINEGOOSE_PROD_VARS", path)
	t.Setenv("CLOUDFLARE_D1_TOKEN", "env-token")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "file-acc", cfg.D1.AccountID)
	assert.Equal(t, "file-db", cfg.D1.DatabaseID)
	assert.Equal(t, "env-token", cfg.D1.APIToken)
}

func TestProdVarsIgnoredOutsideProduction(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".prod.vars")
	require.NoError(t, os.WriteFile(path, []byte("CLOUDFLARE_ACCOUNT_ID=file-acc\n"), 0o600))
	t.Setenv("CINEGOOSE_PROD_VARS", path)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Empty(t, cfg.D1.AccountID)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Environment = EnvironmentProduction
	assert.ErrorIs(t, cfg.Validate(), ErrMissingCredentials)

	cfg.D1 = D1Config{AccountID: "a", DatabaseID: "d", APIToken: "t"}
	assert.NoError(t, cfg.Validate())

	cfg.Environment = "staging"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.StateDir = ""
	assert.Error(t, cfg.Validate())
}
