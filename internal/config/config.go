package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

var ErrMissingCredentials = errors.New("production environment variables not set (make sure you have a .prod.vars file)")

type Config struct {
	Environment  string       `mapstructure:"environment"`
	StateDir     string       `mapstructure:"state_dir"`
	ProdVarsFile string       `mapstructure:"prod_vars"`
	D1           D1Config     `mapstructure:"d1"`
	Server       ServerConfig `mapstructure:"server"`
	Log          LogConfig    `mapstructure:"log"`
}

// D1Config holds the remote database credentials.
type D1Config struct {
	AccountID  string        `mapstructure:"account_id"`
	DatabaseID string        `mapstructure:"database_id"`
	APIToken   string        `mapstructure:"api_token"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `mapstructure:"format"` // json, text
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"environment":    "ENVIRONMENT",
	"state_dir":      "CINEGOOSE_STATE_DIR",
	"prod_vars":      "CINEGOOSE_PROD_VARS",
	"d1.account_id":  "CLOUDFLARE_ACCOUNT_ID",
	"d1.database_id": "CLOUDFLARE_DATABASE_ID",
	"d1.api_token":   "CLOUDFLARE_D1_TOKEN",
	"d1.base_url":    "CLOUDFLARE_D1_BASE_URL",
	"d1.timeout":     "CLOUDFLARE_D1_TIMEOUT",
	"server.addr":    "CINEGOOSE_ADDR",
	"log.level":      "LOG_LEVEL",
	"log.format":     "LOG_FORMAT",
}

func DefaultConfig() *Config {
	return &Config{
		Environment:  EnvironmentDevelopment,
		StateDir:     ".wrangler",
		ProdVarsFile: ".prod.vars",
		D1: D1Config{
			BaseURL: "https://api.cloudflare.com/client/v4",
			Timeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Addr: ":8787",
		},
		Log: LogConfig{
			Level:  "INFO",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, environment variables and
// any flags already bound to v. In production the prod vars file fills in
// variables the environment does not set.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	defaults := DefaultConfig()
	v.SetDefault("environment", defaults.Environment)
	v.SetDefault("state_dir", defaults.StateDir)
	v.SetDefault("prod_vars", defaults.ProdVarsFile)
	v.SetDefault("d1.account_id", "")
	v.SetDefault("d1.database_id", "")
	v.SetDefault("d1.api_token", "")
	v.SetDefault("d1.base_url", defaults.D1.BaseURL)
	v.SetDefault("d1.timeout", defaults.D1.Timeout)
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if strings.EqualFold(v.GetString("environment"), EnvironmentProduction) {
		if err := loadVarsFile(v, v.GetString("prod_vars")); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Environment = strings.ToLower(cfg.Environment)

	return cfg, nil
}

// loadVarsFile applies the D1 variables of a dotenv style file without
// touching the process environment. Variables already present in the
// environment win.
func loadVarsFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for key, env := range envBindings {
		if !strings.HasPrefix(key, "d1.") {
			continue
		}
		if _, set := os.LookupEnv(env); set {
			continue
		}
		if value, ok := vars[env]; ok {
			v.Set(key, value)
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// Validate checks that the selected target can be opened.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}

	if c.IsProduction() {
		if c.D1.AccountID == "" || c.D1.DatabaseID == "" || c.D1.APIToken == "" {
			return ErrMissingCredentials
		}
	} else if c.StateDir == "" {
		return errors.New("state dir is required for the local database")
	}

	return nil
}
