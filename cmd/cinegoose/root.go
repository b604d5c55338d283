package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mies/cinegoose/internal/config"
	"github.com/mies/cinegoose/internal/database"
	"github.com/mies/cinegoose/internal/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	viper  *viper.Viper
	config *config.Config
	logger *slog.Logger
}

func (a *app) openDatabase(ctx context.Context) (*sqlx.DB, error) {
	return database.Open(ctx, a.config, a.logger)
}

func newRootCommand() *cobra.Command {
	a := &app{viper: viper.New()}
	defaults := config.DefaultConfig()

	root := &cobra.Command{
		Use:           "cinegoose",
		Short:         "International Goose Movie Database",
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.viper)
			if err != nil {
				return err
			}

			a.config = cfg
			a.logger = logger.New(cfg.Log)

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("env", defaults.Environment, "target environment: development or production")
	flags.String("state-dir", defaults.StateDir, "directory searched for the local database")
	flags.String("prod-vars", defaults.ProdVarsFile, "file with the production D1 credentials")
	flags.String("log-level", defaults.Log.Level, "log level: DEBUG, INFO, WARN, ERROR")
	flags.String("log-format", defaults.Log.Format, "log format: text or json")

	for key, flag := range map[string]string{
		"environment": "env",
		"state_dir":   "state-dir",
		"prod_vars":   "prod-vars",
		"log.level":   "log-level",
		"log.format":  "log-format",
	} {
		_ = a.viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(newServeCommand(a))
	root.AddCommand(newSeedCommand(a))
	root.AddCommand(newMigrateCommand(a))

	return root
}
