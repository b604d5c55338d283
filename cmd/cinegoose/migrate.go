package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mies/cinegoose/internal/database"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			version, err := database.Migrate(db.DB)
			if err != nil {
				return err
			}

			color.Green("✅ Schema at version %d", version)

			return nil
		},
	}
}
