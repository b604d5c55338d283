package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mies/cinegoose/internal/seed"
)

func newSeedCommand(a *app) *cobra.Command {
	var opts seed.Options

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample movies, geese and quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.IsProduction() {
				fmt.Fprintln(os.Stderr, color.YellowString("🚨 Seeding production database"))
			}

			db, err := a.openDatabase(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, color.RedString("❌ Error seeding database: %v", err))
				return errReported
			}
			defer db.Close()

			summary, err := seed.Run(cmd.Context(), db, opts)
			if err != nil {
				fmt.Fprintln(os.Stderr, color.RedString("❌ Error seeding database: %v", err))
				return errReported
			}

			a.logger.Debug("seeded",
				"users", summary.Users,
				"movies", summary.Movies,
				"famous_geese", summary.FamousGeese,
				"goose_quotes", summary.GooseQuotes,
			)

			color.Green("✅ Database seeded successfully!")

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "delete existing rows before seeding")

	return cmd
}
