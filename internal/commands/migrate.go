package commands

import (
	"toko-admin/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		logrus.WithField("driver", cfg.DatabaseDriver).Info("database migrated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	flags := migrateCmd.Flags()
	flags.String("db-driver", "", "Database driver (postgres or sqlite)")
	flags.String("dsn", "", "Database connection string")
}
