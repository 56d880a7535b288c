package commands

import (
	"fmt"

	"toko-admin/internal/app"
	"toko-admin/internal/database"
	"toko-admin/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API. The database schema is migrated on start.

JWT_SECRET (or --jwt-secret) is required and must not be a placeholder.

When RABBITMQ_URL is set, every change is published to the store_events
queue and a consumer logs what it receives.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.String("port", "", "Listen address, e.g. :8080")
	flags.String("db-driver", "", "Database driver (postgres or sqlite)")
	flags.String("dsn", "", "Database connection string")
	flags.String("rabbitmq-url", "", "RabbitMQ URL; empty disables events")
	flags.String("jwt-secret", "", "Secret used to sign bearer tokens")
}

func runServe(cmd *cobra.Command) error {
	if err := cfg.CheckJWTSecret(); err != nil {
		return err
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	opts := app.Options{JWTSecret: cfg.JWTSecret, AccessLog: true}
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logrus.WithError(err).Warn("RabbitMQ unavailable, events disabled")
		} else {
			defer mqClient.Close()
			opts.Publisher = mqClient
			if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
				logrus.WithError(err).Warn("failed to start event consumer")
			}
		}
	}

	api := app.New(db, opts)

	errs := make(chan error, 1)
	go func() {
		logrus.WithField("addr", cfg.AppPort).Info("starting server")
		errs <- api.Listen(cfg.AppPort)
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("server failed: %w", err)
	case <-cmd.Context().Done():
	}

	logrus.Info("shutting down server")
	if err := api.Shutdown(); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	logrus.Info("server gracefully stopped")
	return nil
}
