// Package commands implements the toko command line: the API server, its
// maintenance commands and the terminal dashboard forms.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"toko-admin/internal/config"
	"toko-admin/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	v   = viper.New()
	cfg config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "toko",
	Short: "Toko store administration",
	Long: `Toko manages stores, banners, categories and products.

Run the API with "toko serve", then manage a store from the terminal
with the category and product commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		cfg = config.Load(v)
		logging.Init(cfg.LogLevel)
		return nil
	},
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("api-url", "", "Base URL of the toko API")
	flags.String("token", "", "Bearer token for the toko API")
}
