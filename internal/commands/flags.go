package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps flag names to the configuration keys they override.
var flagKeys = map[string]string{
	"log-level":    "LOG_LEVEL",
	"api-url":      "API_URL",
	"token":        "API_TOKEN",
	"port":         "APP_PORT",
	"db-driver":    "DATABASE_DRIVER",
	"dsn":          "DATABASE_DSN",
	"rabbitmq-url": "RABBITMQ_URL",
	"jwt-secret":   "JWT_SECRET",
}

// bindFlags binds the flags of the running command to their keys. Several
// commands share a flag name, so binding happens once the command is known.
// A flag left unset leaves its key to the environment and the defaults.
func bindFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		key, ok := flagKeys[flag.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, flag)
	})
	return bindErr
}
