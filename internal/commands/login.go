package commands

import (
	"fmt"

	"toko-admin/internal/dashboard"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Print a bearer token for the dashboard commands",
	Long: `Log in to the API and print a bearer token.

Examples:
  export API_TOKEN=$(toko login --username budi --password rahasia)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := dashboard.NewClient(cfg.APIURL, "")
		token, err := client.Login(cmd.Context(), loginUsername, loginPassword)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Username")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}
