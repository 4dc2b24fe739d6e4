package cmd

import (
	"github.com/goliatone/go-backoffice/cmd/boctl/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		// Always succeeds, even when no session exists
		cfg.Session.Logout()
		pterm.Success.Println("Signed out")
		return nil
	},
}
