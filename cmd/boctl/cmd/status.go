package cmd

import (
	"time"

	"github.com/goliatone/go-backoffice/cmd/boctl/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		principal, err := cfg.Session.Restore(cmd.Context())
		if err != nil {
			return err
		}

		if principal == nil {
			pterm.Info.Println("Not signed in. Run \"boctl login\" first.")
			return nil
		}

		pterm.DefaultSection.Println("Session")
		pterm.Info.Printf("Account: %s %s <%s>\n", principal.User.Name, principal.User.Surnames, principal.User.Email)
		pterm.Info.Printf("Role: %s\n", principal.Role())
		if principal.ExpiresAt != nil {
			pterm.Info.Printf("Token expires: %s\n", principal.ExpiresAt.Format(time.RFC1123))
		}
		return nil
	},
}
