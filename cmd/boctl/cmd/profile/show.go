package profile

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your own account",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, principal, err := requireSession(cmd)
		if err != nil {
			return err
		}

		user := principal.User
		pterm.DefaultSection.Printf("%s %s\n", user.Name, user.Surnames)
		pterm.Info.Printf("Email: %s\n", user.Email)
		pterm.Info.Printf("Telephone: %s\n", user.Telephone)
		pterm.Info.Printf("Role: %s\n", user.Role)
		pterm.Info.Printf("Email notifications: %t\n", user.EmailNotifications)
		return nil
	},
}
