package users

import (
	"github.com/goliatone/go-backoffice"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := requireSession(cmd)
		if err != nil {
			return err
		}

		detail := backoffice.NewDetailController(cfg.Client)
		user, err := detail.LoadOne(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		renderUser(user)
		return nil
	},
}

func renderUser(user *backoffice.User) {
	pterm.DefaultSection.Printf("%s %s\n", user.Name, user.Surnames)
	pterm.Info.Printf("ID: %s\n", user.ID)
	pterm.Info.Printf("Email: %s\n", user.Email)
	pterm.Info.Printf("Telephone: %s\n", user.Telephone)
	pterm.Info.Printf("Role: %s\n", user.Role)
	pterm.Info.Printf("Email verified: %t\n", user.EmailVerified)
	if user.CreationDate != nil {
		pterm.Info.Printf("Created: %s\n", user.CreationDate.Format("2006-01-02"))
	}
}
