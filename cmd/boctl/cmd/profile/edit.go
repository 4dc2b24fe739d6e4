package profile

import (
	"github.com/goliatone/go-backoffice"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	editName            string
	editSurnames        string
	editEmail           string
	editTelephone       string
	editCurrentPassword string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your own account",
	Long: `Applies the given flags over your current account and submits the
update. The backend re-authenticates with your current password, which is
prompted for unless passed with --current-password.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, principal, err := requireSession(cmd)
		if err != nil {
			return err
		}

		user := principal.User
		if cmd.Flags().Changed("name") {
			user.Name = editName
		}
		if cmd.Flags().Changed("surnames") {
			user.Surnames = editSurnames
		}
		if cmd.Flags().Changed("email") {
			user.Email = editEmail
		}
		if cmd.Flags().Changed("telephone") {
			user.Telephone = editTelephone
		}

		currentPassword := editCurrentPassword
		if currentPassword == "" {
			currentPassword, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Current password")
			if err != nil {
				return err
			}
		}

		controller := backoffice.NewProfileController(cfg.Session)
		update := backoffice.ProfileUpdate{User: user, CurrentPassword: currentPassword}

		if fields := controller.Validate(update); fields != nil {
			for field, message := range fields {
				pterm.Error.Printf("%s: %s\n", field, message)
			}
		}

		refreshed, err := controller.Submit(cmd.Context(), update)
		if err != nil {
			return err
		}

		pterm.Success.Printf("Profile updated for %s\n", refreshed.User.Email)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "First name")
	editCmd.Flags().StringVar(&editSurnames, "surnames", "", "Surnames")
	editCmd.Flags().StringVar(&editEmail, "email", "", "Email address")
	editCmd.Flags().StringVar(&editTelephone, "telephone", "", "Telephone number")
	editCmd.Flags().StringVar(&editCurrentPassword, "current-password", "", "Current password (prompted when omitted)")
}
