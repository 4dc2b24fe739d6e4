package users

import (
	"github.com/goliatone/go-backoffice"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	editName      string
	editSurnames  string
	editEmail     string
	editTelephone string
	editRole      string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit one user account",
	Long: `Fetches the account, applies the given flags over it, and submits
the full record back. Fields without a flag keep their current value.`,
	Args: cobra.ExactArgs(1),
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
		if cmd.Flags().Changed("role") {
			user.Role = editRole
		}

		if fields := detail.Validate(*user); fields != nil {
			for field, message := range fields {
				pterm.Error.Printf("%s: %s\n", field, message)
			}
		}

		updated, err := detail.Submit(cmd.Context(), *user)
		if err != nil {
			return err
		}

		pterm.Success.Printf("Updated %s\n", updated.Email)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "First name")
	editCmd.Flags().StringVar(&editSurnames, "surnames", "", "Surnames")
	editCmd.Flags().StringVar(&editEmail, "email", "", "Email address")
	editCmd.Flags().StringVar(&editTelephone, "telephone", "", "Telephone number")
	editCmd.Flags().StringVar(&editRole, "role", "", "Role")
}
