package users

import (
	"fmt"

	"github.com/goliatone/go-backoffice"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, principal, err := requireSession(cmd)
		if err != nil {
			return err
		}

		id := args[0]
		if id == principal.ID() {
			return fmt.Errorf("cannot delete your own account")
		}

		if !deleteYes {
			confirmed, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete user %s?", id))
			if err != nil {
				return err
			}
			if !confirmed {
				pterm.Info.Println("Aborted")
				return nil
			}
		}

		if err := cfg.Client.DeleteUser(cmd.Context(), id); err != nil {
			if backoffice.IsNotFound(err) {
				return fmt.Errorf("no user with id %s", id)
			}
			return err
		}

		pterm.Success.Printf("Deleted %s\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
