package users

import (
	"fmt"

	"github.com/goliatone/go-backoffice"
	"github.com/goliatone/go-backoffice/cmd/boctl/internal/config"
	"github.com/spf13/cobra"
)

// UsersCmd is the parent command for admin user management
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts (admin)",
	Long:  `Commands for listing, inspecting, editing, and deleting user accounts.`,
}

func init() {
	UsersCmd.AddCommand(listCmd)
	UsersCmd.AddCommand(getCmd)
	UsersCmd.AddCommand(editCmd)
	UsersCmd.AddCommand(deleteCmd)
}

// requireSession restores the persisted session and fails when none exists
func requireSession(cmd *cobra.Command) (*config.GlobalConfig, *backoffice.Principal, error) {
	cfg := config.MustFromContext(cmd.Context())

	principal, err := cfg.Session.Restore(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	if principal == nil {
		return nil, nil, fmt.Errorf("not signed in, run \"boctl login\" first")
	}

	return cfg, principal, nil
}
