package profile

import (
	"fmt"

	"github.com/goliatone/go-backoffice"
	"github.com/goliatone/go-backoffice/cmd/boctl/internal/config"
	"github.com/spf13/cobra"
)

// ProfileCmd is the parent command for the session's own account
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your own account",
}

func init() {
	ProfileCmd.AddCommand(showCmd)
	ProfileCmd.AddCommand(editCmd)
}

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
