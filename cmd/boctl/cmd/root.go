package cmd

import (
	"fmt"
	"os"

	"github.com/goliatone/go-backoffice"
	"github.com/goliatone/go-backoffice/cmd/boctl/cmd/profile"
	"github.com/goliatone/go-backoffice/cmd/boctl/cmd/users"
	"github.com/goliatone/go-backoffice/cmd/boctl/internal/config"
	"github.com/goliatone/go-backoffice/cmd/boctl/internal/credstore"
	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "boctl",
	Short: "Backoffice CLI - user administration client",
	Long: `boctl is the command-line front end for the backoffice user
administration API. Sign in with "boctl login", then manage users with the
"users" subcommands or your own account with "profile".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		store, err := credstore.NewFileStore()
		if err != nil {
			return fmt.Errorf("unable to initialize credential store: %w", err)
		}

		apiURL := config.Load(serverURL)

		// The client asks the session store for its token on every
		// request; the session is built right after, so bind it late.
		var session *backoffice.SessionStore
		client := backoffice.NewClient(apiURL, backoffice.WithTokenSource(func() string {
			if session == nil {
				return ""
			}
			return session.Token()
		}))
		session = backoffice.NewSessionStore(client, backoffice.WithCredentialStore(store))

		cfg := &config.GlobalConfig{
			APIURL:  apiURL,
			Client:  client,
			Session: session,
		}
		cmd.SetContext(config.Inject(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "API base URL (defaults to BACKOFFICE_API_URL)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(users.UsersCmd)
	rootCmd.AddCommand(profile.ProfileCmd)
}
