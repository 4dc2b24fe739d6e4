package cmd

import (
	"github.com/goliatone/go-backoffice"
	"github.com/goliatone/go-backoffice/cmd/boctl/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var registerPayload backoffice.RegisterPayload

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Sign up a new account and start a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if registerPayload.Password == "" {
			password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
			registerPayload.Password = password
		}

		if err := registerPayload.Validate(); err != nil {
			printFieldErrors(backoffice.FieldErrors(err))
			return err
		}

		principal, err := cfg.Session.Register(cmd.Context(), registerPayload)
		if err != nil {
			printFieldErrors(backoffice.FieldErrors(err))
			return err
		}

		pterm.Success.Printf("Registered %s (%s)\n", principal.User.Email, principal.Role())
		return nil
	},
}

func printFieldErrors(fields map[string]string) {
	for field, message := range fields {
		pterm.Error.Printf("%s: %s\n", field, message)
	}
}

func init() {
	registerCmd.Flags().StringVar(&registerPayload.Name, "name", "", "First name")
	registerCmd.Flags().StringVar(&registerPayload.Surnames, "surnames", "", "Surnames")
	registerCmd.Flags().StringVar(&registerPayload.Email, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerPayload.Telephone, "telephone", "", "Telephone number")
	registerCmd.Flags().StringVar(&registerPayload.Password, "password", "", "Password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerPayload.Role, "role", "", "Role, defaults to CUSTOMER")
}
