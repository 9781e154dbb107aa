package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goodtodo/taskdeck/repository"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Long: `Register a new account on a tenant and store the resulting
session locally, exactly as login does.

Example:
  taskdeck register --tenant acme --email a@x.com --name "Ada"`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("tenant", "", "tenant slug of your organization")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("name", "", "display name")
	registerCmd.Flags().String("password", "", "account password")
	_ = registerCmd.MarkFlagRequired("tenant")
	_ = registerCmd.MarkFlagRequired("email")
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	tenant, _ := cmd.Flags().GetString("tenant")
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv("TASKDECK_PASSWORD")
	}
	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	pair, err := a.auth.Register(cmd.Context(), repository.RegisterInput{
		TenantSlug: tenant,
		Email:      email,
		Name:       name,
		Password:   password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	identity, err := a.session.Login(cmd.Context(), pair.AccessToken, pair.RefreshToken, tenant)
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if identity == nil {
		return fmt.Errorf("server issued an unreadable token, not logged in")
	}

	a.session.Enrich(cmd.Context(), a.users)
	a.printer.Success("registered %s on %s", identity.Email, identity.TenantSlug)
	return nil
}
