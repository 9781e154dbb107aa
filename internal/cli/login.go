package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodtodo/taskdeck/repository"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against your organization",
	Long: `Authenticate against a tenant and store the session locally.

The password can be passed with --password, via the TASKDECK_PASSWORD
environment variable, or typed at the prompt.

Examples:
  taskdeck login --tenant acme --email a@x.com
  TASKDECK_PASSWORD=... taskdeck login --tenant acme --email a@x.com`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().String("tenant", "", "tenant slug of your organization")
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	_ = loginCmd.MarkFlagRequired("tenant")
	_ = loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	tenant, _ := cmd.Flags().GetString("tenant")
	email, _ := cmd.Flags().GetString("email")
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

	pair, err := a.auth.Login(cmd.Context(), repository.LoginInput{
		TenantSlug: tenant,
		Email:      email,
		Password:   password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	identity, err := a.session.Login(cmd.Context(), pair.AccessToken, pair.RefreshToken, tenant)
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if identity == nil {
		return fmt.Errorf("server issued an unreadable token, not logged in")
	}

	a.session.Enrich(cmd.Context(), a.users)
	a.printer.Success("logged in as %s (%s@%s)", identity.DisplayName, identity.Email, identity.TenantSlug)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("empty password")
	}
	return password, nil
}
