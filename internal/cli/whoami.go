package cli

import (
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	Long: `Show the identity derived from the stored session.

By default the identity comes from the token payload without any
network traffic. With --refresh the profile is re-read from the
server; if that fails, the token-derived identity is shown instead.`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("refresh", false, "re-read the profile from the server")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireAuth(); err != nil {
		return err
	}

	if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
		a.session.Enrich(cmd.Context(), a.users)
	}

	identity := a.session.Current()
	a.printer.Print("%s <%s>", identity.DisplayName, identity.Email)
	a.printer.Print("role:   %s", identity.Role)
	a.printer.Print("tenant: %s (%s)", identity.TenantSlug, identity.TenantID)
	return nil
}
