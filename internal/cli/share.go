package cli

import (
	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Toggle a task's team visibility",
	Long: `Toggle whether a task is visible to the whole tenant. Sharing
moves it into the team-visible view; unsharing removes it from there.
The task stays in your own list either way.`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireAuth(); err != nil {
		return err
	}

	task, err := a.resolveOwnTask(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	updated, err := a.sync.TogglePublic(cmd.Context(), task)
	if err != nil {
		a.printer.Notice("could not update task: %v (task lists left unchanged)", err)
		return err
	}

	if err := a.sync.Settle(cmd.Context()); err != nil {
		return err
	}
	if updated.IsPublic {
		a.printer.Success("%s is now team-visible", shortID(updated.ID))
	} else {
		a.printer.Success("%s is now private", shortID(updated.ID))
	}
	return nil
}
