package cli

import (
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
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

	if err := a.sync.Delete(cmd.Context(), task.ID); err != nil {
		a.printer.Notice("could not delete task: %v (task lists left unchanged)", err)
		return err
	}

	if err := a.sync.Settle(cmd.Context()); err != nil {
		return err
	}
	a.printer.Success("deleted %s  %s", shortID(task.ID), task.Title)
	return nil
}
