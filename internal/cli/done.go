package cli

import (
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
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

	updated, err := a.sync.ToggleCompleted(cmd.Context(), task)
	if err != nil {
		a.printer.Notice("could not update task: %v (task lists left unchanged)", err)
		return err
	}

	if err := a.sync.Settle(cmd.Context()); err != nil {
		return err
	}
	if updated.Completed {
		a.printer.Success("marked %s done", shortID(updated.ID))
	} else {
		a.printer.Success("reopened %s", shortID(updated.ID))
	}
	return nil
}
