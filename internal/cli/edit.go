package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodtodo/taskdeck/domain"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a task's fields",
	Long: `Update any subset of a task's fields. Only flags that are set
are sent; everything else is left as is.

Example:
  taskdeck edit 4f2a --title "write Q3 report" --due 2026-09-12`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("description", "", "new description")
	editCmd.Flags().String("due", "", "new due date (YYYY-MM-DD)")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	var patch domain.TaskPatch
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		patch.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		patch.Description = &description
	}
	if cmd.Flags().Changed("due") {
		dueFlag, _ := cmd.Flags().GetString("due")
		due, err := parseDue(dueFlag)
		if err != nil {
			return err
		}
		patch.DueDate = due
	}
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to change, pass --title, --description or --due")
	}

	updated, err := a.sync.Update(cmd.Context(), task.ID, patch)
	if err != nil {
		a.printer.Notice("could not update task: %v (task lists left unchanged)", err)
		return err
	}

	if err := a.sync.Settle(cmd.Context()); err != nil {
		return err
	}
	a.printer.Success("updated %s  %s", shortID(updated.ID), updated.Title)
	return nil
}
