package cli

import (
	"github.com/spf13/cobra"

	"github.com/goodtodo/taskdeck/domain"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task",
	Long: `Create a task. Tasks are private by default; --public makes
them visible to the whole tenant.

Examples:
  taskdeck add --title "write report"
  taskdeck add --title "demo prep" --due 2026-09-05 --public`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("title", "", "task title")
	addCmd.Flags().String("description", "", "longer description")
	addCmd.Flags().String("due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().Bool("public", false, "make the task team-visible")
	_ = addCmd.MarkFlagRequired("title")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireAuth(); err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	dueFlag, _ := cmd.Flags().GetString("due")
	public, _ := cmd.Flags().GetBool("public")

	due, err := parseDue(dueFlag)
	if err != nil {
		return err
	}

	task, err := a.sync.Create(cmd.Context(), domain.TaskDraft{
		Title:       title,
		Description: description,
		IsPublic:    public,
		DueDate:     due,
	})
	if err != nil {
		a.printer.Notice("could not create task: %v (task lists left unchanged)", err)
		return err
	}

	if err := a.sync.Settle(cmd.Context()); err != nil {
		return err
	}
	a.printer.Success("created %s  %s", shortID(task.ID), task.Title)
	return nil
}
