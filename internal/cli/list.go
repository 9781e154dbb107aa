package cli

import (
	"github.com/spf13/cobra"

	"github.com/goodtodo/taskdeck/domain"
	"github.com/goodtodo/taskdeck/internal/output"
	"github.com/goodtodo/taskdeck/usecase/viewsync"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List your own tasks, the team-visible ones, or both.

Examples:
  taskdeck list            # my tasks
  taskdeck list --public   # team-visible tasks
  taskdeck list --all      # both`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("public", false, "show team-visible tasks")
	listCmd.Flags().Bool("all", false, "show both views")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireAuth(); err != nil {
		return err
	}

	showPublic, _ := cmd.Flags().GetBool("public")
	showAll, _ := cmd.Flags().GetBool("all")

	if err := a.sync.RefreshAll(cmd.Context()); err != nil {
		return err
	}

	if showAll || !showPublic {
		a.renderView(a.mine, "My tasks")
	}
	if showAll || showPublic {
		a.renderView(a.public, "Team-visible tasks")
	}
	return nil
}

func (a *app) renderView(view *viewsync.View, title string) {
	tasks, state := view.Snapshot()
	if state != viewsync.StateFresh {
		a.printer.Notice("%s could not be refreshed, showing last known state", title)
	}

	a.printer.Header(title)
	if len(tasks) == 0 {
		a.printer.Print(a.printer.Dim("  (none)"))
		return
	}

	identity := a.session.Current()
	table := output.NewTable([]string{"ID", "Title", "Done", "Public", "Due", "Owner"})
	for _, task := range tasks {
		table.AddRow(taskRow(task, identity))
	}
	table.Render()
}

func taskRow(task domain.Task, identity *domain.Identity) []string {
	done := ""
	if task.Completed {
		done = "x"
	}
	public := ""
	if task.IsPublic {
		public = "yes"
	}
	due := ""
	if task.DueDate != nil {
		due = task.DueDate.Format("2006-01-02")
	}
	owner := task.OwnerID
	if task.Creator != nil && task.Creator.Name != "" {
		owner = task.Creator.Name
	}
	if task.OwnedBy(identity) {
		owner = "me"
	}
	return []string{shortID(task.ID), task.Title, done, public, due, owner}
}

// shortID keeps listings readable; commands accept the prefix back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
