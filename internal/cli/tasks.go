package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodtodo/taskdeck/domain"
)

// resolveOwnTask maps an id or unique id prefix to one of the caller's
// own tasks. Mutations are only offered for owned tasks; tasks that
// merely show up in the public view belong to someone else.
func (a *app) resolveOwnTask(ctx context.Context, ref string) (*domain.Task, error) {
	if err := a.mine.Refresh(ctx); err != nil {
		return nil, err
	}

	tasks, _ := a.mine.Snapshot()
	var match *domain.Task
	for i := range tasks {
		if tasks[i].ID == ref {
			return &tasks[i], nil
		}
		if strings.HasPrefix(tasks[i].ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("task id %q is ambiguous", ref)
			}
			match = &tasks[i]
		}
	}
	if match == nil {
		// Not ours. Check the public view so the error can say so.
		_ = a.public.Refresh(ctx)
		if a.inPublicView(ref) {
			return nil, domain.ErrNotOwner
		}
		return nil, domain.ErrTaskNotFound
	}
	return match, nil
}

func (a *app) inPublicView(ref string) bool {
	tasks, _ := a.public.Snapshot()
	for i := range tasks {
		if tasks[i].ID == ref || strings.HasPrefix(tasks[i].ID, ref) {
			return true
		}
	}
	return false
}

// parseDue parses the --due flag.
func parseDue(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	due, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q, want YYYY-MM-DD", value)
	}
	return &due, nil
}
