package repository

import (
	"context"

	"github.com/goodtodo/taskdeck/domain"
)

// TaskAPI is the task CRUD surface of the remote service. ListMine
// returns the caller's own tasks, ListPublic the team-visible ones;
// both filters are applied server side.
type TaskAPI interface {
	ListMine(ctx context.Context) ([]domain.Task, error)
	ListPublic(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
