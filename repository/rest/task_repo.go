package rest

import (
	"context"

	"github.com/valyala/fasthttp"

	"github.com/goodtodo/taskdeck/domain"
	"github.com/goodtodo/taskdeck/repository"
)

type taskRepository struct {
	client *Client
}

// NewTaskRepository builds the /todos endpoints client.
func NewTaskRepository(client *Client) repository.TaskAPI {
	return &taskRepository{client: client}
}

// taskList is the wire shape of both list endpoints.
type taskList struct {
	Todos []domain.Task `json:"todos"`
	Total int           `json:"total,omitempty"`
}

func (r *taskRepository) ListMine(ctx context.Context) ([]domain.Task, error) {
	var list taskList
	if err := r.client.do(ctx, fasthttp.MethodGet, "/todos", nil, &list); err != nil {
		return nil, err
	}
	return list.Todos, nil
}

func (r *taskRepository) ListPublic(ctx context.Context) ([]domain.Task, error) {
	var list taskList
	if err := r.client.do(ctx, fasthttp.MethodGet, "/todos/public", nil, &list); err != nil {
		return nil, err
	}
	return list.Todos, nil
}

func (r *taskRepository) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	var task domain.Task
	if err := r.client.do(ctx, fasthttp.MethodPost, "/todos", draft, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}
	var task domain.Task
	err := r.client.do(ctx, fasthttp.MethodPatch, "/todos/"+id, patch, &task)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	err := r.client.do(ctx, fasthttp.MethodDelete, "/todos/"+id, nil, nil)
	if err != nil && domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return domain.ErrTaskNotFound
	}
	return err
}
