package rest

import (
	"context"

	"github.com/valyala/fasthttp"

	"github.com/goodtodo/taskdeck/domain"
	"github.com/goodtodo/taskdeck/repository"
)

type userRepository struct {
	client *Client
}

// NewUserRepository builds the /users/me endpoint client.
func NewUserRepository(client *Client) repository.UserAPI {
	return &userRepository{client: client}
}

func (r *userRepository) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := r.client.do(ctx, fasthttp.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
