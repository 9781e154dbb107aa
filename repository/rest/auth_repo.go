package rest

import (
	"context"

	"github.com/valyala/fasthttp"

	"github.com/goodtodo/taskdeck/domain"
	"github.com/goodtodo/taskdeck/repository"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository builds the login/registration endpoints client.
func NewAuthRepository(client *Client) repository.AuthAPI {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, in repository.LoginInput) (*domain.TokenPair, error) {
	var pair domain.TokenPair
	if err := r.client.do(ctx, fasthttp.MethodPost, "/auth/login", in, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (r *authRepository) Register(ctx context.Context, in repository.RegisterInput) (*domain.TokenPair, error) {
	var pair domain.TokenPair
	if err := r.client.do(ctx, fasthttp.MethodPost, "/auth/register", in, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}
