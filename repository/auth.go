package repository

import (
	"context"

	"github.com/goodtodo/taskdeck/domain"
)

// LoginInput carries the credentials the user typed at login.
type LoginInput struct {
	TenantSlug string `json:"tenant_slug"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// RegisterInput carries the account fields for a new registration.
type RegisterInput struct {
	TenantSlug string `json:"tenant_slug"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name,omitempty"`
}

// AuthAPI exchanges user credentials for a token pair.
type AuthAPI interface {
	Login(ctx context.Context, in LoginInput) (*domain.TokenPair, error)
	Register(ctx context.Context, in RegisterInput) (*domain.TokenPair, error)
}

// UserAPI reads the authenticated user's profile.
type UserAPI interface {
	Me(ctx context.Context) (*domain.User, error)
}
