package repository

import (
	"context"

	"github.com/goodtodo/taskdeck/domain"
)

// CredentialStore persists the three session slots across process
// restarts. Save and Clear must be atomic: either all three slots
// change or none do.
type CredentialStore interface {
	Load(ctx context.Context) (domain.Credentials, error)
	Save(ctx context.Context, creds domain.Credentials) error
	Clear(ctx context.Context) error
}
