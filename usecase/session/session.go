package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/goodtodo/taskdeck/domain"
	"github.com/goodtodo/taskdeck/repository"
)

// Store is the single source of truth for "who is logged in, to which
// tenant" for the lifetime of the process, backed by a durable
// credential store for continuity across restarts.
//
// A malformed or expired token degrades to "logged out" rather than an
// error: the caller's natural recovery is to route to the login flow,
// which it does whenever IsAuthenticated is false.
type Store struct {
	mu       sync.RWMutex
	creds    repository.CredentialStore
	logger   *zap.Logger
	identity *domain.Identity
	current  domain.Credentials
}

// New builds a session store over the given credential storage.
func New(creds repository.CredentialStore, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		creds:  creds,
		logger: logger,
	}
}

// Restore loads the persisted credentials and derives the identity
// from them. An absent token yields (nil, nil). A malformed token is
// logged, leaves storage untouched, and also yields (nil, nil); only
// storage failures surface as errors. Safe to call repeatedly.
func (s *Store) Restore(ctx context.Context) (*domain.Identity, error) {
	creds, err := s.creds.Load(ctx)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "load credentials", err)
	}

	var identity *domain.Identity
	if !creds.Empty() {
		identity, err = decodeIdentity(creds.AccessToken, creds.TenantSlug)
		if err != nil {
			s.logger.Warn("stored token is not decodable, treating as logged out", zap.Error(err))
			identity = nil
		}
	}

	s.mu.Lock()
	s.current = creds
	s.identity = identity
	s.mu.Unlock()

	return s.Current(), nil
}

// Login persists all three slots verbatim, overwriting any prior
// session, and installs the identity decoded from the access token.
// A decode failure still persists the credentials and returns
// (nil, nil), mirroring Restore.
func (s *Store) Login(ctx context.Context, accessToken, refreshToken, tenantSlug string) (*domain.Identity, error) {
	creds := domain.Credentials{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TenantSlug:   tenantSlug,
	}
	if err := s.creds.Save(ctx, creds); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "persist credentials", err)
	}

	identity, err := decodeIdentity(accessToken, tenantSlug)
	if err != nil {
		s.logger.Warn("issued token is not decodable", zap.Error(err))
		identity = nil
	}

	s.mu.Lock()
	s.current = creds
	s.identity = identity
	s.mu.Unlock()

	return s.Current(), nil
}

// Logout clears all three persisted slots and the in-memory identity.
// Safe to call when no session exists.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "clear credentials", err)
	}

	s.mu.Lock()
	s.current = domain.Credentials{}
	s.identity = nil
	s.mu.Unlock()

	return nil
}

// Enrich replaces the token-derived identity with the server's view of
// the user, best effort. Failure is logged only; the token-derived
// identity remains authoritative fallback. The tenant slug is kept,
// since only the login act knows it.
func (s *Store) Enrich(ctx context.Context, users repository.UserAPI) {
	if users == nil || !s.IsAuthenticated() {
		return
	}

	user, err := users.Me(ctx)
	if err != nil {
		s.logger.Warn("profile enrichment failed", zap.Error(err))
		return
	}

	name := user.Name
	if name == "" {
		name = domain.FallbackName(user.Email)
	}

	s.mu.Lock()
	if s.identity != nil {
		s.identity = &domain.Identity{
			SubjectID:   user.ID,
			Email:       user.Email,
			DisplayName: name,
			Role:        user.Role,
			TenantID:    user.TenantID,
			TenantSlug:  s.identity.TenantSlug,
		}
	}
	s.mu.Unlock()
}

// Current returns a copy of the current identity, or nil when logged
// out. Never triggers I/O.
func (s *Store) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// IsAuthenticated reports whether an identity is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// AccessToken returns the bearer credential for outgoing requests, or
// "" when logged out.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return ""
	}
	return s.current.AccessToken
}
