package session

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodtodo/taskdeck/domain"
)

// memCreds is an in-memory CredentialStore.
type memCreds struct {
	creds   domain.Credentials
	saves   int
	clears  int
	loadErr error
	saveErr error
}

func (m *memCreds) Load(ctx context.Context) (domain.Credentials, error) {
	if m.loadErr != nil {
		return domain.Credentials{}, m.loadErr
	}
	return m.creds, nil
}

func (m *memCreds) Save(ctx context.Context, creds domain.Credentials) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.creds = creds
	m.saves++
	return nil
}

func (m *memCreds) Clear(ctx context.Context) error {
	m.creds = domain.Credentials{}
	m.clears++
	return nil
}

// fakeUsers is an in-memory UserAPI.
type fakeUsers struct {
	user *domain.User
	err  error
}

func (f *fakeUsers) Me(ctx context.Context) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func TestLoginThenRestore(t *testing.T) {
	access := signedToken(t, jwt.MapClaims{
		"user_id":   "u1",
		"email":     "a@x.com",
		"role":      "member",
		"tenant_id": "t1",
	})
	creds := &memCreds{}
	store := New(creds, nil)

	loggedIn, err := store.Login(context.Background(), access, "refresh-1", "acme")
	require.NoError(t, err)
	require.NotNil(t, loggedIn)

	want := domain.Identity{
		SubjectID:   "u1",
		Email:       "a@x.com",
		DisplayName: "a",
		Role:        "member",
		TenantID:    "t1",
		TenantSlug:  "acme",
	}
	assert.Equal(t, want, *loggedIn)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, access, store.AccessToken())

	// All three slots written together.
	assert.Equal(t, domain.Credentials{
		AccessToken:  access,
		RefreshToken: "refresh-1",
		TenantSlug:   "acme",
	}, creds.creds)

	// A fresh store over the same storage restores the identical identity.
	restored, err := New(creds, nil).Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, want, *restored)
}

func TestRestore_NoSession(t *testing.T) {
	store := New(&memCreds{}, nil)

	identity, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, identity)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.AccessToken())
}

func TestRestore_MalformedToken(t *testing.T) {
	creds := &memCreds{creds: domain.Credentials{
		AccessToken:  "garbage",
		RefreshToken: "r",
		TenantSlug:   "acme",
	}}
	store := New(creds, nil)

	identity, err := store.Restore(context.Background())
	require.NoError(t, err, "decode failure degrades to logged out, not an error")
	assert.Nil(t, identity)
	assert.False(t, store.IsAuthenticated())

	// Storage is left untouched; only a new login or logout clears it.
	assert.Equal(t, "garbage", creds.creds.AccessToken)
	assert.Zero(t, creds.clears)
}

func TestRestore_Idempotent(t *testing.T) {
	access := signedToken(t, jwt.MapClaims{
		"user_id":   "u1",
		"email":     "a@x.com",
		"role":      "member",
		"tenant_id": "t1",
	})
	creds := &memCreds{creds: domain.Credentials{AccessToken: access, TenantSlug: "acme"}}
	store := New(creds, nil)

	first, err := store.Restore(context.Background())
	require.NoError(t, err)
	second, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Zero(t, creds.saves)
	assert.Zero(t, creds.clears)
}

func TestRestore_StorageFailure(t *testing.T) {
	store := New(&memCreds{loadErr: errors.New("disk gone")}, nil)

	identity, err := store.Restore(context.Background())
	require.Error(t, err)
	assert.Nil(t, identity)
}

func TestLogout(t *testing.T) {
	access := signedToken(t, jwt.MapClaims{
		"user_id":   "u1",
		"email":     "a@x.com",
		"role":      "member",
		"tenant_id": "t1",
	})
	creds := &memCreds{}
	store := New(creds, nil)

	_, err := store.Login(context.Background(), access, "r", "acme")
	require.NoError(t, err)
	require.NoError(t, store.Logout(context.Background()))

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Current())
	assert.Empty(t, store.AccessToken())

	identity, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestLogout_NoSession(t *testing.T) {
	creds := &memCreds{}
	store := New(creds, nil)

	require.NoError(t, store.Logout(context.Background()))
	assert.Equal(t, 1, creds.clears)
}

func TestEnrich(t *testing.T) {
	access := signedToken(t, jwt.MapClaims{
		"user_id":   "u1",
		"email":     "a@x.com",
		"role":      "member",
		"tenant_id": "t1",
	})
	store := New(&memCreds{}, nil)
	_, err := store.Login(context.Background(), access, "r", "acme")
	require.NoError(t, err)

	store.Enrich(context.Background(), &fakeUsers{user: &domain.User{
		ID:       "u1",
		Email:    "a@x.com",
		Name:     "Ada Lovelace",
		Role:     "admin",
		TenantID: "t1",
	}})

	identity := store.Current()
	require.NotNil(t, identity)
	assert.Equal(t, "Ada Lovelace", identity.DisplayName)
	assert.Equal(t, "admin", identity.Role)
	assert.Equal(t, "acme", identity.TenantSlug, "slug survives enrichment")
}

func TestEnrich_FailureKeepsTokenIdentity(t *testing.T) {
	access := signedToken(t, jwt.MapClaims{
		"user_id":   "u1",
		"email":     "a@x.com",
		"role":      "member",
		"tenant_id": "t1",
	})
	store := New(&memCreds{}, nil)
	_, err := store.Login(context.Background(), access, "r", "acme")
	require.NoError(t, err)

	store.Enrich(context.Background(), &fakeUsers{err: errors.New("unreachable")})

	identity := store.Current()
	require.NotNil(t, identity)
	assert.Equal(t, "a", identity.DisplayName)
	assert.Equal(t, "member", identity.Role)
}

func TestEnrich_NotAuthenticated(t *testing.T) {
	store := New(&memCreds{}, nil)
	store.Enrich(context.Background(), &fakeUsers{user: &domain.User{ID: "u9"}})
	assert.False(t, store.IsAuthenticated())
}
