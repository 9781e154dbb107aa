package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackName(t *testing.T) {
	assert.Equal(t, "a", FallbackName("a@x.com"))
	assert.Equal(t, "jane.doe", FallbackName("jane.doe@example.org"))
	assert.Equal(t, "no-at-sign", FallbackName("no-at-sign"))
	assert.Equal(t, "@x.com", FallbackName("@x.com"))
	assert.Equal(t, "", FallbackName(""))
}

func TestOwnedBy(t *testing.T) {
	me := &Identity{SubjectID: "u1"}
	task := &Task{ID: "t1", OwnerID: "u1"}

	assert.True(t, task.OwnedBy(me))
	assert.False(t, task.OwnedBy(&Identity{SubjectID: "u2"}))
	assert.False(t, task.OwnedBy(nil))
	assert.False(t, (*Task)(nil).OwnedBy(me))
}

func TestTaskPatchIsEmpty(t *testing.T) {
	assert.True(t, TaskPatch{}.IsEmpty())

	completed := true
	assert.False(t, TaskPatch{Completed: &completed}.IsEmpty())
}

func TestCredentialsEmpty(t *testing.T) {
	assert.True(t, Credentials{}.Empty())
	assert.True(t, Credentials{RefreshToken: "r", TenantSlug: "acme"}.Empty())
	assert.False(t, Credentials{AccessToken: "a"}.Empty())
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(ErrTaskNotFound, ErrCodeNotFound))
	assert.False(t, IsDomainError(ErrTaskNotFound, ErrCodeForbidden))
	assert.False(t, IsDomainError(errors.New("plain"), ErrCodeNotFound))

	wrapped := WrapError(ErrCodeUnavailable, "fetch tasks", errors.New("dial tcp"))
	assert.True(t, IsDomainError(wrapped, ErrCodeUnavailable))
	assert.ErrorContains(t, wrapped, "fetch tasks")
}
