package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/accounts-be/internal/models"
	"github.com/hongminglow/accounts-be/internal/storage"
)

func ptr[T any](v T) *T {
	return &v
}

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := New()

	created, err := s.CreateUser(ctx, models.User{Email: "a@b.com", Username: ptr("ana1"), Name: "Ana", Age: 30, PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	_, err = s.CreateUser(ctx, models.User{Email: "a@b.com", Name: "Other"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	_, err = s.CreateUser(ctx, models.User{Email: "c@d.com", Username: ptr("ana1")})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	got, err := s.FindUserByUsername(ctx, "ana1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.FindUserByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	updated, err := s.UpdateUser(ctx, created.ID, models.UserPatch{Age: ptr(31)})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 31, updated.Age)

	missing, err := s.UpdateUser(ctx, 404, models.UserPatch{Age: ptr(31)})
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Equal(t, 2, s.Writes())
}

func TestStore_Businesses(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.CreateBusiness(ctx, models.Business{Email: "shop@b.com", Username: "shop1"})
	require.NoError(t, err)
	_, err = s.CreateBusiness(ctx, models.Business{Email: "other@b.com", Username: "shop1"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	got, err := s.FindBusinessByEmail(ctx, "shop@b.com")
	require.NoError(t, err)
	assert.Equal(t, "shop1", got.Username)
}

func TestStore_FailWith(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	s.FailWith(boom)

	_, err := s.FindBusinessByUsername(context.Background(), "x")
	assert.ErrorIs(t, err, boom)

	s.FailWith(nil)
	_, err = s.FindBusinessByUsername(context.Background(), "x")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
