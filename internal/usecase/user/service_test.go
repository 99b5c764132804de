package user_test

import (
	"context"
	"testing"
	"time"

	"laborlink/internal/domain/user"
	"laborlink/internal/repository"
	useruc "laborlink/internal/usecase/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, repo user.Repository) user.User {
	t.Helper()
	u := user.User{
		ID:           uuid.New(),
		Name:         "Rahul",
		Email:        "rahul@example.com",
		PasswordHash: "hash",
		Role:         user.RoleWorker,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestService_GetMe_HidesHash(t *testing.T) {
	repo := repository.NewMemoryUserRepository(nil, nil)
	u := seedUser(t, repo)

	got, err := useruc.NewService(repo).GetMe(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	assert.Empty(t, got.PasswordHash)
}

func TestService_GetMe_NotFound(t *testing.T) {
	repo := repository.NewMemoryUserRepository(nil, nil)
	_, err := useruc.NewService(repo).GetMe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestService_UpdateMe(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepository(nil, nil)
	u := seedUser(t, repo)
	svc := useruc.NewService(repo)

	name := "  Rahul Kumar "
	pw := "newpassword"
	done := true
	got, err := svc.UpdateMe(ctx, u.ID, useruc.UpdateMeInput{Name: &name, Password: &pw, ProfileCompleted: &done})
	require.NoError(t, err)
	assert.Equal(t, "Rahul Kumar", got.Name)
	assert.True(t, got.ProfileCompleted)

	stored, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(pw)))
}

func TestService_UpdateMe_Invalid(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepository(nil, nil)
	u := seedUser(t, repo)
	svc := useruc.NewService(repo)

	_, err := svc.UpdateMe(ctx, u.ID, useruc.UpdateMeInput{})
	assert.ErrorIs(t, err, useruc.ErrInvalidInput)

	short := "abc"
	_, err = svc.UpdateMe(ctx, u.ID, useruc.UpdateMeInput{Password: &short})
	assert.ErrorIs(t, err, useruc.ErrInvalidInput)

	blank := " "
	_, err = svc.UpdateMe(ctx, u.ID, useruc.UpdateMeInput{Name: &blank})
	assert.ErrorIs(t, err, useruc.ErrInvalidInput)
}
