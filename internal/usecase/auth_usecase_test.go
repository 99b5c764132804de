package usecase

import (
	"context"
	"testing"
	"time"

	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/jwt"
	"laborlink/internal/repository"
	ucauth "laborlink/internal/usecase/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	ctx := context.Background()
	svc := jwt.NewHMACService("access", "refresh", time.Minute, time.Hour)
	uc := NewAuthUsecase(repository.NewMemoryUserRepository(nil, nil), svc)

	usr, access, refresh, err := uc.Register(ctx, ucauth.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "password1", Role: user.RoleEmployer,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, claims.UserID)
	assert.Equal(t, "employer", claims.Role)

	_, _, _, err = uc.Login(ctx, ucauth.LoginInput{Email: "asha@example.com", Password: "password1"})
	require.NoError(t, err)

	newAccess, newRefresh, err := uc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)

	_, _, err = uc.Refresh(ctx, access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, _, err = uc.Refresh(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
