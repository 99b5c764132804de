package user

import (
	"context"
	"errors"
	"strings"

	"laborlink/internal/domain/user"
	"laborlink/internal/usecase/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// UpdateMeInput holds the profile fields a user may change. Nil means keep.
type UpdateMeInput struct {
	Name             *string
	Password         *string
	ProfileCompleted *bool
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateMeInput) (user.User, error) {
	if in.Name == nil && in.Password == nil && in.ProfileCompleted == nil {
		return user.User{}, ErrInvalidInput
	}

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Name = name
	}

	if in.Password != nil {
		pw := strings.TrimSpace(*in.Password)
		if len(pw) < 8 {
			return user.User{}, ErrInvalidInput
		}
		hash, err := auth.HashPassword(pw)
		if err != nil {
			return user.User{}, ErrInternal
		}
		usr.PasswordHash = hash
	}

	if in.ProfileCompleted != nil {
		usr.ProfileCompleted = *in.ProfileCompleted
	}

	if err := s.users.Update(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
