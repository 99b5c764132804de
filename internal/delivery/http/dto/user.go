package dto

import (
	"time"

	"laborlink/internal/domain/user"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Name             *string `json:"name"`
	Password         *string `json:"password"`
	ProfileCompleted *bool   `json:"profile_completed"`
}

type UserProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	ProfileCompleted bool      `json:"profile_completed"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewUserProfileResponse(u user.User) UserProfileResponse {
	return UserProfileResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             string(u.Role),
		ProfileCompleted: u.ProfileCompleted,
		CreatedAt:        u.CreatedAt,
	}
}
