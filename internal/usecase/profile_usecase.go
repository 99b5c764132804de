package usecase

import (
	"context"
	"errors"
	"strings"

	"laborlink/internal/domain/profile"
	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/logging"
)

// ProfileDocument is the caller's role-specific profile. Exactly one of
// Worker and Employer is set.
type ProfileDocument struct {
	Role     user.Role
	Worker   *profile.WorkerProfile
	Employer *profile.EmployerProfile
}

type ProfileUsecase interface {
	Get(ctx context.Context, actor user.Actor) (ProfileDocument, error)
	SaveWorker(ctx context.Context, actor user.Actor, p profile.WorkerProfile) (profile.WorkerProfile, error)
	SaveEmployer(ctx context.Context, actor user.Actor, p profile.EmployerProfile) (profile.EmployerProfile, error)
}

type Profiles struct {
	profiles profile.Repository
	users    user.Repository
	logger   *logging.Logger
}

func NewProfileUsecase(profiles profile.Repository, users user.Repository, logger *logging.Logger) *Profiles {
	return &Profiles{profiles: profiles, users: users, logger: logger}
}

func (u *Profiles) Get(ctx context.Context, actor user.Actor) (ProfileDocument, error) {
	switch actor.Role {
	case user.RoleWorker:
		p, err := u.profiles.GetWorker(ctx, actor.UserID)
		if err != nil {
			return ProfileDocument{}, profileRepoError(err)
		}
		return ProfileDocument{Role: actor.Role, Worker: &p}, nil
	case user.RoleEmployer:
		p, err := u.profiles.GetEmployer(ctx, actor.UserID)
		if err != nil {
			return ProfileDocument{}, profileRepoError(err)
		}
		return ProfileDocument{Role: actor.Role, Employer: &p}, nil
	default:
		return ProfileDocument{}, ErrForbidden
	}
}

// SaveWorker replaces the worker's profile and marks the account's profile
// as completed.
func (u *Profiles) SaveWorker(ctx context.Context, actor user.Actor, p profile.WorkerProfile) (profile.WorkerProfile, error) {
	if actor.Role != user.RoleWorker {
		return profile.WorkerProfile{}, ErrForbidden
	}
	p.UserID = actor.UserID
	p.Phone = strings.TrimSpace(p.Phone)
	p.City = strings.TrimSpace(p.City)
	p.Skills = cleanList(p.Skills)
	p.Languages = cleanList(p.Languages)
	p.PreferredLocation = cleanList(p.PreferredLocation)
	if p.Gender == "" {
		p.Gender = profile.GenderMale
	}
	if p.Phone == "" || !p.Gender.Valid() || p.ExperienceYears < 0 {
		return profile.WorkerProfile{}, ErrInvalidInput
	}

	if err := u.markCompleted(ctx, actor); err != nil {
		return profile.WorkerProfile{}, err
	}
	if err := u.profiles.SaveWorker(ctx, p); err != nil {
		return profile.WorkerProfile{}, ErrInternal
	}
	u.logger.Info("worker profile saved", "user_id", actor.UserID)
	return p, nil
}

func (u *Profiles) SaveEmployer(ctx context.Context, actor user.Actor, p profile.EmployerProfile) (profile.EmployerProfile, error) {
	if actor.Role != user.RoleEmployer {
		return profile.EmployerProfile{}, ErrForbidden
	}
	p.UserID = actor.UserID
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.Phone = strings.TrimSpace(p.Phone)
	if p.CompanyName == "" || p.Phone == "" {
		return profile.EmployerProfile{}, ErrInvalidInput
	}

	if err := u.markCompleted(ctx, actor); err != nil {
		return profile.EmployerProfile{}, err
	}
	if err := u.profiles.SaveEmployer(ctx, p); err != nil {
		return profile.EmployerProfile{}, ErrInternal
	}
	u.logger.Info("employer profile saved", "user_id", actor.UserID)
	return p, nil
}

func (u *Profiles) markCompleted(ctx context.Context, actor user.Actor) error {
	usr, err := u.users.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if usr.ProfileCompleted {
		return nil
	}
	usr.ProfileCompleted = true
	if err := u.users.Update(ctx, usr); err != nil {
		return ErrInternal
	}
	return nil
}

func profileRepoError(err error) error {
	if errors.Is(err, profile.ErrNotFound) {
		return ErrNotFound
	}
	return ErrInternal
}

// cleanList trims entries and drops empty ones, e.g. from "Hindi, , Bengali".
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
