package usecase

import (
	"context"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"
)

type DashboardStats struct {
	Users        int
	Workers      int
	Employers    int
	Jobs         int
	ActiveJobs   int
	UrgentJobs   int
	Applications int
}

type StatsUsecase interface {
	Dashboard(ctx context.Context, actor user.Actor) (DashboardStats, error)
}

type Stats struct {
	users user.Repository
	jobs  job.Repository
	apps  application.Repository
}

func NewStatsUsecase(users user.Repository, jobs job.Repository, apps application.Repository) *Stats {
	return &Stats{users: users, jobs: jobs, apps: apps}
}

func (u *Stats) Dashboard(ctx context.Context, actor user.Actor) (DashboardStats, error) {
	if actor.Role != user.RoleAdmin {
		return DashboardStats{}, ErrForbidden
	}

	users, err := u.users.List(ctx)
	if err != nil {
		return DashboardStats{}, ErrInternal
	}
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return DashboardStats{}, ErrInternal
	}
	apps, err := u.apps.Count(ctx)
	if err != nil {
		return DashboardStats{}, ErrInternal
	}

	s := DashboardStats{Users: len(users), Jobs: len(jobs), Applications: apps}
	for _, usr := range users {
		switch usr.Role {
		case user.RoleWorker:
			s.Workers++
		case user.RoleEmployer:
			s.Employers++
		}
	}
	for _, j := range jobs {
		if j.IsActive {
			s.ActiveJobs++
		}
		if j.IsUrgent {
			s.UrgentJobs++
		}
	}
	return s, nil
}
