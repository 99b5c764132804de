package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"
	"laborlink/internal/generator"
	"laborlink/internal/locale"
	"laborlink/internal/matching"
	"laborlink/internal/metrics"
	"laborlink/internal/pkg/logging"

	"github.com/google/uuid"
)

const (
	searchLockTTL  = 30 * time.Second
	searchLockWait = 300 * time.Millisecond
)

// JobListParams carries raw board query values. Empty or "All" facets
// place no constraint.
type JobListParams struct {
	Scope      string
	Category   string
	Type       string
	Experience string
	Salary     string
	Country    string
	Search     string
	Locale     string
}

type CreateJobInput struct {
	job.CreateInput
	GenerateDescription bool
	Locale              string
}

// JobEvents receives board change notifications.
type JobEvents interface {
	NotifyJobsUpdated(action string, jobID uuid.UUID)
}

type JobBoardUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]matching.DisplayJob, error)
	GetJob(ctx context.Context, id uuid.UUID, lang string) (matching.DisplayJob, error)
	CreateJob(ctx context.Context, actor user.Actor, in CreateJobInput) (job.Job, error)
	DeleteJob(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type JobBoard struct {
	jobs      job.Repository
	apps      application.Repository
	generator generator.Generator
	cache     SearchCache
	events    JobEvents
	metrics   *metrics.Metrics
	logger    *logging.Logger
}

// NewJobBoardUsecase builds the board. apps may be nil; when set, deleting a
// job also deletes its applications.
func NewJobBoardUsecase(jobs job.Repository, apps application.Repository, gen generator.Generator, cache SearchCache, events JobEvents, m *metrics.Metrics, logger *logging.Logger) *JobBoard {
	return &JobBoard{jobs: jobs, apps: apps, generator: gen, cache: cache, events: events, metrics: m, logger: logger}
}

func (u *JobBoard) ListJobs(ctx context.Context, params JobListParams) ([]matching.DisplayJob, error) {
	criteria, ok := matching.NewCriteria(
		params.Scope, params.Category, params.Type, params.Experience,
		params.Salary, params.Country, params.Search,
	)
	if !ok {
		return nil, ErrInvalidInput
	}
	lang := locale.Resolve(params.Locale)

	cacheable := u.cache != nil && u.cache.Available()
	var generation int64
	if cacheable {
		g, err := u.cache.GetInt64(ctx, jobsBoardGenerationKey)
		if err != nil {
			cacheable = false
		}
		generation = g
	}
	cacheKey := JobsSearchCacheKey(criteria, lang, generation)
	lockKey := JobsSearchLockKey(cacheKey)

	if cacheable {
		if cached, hit := u.cachedList(ctx, cacheKey); hit {
			u.metrics.ObserveList(string(criteria.Scope), true, len(cached))
			return cached, nil
		}

		acquired, err := u.cache.SetIfNotExists(ctx, lockKey, "1", searchLockTTL)
		switch {
		case err != nil:
		case acquired:
			defer func() { _ = u.cache.Delete(context.WithoutCancel(ctx), lockKey) }()
		default:
			jitter := time.Duration(rand.IntN(201)) * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(searchLockWait + jitter):
			}
			if cached, hit := u.cachedList(ctx, cacheKey); hit {
				u.metrics.ObserveList(string(criteria.Scope), true, len(cached))
				return cached, nil
			}
			u.logger.Debug("jobs search lock wait fallback", "key", lockKey)
		}
	}

	all, err := u.jobs.List(ctx)
	if err != nil {
		u.logger.Error("list jobs failed", "err", err)
		return nil, ErrInternal
	}
	out := matching.ProjectAll(matching.Filter(all, criteria), lang)

	if cacheable {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err != nil {
			u.logger.Warn("jobs search cache set failed", "key", cacheKey, "err", err)
		}
	}

	u.metrics.ObserveList(string(criteria.Scope), false, len(out))
	return out, nil
}

func (u *JobBoard) cachedList(ctx context.Context, key string) ([]matching.DisplayJob, bool) {
	var cached []matching.DisplayJob
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err != nil || !hit {
		return nil, false
	}
	u.logger.Debug("jobs search cache hit", "key", key)
	return cached, true
}

func (u *JobBoard) GetJob(ctx context.Context, id uuid.UUID, lang string) (matching.DisplayJob, error) {
	j, err := u.jobs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return matching.DisplayJob{}, ErrNotFound
		}
		return matching.DisplayJob{}, ErrInternal
	}
	if !j.IsActive {
		return matching.DisplayJob{}, ErrNotFound
	}
	return matching.Project(j, locale.Resolve(lang)), nil
}

func (u *JobBoard) CreateJob(ctx context.Context, actor user.Actor, in CreateJobInput) (job.Job, error) {
	if !actor.Role.CanPostJobs() {
		return job.Job{}, ErrForbidden
	}

	in.EmployerID = actor.UserID.String()
	if err := in.Validate(); err != nil {
		return job.Job{}, ErrInvalidInput
	}

	if strings.TrimSpace(in.Description) == "" && in.GenerateDescription && u.generator != nil {
		in.Description = u.generator.Generate(ctx, in.Title, in.Category, locale.Resolve(in.Locale))
	}

	created, err := u.jobs.Create(ctx, in.CreateInput)
	if err != nil {
		if errors.Is(err, job.ErrInvalidInput) {
			return job.Job{}, ErrInvalidInput
		}
		u.logger.Error("create job failed", "err", err)
		return job.Job{}, ErrInternal
	}

	u.logger.Info("job created", "job_id", created.ID, "employer_id", created.EmployerID, "scope", created.Scope)
	u.afterChange(ctx, "created", created.ID)
	u.metrics.JobCreated()
	return created, nil
}

// DeleteJob removes a posting. Admins may delete any job and employers only
// their own. Deleting an unknown id succeeds without effect.
func (u *JobBoard) DeleteJob(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.Role.CanPostJobs() {
		return ErrForbidden
	}

	j, err := u.jobs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil
		}
		return ErrInternal
	}
	if actor.Role != user.RoleAdmin && j.EmployerID != actor.UserID.String() {
		return ErrForbidden
	}

	if err := u.jobs.Delete(ctx, id); err != nil {
		u.logger.Error("delete job failed", "job_id", id, "err", err)
		return ErrInternal
	}
	if u.apps != nil {
		if n, err := u.apps.DeleteByJob(ctx, id); err != nil {
			u.logger.Warn("delete job applications failed", "job_id", id, "err", err)
		} else if n > 0 {
			u.logger.Debug("job applications removed", "job_id", id, "count", n)
		}
	}

	u.logger.Info("job deleted", "job_id", id, "by", actor.UserID)
	u.afterChange(ctx, "deleted", id)
	u.metrics.JobDeleted()
	return nil
}

func (u *JobBoard) afterChange(ctx context.Context, action string, id uuid.UUID) {
	if u.cache != nil && u.cache.Available() {
		if _, err := u.cache.Incr(ctx, jobsBoardGenerationKey); err != nil {
			u.logger.Warn("jobs board generation bump failed", "err", err)
		}
		if err := u.cache.DeleteByPattern(ctx, jobsSearchPattern); err != nil {
			u.logger.Warn("jobs search cache invalidation failed", "err", err)
		}
	}
	if u.events != nil {
		u.events.NotifyJobsUpdated(action, id)
	}
}
