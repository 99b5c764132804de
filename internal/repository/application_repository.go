package repository

import (
	"context"
	"errors"

	"laborlink/internal/database"
	"laborlink/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, job_id, worker_id, worker_name, worker_contact, status, applied_at`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, bool, error) {
	n, err := r.db.Exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (job_id, worker_id) DO NOTHING`,
		a.ID, a.JobID, a.WorkerID, a.WorkerName, a.WorkerContact, string(a.Status), a.AppliedAt,
	)
	if err != nil {
		return application.Application{}, false, err
	}
	if n > 0 {
		return a, true, nil
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND worker_id = $2`,
		a.JobID, a.WorkerID,
	)
	existing, err := scanApplication(row)
	if err != nil {
		return application.Application{}, false, err
	}
	return existing, false, nil
}

func (r *PostgresApplicationRepository) Get(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE worker_id = $1 ORDER BY seq ASC`, workerID)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY seq ASC`, jobID)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1 RETURNING `+applicationColumns,
		id, string(status),
	)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) Count(ctx context.Context) (int, error) {
	var c int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM applications`).Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

// DeleteByJob is normally a no-op because the foreign key cascades when the
// job row is deleted.
func (r *PostgresApplicationRepository) DeleteByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, jobID)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, arg uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var (
		a      application.Application
		status string
	)
	if err := row.Scan(&a.ID, &a.JobID, &a.WorkerID, &a.WorkerName, &a.WorkerContact, &status, &a.AppliedAt); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
