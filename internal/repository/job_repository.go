package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"laborlink/internal/database"
	"laborlink/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, employer_id, scope, category, job_type, salary, experience_level, location,
	title, description, contact, workers_required, visa_type, accommodation, contract_period,
	is_urgent, is_new, is_active, translations, posted_at`

type PostgresJobRepository struct {
	db  database.DB
	now func() time.Time
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db, now: time.Now}
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY posted_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, in job.CreateInput) (job.Job, error) {
	if err := in.Validate(); err != nil {
		return job.Job{}, err
	}
	j := job.NewFromInput(in, r.now())
	if err := r.insert(ctx, j); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

// Import inserts fully formed jobs, skipping ids that already exist.
func (r *PostgresJobRepository) Import(ctx context.Context, jobs []job.Job) error {
	for _, j := range jobs {
		if err := r.insert(ctx, j); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}

func (r *PostgresJobRepository) insert(ctx context.Context, j job.Job) error {
	translations, err := json.Marshal(j.Translations)
	if err != nil {
		return err
	}
	if j.Translations == nil {
		translations = []byte("{}")
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		 ON CONFLICT (id) DO NOTHING`,
		j.ID, j.EmployerID, string(j.Scope), j.Category, string(j.Type), j.Salary, j.ExperienceLevel, j.Location,
		j.Title, j.Description, j.Contact, j.WorkersRequired, j.VisaType, j.Accommodation, j.ContractPeriod,
		j.IsUrgent, j.IsNew, j.IsActive, translations, j.PostedAt,
	)
	return err
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j            job.Job
		scope, typ   string
		translations []byte
	)
	if err := row.Scan(
		&j.ID, &j.EmployerID, &scope, &j.Category, &typ, &j.Salary, &j.ExperienceLevel, &j.Location,
		&j.Title, &j.Description, &j.Contact, &j.WorkersRequired, &j.VisaType, &j.Accommodation, &j.ContractPeriod,
		&j.IsUrgent, &j.IsNew, &j.IsActive, &translations, &j.PostedAt,
	); err != nil {
		return job.Job{}, err
	}
	j.Scope = job.Scope(scope)
	j.Type = job.Type(typ)
	if len(translations) > 0 {
		if err := json.Unmarshal(translations, &j.Translations); err != nil {
			return job.Job{}, err
		}
		if len(j.Translations) == 0 {
			j.Translations = nil
		}
	}
	return j, nil
}
