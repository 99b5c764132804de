package repository

import (
	"context"
	"strings"
	"testing"

	"laborlink/internal/database"
	"laborlink/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type fakeDB struct {
	execs    []string
	affected int64
	rowErr   error
}

func (db *fakeDB) Ping(context.Context) error { return nil }
func (db *fakeDB) Close() error               { return nil }

func (db *fakeDB) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	db.execs = append(db.execs, strings.TrimSpace(query))
	return db.affected, nil
}

func (db *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (db *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return errRow{err: db.rowErr}
}

func (db *fakeDB) Begin(context.Context) (database.Tx, error) { return nil, database.ErrNilDB }

func TestPostgresJobRepository_GetMapsNoRows(t *testing.T) {
	repo := NewPostgresJobRepository(&fakeDB{rowErr: pgx.ErrNoRows})
	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestPostgresJobRepository_DeleteMissingIsNoop(t *testing.T) {
	db := &fakeDB{affected: 0}
	repo := NewPostgresJobRepository(db)
	require.NoError(t, repo.Delete(context.Background(), uuid.New()))
	require.Len(t, db.execs, 1)
	assert.True(t, strings.HasPrefix(db.execs[0], "DELETE FROM jobs"))
}

func TestPostgresJobRepository_CreateValidatesBeforeInsert(t *testing.T) {
	db := &fakeDB{affected: 1}
	repo := NewPostgresJobRepository(db)

	_, err := repo.Create(context.Background(), job.CreateInput{})
	assert.ErrorIs(t, err, job.ErrInvalidInput)
	assert.Empty(t, db.execs)

	j, err := repo.Create(context.Background(), validInput("Mason"))
	require.NoError(t, err)
	assert.True(t, j.IsActive)
	require.Len(t, db.execs, 1)
	assert.True(t, strings.HasPrefix(db.execs[0], "INSERT INTO jobs"))
}

func TestPostgresApplicationRepository_DeleteByJob(t *testing.T) {
	db := &fakeDB{affected: 3}
	repo := NewPostgresApplicationRepository(db)

	n, err := repo.DeleteByJob(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, db.execs, 1)
	assert.True(t, strings.HasPrefix(db.execs[0], "DELETE FROM applications WHERE job_id"))
}
