package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorials/infras/otel/mocks"
	"tutorials/infras/postgres"
	"tutorials/shared"
	"tutorials/shared/dto"
	"tutorials/shared/model"
	"tutorials/shared/repository"
)

const selectColumns = "samples.id, samples.name, samples.active, samples.created_at, samples.updated_at"

type sample struct {
	ID     int64  `db:"id" generated:"true"`
	Name   string `db:"name"`
	Active bool   `db:"active"`
	model.Metadata
}

func newRepository(t *testing.T) (repository.Repository[sample], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	conn := &postgres.Connection{DB: sqlx.NewDb(db, "postgres")}

	return repository.NewRepository[sample]("sample", "samples", "id", conn, mocks.NewOtel()), mock
}

func sampleRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "active", "created_at", "updated_at"}).
		AddRow(1, "first", true, now, now).
		AddRow(2, "second", false, now, now)
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo, _ := newRepository(t)

	assert.Equal(t, []string{"name", "active", "created_at", "updated_at"}, repo.InsertColumns)
}

func TestRepository_Insert(t *testing.T) {
	now := time.Now()
	repo, mock := newRepository(t)

	mock.ExpectQuery("INSERT INTO samples (name, active, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING " + selectColumns).
		WithArgs("first", true, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active", "created_at", "updated_at"}).AddRow(7, "first", true, now, now))

	stored, err := repo.Insert(t.Context(), sample{Name: "first", Active: true, Metadata: model.Metadata{CreatedAt: now, UpdatedAt: now}})
	require.NoError(t, err)

	assert.Equal(t, int64(7), stored.ID)
	assert.Equal(t, "first", stored.Name)
	assert.True(t, stored.Active)
}

func TestRepository_Insert_Error(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("INSERT INTO samples (name, active, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING " + selectColumns).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Insert(t.Context(), sample{Name: "first"})
	assert.ErrorContains(t, err, "failed to insert data (sample)")
}

func TestRepository_Get(t *testing.T) {
	now := time.Now()
	query := "SELECT " + selectColumns + " FROM samples WHERE (samples.id = $1) LIMIT 1"

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(query).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active", "created_at", "updated_at"}).AddRow(1, "first", true, now, now))

		got, err := repo.Get(t.Context(), shared.FilterByID(int64(1), "id", "samples"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "first", got.Name)
	})

	t.Run("not found returns zero value", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(query).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active", "created_at", "updated_at"}))

		got, err := repo.Get(t.Context(), shared.FilterByID(int64(9), "id", "samples"))
		require.NoError(t, err)
		assert.Zero(t, got.ID)
	})
}

func TestRepository_GetAll(t *testing.T) {
	now := time.Now()

	t.Run("without filter", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery("SELECT " + selectColumns + " FROM samples ORDER BY samples.id ASC").
			WillReturnRows(sampleRows(now))

		got, err := repo.GetAll(t.Context(), dto.FilterGroup{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].Name)
		assert.Equal(t, "second", got[1].Name)
	})

	t.Run("like filter escapes wildcards", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery("SELECT " + selectColumns + " FROM samples WHERE (LOWER(samples.name) LIKE LOWER($1)) ORDER BY samples.id ASC").
			WithArgs(`%50\%%`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active", "created_at", "updated_at"}))

		got, err := repo.GetAll(t.Context(), dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "name", Value: "50%", Operator: dto.FilterOperatorLike, Table: "samples"},
			},
		})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestRepository_Update(t *testing.T) {
	now := time.Now()
	filter := shared.FilterByID(int64(1), "id", "samples")

	t.Run("reports affected rows", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec("UPDATE samples SET name = $1, updated_at = $2 WHERE (samples.id = $3)").
			WithArgs("renamed", now, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.Update(t.Context(), map[string]any{"name": "renamed", "updated_at": now}, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("rejects empty changes", func(t *testing.T) {
		repo, _ := newRepository(t)

		_, err := repo.Update(t.Context(), map[string]any{}, filter)
		assert.Error(t, err)
	})

	t.Run("rejects missing filter", func(t *testing.T) {
		repo, _ := newRepository(t)

		_, err := repo.Update(t.Context(), map[string]any{"name": "renamed"}, dto.FilterGroup{})
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("by filter", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec("DELETE FROM samples WHERE (samples.id = $1)").
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.Delete(t.Context(), shared.FilterByID(int64(4), "id", "samples"))
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("without filter is rejected", func(t *testing.T) {
		repo, _ := newRepository(t)

		_, err := repo.Delete(t.Context(), dto.FilterGroup{})
		assert.Error(t, err)
	})

	t.Run("all rows", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec("DELETE FROM samples").
			WillReturnResult(sqlmock.NewResult(0, 5))

		affected, err := repo.DeleteAll(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(5), affected)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec("DELETE FROM samples").
			WillReturnError(errors.New("read-only transaction"))

		_, err := repo.DeleteAll(t.Context())
		assert.ErrorContains(t, err, "failed to delete all data (sample)")
	})
}
