package request_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"leave-portal/internal/request"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (request.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	return request.NewRepository(gormDB), mock, db
}

func requestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "employee_id", "email", "project", "manager",
		"location", "from_date", "to_date", "reason", "status", "submitted_at",
	})
}

func TestRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by submission time with null fallback", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		submitted := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT \* FROM "requests" ORDER BY COALESCE\(submitted_at, CURRENT_TIMESTAMP\) DESC`).
			WillReturnRows(requestRows().
				AddRow(2, "B", "ATS0456", "b.c@astrolitetech.com", "P", "M", "L",
					time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
					"r", "Pending", nil).
				AddRow(1, "A", "ATS0123", "a.b@astrolitetech.com", "P", "M", "L",
					time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
					"r", "Approved", submitted))

		rows, err := repo.FindAll(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, int64(2), rows[0].ID)
		assert.Nil(t, rows[0].SubmittedAt)
		assert.NotNil(t, rows[1].SubmittedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies employee filter", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM "requests" WHERE employee_id = \$1 ORDER BY COALESCE\(submitted_at, CURRENT_TIMESTAMP\) DESC`).
			WithArgs("ATS0123").
			WillReturnRows(requestRows())

		rows, err := repo.FindAll(ctx, "ATS0123")

		assert.NoError(t, err)
		assert.Empty(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row maps to gorm.ErrRecordNotFound", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM "requests" WHERE id = \$1`).
			WillReturnRows(requestRows())

		row, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, row)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updates and refetches the row", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "requests" SET "status"=\$1 WHERE id = \$2`).
			WithArgs("Approved", int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT \* FROM "requests" WHERE id = \$1`).
			WillReturnRows(requestRows().
				AddRow(7, "A", "ATS0123", "a.b@astrolitetech.com", "P", "M", "L",
					time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
					"r", "Approved", nil))

		row, err := repo.UpdateStatus(ctx, 7, "Approved")

		assert.NoError(t, err)
		assert.Equal(t, "Approved", row.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero affected rows maps to gorm.ErrRecordNotFound", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "requests" SET "status"=\$1 WHERE id = \$2`).
			WithArgs("Approved", int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		row, err := repo.UpdateStatus(ctx, 404, "Approved")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, row)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindDuplicate(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)

	t.Run("returns the existing non-rejected row", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM "requests" WHERE employee_id = \$1 AND from_date = \$2 AND to_date = \$3 AND status <> \$4`).
			WillReturnRows(requestRows().
				AddRow(7, "A", "ATS0123", "a.b@astrolitetech.com", "P", "M", "L",
					from, to, "r", "Pending", nil))

		row, err := repo.FindDuplicate(ctx, "ATS0123", from, to)

		assert.NoError(t, err)
		assert.NotNil(t, row)
		assert.Equal(t, "Pending", row.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match yields nil without error", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM "requests" WHERE employee_id = \$1 AND from_date = \$2 AND to_date = \$3 AND status <> \$4`).
			WillReturnRows(requestRows())

		row, err := repo.FindDuplicate(ctx, "ATS0123", from, to)

		assert.NoError(t, err)
		assert.Nil(t, row)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
