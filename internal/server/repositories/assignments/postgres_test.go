package assignments

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`^INSERT INTO admin_assignments \(id, admin_id, election_id, assigner_id\)`).
		WithArgs(sqlmock.AnyArg(), "a-1", "e-1", "o-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	a := &models.AdminAssignment{AdminID: "a-1", ElectionID: "e-1", AssignerID: "o-1"}
	require.NoError(t, repo.Create(context.Background(), a))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, now, a.CreatedAt)
}

func TestCreate_AlreadyAssigned(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`^INSERT INTO admin_assignments`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "admin_assignments_admin_key"})

	err := repo.Create(context.Background(), &models.AdminAssignment{AdminID: "a-1", ElectionID: "e-2"})
	require.ErrorIs(t, err, common.ErrUniqueViolation)
	assert.Contains(t, err.Error(), "admin_assignments_admin_key")
}

func TestGetByAdmin(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM admin_assignments WHERE admin_id = \$1`).
		WithArgs("a-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "admin_id", "election_id", "assigner_id", "created_at"}).
			AddRow("x-1", "a-1", "e-1", "o-1", now))
	mock.ExpectQuery(`FROM admin_assignments WHERE admin_id = \$1`).
		WithArgs("a-2").
		WillReturnError(sql.ErrNoRows)

	a, err := repo.GetByAdmin(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, "e-1", a.ElectionID)

	_, err = repo.GetByAdmin(context.Background(), "a-2")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListByElection(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM admin_assignments WHERE election_id = \$1 ORDER BY created_at`).
		WithArgs("e-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "admin_id", "election_id", "assigner_id", "created_at"}).
			AddRow("x-1", "a-1", "e-1", "o-1", now).
			AddRow("x-2", "a-2", "e-1", "o-1", now))

	list, err := repo.ListByElection(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDeletes(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE FROM admin_assignments WHERE admin_id = \$1`).
		WithArgs("a-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE FROM admin_assignments WHERE election_id = \$1`).
		WithArgs("e-1").WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteByAdmin(context.Background(), "a-1"))
	require.NoError(t, repo.DeleteByElection(context.Background(), "e-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
