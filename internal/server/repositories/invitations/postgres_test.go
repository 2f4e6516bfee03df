package invitations

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

var invitationCols = []string{"id", "email", "token", "role", "election_id", "expires_at", "used", "issuer_id", "created_at"}

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
	election := "e-1"

	mock.ExpectQuery(`^INSERT INTO invitations`).
		WithArgs(sqlmock.AnyArg(), "kofi@uni.edu", "tok", "ADMIN", "e-1", sqlmock.AnyArg(), "s-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	inv := &models.Invitation{
		Email: "kofi@uni.edu", Token: "tok", Role: models.RoleAdmin,
		ElectionID: &election, ExpiresAt: now.Add(time.Hour), IssuerID: "s-1",
	}
	require.NoError(t, repo.Create(context.Background(), inv))
	assert.NotEmpty(t, inv.ID)
}

func TestCreate_PendingEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`^INSERT INTO invitations`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "invitations_pending_email_key"})

	err := repo.Create(context.Background(), &models.Invitation{Email: "a@b.c", Role: models.RoleApprover})
	require.ErrorIs(t, err, common.ErrUniqueViolation)
}

func TestListByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM invitations WHERE email = \$1`).
		WithArgs("kofi@uni.edu").
		WillReturnRows(sqlmock.NewRows(invitationCols).
			AddRow("i-1", "kofi@uni.edu", "t1", "ADMIN", "e-1", now, true, "s-1", now).
			AddRow("i-2", "kofi@uni.edu", "t2", "APPROVER", nil, now, false, "s-1", now))

	list, err := repo.ListByEmail(context.Background(), "kofi@uni.edu")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].ElectionID)
	assert.Equal(t, "e-1", *list[0].ElectionID)
	assert.Nil(t, list[1].ElectionID)
	assert.Equal(t, models.RoleApprover, list[1].Role)
}

func TestGetByTokenForUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM invitations WHERE token = \$1 FOR UPDATE`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(invitationCols).
			AddRow("i-1", "kofi@uni.edu", "t1", "ORCHESTRATOR", nil, now, false, "s-1", now))

	inv, err := repo.GetByTokenForUpdate(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleOrchestrator, inv.Role)
}

func TestGetByToken_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM invitations WHERE token = \$1`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByToken(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMarkUsed(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^UPDATE invitations SET used = true WHERE id = \$1 AND NOT used`).
		WithArgs("i-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^UPDATE invitations SET used = true`).
		WithArgs("i-1").WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkUsed(context.Background(), "i-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkUsed(context.Background(), "i-1")
	require.NoError(t, err)
	assert.False(t, ok, "second use must not flip the row again")
}

func TestDeletes(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE FROM invitations WHERE id = \$1`).WithArgs("i-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE FROM invitations WHERE election_id = \$1`).WithArgs("e-1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "i-1"))
	require.NoError(t, repo.DeleteByElection(context.Background(), "e-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
