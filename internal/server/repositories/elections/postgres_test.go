package elections

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
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

var cols = []string{"id", "title", "status", "scope", "department", "start_time", "end_time",
	"creator_id", "approver_id", "created_at", "updated_at"}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	start := time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`^INSERT INTO elections \(id, title, status, scope, department, start_time, end_time, creator_id\)`).
		WithArgs(sqlmock.AnyArg(), "SRC 2026", "DRAFT", "DEPARTMENT", "Physics", start, start.Add(8*time.Hour), "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	e := &models.Election{
		Title: "SRC 2026", Status: models.StatusDraft, Scope: models.ScopeDepartment, Department: "Physics",
		StartTime: start, EndTime: start.Add(8 * time.Hour), CreatorID: "u-1",
	}
	require.NoError(t, repo.Create(context.Background(), e))
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, now, e.CreatedAt)
}

func TestGet_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`^SELECT id, title, status, .* FROM elections WHERE id = \$1$`).
		WithArgs("e-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("e-1", "SRC", "LIVE", "GENERAL", "", now, now.Add(time.Hour), "u-1", "u-9", now, now))

	e, err := repo.Get(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusLive, e.Status)
	assert.Equal(t, models.ScopeGeneral, e.Scope)
	require.NotNil(t, e.ApproverID)
	assert.Equal(t, "u-9", *e.ApproverID)
}

func TestGetForUpdate_LocksRow(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM elections WHERE id = \$1 FOR UPDATE$`).
		WithArgs("e-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("e-1", "SRC", "DRAFT", "GENERAL", "", now, now.Add(time.Hour), "u-1", nil, now, now))

	e, err := repo.GetForUpdate(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Nil(t, e.ApproverID)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM elections`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	approver := "u-9"

	mock.ExpectExec(`^UPDATE elections SET title = \$2, status = \$3`).
		WithArgs("e-1", "SRC", "APPROVED", "GENERAL", "", sqlmock.AnyArg(), sqlmock.AnyArg(), "u-9", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := &models.Election{ID: "e-1", Title: "SRC", Status: models.StatusApproved, Scope: models.ScopeGeneral,
		StartTime: now, EndTime: now.Add(time.Hour), ApproverID: &approver}
	require.NoError(t, repo.Update(context.Background(), e))
	assert.False(t, e.UpdatedAt.IsZero())
}

func TestUpdate_Missing(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^UPDATE elections`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Election{ID: "gone"})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE FROM elections WHERE id = \$1`).WithArgs("e-1").WillReturnError(errors.New("fk"))

	err := repo.Delete(context.Background(), "e-1")
	require.Error(t, err)
	assert.Regexp(t, `db error: .*fk`, err.Error())
}
