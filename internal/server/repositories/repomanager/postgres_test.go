package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*PostgresRepositoryManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepositoryManager(db), mock
}

func TestManager_ImplementsInterface(t *testing.T) {
	m, _ := newManager(t)
	var _ RepositoryManager = m

	r := m.Repos()
	assert.NotNil(t, r.Users())
	assert.NotNil(t, r.Elections())
	assert.NotNil(t, r.Ballots())
	assert.NotNil(t, r.Assignments())
	assert.NotNil(t, r.Invitations())
	assert.NotNil(t, r.Credentials())
	assert.NotNil(t, r.Votes())
	assert.NotNil(t, r.Audit())
}

func TestWithTx_CommitsAcrossRepositories(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM admin_assignments WHERE admin_id = \$1`).
		WithArgs("a-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO admin_assignments`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	err := m.WithTx(context.Background(), func(ctx context.Context, r Repositories) error {
		if err := r.Assignments().DeleteByAdmin(ctx, "a-1"); err != nil {
			return err
		}
		return r.Assignments().Create(ctx, &models.AdminAssignment{AdminID: "a-1", ElectionID: "e-2", AssignerID: "o-1"})
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM admin_assignments`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO admin_assignments`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := m.WithTx(context.Background(), func(ctx context.Context, r Repositories) error {
		if err := r.Assignments().DeleteByAdmin(ctx, "a-1"); err != nil {
			return err
		}
		return r.Assignments().Create(ctx, &models.AdminAssignment{AdminID: "a-1", ElectionID: "e-2"})
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_Success(t *testing.T) {
	m, _ := newManager(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	require.NoError(t, m.RunMigrations(context.Background()))
}

func TestRunMigrations_Error(t *testing.T) {
	m, _ := newManager(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	err := m.RunMigrations(context.Background())
	require.EqualError(t, err, "boom")
}
