package credentials

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

var credentialCols = []string{"id", "election_id", "voter_identity", "fingerprint", "status", "issued_at", "verified_at", "consumed_at"}

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

	mock.ExpectQuery(`^INSERT INTO voter_credentials`).
		WithArgs(sqlmock.AnyArg(), "e-1", "STU-001", "fp", "ISSUED").
		WillReturnRows(sqlmock.NewRows([]string{"issued_at"}).AddRow(now))

	c := &models.VoterCredential{ElectionID: "e-1", VoterIdentity: "STU-001", Fingerprint: "fp"}
	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, models.CredentialIssued, c.Status)
	assert.Equal(t, now, c.IssuedAt)
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`^INSERT INTO voter_credentials`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "voter_credentials_election_voter_key"})

	err := repo.Create(context.Background(), &models.VoterCredential{ElectionID: "e-1", VoterIdentity: "STU-001"})
	require.ErrorIs(t, err, common.ErrUniqueViolation)
}

func TestGetByFingerprintForUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM voter_credentials WHERE fingerprint = \$1 FOR UPDATE`).
		WithArgs("fp").
		WillReturnRows(sqlmock.NewRows(credentialCols).
			AddRow("c-1", "e-1", "STU-001", "fp", "VERIFIED", now, now, nil))

	c, err := repo.GetByFingerprintForUpdate(context.Background(), "fp")
	require.NoError(t, err)
	assert.Equal(t, models.CredentialVerified, c.Status)
	require.NotNil(t, c.VerifiedAt)
	assert.Nil(t, c.ConsumedAt)
}

func TestGetByFingerprintForUpdate_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE fingerprint = \$1 FOR UPDATE`).WithArgs("fp").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByFingerprintForUpdate(context.Background(), "fp")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectExec(`SET status = \$2, verified_at = \$3 WHERE id = \$1`).
		WithArgs("c-1", "VERIFIED", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`SET status = \$2, consumed_at = \$3 WHERE id = \$1`).
		WithArgs("c-1", "CONSUMED", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), "c-1", models.CredentialVerified, now))
	require.ErrorIs(t, repo.UpdateStatus(context.Background(), "c-1", models.CredentialConsumed, now), common.ErrorNotFound)
	require.Error(t, repo.UpdateStatus(context.Background(), "c-1", models.CredentialIssued, now))
	require.NoError(t, mock.ExpectationsWereMet())
}
