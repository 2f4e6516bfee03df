package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/dbx"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.VoterCredential) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = models.CredentialIssued
	}

	query :=
		`INSERT INTO voter_credentials (id, election_id, voter_identity, fingerprint, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING issued_at`

	err := r.db.QueryRowContext(ctx, query,
		c.ID, c.ElectionID, c.VoterIdentity, c.Fingerprint, string(c.Status)).Scan(&c.IssuedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", common.ErrUniqueViolation, dbx.ConstraintName(err))
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByFingerprintForUpdate locks the row until the surrounding transaction
// ends, so concurrent casts with one credential serialise on it.
func (r *PostgresRepository) GetByFingerprintForUpdate(ctx context.Context, fingerprint string) (*models.VoterCredential, error) {
	query :=
		`SELECT id, election_id, voter_identity, fingerprint, status, issued_at, verified_at, consumed_at
		 FROM voter_credentials WHERE fingerprint = $1 FOR UPDATE`

	c := &models.VoterCredential{}
	var status string
	var verifiedAt, consumedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, fingerprint).Scan(
		&c.ID, &c.ElectionID, &c.VoterIdentity, &c.Fingerprint, &status, &c.IssuedAt, &verifiedAt, &consumedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	c.Status = models.CredentialStatus(status)
	if verifiedAt.Valid {
		c.VerifiedAt = &verifiedAt.Time
	}
	if consumedAt.Valid {
		c.ConsumedAt = &consumedAt.Time
	}
	return c, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.CredentialStatus, at time.Time) error {
	var query string
	switch status {
	case models.CredentialVerified:
		query = `UPDATE voter_credentials SET status = $2, verified_at = $3 WHERE id = $1`
	case models.CredentialConsumed:
		query = `UPDATE voter_credentials SET status = $2, consumed_at = $3 WHERE id = $1`
	default:
		return fmt.Errorf("unsupported credential status %q", status)
	}

	res, err := r.db.ExecContext(ctx, query, id, string(status), at.UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByElection(ctx context.Context, electionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM voter_credentials WHERE election_id = $1`, electionID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
