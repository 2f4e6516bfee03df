package invitations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

const invitationColumns = `id, email, token, role, election_id, expires_at, used, issuer_id, created_at`

func scanInvitation(row interface{ Scan(...any) error }) (*models.Invitation, error) {
	inv := &models.Invitation{}
	var role string
	var electionID sql.NullString
	if err := row.Scan(&inv.ID, &inv.Email, &inv.Token, &role, &electionID,
		&inv.ExpiresAt, &inv.Used, &inv.IssuerID, &inv.CreatedAt); err != nil {
		return nil, err
	}
	inv.Role = models.Role(role)
	if electionID.Valid {
		inv.ElectionID = &electionID.String
	}
	return inv, nil
}

func (r *PostgresRepository) Create(ctx context.Context, inv *models.Invitation) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO invitations (id, email, token, role, election_id, expires_at, issuer_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		inv.ID, inv.Email, inv.Token, string(inv.Role), inv.ElectionID, inv.ExpiresAt.UTC(), inv.IssuerID,
	).Scan(&inv.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", common.ErrUniqueViolation, dbx.ConstraintName(err))
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]*models.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE email = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) getByToken(ctx context.Context, token string, lock bool) (*models.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE token = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return inv, nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.Invitation, error) {
	return r.getByToken(ctx, token, false)
}

func (r *PostgresRepository) GetByTokenForUpdate(ctx context.Context, token string) (*models.Invitation, error) {
	return r.getByToken(ctx, token, true)
}

func (r *PostgresRepository) MarkUsed(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE invitations SET used = true WHERE id = $1 AND NOT used`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByElection(ctx context.Context, electionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE election_id = $1`, electionID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
