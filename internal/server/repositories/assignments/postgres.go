package assignments

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

func (r *PostgresRepository) Create(ctx context.Context, a *models.AdminAssignment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO admin_assignments (id, admin_id, election_id, assigner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, a.ID, a.AdminID, a.ElectionID, a.AssignerID).Scan(&a.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", common.ErrUniqueViolation, dbx.ConstraintName(err))
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByAdmin(ctx context.Context, adminID string) (*models.AdminAssignment, error) {
	query := `SELECT id, admin_id, election_id, assigner_id, created_at FROM admin_assignments WHERE admin_id = $1`

	a := &models.AdminAssignment{}
	err := r.db.QueryRowContext(ctx, query, adminID).Scan(&a.ID, &a.AdminID, &a.ElectionID, &a.AssignerID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) ListByElection(ctx context.Context, electionID string) ([]*models.AdminAssignment, error) {
	query :=
		`SELECT id, admin_id, election_id, assigner_id, created_at FROM admin_assignments
		 WHERE election_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.AdminAssignment
	for rows.Next() {
		a := &models.AdminAssignment{}
		if err := rows.Scan(&a.ID, &a.AdminID, &a.ElectionID, &a.AssignerID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) DeleteByAdmin(ctx context.Context, adminID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM admin_assignments WHERE admin_id = $1`, adminID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByElection(ctx context.Context, electionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM admin_assignments WHERE election_id = $1`, electionID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
