package elections

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

const electionColumns = `id, title, status, scope, department, start_time, end_time, creator_id, approver_id, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, e *models.Election) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO elections (id, title, status, scope, department, start_time, end_time, creator_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.Title, string(e.Status), string(e.Scope), e.Department, e.StartTime.UTC(), e.EndTime.UTC(), e.CreatorID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) get(ctx context.Context, id string, lock bool) (*models.Election, error) {
	query := `SELECT ` + electionColumns + ` FROM elections WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	e := &models.Election{}
	var status, scope string
	var approver sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &status, &scope, &e.Department, &e.StartTime, &e.EndTime,
		&e.CreatorID, &approver, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	e.Status = models.Status(status)
	e.Scope = models.Scope(scope)
	if approver.Valid {
		e.ApproverID = &approver.String
	}
	return e, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Election, error) {
	return r.get(ctx, id, false)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Election, error) {
	return r.get(ctx, id, true)
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Election) error {
	query :=
		`UPDATE elections
		 SET title = $2, status = $3, scope = $4, department = $5, start_time = $6, end_time = $7,
		     approver_id = $8, updated_at = $9
		 WHERE id = $1`

	e.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, string(e.Status), string(e.Scope), e.Department, e.StartTime.UTC(), e.EndTime.UTC(),
		e.ApproverID, e.UpdatedAt)
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

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM elections WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
