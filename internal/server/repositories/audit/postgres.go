package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

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

func (r *PostgresRepository) Append(ctx context.Context, e *models.AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Metadata == nil {
		e.Metadata = map[string]any{}
	}

	meta, err := json.Marshal(e.Metadata)
	if err != nil {
		return fmt.Errorf("encode audit metadata: %w", err)
	}

	query :=
		`INSERT INTO audit_entries (id, actor_id, action, election_id, metadata)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`

	if err := r.db.QueryRowContext(ctx, query,
		e.ID, e.ActorID, e.Action, e.ElectionID, string(meta)).Scan(&e.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByElection(ctx context.Context, electionID string) ([]*models.AuditEntry, error) {
	query :=
		`SELECT id, actor_id, action, election_id, metadata, created_at FROM audit_entries
		 WHERE election_id = $1
		 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.AuditEntry
	for rows.Next() {
		e := &models.AuditEntry{}
		var election sql.NullString
		var meta []byte
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &election, &meta, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if election.Valid {
			e.ElectionID = &election.String
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &e.Metadata); err != nil {
				return nil, fmt.Errorf("decode audit metadata: %w", err)
			}
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) DeleteByElection(ctx context.Context, electionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM audit_entries WHERE election_id = $1`, electionID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
