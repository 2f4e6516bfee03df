package votes

import (
	"context"
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

func (r *PostgresRepository) Create(ctx context.Context, v *models.Vote) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO votes (id, fingerprint, election_id, portfolio_id, candidate_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING cast_at`

	err := r.db.QueryRowContext(ctx, query,
		v.ID, v.Fingerprint, v.ElectionID, v.PortfolioID, v.CandidateID).Scan(&v.CastAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", common.ErrUniqueViolation, dbx.ConstraintName(err))
		}
		if dbx.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", common.ErrReferenceViolation, dbx.ConstraintName(err))
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CountByElection(ctx context.Context, electionID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE election_id = $1`, electionID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) TallyByElection(ctx context.Context, electionID string) (map[string]int, error) {
	query :=
		`SELECT candidate_id, COUNT(*) FROM votes
		 WHERE election_id = $1
		 GROUP BY candidate_id`

	rows, err := r.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	tally := make(map[string]int)
	for rows.Next() {
		var candidateID string
		var n int
		if err := rows.Scan(&candidateID, &n); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tally[candidateID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tally, nil
}

func (r *PostgresRepository) DeleteByElection(ctx context.Context, electionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM votes WHERE election_id = $1`, electionID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
