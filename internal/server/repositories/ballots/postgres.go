package ballots

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

func (r *PostgresRepository) CreatePortfolio(ctx context.Context, p *models.Portfolio) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query :=
		`INSERT INTO portfolios (id, election_id, title, position)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`

	if err := r.db.QueryRowContext(ctx, query, p.ID, p.ElectionID, p.Title, p.Position).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error) {
	query := `SELECT id, election_id, title, position, created_at FROM portfolios WHERE id = $1`

	p := &models.Portfolio{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.ElectionID, &p.Title, &p.Position, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) ListPortfolios(ctx context.Context, electionID string) ([]*models.Portfolio, error) {
	query :=
		`SELECT id, election_id, title, position, created_at FROM portfolios
		 WHERE election_id = $1
		 ORDER BY position, created_at`

	rows, err := r.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Portfolio
	for rows.Next() {
		p := &models.Portfolio{}
		if err := rows.Scan(&p.ID, &p.ElectionID, &p.Title, &p.Position, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) DeletePortfolio(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM portfolios WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CreateCandidate(ctx context.Context, c *models.Candidate) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query :=
		`INSERT INTO candidates (id, portfolio_id, name, manifesto, position)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`

	if err := r.db.QueryRowContext(ctx, query, c.ID, c.PortfolioID, c.Name, c.Manifesto, c.Position).Scan(&c.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	query := `SELECT id, portfolio_id, name, manifesto, position, created_at FROM candidates WHERE id = $1`

	c := &models.Candidate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.PortfolioID, &c.Name, &c.Manifesto, &c.Position, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListCandidates(ctx context.Context, portfolioID string) ([]*models.Candidate, error) {
	query :=
		`SELECT id, portfolio_id, name, manifesto, position, created_at FROM candidates
		 WHERE portfolio_id = $1
		 ORDER BY position, created_at`

	rows, err := r.db.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Candidate
	for rows.Next() {
		c := &models.Candidate{}
		if err := rows.Scan(&c.ID, &c.PortfolioID, &c.Name, &c.Manifesto, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) SetCandidatePosition(ctx context.Context, id string, position int) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE candidates SET position = $2 WHERE id = $1`, id, position); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteCandidate(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByElection(ctx context.Context, electionID string) error {
	query :=
		`DELETE FROM candidates
		 WHERE portfolio_id IN (SELECT id FROM portfolios WHERE election_id = $1)`
	if _, err := r.db.ExecContext(ctx, query, electionID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM portfolios WHERE election_id = $1`, electionID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
