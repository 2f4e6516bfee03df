// Package ballots persists the ballot structure of an election: its
// portfolios and the candidates standing for each.
package ballots

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/server/models"
)

type Repository interface {
	CreatePortfolio(ctx context.Context, p *models.Portfolio) error
	GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error)
	ListPortfolios(ctx context.Context, electionID string) ([]*models.Portfolio, error)
	DeletePortfolio(ctx context.Context, id string) error

	CreateCandidate(ctx context.Context, c *models.Candidate) error
	GetCandidate(ctx context.Context, id string) (*models.Candidate, error)
	ListCandidates(ctx context.Context, portfolioID string) ([]*models.Candidate, error)
	SetCandidatePosition(ctx context.Context, id string, position int) error
	DeleteCandidate(ctx context.Context, id string) error

	// DeleteByElection removes every candidate and portfolio of an election.
	DeleteByElection(ctx context.Context, electionID string) error
}
