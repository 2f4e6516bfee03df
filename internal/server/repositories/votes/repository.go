// Package votes persists anonymous votes keyed by credential fingerprint.
package votes

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/server/models"
)

type Repository interface {
	// Create fails with common.ErrUniqueViolation when the fingerprint has
	// already voted for the portfolio.
	Create(ctx context.Context, v *models.Vote) error
	CountByElection(ctx context.Context, electionID string) (int, error)
	// TallyByElection returns vote counts keyed by candidate ID.
	TallyByElection(ctx context.Context, electionID string) (map[string]int, error)
	DeleteByElection(ctx context.Context, electionID string) error
}
