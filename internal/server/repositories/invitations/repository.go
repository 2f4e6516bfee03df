// Package invitations persists single-use staff onboarding tokens.
package invitations

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, inv *models.Invitation) error
	ListByEmail(ctx context.Context, email string) ([]*models.Invitation, error)
	GetByToken(ctx context.Context, token string) (*models.Invitation, error)
	// GetByTokenForUpdate locks the row for the rest of the transaction.
	GetByTokenForUpdate(ctx context.Context, token string) (*models.Invitation, error)
	// MarkUsed flips an unused invitation to used and reports whether this
	// call did it.
	MarkUsed(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	DeleteByElection(ctx context.Context, electionID string) error
}
