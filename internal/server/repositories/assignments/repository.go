// Package assignments persists the binding of an ADMIN to the single election
// they manage.
package assignments

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/server/models"
)

type Repository interface {
	// Create fails with common.ErrUniqueViolation when the admin already
	// holds an assignment.
	Create(ctx context.Context, a *models.AdminAssignment) error
	GetByAdmin(ctx context.Context, adminID string) (*models.AdminAssignment, error)
	ListByElection(ctx context.Context, electionID string) ([]*models.AdminAssignment, error)
	DeleteByAdmin(ctx context.Context, adminID string) error
	DeleteByElection(ctx context.Context, electionID string) error
}
