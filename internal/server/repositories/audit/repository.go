// Package audit persists the append-only audit trail.
package audit

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, e *models.AuditEntry) error
	ListByElection(ctx context.Context, electionID string) ([]*models.AuditEntry, error)
	DeleteByElection(ctx context.Context, electionID string) error
}
