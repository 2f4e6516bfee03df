// Package elections persists elections and their lifecycle status.
package elections

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Election) error
	Get(ctx context.Context, id string) (*models.Election, error)
	// GetForUpdate locks the row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id string) (*models.Election, error)
	Update(ctx context.Context, e *models.Election) error
	Delete(ctx context.Context, id string) error
}
