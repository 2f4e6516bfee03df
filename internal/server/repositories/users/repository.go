// Package users declares the account repository contract and its
// PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/server/models"
)

type Repository interface {
	// Create inserts user; a taken email yields common.ErrUniqueViolation.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role, status models.UserStatus) ([]*models.User, error)
	// DeleteByRole removes every holder of role and returns their ids.
	DeleteByRole(ctx context.Context, role models.Role) ([]string, error)
}
