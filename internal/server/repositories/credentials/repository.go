// Package credentials persists voter credentials. Only the SHA-256
// fingerprint of a credential is stored.
package credentials

import (
	"context"
	"time"

	"github.com/dmitrijs2005/unielect/internal/server/models"
)

type Repository interface {
	// Create fails with common.ErrUniqueViolation when the voter already
	// holds a credential for the election.
	Create(ctx context.Context, c *models.VoterCredential) error
	GetByFingerprintForUpdate(ctx context.Context, fingerprint string) (*models.VoterCredential, error)
	UpdateStatus(ctx context.Context, id string, status models.CredentialStatus, at time.Time) error
	DeleteByElection(ctx context.Context, electionID string) error
}
