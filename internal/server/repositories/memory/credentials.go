package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/google/uuid"
)

type credentialRepo struct{ *repos }

func (r *credentialRepo) Create(ctx context.Context, c *models.VoterCredential) error {
	return r.do(ctx, "credentials.Create", func(st *state) error {
		for _, existing := range st.credentials.rows {
			if existing.Fingerprint == c.Fingerprint {
				return uniqueViolation("voter_credentials_fingerprint_key")
			}
			if existing.ElectionID == c.ElectionID && existing.VoterIdentity == c.VoterIdentity {
				return uniqueViolation("voter_credentials_election_voter_key")
			}
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Status == "" {
			c.Status = models.CredentialIssued
		}
		c.IssuedAt = r.now()
		st.credentials.put(c.ID, *c)
		return nil
	})
}

func (r *credentialRepo) get(ctx context.Context, op, fingerprint string) (*models.VoterCredential, error) {
	var found *models.VoterCredential
	err := r.do(ctx, op, func(st *state) error {
		st.credentials.each(func(_ string, c models.VoterCredential) {
			if found == nil && c.Fingerprint == fingerprint {
				found = &c
			}
		})
		if found == nil {
			return common.ErrorNotFound
		}
		return nil
	})
	return found, err
}

func (r *credentialRepo) GetByFingerprintForUpdate(ctx context.Context, fingerprint string) (*models.VoterCredential, error) {
	return r.get(ctx, "credentials.GetByFingerprintForUpdate", fingerprint)
}

func (r *credentialRepo) UpdateStatus(ctx context.Context, id string, status models.CredentialStatus, at time.Time) error {
	return r.do(ctx, "credentials.UpdateStatus", func(st *state) error {
		c, ok := st.credentials.rows[id]
		if !ok {
			return common.ErrorNotFound
		}
		at := at.UTC()
		switch status {
		case models.CredentialVerified:
			c.VerifiedAt = &at
		case models.CredentialConsumed:
			c.ConsumedAt = &at
		default:
			return fmt.Errorf("unsupported credential status %q", status)
		}
		c.Status = status
		st.credentials.put(id, c)
		return nil
	})
}

func (r *credentialRepo) DeleteByElection(ctx context.Context, electionID string) error {
	return r.do(ctx, "credentials.DeleteByElection", func(st *state) error {
		st.credentials.removeWhere(func(c models.VoterCredential) bool { return c.ElectionID == electionID })
		return nil
	})
}
