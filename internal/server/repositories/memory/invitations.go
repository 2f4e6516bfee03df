package memory

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/google/uuid"
)

type invitationRepo struct{ *repos }

func (r *invitationRepo) Create(ctx context.Context, inv *models.Invitation) error {
	return r.do(ctx, "invitations.Create", func(st *state) error {
		for _, existing := range st.invitations.rows {
			if existing.Token == inv.Token {
				return uniqueViolation("invitations_token_key")
			}
			if existing.Email == inv.Email && !existing.Used {
				return uniqueViolation("invitations_pending_email_key")
			}
		}
		if inv.ID == "" {
			inv.ID = uuid.NewString()
		}
		inv.CreatedAt = r.now()
		st.invitations.put(inv.ID, *inv)
		return nil
	})
}

func (r *invitationRepo) ListByEmail(ctx context.Context, email string) ([]*models.Invitation, error) {
	var result []*models.Invitation
	err := r.do(ctx, "invitations.ListByEmail", func(st *state) error {
		st.invitations.each(func(_ string, inv models.Invitation) {
			if inv.Email == email {
				result = append(result, &inv)
			}
		})
		return nil
	})
	return result, err
}

func (r *invitationRepo) getByToken(ctx context.Context, op, token string) (*models.Invitation, error) {
	var found *models.Invitation
	err := r.do(ctx, op, func(st *state) error {
		st.invitations.each(func(_ string, inv models.Invitation) {
			if found == nil && inv.Token == token {
				found = &inv
			}
		})
		if found == nil {
			return common.ErrorNotFound
		}
		return nil
	})
	return found, err
}

func (r *invitationRepo) GetByToken(ctx context.Context, token string) (*models.Invitation, error) {
	return r.getByToken(ctx, "invitations.GetByToken", token)
}

func (r *invitationRepo) GetByTokenForUpdate(ctx context.Context, token string) (*models.Invitation, error) {
	return r.getByToken(ctx, "invitations.GetByTokenForUpdate", token)
}

func (r *invitationRepo) MarkUsed(ctx context.Context, id string) (bool, error) {
	var flipped bool
	err := r.do(ctx, "invitations.MarkUsed", func(st *state) error {
		inv, ok := st.invitations.rows[id]
		if !ok || inv.Used {
			return nil
		}
		inv.Used = true
		st.invitations.put(id, inv)
		flipped = true
		return nil
	})
	return flipped, err
}

func (r *invitationRepo) Delete(ctx context.Context, id string) error {
	return r.do(ctx, "invitations.Delete", func(st *state) error {
		st.invitations.remove(id)
		return nil
	})
}

func (r *invitationRepo) DeleteByElection(ctx context.Context, electionID string) error {
	return r.do(ctx, "invitations.DeleteByElection", func(st *state) error {
		st.invitations.removeWhere(func(inv models.Invitation) bool {
			return inv.ElectionID != nil && *inv.ElectionID == electionID
		})
		return nil
	})
}
