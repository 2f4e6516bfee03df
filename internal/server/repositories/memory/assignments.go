package memory

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/google/uuid"
)

type assignmentRepo struct{ *repos }

func (r *assignmentRepo) Create(ctx context.Context, a *models.AdminAssignment) error {
	return r.do(ctx, "assignments.Create", func(st *state) error {
		for _, existing := range st.assignments.rows {
			if existing.AdminID == a.AdminID {
				return uniqueViolation("admin_assignments_admin_key")
			}
		}
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		a.CreatedAt = r.now()
		st.assignments.put(a.ID, *a)
		return nil
	})
}

func (r *assignmentRepo) GetByAdmin(ctx context.Context, adminID string) (*models.AdminAssignment, error) {
	var found *models.AdminAssignment
	err := r.do(ctx, "assignments.GetByAdmin", func(st *state) error {
		st.assignments.each(func(_ string, a models.AdminAssignment) {
			if found == nil && a.AdminID == adminID {
				found = &a
			}
		})
		if found == nil {
			return common.ErrorNotFound
		}
		return nil
	})
	return found, err
}

func (r *assignmentRepo) ListByElection(ctx context.Context, electionID string) ([]*models.AdminAssignment, error) {
	var result []*models.AdminAssignment
	err := r.do(ctx, "assignments.ListByElection", func(st *state) error {
		st.assignments.each(func(_ string, a models.AdminAssignment) {
			if a.ElectionID == electionID {
				result = append(result, &a)
			}
		})
		return nil
	})
	return result, err
}

func (r *assignmentRepo) DeleteByAdmin(ctx context.Context, adminID string) error {
	return r.do(ctx, "assignments.DeleteByAdmin", func(st *state) error {
		st.assignments.removeWhere(func(a models.AdminAssignment) bool { return a.AdminID == adminID })
		return nil
	})
}

func (r *assignmentRepo) DeleteByElection(ctx context.Context, electionID string) error {
	return r.do(ctx, "assignments.DeleteByElection", func(st *state) error {
		st.assignments.removeWhere(func(a models.AdminAssignment) bool { return a.ElectionID == electionID })
		return nil
	})
}
