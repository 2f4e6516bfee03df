package memory

import (
	"context"
	"maps"

	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/google/uuid"
)

type auditRepo struct{ *repos }

func (r *auditRepo) Append(ctx context.Context, e *models.AuditEntry) error {
	return r.do(ctx, "audit.Append", func(st *state) error {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		e.CreatedAt = r.now()
		row := *e
		row.Metadata = maps.Clone(e.Metadata)
		st.audit = append(st.audit, row)
		return nil
	})
}

func (r *auditRepo) ListByElection(ctx context.Context, electionID string) ([]*models.AuditEntry, error) {
	var result []*models.AuditEntry
	err := r.do(ctx, "audit.ListByElection", func(st *state) error {
		for _, e := range st.audit {
			if e.ElectionID != nil && *e.ElectionID == electionID {
				result = append(result, &e)
			}
		}
		return nil
	})
	return result, err
}

func (r *auditRepo) DeleteByElection(ctx context.Context, electionID string) error {
	return r.do(ctx, "audit.DeleteByElection", func(st *state) error {
		kept := st.audit[:0:0]
		for _, e := range st.audit {
			if e.ElectionID == nil || *e.ElectionID != electionID {
				kept = append(kept, e)
			}
		}
		st.audit = kept
		return nil
	})
}
