package memory

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/google/uuid"
)

type electionRepo struct{ *repos }

func (r *electionRepo) Create(ctx context.Context, e *models.Election) error {
	return r.do(ctx, "elections.Create", func(st *state) error {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		e.CreatedAt = r.now()
		e.UpdatedAt = e.CreatedAt
		st.elections.put(e.ID, *e)
		return nil
	})
}

func (r *electionRepo) get(ctx context.Context, op, id string) (*models.Election, error) {
	var found *models.Election
	err := r.do(ctx, op, func(st *state) error {
		e, ok := st.elections.rows[id]
		if !ok {
			return common.ErrorNotFound
		}
		found = &e
		return nil
	})
	return found, err
}

func (r *electionRepo) Get(ctx context.Context, id string) (*models.Election, error) {
	return r.get(ctx, "elections.Get", id)
}

// GetForUpdate needs no row lock: transactions already hold the store lock.
func (r *electionRepo) GetForUpdate(ctx context.Context, id string) (*models.Election, error) {
	return r.get(ctx, "elections.GetForUpdate", id)
}

func (r *electionRepo) Update(ctx context.Context, e *models.Election) error {
	return r.do(ctx, "elections.Update", func(st *state) error {
		if _, ok := st.elections.rows[e.ID]; !ok {
			return common.ErrorNotFound
		}
		e.UpdatedAt = r.now()
		st.elections.put(e.ID, *e)
		return nil
	})
}

func (r *electionRepo) Delete(ctx context.Context, id string) error {
	return r.do(ctx, "elections.Delete", func(st *state) error {
		st.elections.remove(id)
		return nil
	})
}
