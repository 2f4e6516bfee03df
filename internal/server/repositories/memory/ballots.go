package memory

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/google/uuid"
)

type ballotRepo struct{ *repos }

func (r *ballotRepo) CreatePortfolio(ctx context.Context, p *models.Portfolio) error {
	return r.do(ctx, "ballots.CreatePortfolio", func(st *state) error {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		p.CreatedAt = r.now()
		st.portfolios.put(p.ID, *p)
		return nil
	})
}

func (r *ballotRepo) GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error) {
	var found *models.Portfolio
	err := r.do(ctx, "ballots.GetPortfolio", func(st *state) error {
		p, ok := st.portfolios.rows[id]
		if !ok {
			return common.ErrorNotFound
		}
		found = &p
		return nil
	})
	return found, err
}

func (r *ballotRepo) ListPortfolios(ctx context.Context, electionID string) ([]*models.Portfolio, error) {
	var result []*models.Portfolio
	err := r.do(ctx, "ballots.ListPortfolios", func(st *state) error {
		st.portfolios.each(func(_ string, p models.Portfolio) {
			if p.ElectionID == electionID {
				result = append(result, &p)
			}
		})
		return nil
	})
	sort.SliceStable(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, err
}

func (r *ballotRepo) DeletePortfolio(ctx context.Context, id string) error {
	return r.do(ctx, "ballots.DeletePortfolio", func(st *state) error {
		st.portfolios.remove(id)
		st.candidates.removeWhere(func(c models.Candidate) bool { return c.PortfolioID == id })
		return nil
	})
}

func (r *ballotRepo) CreateCandidate(ctx context.Context, c *models.Candidate) error {
	return r.do(ctx, "ballots.CreateCandidate", func(st *state) error {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		c.CreatedAt = r.now()
		st.candidates.put(c.ID, *c)
		return nil
	})
}

func (r *ballotRepo) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	var found *models.Candidate
	err := r.do(ctx, "ballots.GetCandidate", func(st *state) error {
		c, ok := st.candidates.rows[id]
		if !ok {
			return common.ErrorNotFound
		}
		found = &c
		return nil
	})
	return found, err
}

func (r *ballotRepo) ListCandidates(ctx context.Context, portfolioID string) ([]*models.Candidate, error) {
	var result []*models.Candidate
	err := r.do(ctx, "ballots.ListCandidates", func(st *state) error {
		st.candidates.each(func(_ string, c models.Candidate) {
			if c.PortfolioID == portfolioID {
				result = append(result, &c)
			}
		})
		return nil
	})
	sort.SliceStable(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, err
}

func (r *ballotRepo) SetCandidatePosition(ctx context.Context, id string, position int) error {
	return r.do(ctx, "ballots.SetCandidatePosition", func(st *state) error {
		c, ok := st.candidates.rows[id]
		if !ok {
			return nil
		}
		c.Position = position
		st.candidates.put(id, c)
		return nil
	})
}

func (r *ballotRepo) DeleteCandidate(ctx context.Context, id string) error {
	return r.do(ctx, "ballots.DeleteCandidate", func(st *state) error {
		st.candidates.remove(id)
		return nil
	})
}

func (r *ballotRepo) DeleteByElection(ctx context.Context, electionID string) error {
	return r.do(ctx, "ballots.DeleteByElection", func(st *state) error {
		var ids []string
		st.portfolios.each(func(id string, p models.Portfolio) {
			if p.ElectionID == electionID {
				ids = append(ids, id)
			}
		})
		for _, id := range ids {
			st.candidates.removeWhere(func(c models.Candidate) bool { return c.PortfolioID == id })
			st.portfolios.remove(id)
		}
		return nil
	})
}
