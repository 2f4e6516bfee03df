package memory

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/google/uuid"
)

type voteRepo struct{ *repos }

func (r *voteRepo) Create(ctx context.Context, v *models.Vote) error {
	return r.do(ctx, "votes.Create", func(st *state) error {
		for _, existing := range st.votes.rows {
			if existing.Fingerprint == v.Fingerprint &&
				existing.ElectionID == v.ElectionID &&
				existing.PortfolioID == v.PortfolioID {
				return uniqueViolation("votes_fingerprint_election_portfolio_key")
			}
		}
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		v.CastAt = r.now()
		st.votes.put(v.ID, *v)
		return nil
	})
}

func (r *voteRepo) CountByElection(ctx context.Context, electionID string) (int, error) {
	var n int
	err := r.do(ctx, "votes.CountByElection", func(st *state) error {
		for _, v := range st.votes.rows {
			if v.ElectionID == electionID {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *voteRepo) TallyByElection(ctx context.Context, electionID string) (map[string]int, error) {
	tally := map[string]int{}
	err := r.do(ctx, "votes.TallyByElection", func(st *state) error {
		for _, v := range st.votes.rows {
			if v.ElectionID == electionID {
				tally[v.CandidateID]++
			}
		}
		return nil
	})
	return tally, err
}

func (r *voteRepo) DeleteByElection(ctx context.Context, electionID string) error {
	return r.do(ctx, "votes.DeleteByElection", func(st *state) error {
		st.votes.removeWhere(func(v models.Vote) bool { return v.ElectionID == electionID })
		return nil
	})
}
