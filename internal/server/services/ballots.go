package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/repomanager"
)

// BallotEntry is one portfolio with its candidates in ballot order.
type BallotEntry struct {
	Portfolio  *models.Portfolio
	Candidates []*models.Candidate
}

// mutableElection loads and locks an election whose structure may change.
func mutableElection(ctx context.Context, repos repomanager.Repositories, actor models.Actor, electionID string) (*models.Election, error) {
	if err := checkScope(ctx, repos, actor, electionID); err != nil {
		return nil, err
	}
	e, err := loadElection(ctx, repos, electionID, true)
	if err != nil {
		return nil, err
	}
	if !e.CanMutateStructure() {
		return nil, common.ErrElectionLocked
	}
	return e, nil
}

func loadPortfolio(ctx context.Context, repos repomanager.Repositories, id string) (*models.Portfolio, error) {
	if !isRowID(id) {
		return nil, common.NewValidationError("portfolio_id", "unknown portfolio")
	}
	p, err := repos.Ballots().GetPortfolio(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewValidationError("portfolio_id", "unknown portfolio")
		}
		return nil, fmt.Errorf("load portfolio: %w", err)
	}
	return p, nil
}

func loadCandidate(ctx context.Context, repos repomanager.Repositories, id string) (*models.Candidate, error) {
	if !isRowID(id) {
		return nil, common.NewValidationError("candidate_id", "unknown candidate")
	}
	c, err := repos.Ballots().GetCandidate(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewValidationError("candidate_id", "unknown candidate")
		}
		return nil, fmt.Errorf("load candidate: %w", err)
	}
	return c, nil
}

func (s *ElectionService) AddPortfolio(ctx context.Context, actor models.Actor, electionID, title string) (*models.Portfolio, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.NewValidationError("title", "is required")
	}

	p := &models.Portfolio{ElectionID: electionID, Title: title}
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if _, err := mutableElection(ctx, repos, actor, electionID); err != nil {
			return err
		}
		existing, err := repos.Ballots().ListPortfolios(ctx, electionID)
		if err != nil {
			return fmt.Errorf("list portfolios: %w", err)
		}
		p.Position = len(existing)
		return repos.Ballots().CreatePortfolio(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, actor, models.ActionBallotChanged, electionID, map[string]any{"op": "add_portfolio", "portfolio_id": p.ID})
	return p, nil
}

func (s *ElectionService) RemovePortfolio(ctx context.Context, actor models.Actor, portfolioID string) error {
	var electionID string
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		p, err := loadPortfolio(ctx, repos, portfolioID)
		if err != nil {
			return err
		}
		electionID = p.ElectionID
		if _, err := mutableElection(ctx, repos, actor, electionID); err != nil {
			return err
		}
		return repos.Ballots().DeletePortfolio(ctx, portfolioID)
	})
	if err != nil {
		return err
	}

	s.record(ctx, actor, models.ActionBallotChanged, electionID, map[string]any{"op": "remove_portfolio", "portfolio_id": portfolioID})
	return nil
}

func (s *ElectionService) AddCandidate(ctx context.Context, actor models.Actor, portfolioID, name, manifesto string) (*models.Candidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("name", "is required")
	}

	c := &models.Candidate{PortfolioID: portfolioID, Name: name, Manifesto: strings.TrimSpace(manifesto)}
	var electionID string
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		p, err := loadPortfolio(ctx, repos, portfolioID)
		if err != nil {
			return err
		}
		electionID = p.ElectionID
		if _, err := mutableElection(ctx, repos, actor, electionID); err != nil {
			return err
		}
		existing, err := repos.Ballots().ListCandidates(ctx, portfolioID)
		if err != nil {
			return fmt.Errorf("list candidates: %w", err)
		}
		c.Position = len(existing)
		return repos.Ballots().CreateCandidate(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, actor, models.ActionBallotChanged, electionID, map[string]any{"op": "add_candidate", "candidate_id": c.ID})
	return c, nil
}

func (s *ElectionService) RemoveCandidate(ctx context.Context, actor models.Actor, candidateID string) error {
	var electionID string
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		c, err := loadCandidate(ctx, repos, candidateID)
		if err != nil {
			return err
		}
		p, err := loadPortfolio(ctx, repos, c.PortfolioID)
		if err != nil {
			return err
		}
		electionID = p.ElectionID
		if _, err := mutableElection(ctx, repos, actor, electionID); err != nil {
			return err
		}
		return repos.Ballots().DeleteCandidate(ctx, candidateID)
	})
	if err != nil {
		return err
	}

	s.record(ctx, actor, models.ActionBallotChanged, electionID, map[string]any{"op": "remove_candidate", "candidate_id": candidateID})
	return nil
}

// ReorderCandidates sets the ballot order of a portfolio. order must list
// every candidate of the portfolio exactly once.
func (s *ElectionService) ReorderCandidates(ctx context.Context, actor models.Actor, portfolioID string, order []string) error {
	var electionID string
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		p, err := loadPortfolio(ctx, repos, portfolioID)
		if err != nil {
			return err
		}
		electionID = p.ElectionID
		if _, err := mutableElection(ctx, repos, actor, electionID); err != nil {
			return err
		}

		existing, err := repos.Ballots().ListCandidates(ctx, portfolioID)
		if err != nil {
			return fmt.Errorf("list candidates: %w", err)
		}
		known := make(map[string]bool, len(existing))
		for _, c := range existing {
			known[c.ID] = true
		}
		if len(order) != len(existing) {
			return common.NewValidationError("order", "must list every candidate of the portfolio")
		}
		for _, id := range order {
			if !known[id] {
				return common.NewValidationError("order", "must list every candidate of the portfolio exactly once")
			}
			delete(known, id)
		}

		for pos, id := range order {
			if err := repos.Ballots().SetCandidatePosition(ctx, id, pos); err != nil {
				return fmt.Errorf("reorder candidates: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, actor, models.ActionBallotChanged, electionID, map[string]any{"op": "reorder", "portfolio_id": portfolioID})
	return nil
}

// Ballot returns the portfolios of an election with their candidates.
func (s *ElectionService) Ballot(ctx context.Context, electionID string) ([]BallotEntry, error) {
	repos := s.repomanager.Repos()
	if _, err := loadElection(ctx, repos, electionID, false); err != nil {
		return nil, err
	}
	return loadBallot(ctx, repos, electionID)
}

func loadBallot(ctx context.Context, repos repomanager.Repositories, electionID string) ([]BallotEntry, error) {
	portfolios, err := repos.Ballots().ListPortfolios(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}

	ballot := make([]BallotEntry, 0, len(portfolios))
	for _, p := range portfolios {
		candidates, err := repos.Ballots().ListCandidates(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("list candidates: %w", err)
		}
		ballot = append(ballot, BallotEntry{Portfolio: p, Candidates: candidates})
	}
	return ballot, nil
}
