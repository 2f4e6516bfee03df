package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/cryptox"
	"github.com/dmitrijs2005/unielect/internal/logging"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/repomanager"
)

const receiptBytes = 16

// IssuedCredential is handed out exactly once; only its fingerprint is kept.
type IssuedCredential struct {
	VoterIdentity string
	Credential    string
}

// VerifiedSession is what a voter sees after verification. It never
// contains the credential itself.
type VerifiedSession struct {
	ElectionID    string
	ElectionTitle string
	VoterIdentity string
	EndsAt        time.Time
	Ballot        []BallotEntry
}

// Selection is one candidate choice on a ballot.
type Selection struct {
	PortfolioID string
	CandidateID string
}

// VoteReceipt confirms a cast ballot without linking back to the voter.
type VoteReceipt struct {
	ReceiptID  string
	ElectionID string
	Portfolios int
	CastAt     time.Time
}

// VoteService admits at most one vote per credential and portfolio.
type VoteService struct {
	base
}

func NewVoteService(m repomanager.RepositoryManager, logger logging.Logger) *VoteService {
	return &VoteService{base: newBase(m, logger, "voting")}
}

// IssueCredentials creates one credential per voter identity.
func (s *VoteService) IssueCredentials(ctx context.Context, actor models.Actor, electionID string, identities []string) ([]IssuedCredential, error) {
	if len(identities) == 0 {
		return nil, common.NewValidationError("voter_identities", "at least one identity is required")
	}
	seen := make(map[string]struct{}, len(identities))
	issued := make([]IssuedCredential, 0, len(identities))
	for _, id := range identities {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, common.NewValidationError("voter_identities", "identities must not be empty")
		}
		if _, dup := seen[id]; dup {
			return nil, common.NewValidationError("voter_identities", fmt.Sprintf("%q is listed twice", id))
		}
		seen[id] = struct{}{}

		secret, err := common.MakeRandHexString(common.CredentialSize)
		if err != nil {
			return nil, fmt.Errorf("generate credential: %w", err)
		}
		issued = append(issued, IssuedCredential{VoterIdentity: id, Credential: secret})
	}

	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if err := checkScope(ctx, repos, actor, electionID); err != nil {
			return err
		}
		e, err := loadElection(ctx, repos, electionID, true)
		if err != nil {
			return err
		}
		if e.Status.Terminal() {
			return common.ErrElectionLocked
		}
		for _, ic := range issued {
			c := &models.VoterCredential{
				ElectionID:    electionID,
				VoterIdentity: ic.VoterIdentity,
				Fingerprint:   cryptox.FingerprintCredential(ic.Credential),
				Status:        models.CredentialIssued,
			}
			if err := repos.Credentials().Create(ctx, c); err != nil {
				if errors.Is(err, common.ErrUniqueViolation) {
					return common.NewValidationError("voter_identities",
						fmt.Sprintf("%q already holds a credential for this election", ic.VoterIdentity))
				}
				return fmt.Errorf("create credential: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, actor, models.ActionCredentialsIssued, electionID, map[string]any{"count": len(issued)})
	return issued, nil
}

// lookupCredential maps credential to its stored row, locked for the
// transaction.
func lookupCredential(ctx context.Context, repos repomanager.Repositories, credential string) (*models.VoterCredential, error) {
	if credential == "" {
		return nil, common.ErrCredentialNotFound
	}
	c, err := repos.Credentials().GetByFingerprintForUpdate(ctx, cryptox.FingerprintCredential(credential))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("load credential: %w", err)
	}
	return c, nil
}

// InitiateVerification moves credential to VERIFIED and returns the ballot
// the voter may fill in. Verifying twice is allowed.
func (s *VoteService) InitiateVerification(ctx context.Context, credential string) (*VerifiedSession, error) {
	var session *VerifiedSession
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		c, err := lookupCredential(ctx, repos, credential)
		if err != nil {
			return err
		}
		e, err := loadElection(ctx, repos, c.ElectionID, false)
		if err != nil {
			return err
		}
		now := s.now()
		if err := e.CheckVotable(now); err != nil {
			return err
		}
		if c.Status == models.CredentialConsumed {
			return common.ErrCredentialUsed
		}
		if c.Status == models.CredentialIssued {
			if err := repos.Credentials().UpdateStatus(ctx, c.ID, models.CredentialVerified, now); err != nil {
				return fmt.Errorf("verify credential: %w", err)
			}
		}

		ballot, err := loadBallot(ctx, repos, e.ID)
		if err != nil {
			return err
		}
		session = &VerifiedSession{
			ElectionID:    e.ID,
			ElectionTitle: e.Title,
			VoterIdentity: c.VoterIdentity,
			EndsAt:        e.EndTime,
			Ballot:        ballot,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// CastVote records a single selection.
func (s *VoteService) CastVote(ctx context.Context, credential, electionID, portfolioID, candidateID string) (*VoteReceipt, error) {
	return s.CastBallot(ctx, credential, electionID, []Selection{{PortfolioID: portfolioID, CandidateID: candidateID}})
}

// CastBallot writes one vote per selection and consumes the credential.
// Double voting is rejected by the storage uniqueness constraint on
// (fingerprint, election, portfolio) and reported as ErrConflict.
func (s *VoteService) CastBallot(ctx context.Context, credential, electionID string, selections []Selection) (*VoteReceipt, error) {
	if len(selections) == 0 {
		return nil, common.NewValidationError("selections", "at least one selection is required")
	}
	picked := make(map[string]struct{}, len(selections))
	for _, sel := range selections {
		if sel.PortfolioID == "" || sel.CandidateID == "" {
			return nil, common.NewValidationError("selections", "portfolio and candidate are required")
		}
		if _, dup := picked[sel.PortfolioID]; dup {
			return nil, common.NewValidationError("selections", "a portfolio may be selected only once")
		}
		picked[sel.PortfolioID] = struct{}{}
	}

	receiptID, err := common.MakeRandHexString(receiptBytes)
	if err != nil {
		return nil, fmt.Errorf("generate receipt: %w", err)
	}
	receipt := &VoteReceipt{ReceiptID: receiptID, ElectionID: electionID, Portfolios: len(selections)}

	err = s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		c, err := lookupCredential(ctx, repos, credential)
		if err != nil {
			return err
		}
		if c.ElectionID != electionID {
			return common.ErrCredentialNotFound
		}
		e, err := loadElection(ctx, repos, electionID, false)
		if err != nil {
			return err
		}
		now := s.now()
		if err := e.CheckVotable(now); err != nil {
			return err
		}

		for _, sel := range selections {
			if err := checkSelection(ctx, repos, electionID, sel); err != nil {
				return err
			}
		}
		if c.Status == models.CredentialIssued {
			return common.ErrCredentialNotVerified
		}

		for _, sel := range selections {
			v := &models.Vote{
				Fingerprint: c.Fingerprint,
				ElectionID:  electionID,
				PortfolioID: sel.PortfolioID,
				CandidateID: sel.CandidateID,
			}
			if err := repos.Votes().Create(ctx, v); err != nil {
				if errors.Is(err, common.ErrUniqueViolation) {
					return common.ErrConflict
				}
				// the candidate or portfolio was removed after it was checked
				if errors.Is(err, common.ErrReferenceViolation) {
					return common.NewValidationError("selections", "candidate is no longer on the ballot")
				}
				return fmt.Errorf("create vote: %w", err)
			}
			receipt.CastAt = v.CastAt
		}

		if c.Status == models.CredentialConsumed {
			return common.ErrCredentialUsed
		}
		if err := repos.Credentials().UpdateStatus(ctx, c.ID, models.CredentialConsumed, now); err != nil {
			return fmt.Errorf("consume credential: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// checkSelection verifies that the candidate stands for the portfolio and
// the portfolio belongs to the election.
func checkSelection(ctx context.Context, repos repomanager.Repositories, electionID string, sel Selection) error {
	p, err := loadPortfolio(ctx, repos, sel.PortfolioID)
	if err != nil {
		return err
	}
	if p.ElectionID != electionID {
		return common.NewValidationError("portfolio_id", "portfolio is not on this ballot")
	}
	c, err := loadCandidate(ctx, repos, sel.CandidateID)
	if err != nil {
		return err
	}
	if c.PortfolioID != p.ID {
		return common.NewValidationError("candidate_id", "candidate does not stand for this portfolio")
	}
	return nil
}
