package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/logging"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dmitrijs2005/unielect/internal/server/notify"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/repomanager"
)

// ProposalKind says how an ADMIN invitation for an election should proceed.
type ProposalKind int

const (
	// ProposeInvite means a normal invitation can be issued.
	ProposeInvite ProposalKind = iota
	// ProposeReassign means the admin manages another election and must be
	// moved explicitly.
	ProposeReassign
)

// Proposal is the outcome of AssignmentService.ProposeInvite.
type Proposal struct {
	Kind ProposalKind
	// Current is set for ProposeReassign.
	Current *models.Election
	// ExistingAdmin is set when the e-mail already belongs to an unassigned admin.
	ExistingAdmin *models.User
}

// Err returns the error equivalent of a reassignment proposal, or nil.
func (p *Proposal) Err() error {
	if p.Kind != ProposeReassign || p.Current == nil {
		return nil
	}
	return &common.ReassignmentRequiredError{
		ElectionID:     p.Current.ID,
		ElectionTitle:  p.Current.Title,
		ElectionStatus: string(p.Current.Status),
	}
}

// AssignmentService keeps every ADMIN bound to at most one election.
type AssignmentService struct {
	base
	notifier notify.Sink
}

func NewAssignmentService(m repomanager.RepositoryManager, notifier notify.Sink, logger logging.Logger) *AssignmentService {
	return &AssignmentService{base: newBase(m, logger, "assignments"), notifier: notifier}
}

// ProposeInvite decides, without writing anything, whether email can be
// invited as ADMIN of electionID.
func (s *AssignmentService) ProposeInvite(ctx context.Context, email, electionID string) (*Proposal, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return propose(ctx, s.repomanager.Repos(), email, electionID)
}

func propose(ctx context.Context, repos repomanager.Repositories, email, electionID string) (*Proposal, error) {
	if _, err := loadElection(ctx, repos, electionID, false); err != nil {
		return nil, err
	}

	user, err := repos.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &Proposal{Kind: ProposeInvite}, nil
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user.Role != models.RoleAdmin {
		return nil, common.ErrEmailInUse
	}

	current, err := repos.Assignments().GetByAdmin(ctx, user.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &Proposal{Kind: ProposeInvite, ExistingAdmin: user}, nil
		}
		return nil, fmt.Errorf("load assignment: %w", err)
	}
	if current.ElectionID == electionID {
		return nil, common.ErrAlreadyAssigned
	}

	e, err := loadElection(ctx, repos, current.ElectionID, false)
	if err != nil {
		return nil, err
	}
	return &Proposal{Kind: ProposeReassign, Current: e}, nil
}

// Reassign moves the admin with adminEmail to newElectionID. The old
// assignment is removed and the new one created in one transaction.
func (s *AssignmentService) Reassign(ctx context.Context, actor models.Actor, adminEmail, newElectionID string) (*models.AdminAssignment, error) {
	email, err := normalizeEmail(adminEmail)
	if err != nil {
		return nil, err
	}

	var admin *models.User
	var target *models.Election
	var previous string
	assignment := &models.AdminAssignment{ElectionID: newElectionID, AssignerID: actor.UserID}

	err = s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		admin, err = repos.Users().GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrAdminNotFound
			}
			return fmt.Errorf("load user: %w", err)
		}
		if admin.Role != models.RoleAdmin {
			return common.ErrAdminNotFound
		}

		target, err = loadElection(ctx, repos, newElectionID, true)
		if err != nil {
			return err
		}

		current, err := repos.Assignments().GetByAdmin(ctx, admin.ID)
		switch {
		case err == nil:
			if current.ElectionID == newElectionID {
				return common.ErrAlreadyAssigned
			}
			previous = current.ElectionID
		case errors.Is(err, common.ErrorNotFound):
		default:
			return fmt.Errorf("load assignment: %w", err)
		}

		if err := repos.Assignments().DeleteByAdmin(ctx, admin.ID); err != nil {
			return fmt.Errorf("remove assignment: %w", err)
		}
		assignment.AdminID = admin.ID
		if err := repos.Assignments().Create(ctx, assignment); err != nil {
			if errors.Is(err, common.ErrUniqueViolation) {
				return common.ErrAlreadyAssigned
			}
			return fmt.Errorf("create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, actor, models.ActionAdminReassigned, newElectionID, map[string]any{
		"admin_id": admin.ID, "from_election_id": previous, "to_election_id": newElectionID,
	})

	change := notify.AssignmentChange{Email: admin.Email, AdminName: admin.FullName, ElectionTitle: target.Title}
	if previous != "" {
		if e, err := s.repomanager.Repos().Elections().Get(ctx, previous); err == nil {
			change.PreviousTitle = e.Title
		}
	}
	if err := s.notifier.SendAssignmentChanged(ctx, change); err != nil {
		s.logger.Warn(ctx, "assignment notification failed", "admin_id", admin.ID, "error", err)
	}

	return assignment, nil
}
