package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/logging"
	"github.com/dmitrijs2005/unielect/internal/server/archive"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dmitrijs2005/unielect/internal/server/notify"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/repomanager"
)

// ElectionInput is a validated election definition.
type ElectionInput struct {
	Title      string
	Scope      models.Scope
	Department string
	StartTime  time.Time
	EndTime    time.Time
}

func (in *ElectionInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Department = strings.TrimSpace(in.Department)
	if in.Title == "" {
		return common.NewValidationError("title", "is required")
	}
	if in.Scope == "" {
		in.Scope = models.ScopeGeneral
	}
	return validateShape(in.Scope, in.Department, in.StartTime, in.EndTime)
}

func validateShape(scope models.Scope, department string, start, end time.Time) error {
	if !scope.Valid() {
		return common.NewValidationError("scope", fmt.Sprintf("unknown scope %q", scope))
	}
	if scope == models.ScopeDepartment && department == "" {
		return common.NewValidationError("department", "is required for department elections")
	}
	if scope == models.ScopeGeneral && department != "" {
		return common.NewValidationError("department", "must be empty for general elections")
	}
	if start.IsZero() || end.IsZero() {
		return common.NewValidationError("start_time", "start and end times are required")
	}
	if !end.After(start) {
		return common.NewValidationError("end_time", "must be after start time")
	}
	return nil
}

// ElectionPatch lists the fields an update wants to change. Nil leaves a
// field as it is.
type ElectionPatch struct {
	Title      *string
	Scope      *models.Scope
	Department *string
	StartTime  *time.Time
	EndTime    *time.Time
}

// ElectionService owns the election lifecycle.
type ElectionService struct {
	base
	notifier notify.Sink
	archiver archive.Archiver
}

func NewElectionService(m repomanager.RepositoryManager, notifier notify.Sink, archiver archive.Archiver, logger logging.Logger) *ElectionService {
	return &ElectionService{
		base:     newBase(m, logger, "elections"),
		notifier: notifier,
		archiver: archiver,
	}
}

func (s *ElectionService) Create(ctx context.Context, actor models.Actor, in ElectionInput) (*models.Election, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	e := &models.Election{
		Title:      in.Title,
		Status:     models.StatusDraft,
		Scope:      in.Scope,
		Department: in.Department,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		CreatorID:  actor.UserID,
	}
	if err := s.repomanager.Repos().Elections().Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create election: %w", err)
	}

	s.record(ctx, actor, models.ActionElectionCreated, e.ID, map[string]any{"title": e.Title})
	return e, nil
}

func (s *ElectionService) Get(ctx context.Context, actor models.Actor, id string) (*models.Election, error) {
	repos := s.repomanager.Repos()
	if err := checkScope(ctx, repos, actor, id); err != nil {
		return nil, err
	}
	return loadElection(ctx, repos, id, false)
}

// Update edits an election. While LIVE only a later end time is accepted;
// CLOSED and ARCHIVED elections are locked.
func (s *ElectionService) Update(ctx context.Context, actor models.Actor, id string, p ElectionPatch) (*models.Election, error) {
	var e *models.Election
	var changed []string

	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if err := checkScope(ctx, repos, actor, id); err != nil {
			return err
		}
		var err error
		e, err = loadElection(ctx, repos, id, true)
		if err != nil {
			return err
		}

		next := *e
		if p.Title != nil {
			next.Title = strings.TrimSpace(*p.Title)
		}
		if p.Scope != nil {
			next.Scope = *p.Scope
		}
		if p.Department != nil {
			next.Department = strings.TrimSpace(*p.Department)
		}
		if p.StartTime != nil {
			next.StartTime = *p.StartTime
		}
		if p.EndTime != nil {
			next.EndTime = *p.EndTime
		}
		changed = diffElection(e, &next)
		if len(changed) == 0 {
			return nil
		}

		switch {
		case e.CanMutateStructure():
			if next.Title == "" {
				return common.NewValidationError("title", "is required")
			}
			if err := validateShape(next.Scope, next.Department, next.StartTime, next.EndTime); err != nil {
				return err
			}
		case e.CanExtendOnly():
			if len(changed) != 1 || changed[0] != "end_time" {
				return common.ErrElectionLocked
			}
			if !next.EndTime.After(e.EndTime) {
				return common.NewValidationError("end_time", "a live election can only be extended")
			}
			if !next.EndTime.After(s.now()) {
				return common.NewValidationError("end_time", "must be in the future")
			}
		default:
			return common.ErrElectionLocked
		}

		if err := repos.Elections().Update(ctx, &next); err != nil {
			return fmt.Errorf("update election: %w", err)
		}
		e = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		s.record(ctx, actor, models.ActionElectionUpdated, e.ID, map[string]any{"fields": changed})
	}
	return e, nil
}

func diffElection(a, b *models.Election) []string {
	var changed []string
	if a.Title != b.Title {
		changed = append(changed, "title")
	}
	if a.Scope != b.Scope {
		changed = append(changed, "scope")
	}
	if a.Department != b.Department {
		changed = append(changed, "department")
	}
	if !a.StartTime.Equal(b.StartTime) {
		changed = append(changed, "start_time")
	}
	if !a.EndTime.Equal(b.EndTime) {
		changed = append(changed, "end_time")
	}
	return changed
}

// RequestApproval moves a DRAFT or APPROVED election to PENDING_APPROVAL and
// tells every active approver.
func (s *ElectionService) RequestApproval(ctx context.Context, actor models.Actor, id string) (*models.Election, error) {
	var e *models.Election
	var from models.Status

	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if err := checkScope(ctx, repos, actor, id); err != nil {
			return err
		}
		var err error
		e, err = loadElection(ctx, repos, id, true)
		if err != nil {
			return err
		}
		if e.Status != models.StatusDraft && e.Status != models.StatusApproved {
			return common.ErrInvalidTransition
		}
		from = e.Status
		e.Status = models.StatusPendingApproval
		if err := repos.Elections().Update(ctx, e); err != nil {
			return fmt.Errorf("update election: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, actor, models.ActionApprovalRequested, e.ID, map[string]any{"from": string(from)})
	s.notifyApprovers(ctx, actor, e)
	return e, nil
}

func (s *ElectionService) notifyApprovers(ctx context.Context, actor models.Actor, e *models.Election) {
	approvers, err := s.repomanager.Repos().Users().ListByRole(ctx, models.RoleApprover, models.UserActive)
	if err != nil {
		s.logger.Warn(ctx, "listing approvers failed", "election_id", e.ID, "error", err)
		return
	}

	requester := s.displayName(ctx, actor.UserID, "The election office")
	for _, a := range approvers {
		err := s.notifier.SendApprovalRequested(ctx, notify.ApprovalRequest{
			ApproverEmail: a.Email,
			ApproverName:  a.FullName,
			ElectionID:    e.ID,
			ElectionTitle: e.Title,
			RequesterName: requester,
		})
		if err != nil {
			s.logger.Warn(ctx, "approval notification failed", "election_id", e.ID, "approver_id", a.ID, "error", err)
		}
	}
}

// StatusChange is an administrative status move, optionally with new dates.
type StatusChange struct {
	Status    models.Status
	StartTime *time.Time
	EndTime   *time.Time
}

// SetStatus moves an election to any status. Setting the current status
// without new dates is a no-op.
func (s *ElectionService) SetStatus(ctx context.Context, actor models.Actor, id string, in StatusChange) (*models.Election, error) {
	if !in.Status.Valid() {
		return nil, common.NewValidationError("status", fmt.Sprintf("unknown status %q", in.Status))
	}

	var e *models.Election
	var from models.Status
	var noop bool

	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		e, err = loadElection(ctx, repos, id, true)
		if err != nil {
			return err
		}
		from = e.Status

		datesChanged := (in.StartTime != nil && !in.StartTime.Equal(e.StartTime)) ||
			(in.EndTime != nil && !in.EndTime.Equal(e.EndTime))
		if in.Status == e.Status && !datesChanged {
			noop = true
			return nil
		}

		if datesChanged {
			if in.StartTime != nil {
				e.StartTime = *in.StartTime
			}
			if in.EndTime != nil {
				e.EndTime = *in.EndTime
			}
			if !e.EndTime.After(e.StartTime) {
				return common.NewValidationError("end_time", "must be after start time")
			}
		}

		e.Status = in.Status
		if in.Status == models.StatusApproved && actor.Role == models.RoleApprover {
			approver := actor.UserID
			e.ApproverID = &approver
		}
		if err := repos.Elections().Update(ctx, e); err != nil {
			return fmt.Errorf("update election: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if noop {
		return e, nil
	}

	meta := map[string]any{"from": string(from), "to": string(e.Status)}
	switch {
	case e.Status == models.StatusPendingApproval && from != models.StatusPendingApproval:
		s.record(ctx, actor, models.ActionApprovalRequested, e.ID, meta)
		s.notifyApprovers(ctx, actor, e)
	default:
		s.record(ctx, actor, models.ActionStatusChanged, e.ID, meta)
	}

	if e.Status == models.StatusArchived && from != models.StatusArchived {
		s.export(ctx, actor, e)
	}

	s.logger.Info(ctx, "election status changed", "election_id", e.ID, "from", from, "to", e.Status)
	return e, nil
}

// export ships the election, its tally and audit trail to the archiver.
func (s *ElectionService) export(ctx context.Context, actor models.Actor, e *models.Election) {
	repos := s.repomanager.Repos()

	tally, err := repos.Votes().TallyByElection(ctx, e.ID)
	if err != nil {
		s.logger.Error(ctx, "archive tally failed", "election_id", e.ID, "error", err)
		return
	}
	trail, err := repos.Audit().ListByElection(ctx, e.ID)
	if err != nil {
		s.logger.Error(ctx, "archive audit read failed", "election_id", e.ID, "error", err)
		return
	}

	key, err := s.archiver.Archive(ctx, &archive.Record{Election: e, Tally: tally, Audit: trail})
	if err != nil {
		s.logger.Error(ctx, "archive export failed", "election_id", e.ID, "error", err)
		return
	}
	if key != "" {
		s.record(ctx, actor, models.ActionElectionArchived, e.ID, map[string]any{"object_key": key})
	}
}

// Delete removes a DRAFT or PENDING_APPROVAL election without votes along
// with everything that depends on it. A single ELECTION_DELETED entry is
// written afterwards and outlives the election.
func (s *ElectionService) Delete(ctx context.Context, actor models.Actor, id string) error {
	var title string

	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		e, err := loadElection(ctx, repos, id, true)
		if err != nil {
			return err
		}
		if !e.Deletable() {
			return common.ErrNotDeletable
		}
		n, err := repos.Votes().CountByElection(ctx, id)
		if err != nil {
			return fmt.Errorf("count votes: %w", err)
		}
		if n > 0 {
			return common.ErrNotDeletable
		}
		title = e.Title

		steps := []struct {
			what string
			fn   func(context.Context, string) error
		}{
			{"audit", repos.Audit().DeleteByElection},
			{"invitations", repos.Invitations().DeleteByElection},
			{"assignments", repos.Assignments().DeleteByElection},
			{"credentials", repos.Credentials().DeleteByElection},
			{"votes", repos.Votes().DeleteByElection},
			{"ballot", repos.Ballots().DeleteByElection},
			{"election", repos.Elections().Delete},
		}
		for _, step := range steps {
			if err := step.fn(ctx, id); err != nil {
				return fmt.Errorf("delete %s: %w", step.what, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, actor, models.ActionElectionDeleted, id, map[string]any{"title": title})
	return nil
}
