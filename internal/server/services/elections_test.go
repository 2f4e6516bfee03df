package services

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectionService_Create(t *testing.T) {
	env := newTestEnv(t)
	start := env.now.Add(time.Hour)

	tests := []struct {
		name    string
		in      ElectionInput
		wantErr error
	}{
		{"general", ElectionInput{Title: "SRC 2026", StartTime: start, EndTime: start.Add(time.Hour)}, nil},
		{"department", ElectionInput{Title: "CS reps", Scope: models.ScopeDepartment, Department: "CS", StartTime: start, EndTime: start.Add(time.Hour)}, nil},
		{"missing title", ElectionInput{StartTime: start, EndTime: start.Add(time.Hour)}, common.ErrValidation},
		{"department without name", ElectionInput{Title: "x", Scope: models.ScopeDepartment, StartTime: start, EndTime: start.Add(time.Hour)}, common.ErrValidation},
		{"general with department", ElectionInput{Title: "x", Department: "CS", StartTime: start, EndTime: start.Add(time.Hour)}, common.ErrValidation},
		{"end equals start", ElectionInput{Title: "x", StartTime: start, EndTime: start}, common.ErrValidation},
		{"unknown scope", ElectionInput{Title: "x", Scope: "FACULTY", StartTime: start, EndTime: start.Add(time.Hour)}, common.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := env.elections.Create(env.ctx, env.superadmin, tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.StatusDraft, e.Status)
			assert.Equal(t, env.superadmin.UserID, e.CreatorID)
			assert.True(t, e.EndTime.After(e.StartTime))
			assert.Equal(t, []string{models.ActionElectionCreated}, env.auditActions(t, e.ID))
		})
	}
}

func TestElectionService_RequestApproval_NotifiesOnce(t *testing.T) {
	env := newTestEnv(t)
	approver := env.seedUser(t, "approver@uni.edu", models.RoleApprover)
	_, err := env.store.Repos().Users().Create(env.ctx, &models.User{
		Email: "retired@uni.edu", Role: models.RoleApprover, Status: models.UserInactive,
	})
	require.NoError(t, err)
	e := env.seedElection(t, "SRC", models.StatusDraft)

	got, err := env.elections.RequestApproval(env.ctx, env.superadmin, e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingApproval, got.Status)
	require.Len(t, env.sink.approvals, 1)
	assert.Equal(t, approver.Email, env.sink.approvals[0].ApproverEmail)
	assert.Equal(t, e.ID, env.sink.approvals[0].ElectionID)

	_, err = env.elections.RequestApproval(env.ctx, env.superadmin, e.ID)
	require.ErrorIs(t, err, common.ErrInvalidTransition)
	assert.Len(t, env.sink.approvals, 1)

	assert.Equal(t, []string{models.ActionElectionCreated, models.ActionApprovalRequested}, env.auditActions(t, e.ID))
}

func TestElectionService_RequestApproval_FromApproved(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusApproved)

	got, err := env.elections.RequestApproval(env.ctx, env.superadmin, e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingApproval, got.Status)

	for _, status := range []models.Status{models.StatusLive, models.StatusClosed, models.StatusArchived} {
		other := env.seedElection(t, string(status), status)
		_, err := env.elections.RequestApproval(env.ctx, env.superadmin, other.ID)
		assert.ErrorIs(t, err, common.ErrInvalidTransition, status)
	}

	_, err = env.elections.RequestApproval(env.ctx, env.superadmin, "missing")
	require.ErrorIs(t, err, common.ErrElectionNotFound)
}

func TestElectionService_SetStatus(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "approver@uni.edu", models.RoleApprover)
	e := env.seedElection(t, "SRC", models.StatusDraft)

	_, err := env.elections.SetStatus(env.ctx, env.superadmin, e.ID, StatusChange{Status: "OPEN"})
	require.ErrorIs(t, err, common.ErrValidation)

	got, err := env.elections.SetStatus(env.ctx, env.superadmin, e.ID, StatusChange{Status: models.StatusPendingApproval})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingApproval, got.Status)
	assert.Len(t, env.sink.approvals, 1)

	// same status again is accepted without side effects
	_, err = env.elections.SetStatus(env.ctx, env.superadmin, e.ID, StatusChange{Status: models.StatusPendingApproval})
	require.NoError(t, err)
	assert.Len(t, env.sink.approvals, 1)
	assert.Equal(t, []string{models.ActionElectionCreated, models.ActionApprovalRequested}, env.auditActions(t, e.ID))

	approver := models.Actor{UserID: "approver-1", Role: models.RoleApprover}
	got, err = env.elections.SetStatus(env.ctx, approver, e.ID, StatusChange{Status: models.StatusApproved})
	require.NoError(t, err)
	require.NotNil(t, got.ApproverID)
	assert.Equal(t, "approver-1", *got.ApproverID)
	assert.Contains(t, env.auditActions(t, e.ID), models.ActionStatusChanged)
}

func TestElectionService_SetStatus_RevalidatesDates(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusApproved)

	badEnd := e.StartTime.Add(-time.Minute)
	_, err := env.elections.SetStatus(env.ctx, env.superadmin, e.ID, StatusChange{Status: models.StatusLive, EndTime: &badEnd})
	require.ErrorIs(t, err, common.ErrValidation)

	stored, err := env.store.Repos().Elections().Get(env.ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)

	newEnd := e.EndTime.Add(48 * time.Hour)
	got, err := env.elections.SetStatus(env.ctx, env.superadmin, e.ID, StatusChange{Status: models.StatusLive, EndTime: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, models.StatusLive, got.Status)
	assert.True(t, got.EndTime.Equal(newEnd))
}

func TestElectionService_SetStatus_ArchiveExports(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusClosed)

	_, err := env.elections.SetStatus(env.ctx, env.superadmin, e.ID, StatusChange{Status: models.StatusArchived})
	require.NoError(t, err)

	require.Len(t, env.archiver.records, 1)
	assert.Equal(t, e.ID, env.archiver.records[0].Election.ID)
	assert.Contains(t, env.auditActions(t, e.ID), models.ActionElectionArchived)
}

func TestElectionService_SetStatus_ArchiveFailureIsSwallowed(t *testing.T) {
	env := newTestEnv(t)
	env.archiver.err = errors.New("bucket missing")
	e := env.seedElection(t, "SRC", models.StatusClosed)

	got, err := env.elections.SetStatus(env.ctx, env.superadmin, e.ID, StatusChange{Status: models.StatusArchived})
	require.NoError(t, err)
	assert.Equal(t, models.StatusArchived, got.Status)
	assert.NotContains(t, env.auditActions(t, e.ID), models.ActionElectionArchived)
}

func TestElectionService_Update_LiveAllowsExtendOnly(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusLive)

	later := e.EndTime.Add(2 * time.Hour)
	got, err := env.elections.Update(env.ctx, env.superadmin, e.ID, ElectionPatch{EndTime: &later})
	require.NoError(t, err)
	assert.True(t, got.EndTime.Equal(later))

	title := "Renamed"
	evenLater := later.Add(time.Hour)
	_, err = env.elections.Update(env.ctx, env.superadmin, e.ID, ElectionPatch{Title: &title, EndTime: &evenLater})
	require.ErrorIs(t, err, common.ErrElectionLocked)

	start := e.StartTime.Add(time.Minute)
	_, err = env.elections.Update(env.ctx, env.superadmin, e.ID, ElectionPatch{StartTime: &start})
	require.ErrorIs(t, err, common.ErrElectionLocked)

	dept := "CS"
	_, err = env.elections.Update(env.ctx, env.superadmin, e.ID, ElectionPatch{Department: &dept})
	require.ErrorIs(t, err, common.ErrElectionLocked)

	earlier := later.Add(-time.Hour)
	_, err = env.elections.Update(env.ctx, env.superadmin, e.ID, ElectionPatch{EndTime: &earlier})
	require.ErrorIs(t, err, common.ErrValidation)

	stored, err := env.store.Repos().Elections().Get(env.ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "SRC", stored.Title)
	assert.True(t, stored.EndTime.Equal(later))
}

func TestElectionService_Update_ExtendMustBeInFuture(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusLive)

	// the window has already passed by the wall clock
	env.now = e.EndTime.Add(3 * time.Hour)
	later := e.EndTime.Add(time.Hour)
	_, err := env.elections.Update(env.ctx, env.superadmin, e.ID, ElectionPatch{EndTime: &later})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestElectionService_Update_Draft(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusDraft)

	title := "  SRC 2026  "
	scope := models.ScopeDepartment
	dept := "Physics"
	got, err := env.elections.Update(env.ctx, env.superadmin, e.ID, ElectionPatch{Title: &title, Scope: &scope, Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "SRC 2026", got.Title)
	assert.Equal(t, models.ScopeDepartment, got.Scope)

	badEnd := e.StartTime
	_, err = env.elections.Update(env.ctx, env.superadmin, e.ID, ElectionPatch{EndTime: &badEnd})
	require.ErrorIs(t, err, common.ErrValidation)

	for _, status := range []models.Status{models.StatusClosed, models.StatusArchived} {
		locked := env.seedElection(t, "locked", status)
		_, err := env.elections.Update(env.ctx, env.superadmin, locked.ID, ElectionPatch{Title: &title})
		assert.ErrorIs(t, err, common.ErrElectionLocked, status)
	}
}

func TestElectionService_AdminScope(t *testing.T) {
	env := newTestEnv(t)
	mine := env.seedElection(t, "Mine", models.StatusDraft)
	other := env.seedElection(t, "Other", models.StatusDraft)
	admin := env.seedUser(t, "admin@uni.edu", models.RoleAdmin)
	env.assign(t, admin, mine.ID)

	_, err := env.elections.Get(env.ctx, actorOf(admin), mine.ID)
	require.NoError(t, err)
	_, err = env.elections.Get(env.ctx, actorOf(admin), other.ID)
	require.ErrorIs(t, err, common.ErrorForbidden)

	_, err = env.elections.AddPortfolio(env.ctx, actorOf(admin), other.ID, "President")
	require.ErrorIs(t, err, common.ErrorForbidden)

	unassigned := env.seedUser(t, "idle@uni.edu", models.RoleAdmin)
	_, err = env.elections.RequestApproval(env.ctx, actorOf(unassigned), mine.ID)
	require.ErrorIs(t, err, common.ErrorForbidden)
}

func TestElectionService_Delete(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusDraft)
	p, err := env.elections.AddPortfolio(env.ctx, env.superadmin, e.ID, "President")
	require.NoError(t, err)
	_, err = env.elections.AddCandidate(env.ctx, env.superadmin, p.ID, "Ada", "")
	require.NoError(t, err)
	admin := env.seedUser(t, "admin@uni.edu", models.RoleAdmin)
	env.assign(t, admin, e.ID)
	_, err = env.votes.IssueCredentials(env.ctx, env.superadmin, e.ID, []string{"s1"})
	require.NoError(t, err)

	require.NoError(t, env.elections.Delete(env.ctx, env.superadmin, e.ID))

	repos := env.store.Repos()
	_, err = repos.Elections().Get(env.ctx, e.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
	portfolios, err := repos.Ballots().ListPortfolios(env.ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, portfolios)
	_, err = repos.Assignments().GetByAdmin(env.ctx, admin.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)

	// only the terminal entry outlives the election
	assert.Equal(t, []string{models.ActionElectionDeleted}, env.auditActions(t, e.ID))
}

func TestElectionService_Delete_NotDeletable(t *testing.T) {
	env := newTestEnv(t)

	for _, status := range []models.Status{models.StatusApproved, models.StatusLive, models.StatusClosed, models.StatusArchived} {
		e := env.seedElection(t, string(status), status)
		require.ErrorIs(t, env.elections.Delete(env.ctx, env.superadmin, e.ID), common.ErrNotDeletable, status)
	}

	for _, status := range []models.Status{models.StatusDraft, models.StatusPendingApproval} {
		e := env.seedElection(t, "voted", status)
		p, err := env.elections.AddPortfolio(env.ctx, env.superadmin, e.ID, "President")
		require.NoError(t, err)
		c, err := env.elections.AddCandidate(env.ctx, env.superadmin, p.ID, "Ada", "")
		require.NoError(t, err)
		require.NoError(t, env.store.Repos().Votes().Create(env.ctx, &models.Vote{
			Fingerprint: "fp", ElectionID: e.ID, PortfolioID: p.ID, CandidateID: c.ID,
		}))

		require.ErrorIs(t, env.elections.Delete(env.ctx, env.superadmin, e.ID), common.ErrNotDeletable, status)
		_, err = env.store.Repos().Elections().Get(env.ctx, e.ID)
		require.NoError(t, err)
	}
}

func TestElectionService_Delete_RollsBackOnFailure(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusDraft)
	admin := env.seedUser(t, "admin@uni.edu", models.RoleAdmin)
	env.assign(t, admin, e.ID)
	env.store.FailOn("ballots.DeleteByElection", errors.New("connection reset"))

	err := env.elections.Delete(env.ctx, env.superadmin, e.ID)
	require.Error(t, err)

	_, err = env.store.Repos().Assignments().GetByAdmin(env.ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.ActionElectionCreated}, env.auditActions(t, e.ID))
}
