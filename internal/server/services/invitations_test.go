package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationService_Issue(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusDraft)

	inv, err := env.invitations.Issue(env.ctx, env.superadmin, "New.Admin@uni.edu", models.RoleAdmin, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "new.admin@uni.edu", inv.Email)
	assert.Len(t, inv.Token, 2*common.InvitationTokenSize)
	assert.Equal(t, env.now.Add(7*24*time.Hour), inv.ExpiresAt)
	require.NotNil(t, inv.ElectionID)
	assert.Equal(t, e.ID, *inv.ElectionID)

	require.Len(t, env.sink.invitations, 1)
	msg := env.sink.invitations[0]
	assert.Equal(t, "https://vote.example.edu/invitations/accept?token="+inv.Token, msg.Link)
	assert.Equal(t, "User root@uni.edu", msg.InviterName)
	assert.Contains(t, env.auditActions(t, e.ID), models.ActionInvitationIssued)
}

func TestInvitationService_Issue_Validation(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusDraft)
	orchestrator := actorOf(env.seedUser(t, "orc@uni.edu", models.RoleOrchestrator))
	env.seedUser(t, "taken@uni.edu", models.RoleApprover)

	tests := []struct {
		name       string
		actor      models.Actor
		email      string
		role       models.Role
		electionID string
		wantErr    error
	}{
		{"bad email", env.superadmin, "nope", models.RoleAdmin, "", common.ErrValidation},
		{"unknown role", env.superadmin, "a@uni.edu", "DEAN", "", common.ErrValidation},
		{"voter", env.superadmin, "a@uni.edu", models.RoleVoter, "", common.ErrValidation},
		{"orchestrator invites approver", orchestrator, "a@uni.edu", models.RoleApprover, "", common.ErrorForbidden},
		{"admin invites admin", models.Actor{UserID: "x", Role: models.RoleAdmin}, "a@uni.edu", models.RoleAdmin, "", common.ErrorForbidden},
		{"election on non-admin", env.superadmin, "a@uni.edu", models.RoleOrchestrator, e.ID, common.ErrValidation},
		{"unknown election", env.superadmin, "a@uni.edu", models.RoleAdmin, "missing", common.ErrElectionNotFound},
		{"existing account", env.superadmin, "taken@uni.edu", models.RoleOrchestrator, "", common.ErrEmailInUse},
		{"existing non-admin for election", env.superadmin, "taken@uni.edu", models.RoleAdmin, e.ID, common.ErrEmailInUse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.invitations.Issue(env.ctx, tt.actor, tt.email, tt.role, tt.electionID)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, env.sink.invitations)

	_, err := env.invitations.Issue(env.ctx, orchestrator, "a@uni.edu", models.RoleAdmin, e.ID)
	require.NoError(t, err)
}

func TestInvitationService_Issue_RequiresReassignment(t *testing.T) {
	env := newTestEnv(t)
	e1 := env.seedElection(t, "A", models.StatusDraft)
	e2 := env.seedElection(t, "B", models.StatusDraft)
	admin := env.seedUser(t, "admin@uni.edu", models.RoleAdmin)
	env.assign(t, admin, e1.ID)

	_, err := env.invitations.Issue(env.ctx, env.superadmin, admin.Email, models.RoleAdmin, e2.ID)
	require.ErrorIs(t, err, common.ErrRequiresReassignment)

	pending, err := env.store.Repos().Invitations().ListByEmail(env.ctx, admin.Email)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestInvitationService_Issue_PendingThenExpired(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "E1", models.StatusDraft)

	first, err := env.invitations.Issue(env.ctx, env.superadmin, "a@x.edu", models.RoleAdmin, e.ID)
	require.NoError(t, err)

	_, err = env.invitations.Issue(env.ctx, env.superadmin, "a@x.edu", models.RoleAdmin, e.ID)
	require.ErrorIs(t, err, common.ErrPendingInvitation)

	env.now = first.ExpiresAt.Add(time.Second)
	second, err := env.invitations.Issue(env.ctx, env.superadmin, "a@x.edu", models.RoleAdmin, e.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	rows, err := env.store.Repos().Invitations().ListByEmail(env.ctx, "a@x.edu")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, second.ID, rows[0].ID)

	_, err = env.store.Repos().Invitations().GetByToken(env.ctx, first.Token)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInvitationService_Issue_AfterUse(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "E1", models.StatusDraft)

	first, err := env.invitations.Issue(env.ctx, env.superadmin, "a@x.edu", models.RoleAdmin, "")
	require.NoError(t, err)
	admin, err := env.invitations.Accept(env.ctx, first.Token, "Ada Admin", testPassword, models.RoleAdmin)
	require.NoError(t, err)

	second, err := env.invitations.Issue(env.ctx, env.superadmin, "a@x.edu", models.RoleAdmin, e.ID)
	require.NoError(t, err)
	rows, err := env.store.Repos().Invitations().ListByEmail(env.ctx, "a@x.edu")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, second.ID, rows[0].ID)

	// the existing admin account is reused and bound to the election
	again, err := env.invitations.Accept(env.ctx, second.Token, "Ada Admin", testPassword, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)
	a, err := env.store.Repos().Assignments().GetByAdmin(env.ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, a.ElectionID)
}

func TestInvitationService_Issue_DeliveryFailure(t *testing.T) {
	env := newTestEnv(t)
	env.sink.inviteErr = errors.New("smtp: 421 try later")

	_, err := env.invitations.Issue(env.ctx, env.superadmin, "a@x.edu", models.RoleOrchestrator, "")
	require.ErrorIs(t, err, common.ErrDeliveryFailed)

	rows, err := env.store.Repos().Invitations().ListByEmail(env.ctx, "a@x.edu")
	require.NoError(t, err)
	assert.Empty(t, rows)

	// nothing is left to block a retry
	env.sink.inviteErr = nil
	_, err = env.invitations.Issue(env.ctx, env.superadmin, "a@x.edu", models.RoleOrchestrator, "")
	require.NoError(t, err)
}

func TestInvitationService_Issue_DeliveryTimeout(t *testing.T) {
	env := newTestEnv(t)
	env.sink.hang = true

	ctx, cancel := context.WithTimeout(env.ctx, 50*time.Millisecond)
	defer cancel()
	_, err := env.invitations.Issue(ctx, env.superadmin, "a@x.edu", models.RoleOrchestrator, "")
	require.ErrorIs(t, err, common.ErrDeliveryFailed)

	// the cleanup ran even though the request deadline had passed
	rows, err := env.store.Repos().Invitations().ListByEmail(env.ctx, "a@x.edu")
	require.NoError(t, err)
	assert.Empty(t, rows)

	env.sink.hang = false
	inv, err := env.invitations.Issue(env.ctx, env.superadmin, "a@x.edu", models.RoleOrchestrator, "")
	require.NoError(t, err, "retry after a timed out delivery")
	assert.NotEmpty(t, inv.Token)
}

func TestInvitationService_Accept_Admin(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusDraft)
	inv, err := env.invitations.Issue(env.ctx, env.superadmin, "admin@uni.edu", models.RoleAdmin, e.ID)
	require.NoError(t, err)

	user, err := env.invitations.Accept(env.ctx, inv.Token, "  Ada Admin ", testPassword, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Ada Admin", user.FullName)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEqual(t, testPassword, user.PasswordHash)

	a, err := env.store.Repos().Assignments().GetByAdmin(env.ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, a.ElectionID)
	assert.Equal(t, env.superadmin.UserID, a.AssignerID)

	stored, err := env.store.Repos().Invitations().GetByToken(env.ctx, inv.Token)
	require.NoError(t, err)
	assert.True(t, stored.Used)

	actions := env.auditActions(t, e.ID)
	assert.Contains(t, actions, models.ActionUserCreated)
	assert.Contains(t, actions, models.ActionInvitationAccepted)

	_, err = env.invitations.Accept(env.ctx, inv.Token, "Ada Admin", testPassword, models.RoleAdmin)
	require.ErrorIs(t, err, common.ErrTokenUsed)
}

func TestInvitationService_Accept_Errors(t *testing.T) {
	env := newTestEnv(t)
	inv, err := env.invitations.Issue(env.ctx, env.superadmin, "orc@uni.edu", models.RoleOrchestrator, "")
	require.NoError(t, err)

	_, err = env.invitations.Accept(env.ctx, "no-such-token", "Orc", testPassword, "")
	require.ErrorIs(t, err, common.ErrTokenNotFound)

	_, err = env.invitations.Accept(env.ctx, inv.Token, "", testPassword, "")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = env.invitations.Accept(env.ctx, inv.Token, "Orc", "short", "")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = env.invitations.Accept(env.ctx, inv.Token, "Orc", testPassword, models.RoleApprover)
	require.ErrorIs(t, err, common.ErrValidation)

	env.now = inv.ExpiresAt
	_, err = env.invitations.Accept(env.ctx, inv.Token, "Orc", testPassword, "")
	require.ErrorIs(t, err, common.ErrTokenExpired)

	_, err = env.store.Repos().Users().GetByEmail(env.ctx, "orc@uni.edu")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInvitationService_Accept_IsAtomic(t *testing.T) {
	env := newTestEnv(t)
	e := env.seedElection(t, "SRC", models.StatusDraft)
	inv, err := env.invitations.Issue(env.ctx, env.superadmin, "admin@uni.edu", models.RoleAdmin, e.ID)
	require.NoError(t, err)

	env.store.FailOn("invitations.MarkUsed", errors.New("connection lost"))
	_, err = env.invitations.Accept(env.ctx, inv.Token, "Ada", testPassword, models.RoleAdmin)
	require.Error(t, err)

	_, err = env.store.Repos().Users().GetByEmail(env.ctx, "admin@uni.edu")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assignments, err := env.store.Repos().Assignments().ListByElection(env.ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, assignments)

	env.store.FailOn("invitations.MarkUsed", nil)
	_, err = env.invitations.Accept(env.ctx, inv.Token, "Ada", testPassword, models.RoleAdmin)
	require.NoError(t, err)
}

func TestInvitationService_Accept_AuditFailureIsSwallowed(t *testing.T) {
	env := newTestEnv(t)
	inv, err := env.invitations.Issue(env.ctx, env.superadmin, "orc@uni.edu", models.RoleOrchestrator, "")
	require.NoError(t, err)

	env.store.FailOn("audit.Append", errors.New("audit table locked"))
	user, err := env.invitations.Accept(env.ctx, inv.Token, "Orc", testPassword, "")
	require.NoError(t, err)

	_, err = env.store.Repos().Users().GetByID(env.ctx, user.ID)
	require.NoError(t, err)
}

func TestInvitationService_Accept_SingletonCollapse(t *testing.T) {
	env := newTestEnv(t)
	previous := env.superadmin.UserID

	inv, err := env.invitations.Issue(env.ctx, env.superadmin, "next@uni.edu", models.RoleSuperAdmin, "")
	require.NoError(t, err)
	user, err := env.invitations.Accept(env.ctx, inv.Token, "Next Root", testPassword, models.RoleSuperAdmin)
	require.NoError(t, err)

	holders, err := env.store.Repos().Users().ListByRole(env.ctx, models.RoleSuperAdmin, models.UserActive)
	require.NoError(t, err)
	require.Len(t, holders, 1)
	assert.Equal(t, user.ID, holders[0].ID)

	_, err = env.store.Repos().Users().GetByID(env.ctx, previous)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInvitationService_Accept_ApproverCollapseKeepsOthers(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "old-approver@uni.edu", models.RoleApprover)
	orc := env.seedUser(t, "orc@uni.edu", models.RoleOrchestrator)

	inv, err := env.invitations.Issue(env.ctx, env.superadmin, "approver@uni.edu", models.RoleApprover, "")
	require.NoError(t, err)
	_, err = env.invitations.Accept(env.ctx, inv.Token, "New Approver", testPassword, "")
	require.NoError(t, err)

	approvers, err := env.store.Repos().Users().ListByRole(env.ctx, models.RoleApprover, models.UserActive)
	require.NoError(t, err)
	require.Len(t, approvers, 1)
	assert.Equal(t, "approver@uni.edu", approvers[0].Email)

	_, err = env.store.Repos().Users().GetByID(env.ctx, orc.ID)
	require.NoError(t, err)
	_, err = env.store.Repos().Users().GetByID(env.ctx, env.superadmin.UserID)
	require.NoError(t, err)
}

func TestInvitationService_Bootstrap(t *testing.T) {
	env := newTestEnv(t)

	inv, err := env.invitations.Bootstrap(env.ctx, "ignored@uni.edu")
	require.NoError(t, err)
	assert.Nil(t, inv, "a superadmin already exists")

	_, err = env.store.Repos().Users().DeleteByRole(env.ctx, models.RoleSuperAdmin)
	require.NoError(t, err)

	inv, err = env.invitations.Bootstrap(env.ctx, "Root@Uni.edu")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, models.RoleSuperAdmin, inv.Role)
	assert.Equal(t, models.SystemActor.UserID, inv.IssuerID)
	require.Len(t, env.sink.invitations, 1)
	assert.True(t, strings.HasSuffix(env.sink.invitations[0].Link, inv.Token))

	again, err := env.invitations.Bootstrap(env.ctx, "root@uni.edu")
	require.NoError(t, err)
	assert.Nil(t, again)
	assert.Len(t, env.sink.invitations, 1)

	none, err := env.invitations.Bootstrap(env.ctx, "")
	require.NoError(t, err)
	assert.Nil(t, none)
}
