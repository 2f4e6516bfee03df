package cli

import (
	"context"
	"testing"

	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvite_NonAdminSkipsProposal(t *testing.T) {
	fc := &fakeClient{}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.Invite(context.Background(), []string{"kofi@uni.edu", "approver"}))

	require.NotNil(t, fc.lastInvite)
	assert.Equal(t, "APPROVER", fc.lastInvite.Role)
	assert.Empty(t, fc.lastInvite.ElectionId)
	assert.Contains(t, out.String(), "Invitation sent to kofi@uni.edu")
}

func TestInvite_AdminExistingAccount(t *testing.T) {
	fc := &fakeClient{proposal: &pb.ProposeInviteResponse{ExistingAccount: true}}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.Invite(context.Background(), []string{"ada@uni.edu", "ADMIN", "e-1"}))

	assert.Equal(t, "e-1", fc.lastInvite.ElectionId)
	assert.Contains(t, out.String(), "already has an admin account")
}

func TestInvite_AdminReassignConfirmed(t *testing.T) {
	fc := &fakeClient{proposal: &pb.ProposeInviteResponse{
		RequiresReassignment: true,
		Current:              &pb.Election{Id: "e-old", Title: "Chess Club"},
	}}
	a, out := newTestApp(fc, "yes\n")

	require.NoError(t, a.Invite(context.Background(), []string{"ada@uni.edu", "ADMIN", "e-1"}))

	assert.Nil(t, fc.lastInvite, "no invitation when the admin is moved")
	assert.Equal(t, []string{"ada@uni.edu->e-1"}, fc.reassigned)
	assert.Contains(t, out.String(), `already manages "Chess Club"`)
}

func TestInvite_AdminReassignDeclined(t *testing.T) {
	fc := &fakeClient{proposal: &pb.ProposeInviteResponse{RequiresReassignment: true}}
	a, out := newTestApp(fc, "no\n")

	require.NoError(t, a.Invite(context.Background(), []string{"ada@uni.edu", "ADMIN", "e-1"}))

	assert.Nil(t, fc.lastInvite)
	assert.Empty(t, fc.reassigned)
	assert.Contains(t, out.String(), "Cancelled")
}

func TestReassign(t *testing.T) {
	fc := &fakeClient{}
	a, out := newTestApp(fc, "e-2\n")

	require.NoError(t, a.Reassign(context.Background(), []string{"ada@uni.edu"}))

	assert.Equal(t, []string{"ada@uni.edu->e-2"}, fc.reassigned)
	assert.Contains(t, out.String(), "ada@uni.edu now manages election e-2")
}
