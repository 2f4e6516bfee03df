package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func liveElection() *pb.Election {
	return &pb.Election{
		Id:         "e-1",
		Title:      "Student Union 2026",
		Status:     "LIVE",
		Scope:      "DEPARTMENT",
		Department: "Physics",
		StartTime:  timestamppb.New(testNow.Add(-time.Hour)),
		EndTime:    timestamppb.New(testNow.Add(24 * time.Hour)),
	}
}

func TestShowElection(t *testing.T) {
	a, out := newTestApp(&fakeClient{election: liveElection()}, "")

	require.NoError(t, a.ShowElection(context.Background(), []string{"e-1"}))

	s := out.String()
	assert.Contains(t, s, "e-1  Student Union 2026  [LIVE]")
	assert.Contains(t, s, "scope: DEPARTMENT / Physics")
}

func TestExtendElection_SendsOnlyEndTime(t *testing.T) {
	fc := &fakeClient{election: liveElection()}
	a, _ := newTestApp(fc, "")

	require.NoError(t, a.ExtendElection(context.Background(), []string{"e-1", "2026-03-05", "18:00"}))

	require.NotNil(t, fc.lastUpd)
	assert.Equal(t, "e-1", fc.lastUpd.ElectionId)
	require.NotNil(t, fc.lastUpd.EndTime)
	assert.True(t, time.Date(2026, 3, 5, 18, 0, 0, 0, time.Local).Equal(fc.lastUpd.EndTime.AsTime()))
	assert.Nil(t, fc.lastUpd.Title)
	assert.Nil(t, fc.lastUpd.StartTime)
}

func TestSetStatus_UppercasesStatus(t *testing.T) {
	fc := &fakeClient{election: liveElection()}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.SetStatus(context.Background(), []string{"e-1", "closed"}))

	assert.Equal(t, "CLOSED", fc.lastSet.Status)
	assert.Contains(t, out.String(), "Election e-1 is now CLOSED")
}

func TestDeleteElection_NeedsConfirmation(t *testing.T) {
	fc := &fakeClient{}
	a, out := newTestApp(fc, "no\n")
	require.NoError(t, a.DeleteElection(context.Background(), []string{"e-1"}))
	assert.Empty(t, fc.deleted)
	assert.Contains(t, out.String(), "Cancelled")

	a, _ = newTestApp(fc, "yes\n")
	require.NoError(t, a.DeleteElection(context.Background(), []string{"e-1"}))
	assert.Equal(t, []string{"e-1"}, fc.deleted)
}

func TestBallot_PrintsCandidatesInOrder(t *testing.T) {
	fc := &fakeClient{ballot: &pb.BallotResponse{Portfolios: []*pb.Portfolio{
		{Id: "p-1", Title: "President", Position: 1, Candidates: []*pb.Candidate{{Id: "c-1", Name: "Ada"}, {Id: "c-2", Name: "Grace"}}},
	}}}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.Ballot(context.Background(), []string{"e-1"}))

	s := out.String()
	assert.Contains(t, s, "1. President  (p-1)")
	assert.Less(t, strings.Index(s, "[1] Ada"), strings.Index(s, "[2] Grace"))
}

func TestBallot_Empty(t *testing.T) {
	a, out := newTestApp(&fakeClient{ballot: &pb.BallotResponse{}}, "")
	require.NoError(t, a.Ballot(context.Background(), []string{"e-1"}))
	assert.Contains(t, out.String(), "The ballot is empty")
}
