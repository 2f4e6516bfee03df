package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/unielect/internal/client/client"
	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fakeClient implements the calls a test needs; the rest panic.
type fakeClient struct {
	client.Client

	token string

	loginResp *pb.LoginResponse
	loginErr  error

	election *pb.Election
	ballot   *pb.BallotResponse
	lastSet  *pb.SetStatusRequest
	lastUpd  *pb.UpdateElectionRequest
	deleted  []string

	proposal    *pb.ProposeInviteResponse
	lastInvite  *pb.IssueInvitationRequest
	reassigned  []string
	lastAccept  *pb.AcceptInvitationRequest
	credentials []*pb.IssuedCredential
	lastIds     []string

	session   *pb.VerifyResponse
	verifyErr error
	lastCast  *pb.CastBallotRequest
	castErr   error
}

func (f *fakeClient) SetAccessToken(token string) { f.token = token }

func (f *fakeClient) Login(_ context.Context, email, password string) (*pb.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.token = f.loginResp.AccessToken
	return f.loginResp, nil
}

func (f *fakeClient) GetElection(_ context.Context, id string) (*pb.Election, error) {
	return f.election, nil
}

func (f *fakeClient) UpdateElection(_ context.Context, req *pb.UpdateElectionRequest) (*pb.Election, error) {
	f.lastUpd = req
	return f.election, nil
}

func (f *fakeClient) SetStatus(_ context.Context, req *pb.SetStatusRequest) (*pb.Election, error) {
	f.lastSet = req
	e := proto.Clone(f.election).(*pb.Election)
	e.Status = req.Status
	return e, nil
}

func (f *fakeClient) DeleteElection(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) GetBallot(_ context.Context, id string) (*pb.BallotResponse, error) {
	return f.ballot, nil
}

func (f *fakeClient) ProposeInvite(_ context.Context, email, electionID string) (*pb.ProposeInviteResponse, error) {
	return f.proposal, nil
}

func (f *fakeClient) Reassign(_ context.Context, email, electionID string) (*pb.AssignmentResponse, error) {
	f.reassigned = append(f.reassigned, email+"->"+electionID)
	return &pb.AssignmentResponse{ElectionId: electionID}, nil
}

func (f *fakeClient) IssueInvitation(_ context.Context, req *pb.IssueInvitationRequest) (*pb.IssueInvitationResponse, error) {
	f.lastInvite = req
	return &pb.IssueInvitationResponse{InvitationId: "inv-1", ExpiresAt: timestamppb.New(time.Now().Add(7 * 24 * time.Hour))}, nil
}

func (f *fakeClient) AcceptInvitation(_ context.Context, req *pb.AcceptInvitationRequest) (*pb.AcceptInvitationResponse, error) {
	f.lastAccept = req
	return &pb.AcceptInvitationResponse{Email: "ada@uni.edu", Role: "ADMIN"}, nil
}

func (f *fakeClient) IssueCredentials(_ context.Context, electionID string, identities []string) ([]*pb.IssuedCredential, error) {
	f.lastIds = identities
	return f.credentials, nil
}

func (f *fakeClient) InitiateVerification(_ context.Context, credential string) (*pb.VerifyResponse, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.session, nil
}

func (f *fakeClient) CastBallot(_ context.Context, req *pb.CastBallotRequest) (*pb.VoteReceipt, error) {
	f.lastCast = req
	if f.castErr != nil {
		return nil, f.castErr
	}
	return &pb.VoteReceipt{ReceiptId: "r-1", ElectionId: req.ElectionId, Portfolios: int32(len(req.Selections))}, nil
}

// memSession is an in-memory session.Repository.
type memSession map[string]string

func (m memSession) Get(_ context.Context, key string) (string, error) { return m[key], nil }
func (m memSession) Set(_ context.Context, key, value string) error   { m[key] = value; return nil }
func (m memSession) Delete(_ context.Context, key string) error       { delete(m, key); return nil }
func (m memSession) Clear(_ context.Context) error {
	for k := range m {
		delete(m, k)
	}
	return nil
}
func (m memSession) List(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newTestApp(fc *fakeClient, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		client:  fc,
		session: memSession{},
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
		now:     func() time.Time { return testNow },
	}, out
}

// stubPasswords makes getPassword return the given answers in order.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(string, io.Writer) ([]byte, error) {
		if len(answers) == 0 {
			return nil, io.EOF
		}
		pw := []byte(answers[0])
		answers = answers[1:]
		return pw, nil
	}
	t.Cleanup(func() { getPassword = orig })
}
