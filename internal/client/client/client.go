package client

import (
	"context"

	pb "github.com/dmitrijs2005/unielect/internal/proto"
)

type Client interface {
	Close() error
	SetAccessToken(token string)
	Login(ctx context.Context, email, password string) (*pb.LoginResponse, error)

	CreateElection(ctx context.Context, req *pb.CreateElectionRequest) (*pb.Election, error)
	GetElection(ctx context.Context, electionID string) (*pb.Election, error)
	UpdateElection(ctx context.Context, req *pb.UpdateElectionRequest) (*pb.Election, error)
	RequestApproval(ctx context.Context, electionID string) (*pb.Election, error)
	SetStatus(ctx context.Context, req *pb.SetStatusRequest) (*pb.Election, error)
	DeleteElection(ctx context.Context, electionID string) error

	AddPortfolio(ctx context.Context, electionID, title string) (*pb.Portfolio, error)
	AddCandidate(ctx context.Context, req *pb.AddCandidateRequest) (*pb.Candidate, error)
	GetBallot(ctx context.Context, electionID string) (*pb.BallotResponse, error)

	ProposeInvite(ctx context.Context, email, electionID string) (*pb.ProposeInviteResponse, error)
	Reassign(ctx context.Context, email, electionID string) (*pb.AssignmentResponse, error)
	IssueInvitation(ctx context.Context, req *pb.IssueInvitationRequest) (*pb.IssueInvitationResponse, error)
	AcceptInvitation(ctx context.Context, req *pb.AcceptInvitationRequest) (*pb.AcceptInvitationResponse, error)

	IssueCredentials(ctx context.Context, electionID string, identities []string) ([]*pb.IssuedCredential, error)
	InitiateVerification(ctx context.Context, credential string) (*pb.VerifyResponse, error)
	CastBallot(ctx context.Context, req *pb.CastBallotRequest) (*pb.VoteReceipt, error)
}
