package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dmitrijs2005/unielect/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	session, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Logged in", "user_id", session.User.ID, "role", session.User.Role)
	return &pb.LoginResponse{
		AccessToken: session.AccessToken,
		ExpiresAt:   timestamppb.New(session.ExpiresAt),
		UserId:      session.User.ID,
		Role:        string(session.User.Role),
	}, nil
}

func (s *GRPCServer) CreateElection(ctx context.Context, req *pb.CreateElectionRequest) (*pb.Election, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.elections.Create(ctx, actor, services.ElectionInput{
		Title:      req.Title,
		Scope:      models.Scope(req.Scope),
		Department: req.Department,
		StartTime:  fromTimestamp(req.StartTime),
		EndTime:    fromTimestamp(req.EndTime),
	})
	if err != nil {
		return nil, err
	}
	return toElection(e), nil
}

func (s *GRPCServer) GetElection(ctx context.Context, req *pb.ElectionRequest) (*pb.Election, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.elections.Get(ctx, actor, req.ElectionId)
	if err != nil {
		return nil, err
	}
	return toElection(e), nil
}

func (s *GRPCServer) UpdateElection(ctx context.Context, req *pb.UpdateElectionRequest) (*pb.Election, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	patch := services.ElectionPatch{
		Title:      req.Title,
		Department: req.Department,
		StartTime:  optionalTime(req.StartTime),
		EndTime:    optionalTime(req.EndTime),
	}
	if req.Scope != nil {
		scope := models.Scope(*req.Scope)
		patch.Scope = &scope
	}
	e, err := s.elections.Update(ctx, actor, req.ElectionId, patch)
	if err != nil {
		return nil, err
	}
	return toElection(e), nil
}

func (s *GRPCServer) RequestApproval(ctx context.Context, req *pb.ElectionRequest) (*pb.Election, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.elections.RequestApproval(ctx, actor, req.ElectionId)
	if err != nil {
		return nil, err
	}
	return toElection(e), nil
}

func (s *GRPCServer) SetStatus(ctx context.Context, req *pb.SetStatusRequest) (*pb.Election, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.elections.SetStatus(ctx, actor, req.ElectionId, services.StatusChange{
		Status:    models.Status(req.Status),
		StartTime: optionalTime(req.StartTime),
		EndTime:   optionalTime(req.EndTime),
	})
	if err != nil {
		return nil, err
	}
	return toElection(e), nil
}

func (s *GRPCServer) DeleteElection(ctx context.Context, req *pb.ElectionRequest) (*pb.Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.elections.Delete(ctx, actor, req.ElectionId); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) AddPortfolio(ctx context.Context, req *pb.AddPortfolioRequest) (*pb.Portfolio, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.elections.AddPortfolio(ctx, actor, req.ElectionId, req.Title)
	if err != nil {
		return nil, err
	}
	return toPortfolio(p), nil
}

func (s *GRPCServer) RemovePortfolio(ctx context.Context, req *pb.RemoveRequest) (*pb.Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.elections.RemovePortfolio(ctx, actor, req.Id); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) AddCandidate(ctx context.Context, req *pb.AddCandidateRequest) (*pb.Candidate, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.elections.AddCandidate(ctx, actor, req.PortfolioId, req.Name, req.Manifesto)
	if err != nil {
		return nil, err
	}
	return toCandidate(c), nil
}

func (s *GRPCServer) RemoveCandidate(ctx context.Context, req *pb.RemoveRequest) (*pb.Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.elections.RemoveCandidate(ctx, actor, req.Id); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ReorderCandidates(ctx context.Context, req *pb.ReorderCandidatesRequest) (*pb.Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.elections.ReorderCandidates(ctx, actor, req.PortfolioId, req.CandidateIds); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetBallot(ctx context.Context, req *pb.ElectionRequest) (*pb.BallotResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	// the scope check lives on Get
	if _, err := s.elections.Get(ctx, actor, req.ElectionId); err != nil {
		return nil, err
	}
	ballot, err := s.elections.Ballot(ctx, req.ElectionId)
	if err != nil {
		return nil, err
	}
	return &pb.BallotResponse{ElectionId: req.ElectionId, Portfolios: toBallot(ballot)}, nil
}

func (s *GRPCServer) ProposeInvite(ctx context.Context, req *pb.ProposeInviteRequest) (*pb.ProposeInviteResponse, error) {
	p, err := s.assignments.ProposeInvite(ctx, req.Email, req.ElectionId)
	if err != nil {
		return nil, err
	}
	resp := &pb.ProposeInviteResponse{
		RequiresReassignment: p.Kind == services.ProposeReassign,
		ExistingAccount:      p.ExistingAdmin != nil || p.Current != nil,
	}
	if p.Current != nil {
		resp.Current = toElection(p.Current)
	}
	return resp, nil
}

func (s *GRPCServer) Reassign(ctx context.Context, req *pb.ReassignRequest) (*pb.AssignmentResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.assignments.Reassign(ctx, actor, req.Email, req.ElectionId)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Admin reassigned", "admin_id", a.AdminID, "election_id", a.ElectionID)
	return &pb.AssignmentResponse{AdminId: a.AdminID, ElectionId: a.ElectionID}, nil
}

func (s *GRPCServer) IssueInvitation(ctx context.Context, req *pb.IssueInvitationRequest) (*pb.IssueInvitationResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	inv, err := s.invitations.Issue(ctx, actor, req.Email, models.Role(req.Role), req.ElectionId)
	if err != nil {
		return nil, err
	}
	return &pb.IssueInvitationResponse{InvitationId: inv.ID, ExpiresAt: timestamppb.New(inv.ExpiresAt)}, nil
}

func (s *GRPCServer) AcceptInvitation(ctx context.Context, req *pb.AcceptInvitationRequest) (*pb.AcceptInvitationResponse, error) {
	u, err := s.invitations.Accept(ctx, req.Token, req.FullName, req.Password, models.Role(req.Role))
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Invitation accepted", "user_id", u.ID, "role", u.Role)
	return &pb.AcceptInvitationResponse{UserId: u.ID, Email: u.Email, Role: string(u.Role)}, nil
}

func (s *GRPCServer) IssueCredentials(ctx context.Context, req *pb.IssueCredentialsRequest) (*pb.IssueCredentialsResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	issued, err := s.votes.IssueCredentials(ctx, actor, req.ElectionId, req.VoterIdentities)
	if err != nil {
		return nil, err
	}
	resp := &pb.IssueCredentialsResponse{Credentials: make([]*pb.IssuedCredential, 0, len(issued))}
	for _, c := range issued {
		resp.Credentials = append(resp.Credentials, &pb.IssuedCredential{VoterIdentity: c.VoterIdentity, Credential: c.Credential})
	}
	return resp, nil
}

func (s *GRPCServer) InitiateVerification(ctx context.Context, req *pb.VerifyRequest) (*pb.VerifyResponse, error) {
	session, err := s.votes.InitiateVerification(ctx, req.Credential)
	if err != nil {
		return nil, err
	}
	return &pb.VerifyResponse{
		ElectionId:    session.ElectionID,
		ElectionTitle: session.ElectionTitle,
		VoterIdentity: session.VoterIdentity,
		EndsAt:        timestamppb.New(session.EndsAt),
		Portfolios:    toBallot(session.Ballot),
	}, nil
}

func (s *GRPCServer) CastBallot(ctx context.Context, req *pb.CastBallotRequest) (*pb.VoteReceipt, error) {
	r, err := s.votes.CastBallot(ctx, req.Credential, req.ElectionId, toSelections(req.Selections))
	if err != nil {
		return nil, err
	}
	return toReceipt(r), nil
}

func (s *GRPCServer) CastVote(ctx context.Context, req *pb.CastVoteRequest) (*pb.VoteReceipt, error) {
	r, err := s.votes.CastVote(ctx, req.Credential, req.ElectionId, req.PortfolioId, req.CandidateId)
	if err != nil {
		return nil, err
	}
	return toReceipt(r), nil
}
