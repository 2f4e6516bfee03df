package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const defaultTimeout = 10 * time.Second

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.ElectionsClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects to endpointURL without TLS. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewElectionsClient(conn)
	return nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*pb.LoginResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}

	s.SetAccessToken(resp.AccessToken)
	return resp, nil
}

func (s *GRPCClient) CreateElection(ctx context.Context, req *pb.CreateElectionRequest) (*pb.Election, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateElection(ctx, req)
	return resp, mapError(err)
}

func (s *GRPCClient) GetElection(ctx context.Context, electionID string) (*pb.Election, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetElection(ctx, &pb.ElectionRequest{ElectionId: electionID})
	return resp, mapError(err)
}

func (s *GRPCClient) UpdateElection(ctx context.Context, req *pb.UpdateElectionRequest) (*pb.Election, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpdateElection(ctx, req)
	return resp, mapError(err)
}

func (s *GRPCClient) RequestApproval(ctx context.Context, electionID string) (*pb.Election, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.RequestApproval(ctx, &pb.ElectionRequest{ElectionId: electionID})
	return resp, mapError(err)
}

func (s *GRPCClient) SetStatus(ctx context.Context, req *pb.SetStatusRequest) (*pb.Election, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.SetStatus(ctx, req)
	return resp, mapError(err)
}

func (s *GRPCClient) DeleteElection(ctx context.Context, electionID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.DeleteElection(ctx, &pb.ElectionRequest{ElectionId: electionID})
	return mapError(err)
}

func (s *GRPCClient) AddPortfolio(ctx context.Context, electionID, title string) (*pb.Portfolio, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.AddPortfolio(ctx, &pb.AddPortfolioRequest{ElectionId: electionID, Title: title})
	return resp, mapError(err)
}

func (s *GRPCClient) AddCandidate(ctx context.Context, req *pb.AddCandidateRequest) (*pb.Candidate, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.AddCandidate(ctx, req)
	return resp, mapError(err)
}

func (s *GRPCClient) GetBallot(ctx context.Context, electionID string) (*pb.BallotResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetBallot(ctx, &pb.ElectionRequest{ElectionId: electionID})
	return resp, mapError(err)
}

func (s *GRPCClient) ProposeInvite(ctx context.Context, email, electionID string) (*pb.ProposeInviteResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ProposeInvite(ctx, &pb.ProposeInviteRequest{Email: email, ElectionId: electionID})
	return resp, mapError(err)
}

func (s *GRPCClient) Reassign(ctx context.Context, email, electionID string) (*pb.AssignmentResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Reassign(ctx, &pb.ReassignRequest{Email: email, ElectionId: electionID})
	return resp, mapError(err)
}

func (s *GRPCClient) IssueInvitation(ctx context.Context, req *pb.IssueInvitationRequest) (*pb.IssueInvitationResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.IssueInvitation(ctx, req)
	return resp, mapError(err)
}

func (s *GRPCClient) AcceptInvitation(ctx context.Context, req *pb.AcceptInvitationRequest) (*pb.AcceptInvitationResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.AcceptInvitation(ctx, req)
	return resp, mapError(err)
}

func (s *GRPCClient) IssueCredentials(ctx context.Context, electionID string, identities []string) ([]*pb.IssuedCredential, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.IssueCredentials(ctx, &pb.IssueCredentialsRequest{ElectionId: electionID, VoterIdentities: identities})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Credentials, nil
}

func (s *GRPCClient) InitiateVerification(ctx context.Context, credential string) (*pb.VerifyResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.InitiateVerification(ctx, &pb.VerifyRequest{Credential: credential})
	return resp, mapError(err)
}

func (s *GRPCClient) CastBallot(ctx context.Context, req *pb.CastBallotRequest) (*pb.VoteReceipt, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CastBallot(ctx, req)
	return resp, mapError(err)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrUnavailable
		}
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return &RemoteError{Code: st.Code(), Message: st.Message()}
	}
}
