// Package grpc exposes the election services over gRPC. The access token is
// read from the "access_token" metadata key.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/unielect/internal/logging"
	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/dmitrijs2005/unielect/internal/server/services"
	"google.golang.org/grpc"
)

// Services bundles what the handlers call into.
type Services struct {
	Auth        *services.AuthService
	Elections   *services.ElectionService
	Assignments *services.AssignmentService
	Invitations *services.InvitationService
	Votes       *services.VoteService
}

type GRPCServer struct {
	pb.UnimplementedElectionsServer
	address     string
	logger      logging.Logger
	auth        *services.AuthService
	elections   *services.ElectionService
	assignments *services.AssignmentService
	invitations *services.InvitationService
	votes       *services.VoteService
}

var _ pb.ElectionsServer = (*GRPCServer)(nil)

func NewGRPCServer(address string, l logging.Logger, svc Services) *GRPCServer {
	return &GRPCServer{
		address:     address,
		logger:      l.With("module", "grpc_server"),
		auth:        svc.Auth,
		elections:   svc.Elections,
		assignments: svc.Assignments,
		invitations: svc.Invitations,
		votes:       svc.Votes,
	}
}

// NewServer returns a grpc.Server with the service and interceptors
// registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.errorInterceptor, s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterElectionsServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
