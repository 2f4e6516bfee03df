package grpc

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/unielect/internal/common"
	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const actorKey ctxKey = "actor"

var (
	organisers = []models.Role{models.RoleSuperAdmin, models.RoleOrchestrator}
	managers   = []models.Role{models.RoleSuperAdmin, models.RoleOrchestrator, models.RoleAdmin}
	staff      = []models.Role{models.RoleSuperAdmin, models.RoleOrchestrator, models.RoleAdmin, models.RoleApprover}
	deciders   = []models.Role{models.RoleSuperAdmin, models.RoleOrchestrator, models.RoleApprover}
)

// gates lists the roles allowed to call each protected method. Methods not
// listed are public; their token or credential is checked by the service.
var gates = map[string][]models.Role{
	pb.Elections_CreateElection_FullMethodName:    organisers,
	pb.Elections_DeleteElection_FullMethodName:    organisers,
	pb.Elections_ProposeInvite_FullMethodName:     organisers,
	pb.Elections_Reassign_FullMethodName:          organisers,
	pb.Elections_IssueInvitation_FullMethodName:   organisers,
	pb.Elections_UpdateElection_FullMethodName:    managers,
	pb.Elections_RequestApproval_FullMethodName:   managers,
	pb.Elections_AddPortfolio_FullMethodName:      managers,
	pb.Elections_RemovePortfolio_FullMethodName:   managers,
	pb.Elections_AddCandidate_FullMethodName:      managers,
	pb.Elections_RemoveCandidate_FullMethodName:   managers,
	pb.Elections_ReorderCandidates_FullMethodName: managers,
	pb.Elections_IssueCredentials_FullMethodName:  managers,
	pb.Elections_SetStatus_FullMethodName:         deciders,
	pb.Elections_GetElection_FullMethodName:       staff,
	pb.Elections_GetBallot_FullMethodName:         staff,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	allowed, protected := gates[info.FullMethod]
	if !protected {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	actor, err := s.auth.Authenticate(accessToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	if !slices.Contains(allowed, actor.Role) {
		return nil, status.Error(codes.PermissionDenied, "operation not permitted for this role")
	}

	return handler(context.WithValue(ctx, actorKey, actor), req)
}

// actorFrom returns the caller stored by accessTokenInterceptor.
func actorFrom(ctx context.Context) (models.Actor, error) {
	actor, ok := ctx.Value(actorKey).(models.Actor)
	if !ok {
		return models.Actor{}, status.Error(codes.Unauthenticated, "missing token")
	}
	return actor, nil
}

// errorInterceptor turns service errors into gRPC statuses.
func (s *GRPCServer) errorInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	resp, err := handler(ctx, req)
	if err == nil {
		return resp, nil
	}
	if _, ok := status.FromError(err); ok {
		return nil, err
	}
	st := toStatus(err)
	if st.Code() == codes.Internal {
		s.logger.Error(ctx, "request failed", "method", info.FullMethod, "error", err)
	} else {
		s.logger.Debug(ctx, "request rejected", "method", info.FullMethod, "code", st.Code().String(), "error", err)
	}
	return nil, st.Err()
}
