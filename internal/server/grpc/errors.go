package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/unielect/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var codeOf = []struct {
	err  error
	code codes.Code
}{
	{common.ErrValidation, codes.InvalidArgument},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrorForbidden, codes.PermissionDenied},

	{common.ErrElectionNotFound, codes.NotFound},
	{common.ErrAdminNotFound, codes.NotFound},
	{common.ErrTokenNotFound, codes.NotFound},
	{common.ErrCredentialNotFound, codes.NotFound},

	{common.ErrEmailInUse, codes.AlreadyExists},
	{common.ErrAlreadyAssigned, codes.AlreadyExists},
	{common.ErrPendingInvitation, codes.AlreadyExists},
	{common.ErrConflict, codes.AlreadyExists},

	{common.ErrInvalidTransition, codes.FailedPrecondition},
	{common.ErrNotDeletable, codes.FailedPrecondition},
	{common.ErrElectionLocked, codes.FailedPrecondition},
	{common.ErrRequiresReassignment, codes.FailedPrecondition},
	{common.ErrTokenUsed, codes.FailedPrecondition},
	{common.ErrTokenExpired, codes.FailedPrecondition},
	{common.ErrCredentialExpired, codes.FailedPrecondition},
	{common.ErrCredentialUsed, codes.FailedPrecondition},
	{common.ErrCredentialNotVerified, codes.FailedPrecondition},
	{common.ErrElectionNotStarted, codes.FailedPrecondition},
	{common.ErrElectionEnded, codes.FailedPrecondition},

	{common.ErrDeliveryFailed, codes.Unavailable},
}

// toStatus maps err to a status whose message is safe to show the caller.
func toStatus(err error) *status.Status {
	switch {
	case errors.Is(err, context.Canceled):
		return status.New(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.New(codes.DeadlineExceeded, "request timed out")
	}
	for _, c := range codeOf {
		if errors.Is(err, c.err) {
			return status.New(c.code, common.UserMessage(err))
		}
	}
	return status.New(codes.Internal, common.ErrorInternal.Error())
}
