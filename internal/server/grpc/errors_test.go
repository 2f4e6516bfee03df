package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/unielect/internal/common"
	"google.golang.org/grpc/codes"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"validation", common.NewValidationError("email", "is required"), codes.InvalidArgument, "invalid email: is required"},
		{"wrapped conflict", fmt.Errorf("cast: %w", common.ErrConflict), codes.AlreadyExists, common.ErrConflict.Error()},
		{"expired invitation", common.ErrTokenExpired, codes.FailedPrecondition, "invitation has expired"},
		{"unknown credential", common.ErrCredentialNotFound, codes.NotFound, common.ErrCredentialNotFound.Error()},
		{"forbidden", common.ErrorForbidden, codes.PermissionDenied, common.ErrorForbidden.Error()},
		{"reassignment", &common.ReassignmentRequiredError{ElectionTitle: "SRC", ElectionStatus: "LIVE"}, codes.FailedPrecondition, `admin is currently assigned to "SRC" (LIVE)`},
		{"delivery", common.ErrDeliveryFailed, codes.Unavailable, common.ErrDeliveryFailed.Error()},
		{"storage", fmt.Errorf("db error: %w", errors.New("pq: relation votes does not exist")), codes.Internal, "internal error"},
		{"deadline", fmt.Errorf("load: %w", context.DeadlineExceeded), codes.DeadlineExceeded, "request timed out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := toStatus(tt.err)
			if st.Code() != tt.code {
				t.Fatalf("code = %v, want %v", st.Code(), tt.code)
			}
			if st.Message() != tt.msg {
				t.Fatalf("message = %q, want %q", st.Message(), tt.msg)
			}
		})
	}
}

func TestToStatus_EveryVisibleErrorHasACode(t *testing.T) {
	for _, c := range codeOf {
		if toStatus(c.err).Code() == codes.Internal {
			t.Fatalf("%v maps to Internal", c.err)
		}
	}
}
