// Package common defines the sentinel error taxonomy shared by the
// repositories, the services and the transport layer. Callers should use
// errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound         = errors.New("not found")
	ErrUniqueViolation    = errors.New("unique constraint violation")
	ErrReferenceViolation = errors.New("foreign key violation")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("operation not permitted for this role")

	// Auth errors (invalid or malformed access token).
	ErrInvalidToken = errors.New("invalid token")

	// Input validation.
	ErrValidation = errors.New("validation error")

	// Election lifecycle errors.
	ErrElectionNotFound  = errors.New("election not found")
	ErrInvalidTransition = errors.New("election status change is not allowed")
	ErrNotDeletable      = errors.New("election can only be deleted while in draft or pending approval and without votes")
	ErrElectionLocked    = errors.New("election can no longer be modified")

	// Assignment errors.
	ErrEmailInUse            = errors.New("email is already used by another account")
	ErrAlreadyAssigned       = errors.New("admin is already assigned to this election")
	ErrAdminNotFound         = errors.New("admin account not found")
	ErrRequiresReassignment  = errors.New("admin is assigned to another election and must be reassigned")
	ErrPendingInvitation     = errors.New("a pending invitation already exists for this email")
	ErrTokenNotFound         = errors.New("invitation not found")
	ErrTokenExpired          = errors.New("invitation has expired")
	ErrTokenUsed             = errors.New("invitation has already been used")
	ErrDeliveryFailed        = errors.New("invitation email could not be delivered")
	ErrCredentialNotFound    = errors.New("voter credential not found")
	ErrCredentialExpired     = errors.New("voter credential has expired")
	ErrCredentialUsed        = errors.New("voter credential has already been used")
	ErrCredentialNotVerified = errors.New("voter credential must be verified before voting")
	ErrElectionNotStarted    = errors.New("election has not started yet")
	ErrElectionEnded         = errors.New("election has ended")
	ErrConflict              = errors.New("a vote has already been cast for this portfolio")
)

// ValidationError reports a malformed input field. It matches ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError is a shorthand for &ValidationError{...}.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ReassignmentRequiredError carries the admin's current assignment so the
// caller can ask for explicit confirmation. It matches ErrRequiresReassignment.
type ReassignmentRequiredError struct {
	ElectionID     string
	ElectionTitle  string
	ElectionStatus string
}

func (e *ReassignmentRequiredError) Error() string {
	return fmt.Sprintf("admin is currently assigned to %q (%s)", e.ElectionTitle, e.ElectionStatus)
}

func (e *ReassignmentRequiredError) Is(target error) bool {
	return target == ErrRequiresReassignment
}

// caller-visible kinds, in match order
var visible = []error{
	ErrValidation,
	ErrorUnauthorized, ErrorForbidden, ErrInvalidToken,
	ErrElectionNotFound, ErrInvalidTransition, ErrNotDeletable, ErrElectionLocked,
	ErrEmailInUse, ErrAlreadyAssigned, ErrAdminNotFound, ErrRequiresReassignment,
	ErrPendingInvitation, ErrTokenNotFound, ErrTokenExpired, ErrTokenUsed, ErrDeliveryFailed,
	ErrCredentialNotFound, ErrCredentialExpired, ErrCredentialUsed, ErrCredentialNotVerified,
	ErrElectionNotStarted, ErrElectionEnded, ErrConflict,
}

// UserMessage returns the text that may be shown to a caller for err.
// Typed errors keep their own message; anything else (storage, driver,
// connectivity) collapses to a generic one.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var re *ReassignmentRequiredError
	if errors.As(err, &re) {
		return re.Error()
	}
	for _, e := range visible {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return ErrorInternal.Error()
}

// IsVisible reports whether err belongs to the caller-visible taxonomy.
func IsVisible(err error) bool {
	return UserMessage(err) != ErrorInternal.Error()
}
