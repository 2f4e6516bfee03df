package models

import "time"

// Audit action tags.
const (
	ActionElectionCreated       = "ELECTION_CREATED"
	ActionElectionUpdated       = "ELECTION_UPDATED"
	ActionApprovalRequested     = "APPROVAL_REQUESTED"
	ActionStatusChanged         = "ELECTION_STATUS_CHANGED"
	ActionElectionDeleted       = "ELECTION_DELETED"
	ActionElectionArchived      = "ELECTION_ARCHIVED"
	ActionBallotChanged         = "BALLOT_CHANGED"
	ActionAdminReassigned       = "ADMIN_REASSIGNED"
	ActionInvitationIssued      = "INVITATION_ISSUED"
	ActionInvitationAccepted    = "INVITATION_ACCEPTED"
	ActionUserCreated           = "USER_CREATED"
	ActionSingletonRoleReplaced = "SINGLETON_ROLE_REPLACED"
	ActionCredentialsIssued     = "CREDENTIALS_ISSUED"
)

// AuditEntry is append-only.
type AuditEntry struct {
	ID         string
	ActorID    string
	Action     string
	ElectionID *string
	Metadata   map[string]any
	CreatedAt  time.Time
}
