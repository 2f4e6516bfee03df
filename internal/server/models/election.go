// Package models defines server-side data models persisted in the database.
package models

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
)

// Status is the lifecycle status of an election.
type Status string

const (
	StatusDraft           Status = "DRAFT"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusLive            Status = "LIVE"
	StatusClosed          Status = "CLOSED"
	StatusArchived        Status = "ARCHIVED"
)

// Statuses lists every lifecycle status in lifecycle order.
var Statuses = []Status{
	StatusDraft, StatusPendingApproval, StatusApproved, StatusLive, StatusClosed, StatusArchived,
}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// Terminal reports CLOSED and ARCHIVED.
func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusArchived
}

// Scope says who may take part in an election.
type Scope string

const (
	ScopeGeneral    Scope = "GENERAL"
	ScopeDepartment Scope = "DEPARTMENT"
)

func (s Scope) Valid() bool {
	return s == ScopeGeneral || s == ScopeDepartment
}

type Election struct {
	ID         string
	Title      string
	Status     Status
	Scope      Scope
	Department string
	StartTime  time.Time
	EndTime    time.Time
	CreatorID  string
	ApproverID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CanMutateStructure reports whether portfolios, candidates and ballot order
// may still change.
func (e *Election) CanMutateStructure() bool {
	switch e.Status {
	case StatusLive, StatusClosed, StatusArchived:
		return false
	}
	return true
}

// CanExtendOnly reports whether only the end time may change.
func (e *Election) CanExtendOnly() bool {
	return e.Status == StatusLive
}

// Deletable reports whether the status allows deletion. Votes are checked
// separately.
func (e *Election) Deletable() bool {
	return e.Status == StatusDraft || e.Status == StatusPendingApproval
}

// WindowContains reports whether now falls in [StartTime, EndTime).
func (e *Election) WindowContains(now time.Time) bool {
	return !now.Before(e.StartTime) && now.Before(e.EndTime)
}

// CheckVotable returns nil when the election is LIVE and now falls inside
// its window. CLOSED and ARCHIVED report an expired credential.
func (e *Election) CheckVotable(now time.Time) error {
	switch e.Status {
	case StatusLive:
	case StatusClosed, StatusArchived:
		return common.ErrCredentialExpired
	default:
		return common.ErrElectionNotStarted
	}
	if now.Before(e.StartTime) {
		return common.ErrElectionNotStarted
	}
	if !now.Before(e.EndTime) {
		return common.ErrElectionEnded
	}
	return nil
}
