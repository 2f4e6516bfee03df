package models

import (
	"slices"
	"time"
)

type Role string

const (
	RoleSuperAdmin   Role = "SUPERADMIN"
	RoleOrchestrator Role = "ORCHESTRATOR"
	RoleAdmin        Role = "ADMIN"
	RoleApprover     Role = "APPROVER"
	RoleVoter        Role = "VOTER"
)

var Roles = []Role{RoleSuperAdmin, RoleOrchestrator, RoleAdmin, RoleApprover, RoleVoter}

func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

// Singleton reports roles limited to one active holder.
func (r Role) Singleton() bool {
	return r == RoleSuperAdmin || r == RoleApprover
}

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	Status       UserStatus
	CreatedAt    time.Time
}

// Actor is the authenticated caller of a privileged operation.
type Actor struct {
	UserID string
	Role   Role
}

// SystemActor is recorded for actions without an authenticated caller.
var SystemActor = Actor{UserID: "system"}
