package models

import "time"

type Invitation struct {
	ID         string
	Email      string
	Token      string
	Role       Role
	ElectionID *string
	ExpiresAt  time.Time
	Used       bool
	IssuerID   string
	CreatedAt  time.Time
}

// Live reports an unused invitation that has not expired at now.
func (i *Invitation) Live(now time.Time) bool {
	return !i.Used && now.Before(i.ExpiresAt)
}
