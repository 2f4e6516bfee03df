package models

import "time"

// AdminAssignment binds an ADMIN to the one election they manage.
type AdminAssignment struct {
	ID         string
	AdminID    string
	ElectionID string
	AssignerID string
	CreatedAt  time.Time
}
