package models

import "time"

// Portfolio is one contested office on an election's ballot.
type Portfolio struct {
	ID         string
	ElectionID string
	Title      string
	Position   int
	CreatedAt  time.Time
}

type Candidate struct {
	ID          string
	PortfolioID string
	Name        string
	Manifesto   string
	Position    int
	CreatedAt   time.Time
}
