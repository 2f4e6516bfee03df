package models

import "time"

type CredentialStatus string

const (
	CredentialIssued   CredentialStatus = "ISSUED"
	CredentialVerified CredentialStatus = "VERIFIED"
	CredentialConsumed CredentialStatus = "CONSUMED"
)

// VoterCredential is stored by fingerprint only; the raw secret is handed
// out once at issuance.
type VoterCredential struct {
	ID            string
	ElectionID    string
	VoterIdentity string
	Fingerprint   string
	Status        CredentialStatus
	IssuedAt      time.Time
	VerifiedAt    *time.Time
	ConsumedAt    *time.Time
}

// Vote carries no field linking it to a voter identity.
type Vote struct {
	ID          string
	Fingerprint string
	ElectionID  string
	PortfolioID string
	CandidateID string
	CastAt      time.Time
}
