// Package common contains shared constants and sentinel errors used across
// unielect components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// CredentialSize and InvitationTokenSize are the number of random bytes
// behind a voter credential and an invitation token (256 bits each).
const (
	CredentialSize      = 32
	InvitationTokenSize = 32
)
