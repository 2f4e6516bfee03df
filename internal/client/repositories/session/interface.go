package session

import (
	"context"
)

// Keys the CLI keeps between runs.
const (
	KeyAccessToken = "access_token"
	KeyExpiresAt   = "expires_at"
	KeyEmail       = "email"
	KeyRole        = "role"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
