package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/cryptox"
	"github.com/dmitrijs2005/unielect/internal/logging"
	"github.com/dmitrijs2005/unielect/internal/server/auth"
	"github.com/dmitrijs2005/unielect/internal/server/config"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/repomanager"
)

// Session is returned by a successful login.
type Session struct {
	User        *models.User
	AccessToken string
	ExpiresAt   time.Time
}

type AuthService struct {
	base
	secretKey []byte
	validity  time.Duration
}

func NewAuthService(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		base:      newBase(m, logger, "auth"),
		secretKey: []byte(cfg.SecretKey),
		validity:  cfg.AccessTokenValidityDuration,
	}
}

// Login checks the password of an ACTIVE account and issues an access token.
// Unknown accounts and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Repos().Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		s.logger.Error(ctx, "stored password hash is unreadable", "user_id", user.ID, "error", err)
		return nil, common.ErrorUnauthorized
	}
	if !ok || user.Status != models.UserActive {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.secretKey, s.validity)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &Session{User: user, AccessToken: token, ExpiresAt: s.now().Add(s.validity)}, nil
}

// Authenticate resolves an access token to the caller it was issued to.
func (s *AuthService) Authenticate(token string) (models.Actor, error) {
	return auth.ParseToken(token, s.secretKey)
}
