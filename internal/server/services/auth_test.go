package services

import (
	"testing"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	orc := env.seedUser(t, "orc@uni.edu", models.RoleOrchestrator)

	session, err := env.auth.Login(env.ctx, " ORC@uni.edu", testPassword)
	require.NoError(t, err)
	assert.Equal(t, orc.ID, session.User.ID)
	assert.Equal(t, env.now.Add(env.cfg.AccessTokenValidityDuration), session.ExpiresAt)

	actor, err := env.auth.Authenticate(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.Actor{UserID: orc.ID, Role: models.RoleOrchestrator}, actor)
}

func TestAuthService_Login_Rejected(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "orc@uni.edu", models.RoleOrchestrator)
	_, err := env.store.Repos().Users().Create(env.ctx, &models.User{
		Email: "gone@uni.edu", PasswordHash: "garbage", Role: models.RoleAdmin, Status: models.UserInactive,
	})
	require.NoError(t, err)

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "orc@uni.edu", "wrong password"},
		{"unknown account", "nobody@uni.edu", testPassword},
		{"malformed email", "orc", testPassword},
		{"unreadable hash", "gone@uni.edu", testPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Login(env.ctx, tt.email, tt.password)
			require.ErrorIs(t, err, common.ErrorUnauthorized)
		})
	}
}

func TestAuthService_Login_Inactive(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "orc@uni.edu", models.RoleOrchestrator)
	u.Status = models.UserInactive
	_, err := env.store.Repos().Users().DeleteByRole(env.ctx, models.RoleOrchestrator)
	require.NoError(t, err)
	_, err = env.store.Repos().Users().Create(env.ctx, u)
	require.NoError(t, err)

	_, err = env.auth.Login(env.ctx, "orc@uni.edu", testPassword)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthService_Authenticate_BadToken(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.Authenticate("not.a.jwt")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
