package service

import (
	"context"
	"testing"
	"time"

	"creator-portal-backend/internal/config"
	"creator-portal-backend/internal/domains/auth/model"
	appjwt "creator-portal-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (ServiceInterface, *appjwt.Manager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Admin: config.AdminConfig{
			Email:        "admin@creatorportal.local",
			PasswordHash: string(hash),
		},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpiry: time.Hour,
		},
	}

	manager := appjwt.NewManager(cfg.JWT.Secret)
	return NewAuthService(cfg, manager), manager
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return admin token", func(t *testing.T) {
		svc, manager := newTestAuthService(t)

		resp, err := svc.Login(ctx, model.LoginRequest{
			Email:    "admin@creatorportal.local",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)

		claims, err := manager.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "admin@creatorportal.local", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Login(ctx, model.LoginRequest{
			Email:    "admin@creatorportal.local",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown email gets same error as wrong password", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Login(ctx, model.LoginRequest{
			Email:    "intruder@example.com",
			Password: "correct-horse",
		})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("missing email rejected by validation", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Login(ctx, model.LoginRequest{
			Email:    "",
			Password: "x",
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("internal TLD admin email is accepted", func(t *testing.T) {
		// Default config dùng admin@creatorportal.local; login không được
		// chặn email hợp lệ chỉ vì TLD không public
		svc, _ := newTestAuthService(t)

		resp, err := svc.Login(ctx, model.LoginRequest{
			Email:    "admin@creatorportal.local",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})
}
