package service

import (
	"context"

	"creator-portal-backend/internal/config"
	"creator-portal-backend/internal/domains/auth/model"
	appjwt "creator-portal-backend/pkg/jwt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface defines admin authentication
// Portal chỉ có một admin account, provision qua env - không có
// user table, không có registration
type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	cfg        *config.Config
	jwtManager *appjwt.Manager
}

func NewAuthService(cfg *config.Config, jwtManager *appjwt.Manager) ServiceInterface {
	return &authService{
		cfg:        cfg,
		jwtManager: jwtManager,
	}
}

func (s *authService) Login(_ context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// So sánh cả email và password; lỗi nào cũng trả cùng một message
	if req.Email != s.cfg.Admin.Email {
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken("admin", req.Email, "admin", s.cfg.JWT.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	log.Info().Str("email", req.Email).Msg("Admin logged in")

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}
