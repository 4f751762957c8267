package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"mintology-gateway/config"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/logger"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService. The dashboard has a
// single admin account configured at deploy time; the stored password
// is an Argon2id hash, never plaintext.
type AuthServiceImpl struct {
	admin    config.AdminConfig
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(admin config.AdminConfig, hashSvc ports.HashService, tokenSvc ports.TokenService, log zerolog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		admin:    admin,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		log:      logger.WithComponent(log, "auth_service"),
	}
}

// Login validates admin credentials and returns a dashboard JWT.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.admin.Username == "" || s.admin.PasswordHash == "" {
		return "", time.Time{}, apperror.New("CFG_002", "admin account is not configured", http.StatusPreconditionFailed)
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1

	valid, err := s.hashSvc.Verify(password, s.admin.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !usernameMatch || !valid {
		s.log.Warn().Str("username", username).Msg("failed admin login attempt")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.GenerateAdminToken(s.admin.Username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
