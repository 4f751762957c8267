package service

import (
	"fmt"
	"time"

	"mintology-gateway/config"
	"mintology-gateway/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService implements ports.TokenService using HS256 JWT. It
// issues two token kinds: admin dashboard tokens and wallet session
// tokens for storefront claim flows.
type JWTTokenService struct {
	secret       []byte
	adminExpiry  time.Duration
	walletExpiry time.Duration
	issuer       string
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(cfg config.JWTConfig) *JWTTokenService {
	return &JWTTokenService{
		secret:       []byte(cfg.Secret),
		adminExpiry:  cfg.Expiry,
		walletExpiry: cfg.WalletSession,
		issuer:       cfg.Issuer,
	}
}

const (
	audienceAdmin  = "admin"
	audienceWallet = "wallet"
)

// GenerateAdminToken creates a signed dashboard token for the admin
// user.
func (s *JWTTokenService) GenerateAdminToken(subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.adminExpiry)

	claims := jwt.MapClaims{
		"sub": subject,
		"aud": audienceAdmin,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateAdminToken parses and validates a dashboard token, returning
// the subject.
func (s *JWTTokenService) ValidateAdminToken(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}

	if aud, _ := claims["aud"].(string); aud != audienceAdmin {
		return "", apperror.ErrInvalidToken()
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", apperror.ErrInvalidToken()
	}
	return sub, nil
}

// GenerateWalletSession creates the signed cookie token that ties a
// storefront visitor to an authorized wallet address.
func (s *JWTTokenService) GenerateWalletSession(walletAddress, projectID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.walletExpiry)

	claims := jwt.MapClaims{
		"sub":        walletAddress,
		"aud":        audienceWallet,
		"project_id": projectID,
		"iat":        now.Unix(),
		"exp":        expiresAt.Unix(),
		"iss":        s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

func (s *JWTTokenService) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperror.ErrInvalidToken()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidToken()
	}
	return claims, nil
}
