package service

import (
	"context"
	"strings"

	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/logger"

	"github.com/rs/zerolog"
)

// settingTenantKey is the settings row holding the encrypted Mintology
// tenant key.
const settingTenantKey = "mintology_key_enc"

// TenantKeyService implements ports.TenantKeyService. The tenant key is
// stored AES-encrypted in the settings repository and decrypted on
// every read; it is never logged or cached in plaintext.
type TenantKeyService struct {
	settings  ports.SettingsRepository
	encryptor ports.EncryptionService
	log       zerolog.Logger
}

// NewTenantKeyService creates a new TenantKeyService.
func NewTenantKeyService(settings ports.SettingsRepository, encryptor ports.EncryptionService, log zerolog.Logger) *TenantKeyService {
	return &TenantKeyService{
		settings:  settings,
		encryptor: encryptor,
		log:       logger.WithComponent(log, "tenant_key_service"),
	}
}

// TenantKey returns the decrypted tenant key, or ErrTenantKeyMissing
// when none has been configured.
func (s *TenantKeyService) TenantKey(ctx context.Context) (string, error) {
	ciphertext, err := s.settings.Get(ctx, settingTenantKey)
	if err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	if ciphertext == "" {
		return "", apperror.ErrTenantKeyMissing()
	}

	plaintext, err := s.encryptor.Decrypt(ciphertext)
	if err != nil {
		s.log.Error().Err(err).Msg("stored tenant key could not be decrypted")
		return "", apperror.ErrEncryptionFailure(err)
	}
	if plaintext == "" {
		return "", apperror.ErrTenantKeyMissing()
	}
	return plaintext, nil
}

// SaveTenantKey encrypts and stores a new tenant key. Leading and
// trailing whitespace is stripped; an empty key is rejected.
func (s *TenantKeyService) SaveTenantKey(ctx context.Context, plaintext string) error {
	plaintext = strings.TrimSpace(plaintext)
	if plaintext == "" {
		return apperror.Validation("tenant key must not be empty")
	}

	ciphertext, err := s.encryptor.Encrypt(plaintext)
	if err != nil {
		return apperror.ErrEncryptionFailure(err)
	}
	if err := s.settings.Set(ctx, settingTenantKey, ciphertext); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	s.log.Info().Msg("tenant key updated")
	return nil
}
