package ports

import (
	"context"
	"time"

	"mintology-gateway/internal/core/domain"
)

// SettingsRepository persists opaque install-level settings.
type SettingsRepository interface {
	// Get returns "" (no error) when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ProjectMetaRepository persists the host-owned per-project metadata
// consumed by the pricing engine.
type ProjectMetaRepository interface {
	// Get returns nil (no error) when no metadata exists.
	Get(ctx context.Context, projectID string) (*domain.ProjectMeta, error)
	Upsert(ctx context.Context, meta *domain.ProjectMeta) error
}

// SnapshotCache is a keyed byte store with per-entry TTL.
type SnapshotCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TenantKeyProvider resolves the decrypted Mintology tenant key.
// Implementations return apperror.ErrTenantKeyMissing when no key is
// configured.
type TenantKeyProvider interface {
	TenantKey(ctx context.Context) (string, error)
}
