package service

import (
	"context"
	"encoding/json"
	"fmt"

	"mintology-gateway/config"
	"mintology-gateway/internal/core/domain"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/logger"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// CatalogService implements ports.CatalogService. It serves the
// aggregated project snapshot: the vendor project list merged with each
// project's premints and token analytics, cached under the tenant
// fingerprint.
type CatalogService struct {
	api        ports.CatalogAPI
	cache      ports.SnapshotCache
	tenantKeys ports.TenantKeyProvider
	cfg        config.CatalogConfig
	group      singleflight.Group
	log        zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(api ports.CatalogAPI, cache ports.SnapshotCache, tenantKeys ports.TenantKeyProvider, cfg config.CatalogConfig, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		api:        api,
		cache:      cache,
		tenantKeys: tenantKeys,
		cfg:        cfg,
		log:        logger.WithComponent(log, "catalog_service"),
	}
}

// ListWithDerivedData returns the cached snapshot when fresh, otherwise
// rebuilds it from the vendor. Concurrent rebuilds for the same tenant
// are coalesced into a single vendor fan-out.
func (s *CatalogService) ListWithDerivedData(ctx context.Context, forceRefresh bool) (domain.Snapshot, error) {
	tenantKey, err := s.tenantKeys.TenantKey(ctx)
	if err != nil {
		return nil, err
	}
	fingerprint := domain.TenantFingerprint(tenantKey)

	if !forceRefresh {
		cached, err := s.cache.Get(ctx, fingerprint)
		if err != nil {
			s.log.Warn().Err(err).Msg("snapshot cache read failed, falling through to vendor")
		} else if cached != nil {
			var snapshot domain.Snapshot
			if err := json.Unmarshal(cached, &snapshot); err == nil {
				return snapshot, nil
			}
			s.log.Warn().Str("fingerprint", fingerprint).Msg("discarding undecodable cached snapshot")
		}
	}

	result, err, _ := s.group.Do(fingerprint, func() (any, error) {
		return s.refresh(ctx, fingerprint)
	})
	if err != nil {
		return nil, err
	}
	return result.(domain.Snapshot), nil
}

// refresh rebuilds the snapshot from the vendor and stores it. A failed
// premint or token sub-fetch leaves that field null for its project
// rather than failing the whole refresh.
func (s *CatalogService) refresh(ctx context.Context, fingerprint string) (domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RefreshTimeout)
	defer cancel()

	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make(domain.Snapshot, len(projects))
	for i, p := range projects {
		snapshot[i] = domain.SnapshotEntry{Project: p}
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.MaxConcurrency)
	for i := range snapshot {
		group.Go(func() error {
			premints, err := s.api.ProjectPremints(gctx, snapshot[i].ProjectID)
			if err != nil {
				s.log.Warn().Err(err).Str("project_id", snapshot[i].ProjectID).Msg("premint fetch failed")
				return nil
			}
			snapshot[i].Premints = premints
			return nil
		})
		group.Go(func() error {
			token, err := s.api.TokenTotals(gctx, snapshot[i].ProjectID)
			if err != nil {
				s.log.Warn().Err(err).Str("project_id", snapshot[i].ProjectID).Msg("token totals fetch failed")
				return nil
			}
			snapshot[i].Token = token
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := s.cache.Set(ctx, fingerprint, encoded, s.cfg.TTL); err != nil {
		s.log.Warn().Err(err).Msg("snapshot cache write failed")
	}

	s.log.Info().
		Str("fingerprint", fingerprint).
		Int("projects", len(snapshot)).
		Msg("project snapshot refreshed")
	return snapshot, nil
}
