package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mintology-gateway/config"
	"mintology-gateway/internal/core/domain"
	"mintology-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type catalogTestDeps struct {
	svc        *CatalogService
	api        *mocks.MockCatalogAPI
	cache      *mocks.MockSnapshotCache
	tenantKeys *mocks.MockTenantKeyProvider
	ctrl       *gomock.Controller
}

func setupCatalogService(t *testing.T) *catalogTestDeps {
	ctrl := gomock.NewController(t)
	d := &catalogTestDeps{
		api:        mocks.NewMockCatalogAPI(ctrl),
		cache:      mocks.NewMockSnapshotCache(ctrl),
		tenantKeys: mocks.NewMockTenantKeyProvider(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewCatalogService(d.api, d.cache, d.tenantKeys, config.CatalogConfig{
		TTL:            time.Hour,
		RefreshTimeout: 30 * time.Second,
		MaxConcurrency: 8,
	}, zerolog.Nop())
	return d
}

// fingerprint of "test-key", pinned by the domain tests.
const testFingerprint = "0R8Tv"

func TestCatalogService_CacheHit(t *testing.T) {
	d := setupCatalogService(t)
	ctx := context.Background()

	cached := domain.Snapshot{
		{Project: domain.Project{ProjectID: "prj_1"}, Premints: json.RawMessage(`[{"id":1}]`)},
	}
	encoded, err := json.Marshal(cached)
	require.NoError(t, err)

	d.tenantKeys.EXPECT().TenantKey(ctx).Return("test-key", nil)
	d.cache.EXPECT().Get(ctx, testFingerprint).Return(encoded, nil)

	snapshot, err := d.svc.ListWithDerivedData(ctx, false)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "prj_1", snapshot[0].ProjectID)
	assert.JSONEq(t, `[{"id":1}]`, string(snapshot[0].Premints))
}

func TestCatalogService_CacheMissAggregates(t *testing.T) {
	d := setupCatalogService(t)
	ctx := context.Background()

	projects := []domain.Project{
		{ProjectID: "prj_a"},
		{ProjectID: "prj_b"},
		{ProjectID: "prj_c"},
	}

	d.tenantKeys.EXPECT().TenantKey(gomock.Any()).Return("test-key", nil)
	d.cache.EXPECT().Get(gomock.Any(), testFingerprint).Return(nil, nil)
	d.api.EXPECT().ListProjects(gomock.Any()).Return(projects, nil)
	for _, p := range projects {
		id := p.ProjectID
		d.api.EXPECT().ProjectPremints(gomock.Any(), id).
			Return(json.RawMessage(`["premint-`+id+`"]`), nil)
		d.api.EXPECT().TokenTotals(gomock.Any(), id).
			Return(json.RawMessage(`{"total":"`+id+`"}`), nil)
	}
	d.cache.EXPECT().Set(gomock.Any(), testFingerprint, gomock.Any(), time.Hour).Return(nil)

	snapshot, err := d.svc.ListWithDerivedData(ctx, false)
	require.NoError(t, err)
	require.Len(t, snapshot, 3)

	// Sub-data must land on the project it belongs to, in list order.
	for i, p := range projects {
		assert.Equal(t, p.ProjectID, snapshot[i].ProjectID)
		assert.JSONEq(t, `["premint-`+p.ProjectID+`"]`, string(snapshot[i].Premints))
		assert.JSONEq(t, `{"total":"`+p.ProjectID+`"}`, string(snapshot[i].Token))
	}
}

func TestCatalogService_PartialSubFetchFailureDegrades(t *testing.T) {
	d := setupCatalogService(t)
	ctx := context.Background()

	projects := []domain.Project{{ProjectID: "prj_a"}, {ProjectID: "prj_b"}}

	d.tenantKeys.EXPECT().TenantKey(gomock.Any()).Return("test-key", nil)
	d.cache.EXPECT().Get(gomock.Any(), testFingerprint).Return(nil, nil)
	d.api.EXPECT().ListProjects(gomock.Any()).Return(projects, nil)

	d.api.EXPECT().ProjectPremints(gomock.Any(), "prj_a").
		Return(nil, errors.New("upstream 500"))
	d.api.EXPECT().TokenTotals(gomock.Any(), "prj_a").
		Return(json.RawMessage(`{"total":1}`), nil)
	d.api.EXPECT().ProjectPremints(gomock.Any(), "prj_b").
		Return(json.RawMessage(`[]`), nil)
	d.api.EXPECT().TokenTotals(gomock.Any(), "prj_b").
		Return(json.RawMessage(`{"total":2}`), nil)

	d.cache.EXPECT().Set(gomock.Any(), testFingerprint, gomock.Any(), time.Hour).Return(nil)

	snapshot, err := d.svc.ListWithDerivedData(ctx, false)
	require.NoError(t, err, "a failed sub-fetch must not fail the refresh")
	require.Len(t, snapshot, 2)

	assert.Nil(t, snapshot[0].Premints, "failed premint fetch leaves the field null")
	assert.JSONEq(t, `{"total":1}`, string(snapshot[0].Token))
	assert.JSONEq(t, `[]`, string(snapshot[1].Premints))
}

func TestCatalogService_ForceRefreshSkipsCacheRead(t *testing.T) {
	d := setupCatalogService(t)
	ctx := context.Background()

	d.tenantKeys.EXPECT().TenantKey(gomock.Any()).Return("test-key", nil)
	// No cache.Get expectation: a forced refresh must not consult it.
	d.api.EXPECT().ListProjects(gomock.Any()).Return([]domain.Project{}, nil)
	d.cache.EXPECT().Set(gomock.Any(), testFingerprint, gomock.Any(), time.Hour).Return(nil)

	snapshot, err := d.svc.ListWithDerivedData(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestCatalogService_ListFailurePropagates(t *testing.T) {
	d := setupCatalogService(t)
	ctx := context.Background()

	d.tenantKeys.EXPECT().TenantKey(gomock.Any()).Return("test-key", nil)
	d.cache.EXPECT().Get(gomock.Any(), testFingerprint).Return(nil, nil)
	d.api.EXPECT().ListProjects(gomock.Any()).Return(nil, errors.New("vendor down"))

	_, err := d.svc.ListWithDerivedData(ctx, false)
	assert.Error(t, err)
}

func TestCatalogService_TenantKeyErrorPropagates(t *testing.T) {
	d := setupCatalogService(t)
	ctx := context.Background()

	d.tenantKeys.EXPECT().TenantKey(gomock.Any()).Return("", errors.New("not configured"))

	_, err := d.svc.ListWithDerivedData(ctx, false)
	assert.Error(t, err)
}

func TestCatalogService_ConcurrentRefreshesCoalesce(t *testing.T) {
	d := setupCatalogService(t)
	ctx := context.Background()
	const callers = 5

	var listCalls atomic.Int64
	release := make(chan struct{})

	d.tenantKeys.EXPECT().TenantKey(gomock.Any()).Return("test-key", nil).Times(callers)
	// The vendor list call blocks until every caller has had a chance to
	// join the in-flight refresh; it must still run exactly once.
	d.api.EXPECT().ListProjects(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.Project, error) {
		listCalls.Add(1)
		<-release
		return []domain.Project{{ProjectID: "prj_a"}}, nil
	}).Times(1)
	d.api.EXPECT().ProjectPremints(gomock.Any(), "prj_a").Return(json.RawMessage(`[]`), nil).Times(1)
	d.api.EXPECT().TokenTotals(gomock.Any(), "prj_a").Return(json.RawMessage(`{"total":1}`), nil).Times(1)
	d.cache.EXPECT().Set(gomock.Any(), testFingerprint, gomock.Any(), time.Hour).Return(nil).Times(1)

	var wg sync.WaitGroup
	snapshots := make([]domain.Snapshot, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snapshots[i], errs[i] = d.svc.ListWithDerivedData(ctx, true)
		}(i)
	}

	// Wait for the first caller to reach the vendor, give the rest time
	// to pile onto the same flight, then let it finish.
	require.Eventually(t, func() bool { return listCalls.Load() == 1 },
		time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), listCalls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, snapshots[i], 1)
		assert.Equal(t, "prj_a", snapshots[i][0].ProjectID)
	}
}

func TestCatalogService_UndecodableCacheEntryTriggersRefresh(t *testing.T) {
	d := setupCatalogService(t)
	ctx := context.Background()

	d.tenantKeys.EXPECT().TenantKey(gomock.Any()).Return("test-key", nil)
	d.cache.EXPECT().Get(gomock.Any(), testFingerprint).Return([]byte("garbage"), nil)
	d.api.EXPECT().ListProjects(gomock.Any()).Return([]domain.Project{}, nil)
	d.cache.EXPECT().Set(gomock.Any(), testFingerprint, gomock.Any(), time.Hour).Return(nil)

	_, err := d.svc.ListWithDerivedData(ctx, false)
	assert.NoError(t, err)
}
