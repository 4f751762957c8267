package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mintology-gateway/internal/core/domain"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/internal/core/ports/mocks"
	"mintology-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerMocks struct {
	authSvc     *mocks.MockAuthService
	tenantKeys  *mocks.MockTenantKeyService
	catalogSvc  *mocks.MockCatalogService
	pricingSvc  *mocks.MockPricingService
	checkoutSvc *mocks.MockCheckoutService
	tokenSvc    *mocks.MockTokenService
	projectAPI  *mocks.MockProjectAPI
	storageAPI  *mocks.MockStorageAPI
	searchAPI   *mocks.MockSearchAPI
	walletAPI   *mocks.MockWalletAPI
	pluginAPI   *mocks.MockPluginAPI
	previewAPI  *mocks.MockPreviewAPI
	projectMeta *mocks.MockProjectMetaRepository
}

func setupTestRouter(t *testing.T) (*gin.Engine, *handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &handlerMocks{
		authSvc:     mocks.NewMockAuthService(ctrl),
		tenantKeys:  mocks.NewMockTenantKeyService(ctrl),
		catalogSvc:  mocks.NewMockCatalogService(ctrl),
		pricingSvc:  mocks.NewMockPricingService(ctrl),
		checkoutSvc: mocks.NewMockCheckoutService(ctrl),
		tokenSvc:    mocks.NewMockTokenService(ctrl),
		projectAPI:  mocks.NewMockProjectAPI(ctrl),
		storageAPI:  mocks.NewMockStorageAPI(ctrl),
		searchAPI:   mocks.NewMockSearchAPI(ctrl),
		walletAPI:   mocks.NewMockWalletAPI(ctrl),
		pluginAPI:   mocks.NewMockPluginAPI(ctrl),
		previewAPI:  mocks.NewMockPreviewAPI(ctrl),
		projectMeta: mocks.NewMockProjectMetaRepository(ctrl),
	}

	router := SetupRouter(RouterDeps{
		AuthSvc:      m.authSvc,
		TenantKeySvc: m.tenantKeys,
		CatalogSvc:   m.catalogSvc,
		PricingSvc:   m.pricingSvc,
		CheckoutSvc:  m.checkoutSvc,
		TokenSvc:     m.tokenSvc,
		ProjectAPI:   m.projectAPI,
		StorageAPI:   m.storageAPI,
		SearchAPI:    m.searchAPI,
		WalletAPI:    m.walletAPI,
		PluginAPI:    m.pluginAPI,
		PreviewAPI:   m.previewAPI,
		ProjectMeta:  m.projectMeta,
		Logger:       zerolog.Nop(),
	})
	return router, m
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adminHeaders(m *handlerMocks) map[string]string {
	m.tokenSvc.EXPECT().ValidateAdminToken("admin-token").Return("admin", nil)
	return map[string]string{"Authorization": "Bearer admin-token"}
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

// --- Auth ---

func TestLogin_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	expiry := time.Now().Add(time.Hour)
	m.authSvc.EXPECT().Login(gomock.Any(), "admin", "secret123").Return("tok-1", expiry, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		gin.H{"username": "admin", "password": "secret123"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "tok-1", data["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, m := setupTestRouter(t)

	m.authSvc.EXPECT().Login(gomock.Any(), "admin", "wrong").
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		gin.H{"username": "admin", "password": "wrong"}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_001")
}

func TestLogin_MissingFields(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "admin"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_000")
}

// --- Settings ---

func TestGetTenantKeyStatus_Configured(t *testing.T) {
	router, m := setupTestRouter(t)

	m.tenantKeys.EXPECT().TenantKey(gomock.Any()).Return("mint_live_abc123", nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings/tenant-key", nil, adminHeaders(m))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["configured"])
	assert.Equal(t, domain.TenantFingerprint("mint_live_abc123"), data["fingerprint"])
}

func TestGetTenantKeyStatus_NotConfigured(t *testing.T) {
	router, m := setupTestRouter(t)

	m.tenantKeys.EXPECT().TenantKey(gomock.Any()).Return("", apperror.ErrTenantKeyMissing())

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings/tenant-key", nil, adminHeaders(m))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["configured"])
	assert.NotContains(t, w.Body.String(), "fingerprint")
}

func TestSetTenantKey_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	m.tenantKeys.EXPECT().SaveTenantKey(gomock.Any(), "mint_live_abc123").Return(nil)

	w := doJSON(t, router, http.MethodPut, "/api/v1/settings/tenant-key",
		gin.H{"key": "mint_live_abc123"}, adminHeaders(m))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetTenantKey_TooShort(t *testing.T) {
	router, m := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/v1/settings/tenant-key",
		gin.H{"key": "short"}, adminHeaders(m))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettings_RequiresAuth(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings/tenant-key", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestRegisterPlugin_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	m.pluginAPI.EXPECT().RegisterPlugin(gomock.Any(), "owner@example.com", "").
		Return(json.RawMessage(`{"registered":true}`), nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/settings/register",
		gin.H{"email": "owner@example.com"}, adminHeaders(m))

	assert.Equal(t, http.StatusCreated, w.Code)
}

// --- Catalog ---

func TestCatalog_Default(t *testing.T) {
	router, m := setupTestRouter(t)

	snapshot := domain.Snapshot{
		{Project: domain.Project{ProjectID: "prj_1", Name: "Genesis"}},
	}
	m.catalogSvc.EXPECT().ListWithDerivedData(gomock.Any(), false).Return(snapshot, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "prj_1")
}

func TestCatalog_ForceRefresh(t *testing.T) {
	router, m := setupTestRouter(t)

	m.catalogSvc.EXPECT().ListWithDerivedData(gomock.Any(), true).Return(domain.Snapshot{}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog?refresh=true", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalog_TenantKeyMissing(t *testing.T) {
	router, m := setupTestRouter(t)

	m.catalogSvc.EXPECT().ListWithDerivedData(gomock.Any(), false).
		Return(nil, apperror.ErrTenantKeyMissing())

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog", nil, nil)

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Contains(t, w.Body.String(), "CFG_001")
}

// --- Orders ---

func TestOrderSummary_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	m.pricingSvc.EXPECT().OrderSummary(gomock.Any(), "prj_1", "SG").Return(&domain.PricedOrder{
		ContractPrice: 60,
		WalletPrice:   40,
		GSTPercentage: 9,
		GSTAmount:     9,
		Subtotal:      109,
		TotalAmount:   109,
		Currency:      "SGD",
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/orders/summary?pid=prj_1&country=SG", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, 109.0, data["total_amount"])
	assert.Equal(t, "SGD", data["currency"])
}

func TestOrderQuote_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	m.pricingSvc.EXPECT().Quote(gomock.Any(), "prj_1", "").Return(&domain.PricedOrder{
		GSTPercentage: 9,
		TotalAmount:   109,
		Currency:      "SGD",
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/orders/quote?pid=prj_1", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, 109.0, data["total_amount"])
}

func TestOrderSummary_MissingProject(t *testing.T) {
	router, m := setupTestRouter(t)

	m.pricingSvc.EXPECT().OrderSummary(gomock.Any(), "", "").
		Return(nil, apperror.ErrEmptyProjectID())

	w := doJSON(t, router, http.MethodGet, "/api/v1/orders/summary", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_002")
}

func TestCheckout_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	m.checkoutSvc.EXPECT().Checkout(gomock.Any(), ports.CheckoutRequest{
		ProjectID:       "prj_1",
		FullName:        "Ada Lovelace",
		Email:           "ada@example.com",
		Phone:           "91234567",
		Country:         "SG",
		PaymentMethodID: "pm_123",
	}).Return(&ports.CheckoutResult{
		Order:  &domain.PricedOrder{TotalAmount: 109, Currency: "SGD"},
		Charge: &domain.ChargeResult{Status: domain.ChargeStatusSucceeded},
	}, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/orders/checkout", gin.H{
		"pid": "prj_1",
		"billing": gin.H{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
			"phone":     "91234567",
			"country":   "SG",
		},
		"payment_method": "pm_123",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, 109.0, data["amount"])
}

func TestCheckout_Declined(t *testing.T) {
	router, m := setupTestRouter(t)

	m.checkoutSvc.EXPECT().Checkout(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrChargeDeclined("Your card was declined."))

	w := doJSON(t, router, http.MethodPost, "/api/v1/orders/checkout", gin.H{
		"pid": "prj_1",
		"billing": gin.H{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
			"phone":     "91234567",
		},
		"payment_method": "pm_123",
	}, nil)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "PAY_002")
}

func TestCheckout_InvalidProjectID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/orders/checkout", gin.H{
		"pid":     "prj 1; DROP TABLE",
		"billing": gin.H{"full_name": "x", "email": "x@example.com", "phone": "1"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Wallets ---

func TestWalletAuthorize_WithAddress(t *testing.T) {
	router, m := setupTestRouter(t)

	m.walletAPI.EXPECT().AuthorizeWallet(gomock.Any(), "prj_1", "0xabc").
		Return(&domain.WalletAuthorization{ProjectID: "prj_1", WalletAddress: "0xabc", StatusCode: 200}, nil)
	m.tokenSvc.EXPECT().GenerateWalletSession("0xabc", "prj_1").
		Return("session-tok", time.Now().Add(time.Hour), nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/wallets/authorize", gin.H{
		"project_id":     "prj_1",
		"wallet_address": "0xabc",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "0xabc", data["wallet_address"])

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "wallet_session", cookies[0].Name)
	assert.Equal(t, "session-tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestWalletAuthorize_ResolvesMintableToken(t *testing.T) {
	router, m := setupTestRouter(t)

	m.walletAPI.EXPECT().MintableWalletAddress(gomock.Any(), "mintable-tok").Return("0xdeadbeef", nil)
	m.walletAPI.EXPECT().AuthorizeWallet(gomock.Any(), "prj_1", "0xdeadbeef").
		Return(&domain.WalletAuthorization{ProjectID: "prj_1", WalletAddress: "0xdeadbeef", StatusCode: 200}, nil)
	m.tokenSvc.EXPECT().GenerateWalletSession("0xdeadbeef", "prj_1").
		Return("session-tok", time.Now().Add(time.Hour), nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/wallets/authorize", gin.H{
		"project_id":     "prj_1",
		"mintable_token": "mintable-tok",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWalletAuthorize_NoAddressOrToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/wallets/authorize", gin.H{
		"project_id": "prj_1",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Search ---

func TestSearchContracts_ForwardsFilter(t *testing.T) {
	router, m := setupTestRouter(t)

	m.searchAPI.EXPECT().SearchContracts(gomock.Any(), map[string]any{"network": "ethereum"}).
		Return(json.RawMessage(`[{"contract":"0x1"}]`), nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/search/contracts",
		gin.H{"network": "ethereum"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchTokens_EmptyBody(t *testing.T) {
	router, m := setupTestRouter(t)

	m.searchAPI.EXPECT().SearchTokens(gomock.Any(), map[string]any{}).
		Return(json.RawMessage(`[]`), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/tokens", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Projects (admin) ---

func TestProjectStatus_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	m.projectAPI.EXPECT().ProjectStatus(gomock.Any(), "prj_1").Return("deployed", nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/projects/prj_1/status", nil, adminHeaders(m))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "deployed", data["status"])
}

func TestProjectCreate_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	m.projectAPI.EXPECT().CreateProject(gomock.Any(), map[string]any{"name": "Genesis"}).
		Return(json.RawMessage(`{"project_id":"prj_9"}`), nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/projects",
		gin.H{"name": "Genesis"}, adminHeaders(m))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "prj_9")
}

func TestProjectSetMeta_LowercasesTypes(t *testing.T) {
	router, m := setupTestRouter(t)

	m.projectMeta.EXPECT().Upsert(gomock.Any(), &domain.ProjectMeta{
		ProjectID:    "prj_1",
		ContractType: "erc721",
		WalletType:   "custodial",
	}).Return(nil)

	w := doJSON(t, router, http.MethodPut, "/api/v1/projects/prj_1/meta", gin.H{
		"contract_type": "ERC721",
		"wallet_type":   "Custodial",
	}, adminHeaders(m))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProjectGetMeta_DefaultsWhenAbsent(t *testing.T) {
	router, m := setupTestRouter(t)

	m.projectMeta.EXPECT().Get(gomock.Any(), "prj_1").Return(nil, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/projects/prj_1/meta", nil, adminHeaders(m))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "prj_1", data["project_id"])
	assert.Equal(t, "", data["contract_type"])
}

// --- Storage (admin) ---

func TestCreateUploadURL_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	m.storageAPI.EXPECT().CreateUploadURL(gomock.Any(), domain.UploadRequest{
		Name:     "banner.png",
		MimeType: "image/png",
		Kind:     "image",
	}).Return(&domain.UploadTarget{Key: "images/file-1/banner.png", UploadURL: "https://upload.example/x"}, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/storage/upload-url", gin.H{
		"name": "banner.png",
		"type": "image/png",
		"kind": "image",
	}, adminHeaders(m))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "images/file-1/banner.png")
}

func TestRemoveFile_InvalidKey(t *testing.T) {
	router, m := setupTestRouter(t)

	m.storageAPI.EXPECT().RemoveStorageFile(gomock.Any(), domain.StorageKey("only/two")).
		Return(apperror.ErrInvalidStorageKey("only/two"))

	w := doJSON(t, router, http.MethodDelete, "/api/v1/storage/files",
		gin.H{"key": "only/two"}, adminHeaders(m))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

// --- Preview (admin) ---

func TestPreview_NoLayers(t *testing.T) {
	router, m := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/preview",
		gin.H{"layers": []gin.H{}}, adminHeaders(m))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreview_Success(t *testing.T) {
	router, m := setupTestRouter(t)

	m.previewAPI.EXPECT().GeneratePreview(gomock.Any(), []domain.Layer{
		{Name: "background", Image: "https://cdn.example/bg.png", Order: 1},
	}).Return(json.RawMessage(`{"preview_url":"https://cdn.example/preview.png"}`), nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/preview", gin.H{
		"layers": []gin.H{
			{"name": "background", "image": "https://cdn.example/bg.png", "order": 1},
		},
	}, adminHeaders(m))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "preview_url")
}

// --- Health ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                 { return s.name }
func (s stubChecker) Ping(_ context.Context) error { return s.err }

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := SetupRouter(RouterDeps{
		AuthSvc:      mocks.NewMockAuthService(ctrl),
		TenantKeySvc: mocks.NewMockTenantKeyService(ctrl),
		CatalogSvc:   mocks.NewMockCatalogService(ctrl),
		PricingSvc:   mocks.NewMockPricingService(ctrl),
		CheckoutSvc:  mocks.NewMockCheckoutService(ctrl),
		TokenSvc:     mocks.NewMockTokenService(ctrl),
		ProjectAPI:   mocks.NewMockProjectAPI(ctrl),
		StorageAPI:   mocks.NewMockStorageAPI(ctrl),
		SearchAPI:    mocks.NewMockSearchAPI(ctrl),
		WalletAPI:    mocks.NewMockWalletAPI(ctrl),
		PluginAPI:    mocks.NewMockPluginAPI(ctrl),
		PreviewAPI:   mocks.NewMockPreviewAPI(ctrl),
		ProjectMeta:  mocks.NewMockProjectMetaRepository(ctrl),
		HealthCheckers: []ports.HealthChecker{
			stubChecker{name: "postgres"},
			stubChecker{name: "redis", err: assert.AnError},
		},
		Logger: zerolog.Nop(),
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}
