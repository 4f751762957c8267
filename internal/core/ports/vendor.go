package ports

import (
	"context"
	"encoding/json"

	"mintology-gateway/internal/core/domain"
)

// ProjectAPI exposes the vendor's project lifecycle operations.
// Every operation resolves the tenant key first and fails fast with a
// configuration error when it is absent.
type ProjectAPI interface {
	CreateProject(ctx context.Context, project map[string]any) (json.RawMessage, error)
	UpdateProject(ctx context.Context, projectID string, project map[string]any) (json.RawMessage, error)
	RetrieveProject(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	DeployProject(ctx context.Context, projectID string) (json.RawMessage, error)
	DeleteProject(ctx context.Context, projectID string) error
	// ProjectStatus returns "draft" when projectID is empty or the vendor
	// payload carries no status field.
	ProjectStatus(ctx context.Context, projectID string) (string, error)
}

// StorageAPI exposes the vendor's storage operations.
type StorageAPI interface {
	CreateUploadURL(ctx context.Context, req domain.UploadRequest) (*domain.UploadTarget, error)
	// RemoveStorageFile validates the 3-segment key format locally and
	// never issues a request for a malformed key.
	RemoveStorageFile(ctx context.Context, key domain.StorageKey) error
}

// CatalogAPI is the subset of vendor operations used by the snapshot
// aggregation.
type CatalogAPI interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ProjectPremints(ctx context.Context, projectID string) (json.RawMessage, error)
	TokenTotals(ctx context.Context, projectID string) (json.RawMessage, error)
}

// SearchAPI exposes the production search endpoints (no auth headers).
type SearchAPI interface {
	SearchContracts(ctx context.Context, filter map[string]any) (json.RawMessage, error)
	SearchTokens(ctx context.Context, filter map[string]any) (json.RawMessage, error)
}

// WalletAPI exposes wallet authorization operations.
type WalletAPI interface {
	AuthorizeWallet(ctx context.Context, projectID, walletAddress string) (*domain.WalletAuthorization, error)
	// MintableWalletAddress resolves the wallet address behind a Mintable
	// bearer token.
	MintableWalletAddress(ctx context.Context, bearerToken string) (string, error)
}

// PricingAPI exposes the vendor's tariff and tax lookups.
type PricingAPI interface {
	// GetTariff returns the base price for a contract/wallet type pair;
	// 0 when the vendor reports no price.
	GetTariff(ctx context.Context, contractType, walletType string) (float64, error)
	GetTaxRate(ctx context.Context, country string) (*domain.TaxRate, error)
}

// ChargeAPI charges a customer through the vendor.
type ChargeAPI interface {
	ChargeCustomer(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error)
}

// PluginAPI registers this install with the vendor using OAuth
// client-credentials.
type PluginAPI interface {
	RegisterPlugin(ctx context.Context, email, pluginType string) (json.RawMessage, error)
}

// PreviewAPI renders a generative NFT preview from layers.
type PreviewAPI interface {
	GeneratePreview(ctx context.Context, layers []domain.Layer) (json.RawMessage, error)
}
