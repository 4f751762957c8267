package ports

import (
	"context"
	"time"

	"mintology-gateway/internal/core/domain"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for the admin dashboard and
// wallet sessions.
type TokenService interface {
	GenerateAdminToken(subject string) (string, time.Time, error)
	// ValidateAdminToken returns the token subject.
	ValidateAdminToken(tokenString string) (string, error)
	GenerateWalletSession(walletAddress, projectID string) (string, time.Time, error)
}

// --- Service Ports (Business Logic) ---

// PricingService computes priced orders from project metadata and a
// country code.
type PricingService interface {
	// Quote returns the total amount with tax for a project; country
	// defaults to "SG" when empty.
	Quote(ctx context.Context, projectID, country string) (*domain.PricedOrder, error)
	// OrderSummary exposes contract and wallet prices as independent
	// line items plus GST and totals.
	OrderSummary(ctx context.Context, projectID, country string) (*domain.PricedOrder, error)
}

// CatalogService serves the aggregated project snapshot.
type CatalogService interface {
	// ListWithDerivedData returns the cached snapshot when fresh, unless
	// forceRefresh is set.
	ListWithDerivedData(ctx context.Context, forceRefresh bool) (domain.Snapshot, error)
}

// CheckoutRequest holds validated input for checkout processing.
type CheckoutRequest struct {
	ProjectID       string
	FullName        string
	Email           string
	Phone           string
	Country         string
	PaymentMethodID string
}

// CheckoutResult is the outcome of a successful checkout.
type CheckoutResult struct {
	Order  *domain.PricedOrder
	Charge *domain.ChargeResult
}

// CheckoutService validates billing input, prices the order and charges
// the customer.
type CheckoutService interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

// AuthService authenticates the dashboard admin.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// TenantKeyService manages the encrypted tenant key at rest.
type TenantKeyService interface {
	TenantKeyProvider
	SaveTenantKey(ctx context.Context, plaintext string) error
}
