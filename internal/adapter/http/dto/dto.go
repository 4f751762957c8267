package dto

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TenantKeyRequest is the request body for storing the Mintology tenant
// key.
type TenantKeyRequest struct {
	Key string `json:"key" binding:"required,min=8,max=256"`
}

// TenantKeyStatusResponse reports whether a tenant key is configured.
// Only the short fingerprint is ever exposed, never the key itself.
type TenantKeyStatusResponse struct {
	Configured  bool   `json:"configured"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// RegisterPluginRequest is the request body for registering this
// install with the vendor.
type RegisterPluginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	PluginType string `json:"plugin_type,omitempty"`
}

// ProjectMetaRequest is the request body for storing per-project
// pricing metadata.
type ProjectMetaRequest struct {
	ContractType string `json:"contract_type" binding:"required,max=50"`
	WalletType   string `json:"wallet_type" binding:"required,max=50"`
}

// UploadURLRequest is the request body for requesting a storage upload
// destination.
type UploadURLRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	MimeType  string `json:"type" binding:"required,max=100"`
	Kind      string `json:"kind,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// RemoveFileRequest is the request body for deleting a storage file.
type RemoveFileRequest struct {
	Key string `json:"key" binding:"required"`
}

// BillingDetails carries the customer's billing input for checkout.
type BillingDetails struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country,omitempty"`
}

// CheckoutRequest is the request body for the storefront checkout.
type CheckoutRequest struct {
	ProjectID       string         `json:"pid" binding:"required,safe_id"`
	Billing         BillingDetails `json:"billing"`
	PaymentMethodID string         `json:"payment_method,omitempty"`
}

// CheckoutResponse is the response body for a successful checkout.
type CheckoutResponse struct {
	Message  string  `json:"message"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// WalletAuthorizeRequest is the request body for authorizing a wallet
// against a project. Either a wallet address or a Mintable bearer token
// must be supplied.
type WalletAuthorizeRequest struct {
	ProjectID     string `json:"project_id" binding:"required,safe_id"`
	WalletAddress string `json:"wallet_address,omitempty"`
	MintableToken string `json:"mintable_token,omitempty"`
}

// WalletAuthorizeResponse is the response body for a wallet
// authorization.
type WalletAuthorizeResponse struct {
	ProjectID     string `json:"project_id"`
	WalletAddress string `json:"wallet_address"`
}

// PreviewRequest is the request body for a generative preview.
type PreviewRequest struct {
	Layers []LayerInput `json:"layers" binding:"required,dive"`
}

// LayerInput is one generative layer in a preview request.
type LayerInput struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image" binding:"required"`
	Order int    `json:"order,omitempty"`
}

// ProjectStatusResponse is the response body for a project status
// lookup.
type ProjectStatusResponse struct {
	ProjectID string `json:"project_id"`
	Status    string `json:"status"`
}
