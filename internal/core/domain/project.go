package domain

import "encoding/json"

// Project statuses as reported by the Mintology API.
const (
	ProjectStatusDraft    = "draft"
	ProjectStatusDeployed = "deployed"
)

// Project is a Mintology project. The vendor is the system of record;
// the gateway never persists project state beyond the per-project
// metadata used for pricing (see ProjectMeta).
type Project struct {
	ProjectID       string `json:"project_id"`
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
	ContractType    string `json:"contract_type,omitempty"`
	WalletType      string `json:"wallet_type,omitempty"`
	Status          string `json:"status,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`
	Network         string `json:"network,omitempty"`
}

// ProjectMeta is the host-owned per-project metadata consumed by the
// pricing engine.
type ProjectMeta struct {
	ProjectID    string `json:"project_id"`
	ContractType string `json:"contract_type"`
	WalletType   string `json:"wallet_type"`
}

// SnapshotEntry is one project augmented with its premint and token
// analytics payloads. A failed sub-fetch leaves the corresponding field
// null rather than invalidating the whole snapshot.
type SnapshotEntry struct {
	Project
	Premints json.RawMessage `json:"premints"`
	Token    json.RawMessage `json:"token"`
}

// Snapshot is the merged, cached view of all projects plus their
// premint/token sub-data, in vendor list order.
type Snapshot []SnapshotEntry

// UploadRequest describes a storage upload-URL request.
// Kind mirrors the vendor's nft type discriminator: "image" uploads go to
// the default bucket; anything else is routed to the generative-source
// directory tree.
type UploadRequest struct {
	Name      string
	MimeType  string
	Kind      string
	ProjectID string
}

// UploadTarget is the vendor-issued upload destination.
type UploadTarget struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	FileID    string `json:"file_id,omitempty"`
}

// Layer is a single generative layer used for NFT previews.
type Layer struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Order int    `json:"order,omitempty"`
}

// WalletAuthorization is the result of authorizing a wallet against a
// project.
type WalletAuthorization struct {
	ProjectID     string          `json:"project_id"`
	WalletAddress string          `json:"wallet_address"`
	StatusCode    int             `json:"status_code"`
	Response      json.RawMessage `json:"response,omitempty"`
}
