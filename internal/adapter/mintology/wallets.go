package mintology

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"mintology-gateway/internal/core/domain"
	"mintology-gateway/pkg/apperror"
)

// AuthorizeWallet authorizes a wallet address to claim against a
// project.
func (c *Client) AuthorizeWallet(ctx context.Context, projectID, walletAddress string) (*domain.WalletAuthorization, error) {
	if projectID == "" {
		return nil, apperror.ErrEmptyProjectID()
	}
	if walletAddress == "" {
		return nil, apperror.Validation("wallet address is required")
	}

	raw, err := c.apiCall(ctx, http.MethodPost, url.PathEscape(projectID)+"/authorize", map[string]any{
		"wallet_address": walletAddress,
	})
	if err != nil {
		return nil, err
	}

	return &domain.WalletAuthorization{
		ProjectID:     projectID,
		WalletAddress: walletAddress,
		StatusCode:    http.StatusOK,
		Response:      raw,
	}, nil
}

// MintableWalletAddress resolves the wallet address behind a Mintable
// bearer token. Returns "" when the vendor reports no address.
func (c *Client) MintableWalletAddress(ctx context.Context, bearerToken string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, c.apiBase, "mintable/wallet", map[string]string{
		"Authorization": "Bearer " + bearerToken,
	}, nil)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", upstreamError(resp)
	}

	var payload struct {
		Data struct {
			Address string `json:"address"`
		} `json:"data"`
	}
	if len(resp.Body) > 0 {
		_ = json.Unmarshal(resp.Body, &payload)
	}
	return payload.Data.Address, nil
}
