package mintology

import (
	"context"
	"encoding/json"
	"net/http"

	"mintology-gateway/internal/core/domain"
)

// GetTariff returns the vendor base price for a contract/wallet type
// pair. A payload without a price field resolves to 0.
func (c *Client) GetTariff(ctx context.Context, contractType, walletType string) (float64, error) {
	raw, err := c.apiCall(ctx, http.MethodPost, "prices/calculate", map[string]any{
		"contract_type": contractType,
		"wallet_type":   walletType,
	})
	if err != nil {
		return 0, err
	}

	var payload struct {
		Price float64 `json:"price"`
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(unwrapData(raw), &payload)
	}
	return payload.Price, nil
}

// GetTaxRate resolves the tax rate for a country.
func (c *Client) GetTaxRate(ctx context.Context, country string) (*domain.TaxRate, error) {
	raw, err := c.apiCall(ctx, http.MethodPost, "taxes/rates", map[string]any{
		"country": country,
	})
	if err != nil {
		return nil, err
	}

	rate := &domain.TaxRate{}
	if len(raw) > 0 {
		_ = json.Unmarshal(unwrapData(raw), rate)
	}
	return rate, nil
}

// ChargeCustomer charges a customer through the vendor's payment
// endpoint. Declines may come back either as a non-2xx response or as a
// 2xx payload with a non-succeeded status; both shapes reach the caller.
func (c *Client) ChargeCustomer(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	raw, err := c.apiCall(ctx, http.MethodPost, "charges", req)
	if err != nil {
		return nil, err
	}

	result := &domain.ChargeResult{}
	if len(raw) > 0 {
		_ = json.Unmarshal(unwrapData(raw), result)
	}
	return result, nil
}
