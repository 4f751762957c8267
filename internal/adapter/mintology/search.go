package mintology

import (
	"context"
	"encoding/json"
	"net/http"
)

// SearchContracts searches contracts on the production API.
func (c *Client) SearchContracts(ctx context.Context, filter map[string]any) (json.RawMessage, error) {
	return c.prodCall(ctx, http.MethodPost, "contracts/search", filter)
}

// SearchTokens searches tokens by contract attributes on the production
// API.
func (c *Client) SearchTokens(ctx context.Context, filter map[string]any) (json.RawMessage, error) {
	return c.prodCall(ctx, http.MethodPost, "tokens/search", filter)
}
