package mintology

import (
	"context"
	"encoding/json"
	"net/http"

	"mintology-gateway/internal/core/domain"
	"mintology-gateway/pkg/apperror"
)

// RegisterPlugin registers this install with the vendor. Unlike the
// tenant API operations this one authenticates with the OAuth
// client-credentials token.
func (c *Client) RegisterPlugin(ctx context.Context, email, pluginType string) (json.RawMessage, error) {
	if pluginType == "" {
		pluginType = "Wordpress"
	}

	tok, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, c.apiBase, "plugins/register", map[string]string{
		"Authorization": tok.authorizationHeader(),
	}, map[string]any{
		"email":       email,
		"plugin_type": pluginType,
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, upstreamError(resp)
	}
	return resp.Body, nil
}

// GeneratePreview renders a generative NFT preview from layers.
func (c *Client) GeneratePreview(ctx context.Context, layers []domain.Layer) (json.RawMessage, error) {
	if len(layers) == 0 {
		return nil, apperror.ErrNoLayers()
	}
	return c.apiCall(ctx, http.MethodPost, "preview", layers)
}
