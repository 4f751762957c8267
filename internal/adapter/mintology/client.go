package mintology

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"mintology-gateway/config"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// Client is the typed Mintology API client. It speaks to three vendor
// bases: the OAuth token endpoint, the tenant API (API-Key header) and
// the production search API (no auth headers).
type Client struct {
	httpClient *http.Client
	apiBase    string
	prodBase   string
	tokens     *tokenSource
	tenantKeys ports.TenantKeyProvider
	log        zerolog.Logger
}

// NewClient creates a Mintology API client.
func NewClient(cfg config.MintologyConfig, tenantKeys ports.TenantKeyProvider, log zerolog.Logger) *Client {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	return &Client{
		httpClient: httpClient,
		apiBase:    strings.TrimSuffix(cfg.APIBaseURL, "/"),
		prodBase:   strings.TrimSuffix(cfg.ProdAPIBaseURL, "/"),
		tokens:     newTokenSource(httpClient, cfg),
		tenantKeys: tenantKeys,
		log:        log,
	}
}

// vendorResponse is the uniform result of any vendor HTTP exchange that
// produced a response. Body is nil when the response body was not valid
// JSON; callers must tolerate that.
type vendorResponse struct {
	StatusCode int
	Body       json.RawMessage
}

// do issues one request and decodes the body regardless of status code.
// Only connection-level failures (no response at all) return an error.
func (c *Client) do(ctx context.Context, method, base, path string, headers map[string]string, body any) (*vendorResponse, error) {
	url := base + "/" + strings.TrimPrefix(path, "/")

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("encoding request body: %w", err))
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.ErrTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ErrTransport(err)
	}

	result := &vendorResponse{StatusCode: resp.StatusCode}
	if json.Valid(raw) {
		result.Body = json.RawMessage(raw)
	}
	return result, nil
}

// apiCall issues a tenant-API request carrying the API-Key header and
// maps non-2xx responses to upstream errors with the vendor payload
// preserved.
func (c *Client) apiCall(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	key, err := c.tenantKeys.TenantKey(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, method, c.apiBase, path, map[string]string{"API-Key": key}, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, upstreamError(resp)
	}
	return resp.Body, nil
}

// prodCall issues a production search API request. No auth headers.
func (c *Client) prodCall(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	resp, err := c.do(ctx, method, c.prodBase, path, nil, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, upstreamError(resp)
	}
	return resp.Body, nil
}

// vendorError covers the error body shapes the vendor emits.
type vendorError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Code             string `json:"code"`
	Message          string `json:"message"`
}

// upstreamError converts a non-2xx vendor response into an AppError that
// carries the vendor's status and message through unmodified.
func upstreamError(resp *vendorResponse) *apperror.AppError {
	var ve vendorError
	if len(resp.Body) > 0 {
		_ = json.Unmarshal(resp.Body, &ve)
	}

	message := ve.Message
	if message == "" {
		message = ve.ErrorDescription
	}
	if message == "" {
		message = ve.Error
	}
	code := ve.Code
	if code == "" && ve.ErrorDescription != "" {
		code = ve.Error
	}
	return apperror.Upstream(resp.StatusCode, code, message)
}

// unwrapData strips the vendor's {"data": ...} envelope when present.
func unwrapData(raw json.RawMessage) json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return env.Data
	}
	return raw
}
