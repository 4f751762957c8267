package mintology

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"mintology-gateway/config"
	"mintology-gateway/pkg/apperror"
)

// tokenRefreshSkew refreshes the cached token this long before expiry.
const tokenRefreshSkew = 30 * time.Second

// accessToken is the OAuth client-credentials grant result.
type accessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// authorizationHeader formats the token for the Authorization header.
// Token type defaults to Bearer when the vendor omits it.
func (t accessToken) authorizationHeader() string {
	tokenType := t.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + t.AccessToken
}

// tokenSource fetches and caches the OAuth client-credentials token.
// The cache is expiry-aware so repeated vendor calls do not hammer the
// token endpoint; tokens without expires_in are never cached.
type tokenSource struct {
	httpClient   *http.Client
	tokenURL     string
	clientID     string
	clientSecret string
	scope        string

	mu        sync.Mutex
	cached    accessToken
	expiresAt time.Time
}

func newTokenSource(httpClient *http.Client, cfg config.MintologyConfig) *tokenSource {
	return &tokenSource{
		httpClient:   httpClient,
		tokenURL:     strings.TrimSuffix(cfg.AuthBaseURL, "/") + "/oauth2/token",
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		scope:        cfg.OAuthScope,
	}
}

// Token returns a valid access token, fetching a fresh one when the
// cached token is absent or about to expire.
func (t *tokenSource) Token(ctx context.Context) (accessToken, error) {
	if t.clientID == "" || t.clientSecret == "" {
		return accessToken{}, apperror.ErrCredentialsMissing()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cached.AccessToken != "" && time.Now().Before(t.expiresAt) {
		return t.cached, nil
	}

	tok, err := t.fetch(ctx)
	if err != nil {
		return accessToken{}, err
	}

	if tok.ExpiresIn > 0 {
		t.cached = tok
		t.expiresAt = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenRefreshSkew)
	} else {
		t.cached = accessToken{}
		t.expiresAt = time.Time{}
	}
	return tok, nil
}

func (t *tokenSource) fetch(ctx context.Context) (accessToken, error) {
	form := url.Values{
		"grant_type": {"client_credentials"},
		"scope":      {t.scope},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return accessToken{}, apperror.InternalError(fmt.Errorf("building token request: %w", err))
	}
	basic := base64.StdEncoding.EncodeToString([]byte(t.clientID + ":" + t.clientSecret))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return accessToken{}, apperror.ErrTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return accessToken{}, apperror.ErrTransport(err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		body := json.RawMessage(nil)
		if json.Valid(raw) {
			body = raw
		}
		return accessToken{}, upstreamError(&vendorResponse{StatusCode: resp.StatusCode, Body: body})
	}

	var tok accessToken
	if err := json.Unmarshal(raw, &tok); err != nil {
		return accessToken{}, apperror.InternalError(fmt.Errorf("decoding token response: %w", err))
	}
	if tok.AccessToken == "" {
		return accessToken{}, apperror.Upstream(resp.StatusCode, "", "token endpoint returned no access_token")
	}
	return tok, nil
}
