package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sappiah085/flight/internal/flightsearch/cache"
)

const (
	tokenPath        = "/v1/security/oauth2/token"
	tokenCacheKey    = "access_token"
	tokenSafetySlack = 10 * time.Second
)

type Credentials struct {
	ClientID     string
	ClientSecret string
}

func (c Credentials) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// TokenSource exchanges client credentials for a bearer token and keeps it
// until ten seconds before the server-declared expiry.
type TokenSource struct {
	httpClient *http.Client
	tokenURL   string
	creds      Credentials
	cache      *cache.Cache[string]

	// serializes refreshes so concurrent searches share one exchange
	mu sync.Mutex
}

func NewTokenSource(httpClient *http.Client, baseURL string, creds Credentials, store *cache.Cache[string]) *TokenSource {
	if store == nil {
		store = cache.New[string]()
	}
	return &TokenSource{
		httpClient: httpClient,
		tokenURL:   strings.TrimSuffix(baseURL, "/") + tokenPath,
		creds:      creds,
		cache:      store,
	}
}

func (t *TokenSource) Token(ctx context.Context) (string, error) {
	if !t.creds.Configured() {
		return "", ErrNoCredentials
	}
	if token, ok := t.cache.Get(tokenCacheKey); ok {
		return token, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if token, ok := t.cache.Get(tokenCacheKey); ok {
		return token, nil
	}

	resp, err := t.exchange(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	t.cache.Set(tokenCacheKey, resp.AccessToken, time.Duration(resp.ExpiresIn)*time.Second-tokenSafetySlack)
	return resp.AccessToken, nil
}

// Invalidate drops the cached token, e.g. after the API rejected it.
func (t *TokenSource) Invalidate() {
	t.cache.Delete(tokenCacheKey)
}

func (t *TokenSource) exchange(ctx context.Context) (*tokenResponse, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {t.creds.ClientID},
		"client_secret": {t.creds.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("token decode: %w", err)
	}
	if body.AccessToken == "" {
		return nil, fmt.Errorf("token decode: empty access_token")
	}
	return &body, nil
}
