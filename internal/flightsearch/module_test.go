package flightsearch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sappiah085/flight/internal/pkg/pkgrouter"
	"github.com/sappiah085/flight/internal/pkg/pkguid"
)

type mapConfig map[string]any

func (m mapConfig) GetString(key string) string {
	s, _ := m[key].(string)
	return s
}

func (m mapConfig) GetBool(key string) bool {
	b, _ := m[key].(bool)
	return b
}

func (m mapConfig) GetInt(key string) int {
	i, _ := m[key].(int)
	return i
}

func (m mapConfig) GetDuration(key string) time.Duration {
	d, _ := m[key].(time.Duration)
	return d
}

func (mapConfig) Close() error { return nil }

func searchSource(t *testing.T, cfg mapConfig) (string, string) {
	t.Helper()
	r := pkgrouter.NewRouter(pkguid.NewUUID())
	require.NoError(t, New(Dependency{Config: cfg, Router: r}))

	req := httptest.NewRequest(http.MethodPost, "/search",
		strings.NewReader(`{"origin":"JFK","destination":"LHR","departureDate":"2025-06-01"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			Source         string `json:"source"`
			FallbackReason string `json:"fallbackReason"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Data.Source, body.Data.FallbackReason
}

func TestNew_WithoutCredentials(t *testing.T) {
	source, reason := searchSource(t, mapConfig{
		"modules.flight-search.fallback.delay_ms": 1,
	})
	assert.Equal(t, "fallback", source)
	assert.Equal(t, "no_credentials", reason)
}

func TestNew_WithCredentialsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	source, reason := searchSource(t, mapConfig{
		"modules.flight-search.amadeus.base_url":      srv.URL,
		"modules.flight-search.amadeus.client_id":     "id",
		"modules.flight-search.amadeus.client_secret": "secret",
		"modules.flight-search.amadeus.rate_limit_ms": 1,
		"modules.flight-search.fallback.delay_ms":     1,
	})
	assert.Equal(t, "fallback", source)
	assert.Equal(t, "auth_failed", reason)
}
