package flightsearch

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sappiah085/flight/internal/flightsearch/inbound"
	"github.com/sappiah085/flight/internal/flightsearch/provider"
	"github.com/sappiah085/flight/internal/flightsearch/usecase"
	"github.com/sappiah085/flight/internal/pkg/pkgconfig"
	"github.com/sappiah085/flight/internal/pkg/pkgrouter"
)

const configPrefix = "modules.flight-search."

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	uc := usecase.New(usecase.Dependency{
		Searcher: newAdapter(dep.Config),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

func newAdapter(cfg pkgconfig.Config) *provider.Adapter {
	var opts []provider.AdapterOption
	if delayMs := cfg.GetInt(configPrefix + "fallback.delay_ms"); delayMs > 0 {
		opts = append(opts, provider.WithFallbackDelay(time.Duration(delayMs)*time.Millisecond))
	}

	creds := provider.Credentials{
		ClientID:     cfg.GetString(configPrefix + "amadeus.client_id"),
		ClientSecret: cfg.GetString(configPrefix + "amadeus.client_secret"),
	}
	if !creds.Configured() {
		log.Warn().Msg("amadeus credentials not configured, serving generated offers only")
		return provider.NewAdapter(nil, nil, opts...)
	}

	var remote provider.Provider = provider.NewAmadeusClient(provider.AmadeusConfig{
		BaseURL:     cfg.GetString(configPrefix + "amadeus.base_url"),
		Credentials: creds,
		RetryMax:    cfg.GetInt(configPrefix + "amadeus.retry_max"),
		Timeout:     time.Duration(cfg.GetInt(configPrefix+"amadeus.timeout_ms")) * time.Millisecond,
	})

	if rateLimitMs := cfg.GetInt(configPrefix + "amadeus.rate_limit_ms"); rateLimitMs > 0 {
		remote = provider.NewRateLimitedProvider(remote, time.Duration(rateLimitMs)*time.Millisecond)
	}

	return provider.NewAdapter(remote, nil, opts...)
}
