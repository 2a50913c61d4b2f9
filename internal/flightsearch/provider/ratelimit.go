package provider

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

type rateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider keeps outbound searches at least interval apart.
// A context cancelled while waiting surfaces as the provider's error.
func NewRateLimitedProvider(p Provider, interval time.Duration) Provider {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &rateLimitedProvider{
		provider: p,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

func (r *rateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *rateLimitedProvider) Search(ctx context.Context, req SearchRequest) (Result, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return Result{}, err
	}
	return r.provider.Search(ctx, req)
}
