package provider

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
	"github.com/sappiah085/flight/internal/pkg/pkglog"
)

const DefaultFallbackDelay = 800 * time.Millisecond

// Adapter tries the remote provider and falls back to the Generator on any
// failure. Search never fails; the returned Result says which source served it.
type Adapter struct {
	remote    Provider
	generator *Generator
	delay     time.Duration
}

type AdapterOption func(*Adapter)

// WithFallbackDelay sets the artificial latency added when no token is available.
func WithFallbackDelay(d time.Duration) AdapterOption {
	return func(a *Adapter) { a.delay = d }
}

// NewAdapter builds an Adapter. A nil remote means mock-only mode.
func NewAdapter(remote Provider, generator *Generator, opts ...AdapterOption) *Adapter {
	if generator == nil {
		generator = NewGenerator()
	}
	a := &Adapter{remote: remote, generator: generator, delay: DefaultFallbackDelay}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Search(ctx context.Context, req SearchRequest) Result {
	if a.remote == nil {
		return a.fallback(ctx, req, ReasonNoCredentials)
	}

	res, err := a.remote.Search(ctx, req)
	if err == nil {
		return res
	}

	reason := classify(err)
	logger := pkglog.FromContext(ctx)
	event := logEvent(logger, reason)
	event.Err(err).
		Str("provider", a.remote.Name()).
		Str("reason", string(reason)).
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Msg("remote search failed, using generated offers")

	return a.fallback(ctx, req, reason)
}

func (a *Adapter) fallback(ctx context.Context, req SearchRequest, reason FallbackReason) Result {
	if reason == ReasonNoCredentials || reason == ReasonAuthFailed {
		a.sleep(ctx)
	}
	return Result{
		Offers:   a.generator.Generate(req.Origin, req.Destination, req.DepartureDate),
		Airlines: entity.RosterRefs(),
		Source:   SourceFallback,
		Reason:   reason,
	}
}

func (a *Adapter) sleep(ctx context.Context) {
	if a.delay <= 0 {
		return
	}
	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func classify(err error) FallbackReason {
	switch {
	case errors.Is(err, ErrNoCredentials):
		return ReasonNoCredentials
	case errors.Is(err, ErrUnauthorized):
		return ReasonAuthFailed
	case errors.Is(err, ErrMalformedResponse):
		return ReasonMalformedResponse
	default:
		return ReasonFetchFailed
	}
}

func logEvent(logger *zerolog.Logger, reason FallbackReason) *zerolog.Event {
	switch reason {
	case ReasonNoCredentials:
		return logger.Debug()
	case ReasonAuthFailed:
		return logger.Warn()
	default:
		return logger.Error()
	}
}
