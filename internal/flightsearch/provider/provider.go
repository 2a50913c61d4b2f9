package provider

import (
	"context"
	"errors"
	"time"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
)

var (
	ErrNoCredentials     = errors.New("no client credentials configured")
	ErrUnauthorized      = errors.New("token exchange failed")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed response")
)

type SearchRequest struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
}

type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

type FallbackReason string

const (
	ReasonNone              FallbackReason = ""
	ReasonNoCredentials     FallbackReason = "no_credentials"
	ReasonAuthFailed        FallbackReason = "auth_failed"
	ReasonFetchFailed       FallbackReason = "fetch_failed"
	ReasonMalformedResponse FallbackReason = "malformed_response"
)

// Result is the outcome of a search: either live offers, or generated ones
// together with the reason the live source was not used.
type Result struct {
	Offers   []entity.Offer
	Airlines []entity.AirlineRef
	Source   Source
	Reason   FallbackReason
}

func (r Result) UsedFallback() bool {
	return r.Source == SourceFallback
}

type Provider interface {
	Name() string
	Search(ctx context.Context, req SearchRequest) (Result, error)
}
