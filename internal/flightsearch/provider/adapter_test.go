package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
)

type stubProvider struct {
	res   Result
	err   error
	calls int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Search(context.Context, SearchRequest) (Result, error) {
	s.calls++
	return s.res, s.err
}

var jfkLHR = SearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: searchDay}

func TestAdapter_NoCredentials(t *testing.T) {
	a := NewAdapter(nil, nil, WithFallbackDelay(0))

	first := a.Search(context.Background(), jfkLHR)
	second := a.Search(context.Background(), jfkLHR)
	direct := NewGenerator().Generate("JFK", "LHR", searchDay)

	assert.Equal(t, first.Offers, second.Offers)
	assert.Equal(t, direct, first.Offers)
	assert.True(t, first.UsedFallback())
	assert.Equal(t, ReasonNoCredentials, first.Reason)
	assert.Equal(t, entity.RosterRefs(), first.Airlines)
}

func TestAdapter_FallbackDelay(t *testing.T) {
	a := NewAdapter(nil, nil, WithFallbackDelay(30*time.Millisecond))

	start := time.Now()
	a.Search(context.Background(), jfkLHR)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a = NewAdapter(nil, nil, WithFallbackDelay(time.Hour))
	res := a.Search(ctx, jfkLHR)
	assert.NotEmpty(t, res.Offers)
}

func TestAdapter_Reasons(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FallbackReason
	}{
		{name: "missing credentials", err: ErrNoCredentials, want: ReasonNoCredentials},
		{name: "auth failure", err: fmt.Errorf("%w: status 401", ErrUnauthorized), want: ReasonAuthFailed},
		{name: "bad status", err: fmt.Errorf("offers: %w: 500", ErrUnexpectedStatus), want: ReasonFetchFailed},
		{name: "network", err: errors.New("connection refused"), want: ReasonFetchFailed},
		{name: "malformed", err: fmt.Errorf("%w: price", ErrMalformedResponse), want: ReasonMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProvider{err: tt.err}
			res := NewAdapter(stub, nil, WithFallbackDelay(0)).Search(context.Background(), jfkLHR)

			assert.Equal(t, 1, stub.calls)
			assert.Equal(t, SourceFallback, res.Source)
			assert.Equal(t, tt.want, res.Reason)
			assert.Equal(t, NewGenerator().Generate("JFK", "LHR", searchDay), res.Offers)
		})
	}
}

func TestAdapter_Remote(t *testing.T) {
	remote := Result{
		Offers:   []entity.Offer{{ID: "1", Price: 10}},
		Airlines: []entity.AirlineRef{{ID: "delta", Name: "Delta Air Lines"}},
		Source:   SourceRemote,
	}
	stub := &stubProvider{res: remote}

	res := NewAdapter(stub, nil).Search(context.Background(), jfkLHR)
	require.False(t, res.UsedFallback())
	assert.Equal(t, remote, res)
}

func TestRateLimitedProvider(t *testing.T) {
	stub := &stubProvider{res: Result{Source: SourceRemote}}
	p := NewRateLimitedProvider(stub, 20*time.Millisecond)
	assert.Equal(t, "stub", p.Name())

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := p.Search(context.Background(), jfkLHR)
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	assert.Equal(t, 3, stub.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Search(ctx, jfkLHR)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, stub.calls)
}

func TestRateLimitedProvider_ZeroIntervalDoesNotWait(t *testing.T) {
	stub := &stubProvider{res: Result{Source: SourceRemote}}
	p := NewRateLimitedProvider(stub, 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	start := time.Now()
	for i := 0; i < 50; i++ {
		_, err := p.Search(ctx, jfkLHR)
		require.NoError(t, err)
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, 50, stub.calls)
}
