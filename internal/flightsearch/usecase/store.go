package usecase

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
	"github.com/sappiah085/flight/internal/flightsearch/provider"
	"github.com/sappiah085/flight/internal/pkg/pkgerror"
	"github.com/sappiah085/flight/internal/pkg/pkglog"
)

const priceCeilingMargin = 100

var ErrNoSearch = pkgerror.NewBusiness("no search has been made yet", pkgerror.CodeConflict)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

type Searcher interface {
	Search(ctx context.Context, req provider.SearchRequest) provider.Result
}

type Dependency struct {
	Searcher Searcher
	Jitter   RandomSource
}

// FilterPatch carries a partial filter update; nil fields are left unchanged.
type FilterPatch struct {
	Stops         *[]int
	Airlines      *[]string
	PriceRange    *[2]float64
	DepartureTime *[2]int
}

type Snapshot struct {
	State       State
	Searching   bool
	Query       *entity.SearchQuery
	Filters     entity.FilterSpec
	Airlines    []entity.AirlineRef
	TotalOffers int
	Source      provider.Source
	Reason      provider.FallbackReason
}

// QueryStore holds the session's search, its offers and the active filters,
// and derives the filtered list and price series from them.
//
// Every search is numbered when dispatched; a completion that is not the
// newest dispatched search is dropped, so an older slow response never
// overwrites a newer one. Its caller gets the current snapshot instead.
type QueryStore struct {
	searcher Searcher
	jitter   RandomSource

	mu       sync.RWMutex
	seq      uint64
	state    State
	query    *entity.SearchQuery
	offers   []entity.Offer
	airlines []entity.AirlineRef
	filters  entity.FilterSpec
	source   provider.Source
	reason   provider.FallbackReason
}

func New(dep Dependency) *QueryStore {
	jitter := dep.Jitter
	if jitter == nil {
		jitter = provider.NewSafeRand()
	}
	return &QueryStore{
		searcher: dep.Searcher,
		jitter:   jitter,
		state:    StateIdle,
		airlines: entity.RosterRefs(),
		filters:  entity.DefaultFilterSpec(),
	}
}

func (s *QueryStore) Search(ctx context.Context, query entity.SearchQuery) (Snapshot, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state = StateLoading
	s.query = &query
	s.mu.Unlock()

	res := s.searcher.Search(ctx, provider.SearchRequest{
		Origin:        query.Origin,
		Destination:   query.Destination,
		DepartureDate: query.DepartureDate,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		pkglog.FromContext(ctx).Debug().
			Uint64("search", seq).
			Uint64("latest", s.seq).
			Msg("discarding superseded search result")
		return s.snapshotLocked(), nil
	}

	s.offers = res.Offers
	s.airlines = res.Airlines
	s.source = res.Source
	s.reason = res.Reason
	s.filters = defaultFiltersFor(s.filters, res)
	s.state = StateReady

	pkglog.FromContext(ctx).Info().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Str("source", string(res.Source)).
		Str("reason", string(res.Reason)).
		Int("offers", len(res.Offers)).
		Msg("search completed")

	return s.snapshotLocked(), nil
}

// defaultFiltersFor accepts everything the result contains. The price
// ceiling only ever grows so a narrower later search keeps the wider range.
func defaultFiltersFor(prev entity.FilterSpec, res provider.Result) entity.FilterSpec {
	airlines := make([]string, 0, len(res.Airlines))
	for _, a := range res.Airlines {
		airlines = append(airlines, a.ID)
	}

	ceiling := prev.PriceRange[1]
	if len(res.Offers) > 0 {
		maxPrice := res.Offers[0].Price
		for _, o := range res.Offers[1:] {
			maxPrice = math.Max(maxPrice, o.Price)
		}
		ceiling = math.Max(ceiling, maxPrice+priceCeilingMargin)
	}

	return entity.FilterSpec{
		Stops:         []int{0, 1, 2},
		Airlines:      airlines,
		PriceRange:    [2]float64{0, ceiling},
		DepartureTime: [2]int{0, 24},
	}
}

func (s *QueryStore) SetFilters(patch FilterPatch) (entity.FilterSpec, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.filters.Clone()
	if patch.Stops != nil {
		next.Stops = *patch.Stops
	}
	if patch.Airlines != nil {
		next.Airlines = *patch.Airlines
	}
	if patch.PriceRange != nil {
		next.PriceRange = *patch.PriceRange
	}
	if patch.DepartureTime != nil {
		next.DepartureTime = *patch.DepartureTime
	}

	normalized, err := normalizeFilters(next)
	if err != nil {
		return entity.FilterSpec{}, err
	}
	s.filters = normalized
	return s.filters.Clone(), nil
}

func (s *QueryStore) ReplaceFilters(spec entity.FilterSpec) (entity.FilterSpec, error) {
	normalized, err := normalizeFilters(spec.Clone())
	if err != nil {
		return entity.FilterSpec{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = normalized
	return s.filters.Clone(), nil
}

func (s *QueryStore) ResetFilters() entity.FilterSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = entity.DefaultFilterSpec()
	return s.filters.Clone()
}

func (s *QueryStore) Filters() entity.FilterSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Clone()
}

func (s *QueryStore) FilteredOffers() []entity.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ApplyFilters(s.offers, s.filters)
}

func (s *QueryStore) PriceSeries() ([]entity.PricePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.query == nil {
		return nil, ErrNoSearch
	}
	filtered := ApplyFilters(s.offers, s.filters)
	return BuildPriceSeries(s.offers, filtered, *s.query, s.jitter), nil
}

func (s *QueryStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *QueryStore) Searching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateLoading
}

func (s *QueryStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *QueryStore) snapshotLocked() Snapshot {
	var query *entity.SearchQuery
	if s.query != nil {
		q := *s.query
		query = &q
	}
	return Snapshot{
		State:       s.state,
		Searching:   s.state == StateLoading,
		Query:       query,
		Filters:     s.filters.Clone(),
		Airlines:    append([]entity.AirlineRef(nil), s.airlines...),
		TotalOffers: len(s.offers),
		Source:      s.source,
		Reason:      s.reason,
	}
}

func normalizeFilters(spec entity.FilterSpec) (entity.FilterSpec, error) {
	seen := map[int]bool{}
	stops := make([]int, 0, len(spec.Stops))
	for _, v := range spec.Stops {
		if v < 0 {
			return entity.FilterSpec{}, invalidFilter("stops must not be negative")
		}
		b := entity.StopBucket(v)
		if !seen[b] {
			seen[b] = true
			stops = append(stops, b)
		}
	}
	sort.Ints(stops)
	spec.Stops = stops

	spec.Airlines = normalizeAirlines(spec.Airlines)

	if spec.PriceRange[0] < 0 || spec.PriceRange[0] > spec.PriceRange[1] {
		return entity.FilterSpec{}, invalidFilter("priceRange must be a non-negative [min, max] pair")
	}
	if spec.DepartureTime[0] < 0 || spec.DepartureTime[1] > 24 || spec.DepartureTime[0] > spec.DepartureTime[1] {
		return entity.FilterSpec{}, invalidFilter("departureTime must be a [min, max] hour pair within 0-24")
	}
	return spec, nil
}

func invalidFilter(msg string) error {
	return pkgerror.NewBusiness(msg, pkgerror.CodeInvalidInput)
}
