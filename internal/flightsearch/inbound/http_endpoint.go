package inbound

import (
	"context"
	"net/http"

	"github.com/sappiah085/flight/internal/pkg/pkgvalidator"
)

type HTTPEndpoint struct {
	uc        uc
	validator *pkgvalidator.Validator
}

func (h *HTTPEndpoint) Search(ctx context.Context, r *http.Request) (any, error) {
	var req SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	query, err := h.parseSearchQuery(req)
	if err != nil {
		return nil, err
	}

	// detached so a client hanging up does not cancel the remote call mid-flight
	snapshot, err := h.uc.Search(context.WithoutCancel(ctx), query)
	if err != nil {
		return nil, err
	}

	return mapState(snapshot), nil
}

func (h *HTTPEndpoint) Flights(_ context.Context, _ *http.Request) (any, error) {
	offers := h.uc.FilteredOffers()
	return FlightsResponse{
		Total:   len(offers),
		Flights: mapOffers(offers),
	}, nil
}

func (h *HTTPEndpoint) PriceSeries(_ context.Context, _ *http.Request) (any, error) {
	points, err := h.uc.PriceSeries()
	if err != nil {
		return nil, err
	}
	return PriceSeriesResponse{Points: mapPricePoints(points)}, nil
}

func (h *HTTPEndpoint) Filters(_ context.Context, _ *http.Request) (any, error) {
	return mapFilters(h.uc.Filters()), nil
}

func (h *HTTPEndpoint) PatchFilters(_ context.Context, r *http.Request) (any, error) {
	var req FilterPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	spec, err := h.uc.SetFilters(req.toPatch())
	if err != nil {
		return nil, err
	}
	return mapFilters(spec), nil
}

func (h *HTTPEndpoint) ReplaceFilters(_ context.Context, r *http.Request) (any, error) {
	var req FilterSpecRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	if err := h.validator.Validate(req); err != nil {
		return nil, err
	}

	spec, err := h.uc.ReplaceFilters(req.toSpec())
	if err != nil {
		return nil, err
	}
	return mapFilters(spec), nil
}

func (h *HTTPEndpoint) ResetFilters(_ context.Context, _ *http.Request) (any, error) {
	return mapFilters(h.uc.ResetFilters()), nil
}

func (h *HTTPEndpoint) State(_ context.Context, _ *http.Request) (any, error) {
	return mapState(h.uc.Snapshot()), nil
}
