package inbound

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
	"github.com/sappiah085/flight/internal/flightsearch/usecase"
	"github.com/sappiah085/flight/internal/pkg/pkgerror"
)

const (
	maxBodyBytes      = 1 << 20
	defaultPassengers = 1
)

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return pkgerror.NewBusiness("request body is required", pkgerror.CodeInvalidInput)
		}
		return pkgerror.NewBusiness("invalid request body", pkgerror.CodeInvalidInput)
	}
	return nil
}

func (h *HTTPEndpoint) parseSearchQuery(req SearchRequest) (entity.SearchQuery, error) {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)
	req.DepartureDate = strings.TrimSpace(req.DepartureDate)
	req.ReturnDate = strings.TrimSpace(req.ReturnDate)

	if err := h.validator.Validate(req); err != nil {
		return entity.SearchQuery{}, err
	}

	departure, err := time.Parse(entity.DateLayout, req.DepartureDate)
	if err != nil {
		return entity.SearchQuery{}, pkgerror.NewBusiness("invalid departureDate", pkgerror.CodeInvalidInput)
	}

	var returnDate *time.Time
	if req.ReturnDate != "" {
		parsed, err := time.Parse(entity.DateLayout, req.ReturnDate)
		if err != nil {
			return entity.SearchQuery{}, pkgerror.NewBusiness("invalid returnDate", pkgerror.CodeInvalidInput)
		}
		if parsed.Before(departure) {
			return entity.SearchQuery{}, pkgerror.NewBusiness("returnDate must not be before departureDate", pkgerror.CodeInvalidInput)
		}
		returnDate = &parsed
	}

	passengers := req.Passengers
	if passengers == 0 {
		passengers = defaultPassengers
	}

	return entity.SearchQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		Passengers:    passengers,
	}, nil
}

func (r FilterPatchRequest) toPatch() usecase.FilterPatch {
	return usecase.FilterPatch{
		Stops:         r.Stops,
		Airlines:      r.Airlines,
		PriceRange:    r.PriceRange,
		DepartureTime: r.DepartureTime,
	}
}

func (r FilterSpecRequest) toSpec() entity.FilterSpec {
	return entity.FilterSpec{
		Stops:         *r.Stops,
		Airlines:      *r.Airlines,
		PriceRange:    *r.PriceRange,
		DepartureTime: *r.DepartureTime,
	}
}

func mapOffers(offers []entity.Offer) []OfferResponse {
	resp := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, OfferResponse{
			ID:               o.ID,
			DepartureTime:    o.DepartureTime,
			ArrivalTime:      o.ArrivalTime,
			DepartureAirport: o.DepartureAirport,
			ArrivalAirport:   o.ArrivalAirport,
			Duration:         o.Duration,
			Stops:            o.Stops,
			Airline:          o.Airline,
			AirlineID:        o.AirlineID,
			Price:            o.Price,
			Logo:             o.Logo,
		})
	}
	return resp
}

func mapPricePoints(points []entity.PricePoint) []PricePointResponse {
	resp := make([]PricePointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, PricePointResponse{Date: p.ISODate(), Label: p.Label, Price: p.Price})
	}
	return resp
}

func mapFilters(spec entity.FilterSpec) FiltersResponse {
	return FiltersResponse{
		Stops:         append([]int{}, spec.Stops...),
		Airlines:      append([]string{}, spec.Airlines...),
		PriceRange:    spec.PriceRange,
		DepartureTime: spec.DepartureTime,
	}
}

func mapAirlines(refs []entity.AirlineRef) []AirlineResponse {
	resp := make([]AirlineResponse, 0, len(refs))
	for _, a := range refs {
		resp = append(resp, AirlineResponse{ID: a.ID, Name: a.Name})
	}
	return resp
}

func mapState(s usecase.Snapshot) StateResponse {
	resp := StateResponse{
		State:          string(s.State),
		Searching:      s.Searching,
		Source:         string(s.Source),
		FallbackReason: string(s.Reason),
		TotalResults:   s.TotalOffers,
		Airlines:       mapAirlines(s.Airlines),
		Filters:        mapFilters(s.Filters),
	}
	if s.Query != nil {
		q := &QueryResponse{
			Origin:        s.Query.Origin,
			Destination:   s.Query.Destination,
			DepartureDate: s.Query.DepartureDate.Format(entity.DateLayout),
			Passengers:    s.Query.Passengers,
		}
		if s.Query.ReturnDate != nil {
			rd := s.Query.ReturnDate.Format(entity.DateLayout)
			q.ReturnDate = &rd
		}
		resp.Query = q
	}
	return resp
}
