package inbound

import (
	"context"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
	"github.com/sappiah085/flight/internal/flightsearch/usecase"
	"github.com/sappiah085/flight/internal/pkg/pkgrouter"
	"github.com/sappiah085/flight/internal/pkg/pkgvalidator"
)

type uc interface {
	Search(ctx context.Context, query entity.SearchQuery) (usecase.Snapshot, error)
	FilteredOffers() []entity.Offer
	PriceSeries() ([]entity.PricePoint, error)
	Filters() entity.FilterSpec
	SetFilters(patch usecase.FilterPatch) (entity.FilterSpec, error)
	ReplaceFilters(spec entity.FilterSpec) (entity.FilterSpec, error)
	ResetFilters() entity.FilterSpec
	Snapshot() usecase.Snapshot
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc, validator: pkgvalidator.New()}

	r.POST("/search", end.Search)
	r.GET("/flights", end.Flights)
	r.GET("/price-series", end.PriceSeries)
	r.GET("/filters", end.Filters)
	r.PATCH("/filters", end.PatchFilters)
	r.PUT("/filters", end.ReplaceFilters)
	r.POST("/filters/reset", end.ResetFilters)
	r.GET("/state", end.State)
}
