package usecase

import (
	"math"
	"time"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
)

const (
	fallbackAnchorPrice = 500
	unfilteredMarkup    = 1.2
	jitterSpan          = 0.3
	weekendMultiplier   = 1.15
	windowBeforeDays    = 2
	windowAfterReturn   = 2
	windowOneWayDays    = 14
	labelLayout         = "Jan 2"
)

// RandomSource yields values in [0, 1). It drives the day-to-day chart noise only.
type RandomSource interface {
	Float64() float64
}

// AnchorPrice is the price pinned onto the departure day: the cheapest
// filtered offer, else the cheapest offer marked up, else a flat default.
func AnchorPrice(offers, filtered []entity.Offer) float64 {
	if p, ok := minPrice(filtered); ok {
		return p
	}
	if p, ok := minPrice(offers); ok {
		return p * unfilteredMarkup
	}
	return fallbackAnchorPrice
}

// BuildPriceSeries synthesizes one point per calendar day from two days
// before departure to two days after the return, or fourteen days after
// departure for one-way trips.
func BuildPriceSeries(offers, filtered []entity.Offer, query entity.SearchQuery, rnd RandomSource) []entity.PricePoint {
	departure := entity.CalendarDay(query.DepartureDate)
	start := departure.AddDate(0, 0, -windowBeforeDays)
	end := departure.AddDate(0, 0, windowOneWayDays)
	if query.ReturnDate != nil {
		end = entity.CalendarDay(*query.ReturnDate).AddDate(0, 0, windowAfterReturn)
	}

	anchor := AnchorPrice(offers, filtered)

	points := make([]entity.PricePoint, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		price := anchor
		if !day.Equal(departure) {
			variation := 1 + rnd.Float64()*jitterSpan - jitterSpan/2
			price = math.Round(anchor * variation * dayMultiplier(day))
		}
		points = append(points, entity.PricePoint{
			Date:  day,
			Label: day.Format(labelLayout),
			Price: price,
		})
	}
	return points
}

func dayMultiplier(day time.Time) float64 {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return weekendMultiplier
	default:
		return 1
	}
}

func minPrice(offers []entity.Offer) (float64, bool) {
	if len(offers) == 0 {
		return 0, false
	}
	m := offers[0].Price
	for _, o := range offers[1:] {
		if o.Price < m {
			m = o.Price
		}
	}
	return m, true
}
