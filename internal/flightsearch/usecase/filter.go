package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
)

// ApplyFilters returns the offers accepted by spec, sorted by ascending price.
// Equal prices keep their input order. offers is not modified.
func ApplyFilters(offers []entity.Offer, spec entity.FilterSpec) []entity.Offer {
	stops := make(map[int]struct{}, len(spec.Stops))
	for _, s := range spec.Stops {
		if s < 0 {
			continue
		}
		stops[entity.StopBucket(s)] = struct{}{}
	}
	airlines := normalizeAirlines(spec.Airlines)

	filtered := make([]entity.Offer, 0, len(offers))
	for _, offer := range offers {
		if !matchStops(offer, stops) {
			continue
		}
		if !matchAirline(offer, airlines) {
			continue
		}
		if !matchPrice(offer, spec.PriceRange) {
			continue
		}
		if !matchDepartureHour(offer, spec.DepartureTime) {
			continue
		}
		filtered = append(filtered, offer)
	}

	sortByPrice(filtered)
	return filtered
}

func matchStops(o entity.Offer, stops map[int]struct{}) bool {
	_, ok := stops[entity.StopBucket(o.Stops)]
	return ok
}

// matchAirline accepts the offer when its airline id and any selected id
// contain one another, ignoring case. An empty selection accepts nothing.
func matchAirline(o entity.Offer, airlines []string) bool {
	id := entity.CanonicalAirlineID(o.AirlineID)
	if id == "" {
		return false
	}
	for _, want := range airlines {
		if strings.Contains(id, want) || strings.Contains(want, id) {
			return true
		}
	}
	return false
}

func matchPrice(o entity.Offer, r [2]float64) bool {
	return o.Price >= r[0] && o.Price <= r[1]
}

func matchDepartureHour(o entity.Offer, r [2]int) bool {
	hour, ok := departureHour(o.DepartureTime)
	if !ok {
		return false
	}
	return hour >= r[0] && hour <= r[1]
}

func departureHour(clock string) (int, bool) {
	h, _, found := strings.Cut(clock, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	return hour, true
}

func normalizeAirlines(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if id := entity.CanonicalAirlineID(v); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func sortByPrice(offers []entity.Offer) {
	sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })
}
