package provider

import (
	"fmt"
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
)

const (
	minOffers        = 15
	offerSpread      = 10
	nonstopShare     = 0.6
	basePrice        = 200
	distanceOffset   = 5
	distanceFactor   = 50
	priceJitter      = 300
	minDurationHours = 2
	durationSpread   = 13
)

var stopMultiplier = [...]float64{1.5, 1.0, 0.8}

// Generator produces reproducible offers for a route and calendar day. It has
// no state; every call derives its own stream from the inputs.
type Generator struct {
	airlines []entity.Airline
}

func NewGenerator() *Generator {
	return &Generator{airlines: entity.Roster()}
}

// SeedFor sums the character codes of "<origin>-<destination>-<Mon Jan 02 2006>".
func SeedFor(origin, destination string, date time.Time) uint32 {
	var seed uint32
	for _, r := range fmt.Sprintf("%s-%s-%s", origin, destination, date.Format("Mon Jan 02 2006")) {
		seed += uint32(r)
	}
	return seed
}

func (g *Generator) Generate(origin, destination string, date time.Time) []entity.Offer {
	seed := SeedFor(origin, destination, date)
	rng := NewLCG(mixSeed(seed))

	lengthGap := utf8.RuneCountInString(origin) - utf8.RuneCountInString(destination)
	if lengthGap < 0 {
		lengthGap = -lengthGap
	}
	distance := float64((lengthGap + distanceOffset) * distanceFactor)

	departureAirport := entity.AirportDisplay(origin)
	arrivalAirport := entity.AirportDisplay(destination)

	count := minOffers + rng.Intn(offerSpread)
	offers := make([]entity.Offer, 0, count)
	for i := 0; i < count; i++ {
		airline := g.airlines[rng.Intn(len(g.airlines))]
		stops := drawStops(rng)

		base := basePrice + distance + rng.Float64()*priceJitter
		price := math.Round(base * stopMultiplier[stops])

		hour := rng.Intn(24)
		minute := rng.Intn(4) * 15
		durationHours := minDurationHours + rng.Intn(durationSpread)
		durationMinutes := rng.Intn(60)

		arrivalHour := (hour + durationHours) % 24
		arrivalMinute := (minute + durationMinutes) % 60

		offers = append(offers, entity.Offer{
			ID:               fmt.Sprintf("%s-%d-%d", airline.Code, i, seed),
			DepartureTime:    entity.FormatClock(hour, minute),
			ArrivalTime:      entity.FormatClock(arrivalHour, arrivalMinute),
			DepartureAirport: departureAirport,
			ArrivalAirport:   arrivalAirport,
			Duration:         entity.FormatDuration(durationHours, durationMinutes),
			Stops:            stops,
			Airline:          airline.Name,
			AirlineID:        airline.ID,
			Price:            price,
			Logo:             airline.Logo,
		})
	}

	sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })
	return offers
}

// mixSeed spreads neighbouring seeds across the whole 32-bit range (murmur3
// finalizer). Character-code sums differ by a few units between dates, and
// the LCG's first output barely moves for such small differences.
func mixSeed(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func drawStops(rng *LCG) int {
	if rng.Float64() < nonstopShare {
		return 0
	}
	if rng.Float64() < 0.5 {
		return 1
	}
	return 2
}
