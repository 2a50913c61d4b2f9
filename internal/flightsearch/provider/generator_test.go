package provider

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
)

var searchDay = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestSeedFor(t *testing.T) {
	var want uint32
	for _, r := range "JFK-LHR-Sun Jun 01 2025" {
		want += uint32(r)
	}
	assert.Equal(t, want, SeedFor("JFK", "LHR", searchDay))
	assert.Equal(t, want, SeedFor("JFK", "LHR", searchDay.Add(15*time.Hour)))
}

func TestLCG_Deterministic(t *testing.T) {
	a, b := NewLCG(42), NewLCG(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
	assert.Equal(t, 0, NewLCG(1).Intn(0))
}

func TestGenerator_Deterministic(t *testing.T) {
	first := NewGenerator().Generate("JFK", "LHR", searchDay)
	second := NewGenerator().Generate("JFK", "LHR", searchDay)
	assert.Equal(t, first, second)

	other := NewGenerator().Generate("JFK", "LHR", searchDay.AddDate(0, 0, 1))
	assert.NotEqual(t, first, other)
}

func TestGenerator_JFKtoLHR(t *testing.T) {
	offers := NewGenerator().Generate("JFK", "LHR", searchDay)

	require.GreaterOrEqual(t, len(offers), 15)
	require.LessOrEqual(t, len(offers), 24)

	ids := map[string]bool{}
	for i, o := range offers {
		assert.Contains(t, []int{0, 1, 2}, o.Stops)
		assert.Greater(t, o.Price, 0.0)
		assert.Equal(t, "New York (JFK)", o.DepartureAirport)
		assert.Equal(t, "London (LHR)", o.ArrivalAirport)
		assert.Regexp(t, `^([01]\d|2[0-3]):(00|15|30|45)$`, o.DepartureTime)
		assert.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, o.ArrivalTime)
		assert.Regexp(t, `^([2-9]|1[0-4])h ([0-9]|[1-5][0-9])m$`, o.Duration)
		assert.False(t, ids[o.ID], "duplicate id %s", o.ID)
		ids[o.ID] = true

		_, ok := entity.AirlineByCode(o.ID[:2])
		assert.True(t, ok, o.ID)
		if i > 0 {
			assert.LessOrEqual(t, offers[i-1].Price, o.Price)
		}
	}
}

func TestGenerator_ArrivalWraps(t *testing.T) {
	for _, o := range NewGenerator().Generate("SFO", "SIN", searchDay) {
		dep, err := time.Parse("15:04", o.DepartureTime)
		require.NoError(t, err)
		arr, err := time.Parse("15:04", o.ArrivalTime)
		require.NoError(t, err)

		var h, m int
		_, err = fmt.Sscanf(o.Duration, "%dh %dm", &h, &m)
		require.NoError(t, err)

		assert.Equal(t, (dep.Hour()+h)%24, arr.Hour(), o.ID)
		assert.Equal(t, (dep.Minute()+m)%60, arr.Minute(), o.ID)
	}
}

func TestGenerator_CountVariesAcrossDates(t *testing.T) {
	g := NewGenerator()
	counts := map[int]int{}
	for d := 0; d < 365; d++ {
		counts[len(g.Generate("JFK", "LHR", searchDay.AddDate(0, 0, d)))]++
	}
	assert.GreaterOrEqual(t, len(counts), 5, "offer counts seen: %v", counts)
	for n := range counts {
		assert.GreaterOrEqual(t, n, 15)
		assert.LessOrEqual(t, n, 24)
	}
}

func TestMixSeed(t *testing.T) {
	assert.Equal(t, mixSeed(1700), mixSeed(1700))
	assert.NotEqual(t, mixSeed(1700), mixSeed(1701))
	// adjacent seeds must land in different tenths of the first draw
	a, b := NewLCG(mixSeed(1700)).Float64(), NewLCG(mixSeed(1701)).Float64()
	assert.Equal(t, 3, int(a*10))
	assert.Equal(t, 1, int(b*10))
}

func TestGenerator_UnknownAirportPassthrough(t *testing.T) {
	offers := NewGenerator().Generate("Springfield", "XYZ", searchDay)
	require.NotEmpty(t, offers)
	assert.Equal(t, "Springfield", offers[0].DepartureAirport)
	assert.Equal(t, "XYZ", offers[0].ArrivalAirport)
}

func TestGenerator_StopPricing(t *testing.T) {
	// nonstop carries the 1.5 multiplier, so across a large sample its mean
	// price sits above the connecting buckets
	sum := map[int]float64{}
	n := map[int]int{}
	g := NewGenerator()
	for d := 0; d < 60; d++ {
		for _, o := range g.Generate("CDG", "NRT", searchDay.AddDate(0, 0, d)) {
			sum[o.Stops] += o.Price
			n[o.Stops]++
		}
	}
	require.NotZero(t, n[0])
	require.NotZero(t, n[2])
	assert.Greater(t, sum[0]/float64(n[0]), sum[2]/float64(n[2]))
	assert.Greater(t, n[0], n[1])
}
