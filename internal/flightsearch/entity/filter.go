package entity

import "slices"

const DefaultPriceCeiling = 3000

// FilterSpec narrows displayed offers. PriceRange and DepartureTime are
// inclusive [min, max] pairs; DepartureTime is in whole hours.
type FilterSpec struct {
	Stops         []int
	Airlines      []string
	PriceRange    [2]float64
	DepartureTime [2]int
}

func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Stops:         []int{0, 1, 2},
		Airlines:      RosterIDs(),
		PriceRange:    [2]float64{0, DefaultPriceCeiling},
		DepartureTime: [2]int{0, 24},
	}
}

func (f FilterSpec) Clone() FilterSpec {
	f.Stops = slices.Clone(f.Stops)
	f.Airlines = slices.Clone(f.Airlines)
	return f
}
