package entity

import (
	"fmt"
	"time"
)

const MaxStopBucket = 2

// Offer is a single priced flight option. DepartureTime and ArrivalTime are
// wall-clock HH:MM strings without a date.
type Offer struct {
	ID               string
	DepartureTime    string
	ArrivalTime      string
	DepartureAirport string
	ArrivalAirport   string
	Duration         string
	Stops            int
	Airline          string
	AirlineID        string
	Price            float64
	Logo             string
}

// StopBucket clamps a stop count into the 0, 1, 2+ buckets used by filters.
func StopBucket(stops int) int {
	if stops < 0 {
		return 0
	}
	if stops > MaxStopBucket {
		return MaxStopBucket
	}
	return stops
}

func FormatDuration(hours, minutes int) string {
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

type SearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
	Passengers    int
}

type PricePoint struct {
	Date  time.Time
	Label string
	Price float64
}

const DateLayout = "2006-01-02"

// CalendarDay truncates t to midnight UTC of its own calendar date.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p PricePoint) ISODate() string {
	return p.Date.Format(DateLayout)
}
