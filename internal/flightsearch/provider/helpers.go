package provider

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sappiah085/flight/internal/flightsearch/entity"
)

var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:\d+(?:\.\d+)?S)?)?$`)

// formatISODuration turns an ISO-8601 duration such as PT7H5M into "7h 5m".
// Days fold into hours; seconds are dropped.
func formatISODuration(value string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	m := isoDurationRe.FindStringSubmatch(normalized)
	if m == nil || normalized == "P" || normalized == "PT" {
		return "", fmt.Errorf("%w: duration %q", ErrMalformedResponse, value)
	}
	days, hours, minutes := atoiOrZero(m[1]), atoiOrZero(m[2]), atoiOrZero(m[3])
	return entity.FormatDuration(days*24+hours, minutes), nil
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// clockOf extracts HH:MM from a local timestamp like 2025-06-01T10:30:00.
func clockOf(at string) (string, error) {
	_, clock, ok := strings.Cut(at, "T")
	if !ok || len(clock) < 5 {
		return "", fmt.Errorf("%w: timestamp %q", ErrMalformedResponse, at)
	}
	clock = clock[:5]
	if _, err := time.Parse("15:04", clock); err != nil {
		return "", fmt.Errorf("%w: timestamp %q", ErrMalformedResponse, at)
	}
	return clock, nil
}

func parsePrice(total string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(total), 64)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("%w: price %q", ErrMalformedResponse, total)
	}
	return price, nil
}
