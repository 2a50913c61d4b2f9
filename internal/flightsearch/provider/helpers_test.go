package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatISODuration(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "PT2H30M", want: "2h 30m"},
		{in: "PT7H", want: "7h 0m"},
		{in: "PT45M", want: "0h 45m"},
		{in: "P1DT2H5M", want: "26h 5m"},
		{in: "pt1h1m", want: "1h 1m"},
		{in: "PT1H2M30S", want: "1h 2m"},
		{in: "", wantErr: true},
		{in: "PT", wantErr: true},
		{in: "2h 30m", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := formatISODuration(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedResponse)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockOf(t *testing.T) {
	got, err := clockOf("2025-06-01T08:05:00")
	assert.NoError(t, err)
	assert.Equal(t, "08:05", got)

	for _, bad := range []string{"", "2025-06-01", "2025-06-01T8:5", "2025-06-01T99:99:00"} {
		_, err := clockOf(bad)
		assert.ErrorIs(t, err, ErrMalformedResponse, bad)
	}
}

func TestParsePrice(t *testing.T) {
	got, err := parsePrice("412.37")
	assert.NoError(t, err)
	assert.Equal(t, 412.37, got)

	_, err = parsePrice("abc")
	assert.ErrorIs(t, err, ErrMalformedResponse)
	_, err = parsePrice("-1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
