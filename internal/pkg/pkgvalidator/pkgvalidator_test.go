package pkgvalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sappiah085/flight/internal/pkg/pkgerror"
)

type sample struct {
	Origin     string `json:"origin" validate:"required,min=2"`
	Date       string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	Passengers int    `json:"passengers" validate:"min=1,max=9"`
}

func TestValidator(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		in   sample
		want string
	}{
		{name: "valid", in: sample{Origin: "JFK", Date: "2025-06-01", Passengers: 1}},
		{name: "required", in: sample{Date: "2025-06-01", Passengers: 1}, want: "origin is required"},
		{name: "min length", in: sample{Origin: "J", Date: "2025-06-01", Passengers: 1}, want: "origin must be at least 2"},
		{name: "date layout", in: sample{Origin: "JFK", Date: "01/06/2025", Passengers: 1}, want: "departureDate must be a date in YYYY-MM-DD format"},
		{name: "max", in: sample{Origin: "JFK", Date: "2025-06-01", Passengers: 12}, want: "passengers must be at most 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			e := pkgerror.As(err)
			assert.Equal(t, pkgerror.CodeInvalidInput, e.Code())
			assert.Equal(t, tt.want, e.Msg())
		})
	}
}
