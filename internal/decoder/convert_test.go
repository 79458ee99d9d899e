package decoder

import (
	"math"
	"testing"
)

// TestDMSToDecimal tests packed DDDMMSS conversion
func TestDMSToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		dms      int32
		expected float64
	}{
		{"degrees minutes seconds", 451530, 45 + 15.0/60 + 30.0/3600},
		{"full degrees", 1800000, 180},
		{"zero", 0, 0},
		{"seconds only", 30, 30.0 / 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DMSToDecimal(tt.dms)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("DMSToDecimal(%d) = %v, expected %v", tt.dms, got, tt.expected)
			}
		})
	}
}

// TestRangeLongitude tests 0-360 to -180-180 re-ranging
func TestRangeLongitude(t *testing.T) {
	tests := []struct {
		lon      float64
		expected float64
	}{
		{270, -90},
		{-200, 160},
		{0, 0},
		{180, -180},
		{359, 179},
		{-90, -90},
	}

	for _, tt := range tests {
		if got := RangeLongitude(tt.lon); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("RangeLongitude(%v) = %v, expected %v", tt.lon, got, tt.expected)
		}
	}
}
