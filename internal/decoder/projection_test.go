package decoder

import (
	"math"
	"strings"
	"testing"
)

func approx(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

// TestMercatorForward tests the spherical special case against the
// closed-form value: one degree of longitude at the equator.
func TestMercatorForward(t *testing.T) {
	crs := CRS{Proj: ProjMercator, Radius: 6371000}

	x, y := crs.Forward(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Expected origin to project to (0, 0), got (%g, %g)", x, y)
	}

	x, _ = crs.Forward(1, 0)
	want := 6371000 * math.Pi / 180
	if !approx(x, want, 1e-6) {
		t.Errorf("Expected x=%g for 1 degree at equator, got %g", want, x)
	}
}

// TestMercatorRoundTrip tests forward/inverse agreement on the ellipsoid
func TestMercatorRoundTrip(t *testing.T) {
	crs := CRS{
		Proj:         ProjMercator,
		Radius:       6378137,
		Eccentricity: 0.0818191908426215,
		LatTS:        20,
		Lon0:         -75,
	}

	points := []struct{ lon, lat float64 }{
		{-75, 0},
		{-80.5, 25.25},
		{-60, -40},
		{-75, 70},
	}

	for _, p := range points {
		x, y := crs.Forward(p.lon, p.lat)
		lon, lat := crs.Inverse(x, y)
		if !approx(lon, p.lon, 1e-9) || !approx(lat, p.lat, 1e-9) {
			t.Errorf("Round trip (%g, %g) -> (%g, %g) -> (%g, %g)",
				p.lon, p.lat, x, y, lon, lat)
		}
	}
}

// TestLambertConicPole tests pole handling in both directions. The
// tangent-cone positioning depends on the pole projecting to a finite
// point on the central meridian.
func TestLambertConicPole(t *testing.T) {
	crs := CRS{
		Proj:   ProjLambertConic,
		Radius: 6371100,
		Lat0:   25,
		Lat1:   25,
		Lat2:   25,
		Lon0:   -95,
	}

	x, y := crs.Forward(-95, 90)
	if x != 0 {
		t.Errorf("Expected pole on central meridian at x=0, got %g", x)
	}
	if y <= 0 || math.IsInf(y, 0) || math.IsNaN(y) {
		t.Errorf("Expected finite positive pole y, got %g", y)
	}

	lon, lat := crs.Inverse(x, y)
	if lat != 90 {
		t.Errorf("Expected pole inverse lat=90, got %g", lat)
	}
	if !approx(lon, -95, 1e-9) {
		t.Errorf("Expected pole inverse lon=-95, got %g", lon)
	}
}

// TestLambertConicRoundTrip tests forward/inverse agreement away from
// the pole.
func TestLambertConicRoundTrip(t *testing.T) {
	crs := CRS{
		Proj:   ProjLambertConic,
		Radius: 6371100,
		Lat0:   45,
		Lat1:   45,
		Lat2:   45,
		Lon0:   -100,
	}

	points := []struct{ lon, lat float64 }{
		{-100, 45},
		{-120, 30},
		{-80, 60},
		{-100.001, 44.999},
	}

	for _, p := range points {
		x, y := crs.Forward(p.lon, p.lat)
		lon, lat := crs.Inverse(x, y)
		if !approx(lon, p.lon, 1e-9) || !approx(lat, p.lat, 1e-9) {
			t.Errorf("Round trip (%g, %g) -> (%g, %g) -> (%g, %g)",
				p.lon, p.lat, x, y, lon, lat)
		}
	}

	// True scale at the tangent latitude: a small step along the standard
	// parallel spans very nearly its arc length.
	x1, _ := crs.Forward(-100, 45)
	x2, _ := crs.Forward(-99.9, 45)
	arc := 0.1 * degToRad * crs.Radius * math.Cos(45*degToRad)
	if !approx(x2-x1, arc, arc*1e-4) {
		t.Errorf("Expected near-true scale at tangent latitude: got %g, want %g", x2-x1, arc)
	}
}

// TestUnprojectedIdentity tests that a geographic CRS passes coordinates
// through unchanged.
func TestUnprojectedIdentity(t *testing.T) {
	crs := CRS{Proj: ProjLongLat, Radius: 6371200}

	if crs.Projected() {
		t.Error("longlat CRS should not report projected")
	}

	x, y := crs.Forward(-100.5, 42.25)
	if x != -100.5 || y != 42.25 {
		t.Errorf("Expected identity forward, got (%g, %g)", x, y)
	}
	lon, lat := crs.Inverse(-100.5, 42.25)
	if lon != -100.5 || lat != 42.25 {
		t.Errorf("Expected identity inverse, got (%g, %g)", lon, lat)
	}
}

// TestCRSString tests the PROJ parameter rendering
func TestCRSString(t *testing.T) {
	tests := []struct {
		crs  CRS
		want string
	}{
		{CRS{Proj: ProjLongLat, Radius: 6371200}, "+proj=longlat"},
		{CRS{Proj: ProjMercator, Radius: 6371000, LatTS: 20}, "+proj=merc"},
		{CRS{Proj: ProjLambertConic, Radius: 6371100, Lat1: 25}, "+proj=lcc"},
	}

	for _, tt := range tests {
		got := tt.crs.String()
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("Expected %q prefix, got %q", tt.want, got)
		}
	}
}
