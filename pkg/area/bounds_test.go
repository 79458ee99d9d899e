package area

import "testing"

func TestBoundsContains(t *testing.T) {
	b := Bounds{MinLon: -105, MaxLon: -90, MinLat: 30, MaxLat: 45}

	tests := []struct {
		name     string
		lon, lat float64
		want     bool
	}{
		{"center", -97.5, 37.5, true},
		{"on western edge", -105, 37.5, true},
		{"on corner", -90, 45, true},
		{"west of bounds", -106, 37.5, false},
		{"north of bounds", -97.5, 46, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.lon, tt.lat); got != tt.want {
				t.Errorf("Contains(%g, %g) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestBoundsIntersects(t *testing.T) {
	b := Bounds{MinLon: -105, MaxLon: -90, MinLat: 30, MaxLat: 45}

	tests := []struct {
		name  string
		other Bounds
		want  bool
	}{
		{"overlapping", Bounds{MinLon: -95, MaxLon: -85, MinLat: 40, MaxLat: 50}, true},
		{"contained", Bounds{MinLon: -100, MaxLon: -95, MinLat: 35, MaxLat: 40}, true},
		{"touching edge", Bounds{MinLon: -90, MaxLon: -80, MinLat: 30, MaxLat: 45}, true},
		{"disjoint east", Bounds{MinLon: -80, MaxLon: -70, MinLat: 30, MaxLat: 45}, false},
		{"disjoint south", Bounds{MinLon: -105, MaxLon: -90, MinLat: 10, MaxLat: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(b); got != tt.want {
				t.Errorf("Reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsUnion(t *testing.T) {
	a := Bounds{MinLon: -105, MaxLon: -90, MinLat: 30, MaxLat: 45}
	b := Bounds{MinLon: -95, MaxLon: -80, MinLat: 25, MaxLat: 40}

	want := Bounds{MinLon: -105, MaxLon: -80, MinLat: 25, MaxLat: 45}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := b.Union(a); got != want {
		t.Errorf("Reverse union = %+v, want %+v", got, want)
	}
}

func TestBoundsExpand(t *testing.T) {
	b := Bounds{MinLon: -100, MaxLon: -99, MinLat: 49, MaxLat: 50}

	want := Bounds{MinLon: -100.5, MaxLon: -98.5, MinLat: 48.5, MaxLat: 50.5}
	if got := b.Expand(0.5); got != want {
		t.Errorf("Expand(0.5) = %+v, want %+v", got, want)
	}
}
