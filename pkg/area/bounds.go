package area

// Bounds is a geographic bounding box in decimal degrees, as produced by
// scanning a decoded lon/lat grid. Longitudes follow the grid's own
// convention and are not re-ranged, so dateline-crossing coverage keeps
// its raw values.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Contains reports whether the point (lon, lat) falls inside the box,
// edges included.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects reports whether the two boxes overlap. Touching edges
// count as overlap.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Union returns the smallest box covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	u := b
	if other.MinLon < u.MinLon {
		u.MinLon = other.MinLon
	}
	if other.MaxLon > u.MaxLon {
		u.MaxLon = other.MaxLon
	}
	if other.MinLat < u.MinLat {
		u.MinLat = other.MinLat
	}
	if other.MaxLat > u.MaxLat {
		u.MaxLat = other.MaxLat
	}
	return u
}

// Expand grows the box by margin degrees on every side. Useful for
// padding a query region around a point of interest.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
	}
}
