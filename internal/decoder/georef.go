package decoder

import (
	"math"
)

// tancEarthRadius is the fixed sphere radius (meters) used by TANC
// navigation. The block carries no radius of its own; McIDAS hardcodes
// this value for the tangent cone.
const tancEarthRadius = 6371100.0

// Extent is the axis-aligned bounding box of the decoded grid in its
// native coordinate space (degrees for geographic, meters for projected).
type Extent struct {
	West  float64
	East  float64
	South float64
	North float64
}

// Georeference maps image pixels to real-world coordinates: a CRS, one
// coordinate per pixel column/row, a lon/lat pair per pixel, and the grid
// extent. It is derived from the directory and navigation records and is
// never stored in the file.
type Georeference struct {
	CRS CRS

	// X and Y are per-column / per-row coordinates in the CRS's units.
	X []float64
	Y []float64

	// Lons and Lats have one value per pixel, shape [lines][elements].
	Lons [][]float64
	Lats [][]float64

	Extent    Extent
	Projected bool
}

// BuildGeoreference derives the georeferencing model for a decoded file.
//
// It is a pure function of the two records: recomputing it yields an
// identical result. Navigation types without implemented projection math
// fail with ErrUnsupportedNavigation rather than guessing.
func BuildGeoreference(dir *Directory, nav *Navigation) (*Georeference, error) {
	if nav == nil {
		return nil, &ErrUnsupportedNavigation{Type: "none"}
	}

	switch nav.Type {
	case NavRECT:
		return rectGeoreference(dir, nav), nil
	case NavMERC:
		return mercGeoreference(dir, nav), nil
	case NavTANC:
		return tancGeoreference(dir, nav), nil
	}

	return nil, &ErrUnsupportedNavigation{Type: nav.Type}
}

// rectGeoreference handles equirectangular (plate carree) navigation.
//
// The navigation block anchors one image row/column to a geographic
// coordinate; the grid is filled by stepping outward at dx/dy degrees
// per pixel.
func rectGeoreference(dir *Directory, nav *Navigation) *Georeference {
	yres := float64(dir.LineResolution)
	xres := float64(dir.ElementResolution)
	nx := int(dir.DataPerLine)
	ny := int(dir.ImageLines)

	// Some archives carry dx/dy scaled by 1e6 instead of 1e4; the header
	// carries no revision flag, so the magnitude is the only tell. Values
	// above 1e4 would be nonsense under the older scaling.
	dx := float64(nav.Int("dx")) / 1e4
	if float64(nav.Int("dx")) > 1e4 {
		dx = float64(nav.Int("dx")) / 1e6
	}
	dy := float64(nav.Int("dy")) / 1e4
	if float64(nav.Int("dy")) > 1e4 {
		dy = float64(nav.Int("dy")) / 1e6
	}

	ecc := float64(nav.Int("sphere_eccentricity")) / 1e6

	// Map the anchor row/column into image coordinates, accounting for
	// the area's line/element resolution.
	diffY := (float64(nav.Int("image_row_number")) - float64(dir.UpperLeftLine)) / yres
	diffX := (float64(nav.Int("image_column_number")) - float64(dir.UpperLeftElement)) / xres

	baseLat := float64(nav.Int("image_row_latitude")) / 1e4
	baseLon := float64(nav.Int("image_column_longitude")) / 1e4

	// A non-negative longitude convention means west-positive longitudes.
	if nav.Int("longitude_convention") >= 0 {
		baseLon = -baseLon
	}

	originLat := baseLat + diffY*dy
	originLon := baseLon - diffX*dx

	g := &Georeference{
		CRS: CRS{
			Proj:         ProjLongLat,
			Radius:       float64(nav.Int("sphere_radius")),
			Eccentricity: ecc,
		},
		X: make([]float64, nx),
		Y: make([]float64, ny),
	}

	for i := 0; i < nx; i++ {
		g.X[i] = float64(i)
	}
	for j := 0; j < ny; j++ {
		g.Y[j] = float64(j)
	}

	g.Lons, g.Lats = makeGrid(ny, nx)
	for j := 0; j < ny; j++ {
		lat := originLat - float64(j)*dy
		for i := 0; i < nx; i++ {
			g.Lons[j][i] = originLon + float64(i)*dx
			g.Lats[j][i] = lat
		}
	}

	g.Extent = computeExtent(originLon, originLat, dx, dy, nx, ny)
	g.Projected = false
	return g
}

// mercGeoreference handles Mercator navigation. Coordinates are produced
// in projected meters and inverse-projected to fill the lon/lat grid.
func mercGeoreference(dir *Directory, nav *Navigation) *Georeference {
	yres := float64(dir.LineResolution)
	xres := float64(dir.ElementResolution)
	nx := int(dir.DataPerLine)
	ny := int(dir.ImageLines)

	latTS := nav.Float("standard_lat")
	latTSRes := float64(nav.Int("standard_lat_resolution"))
	lon0 := nav.Float("central_lon")

	diffY := (float64(nav.Int("equator_line")) - float64(dir.UpperLeftLine)) / yres
	diffX := (float64(nav.Int("central_lon_element")) - float64(dir.UpperLeftElement)) / xres

	// Resolution is meters per pixel at the true-scale latitude, scaled
	// by the area's line/element resolution; there is no stored dx/dy.
	dx := latTSRes * xres
	dy := latTSRes * yres

	if nav.Int("longitude_convention") >= 0 {
		lon0 = -lon0
	}

	crs := CRS{
		Proj:         ProjMercator,
		Radius:       float64(nav.Int("sphere_radius")),
		Eccentricity: float64(nav.Int("sphere_eccentricity")) / 1e6,
		LatTS:        latTS,
		Lon0:         lon0,
	}

	// The projection center is always (0, 0) in projected coordinates,
	// so the origin falls straight out of the anchor offsets.
	originX := -diffX * dx
	originY := diffY * dy

	g := &Georeference{CRS: crs}
	g.X = make([]float64, nx)
	g.Y = make([]float64, ny)
	for i := 0; i < nx; i++ {
		g.X[i] = math.Trunc(originX + float64(i)*dx)
	}
	for j := 0; j < ny; j++ {
		g.Y[j] = math.Trunc(originY - float64(j)*dy)
	}

	g.Lons, g.Lats = inverseGrid(crs, g.X, g.Y)
	g.Extent = computeExtent(originX, originY, dx, dy, nx, ny)
	g.Projected = true
	return g
}

// tancGeoreference handles tangent-cone navigation: a Lambert conformal
// conic with both standard parallels at the tangent latitude, positioned
// by the image coordinates of the pole.
func tancGeoreference(dir *Directory, nav *Navigation) *Georeference {
	yres := float64(dir.LineResolution)
	xres := float64(dir.ElementResolution)
	nx := int(dir.DataPerLine)
	ny := int(dir.ImageLines)

	lon0 := -float64(nav.Int("standard_lon")) / 1e4
	lat1 := float64(nav.Int("standard_lat")) / 1e4
	res := float64(nav.Int("km_per_pixel")) / 1e4 * 1000 // m

	poleLine := float64(nav.Int("image_pole_line")) / 1e4
	poleElement := float64(nav.Int("image_pole_element")) / 1e4
	diffY := (poleLine - float64(dir.UpperLeftLine)) / yres
	diffX := (poleElement - float64(dir.UpperLeftElement)) / xres

	px := diffX * res
	py := diffY * res

	crs := CRS{
		Proj:   ProjLambertConic,
		Radius: tancEarthRadius,
		Lat0:   lat1,
		Lat1:   lat1,
		Lat2:   lat1,
		Lon0:   lon0,
	}

	_, poleY := crs.Forward(lon0, 90)

	uly := poleY + py
	ulx := -px

	g := &Georeference{CRS: crs}
	g.X = make([]float64, nx)
	g.Y = make([]float64, ny)
	for i := 0; i < nx; i++ {
		g.X[i] = math.Trunc(ulx + float64(i)*res)
	}
	for j := 0; j < ny; j++ {
		g.Y[j] = math.Trunc(uly - float64(j)*res)
	}

	g.Lons, g.Lats = inverseGrid(crs, g.X, g.Y)
	g.Extent = computeExtent(ulx, uly, res, res, nx, ny)
	g.Projected = true
	return g
}

// computeExtent transforms the image corners through the affine mapping
// built from the origin and per-pixel resolution, then takes min/max.
//
// The affine coefficients are (a, b, c, d, e, f) for
// x' = a*col + c*row + e, y' = b*col + d*row + f. With no rotation or
// shear and a zero x-translation the corner transform collapses to a
// cheaper direct form; both paths must agree on axis-aligned inputs.
func computeExtent(west, north, dx, dy float64, nx, ny int) Extent {
	a, b := dx, 0.0
	c, d := 0.0, -dy
	e, f := west, north

	if b == 0 && e == 0 {
		return Extent{
			West:  e,
			East:  e + a*float64(nx),
			South: f + d*float64(ny),
			North: f,
		}
	}

	fnx, fny := float64(nx), float64(ny)
	xs := [4]float64{
		e,
		fny*c + e,
		fnx*a + fny*c + e,
		fnx*a + e,
	}
	ys := [4]float64{
		f,
		fny*d + f,
		fnx*b + fny*d + f,
		fnx*b + f,
	}

	ext := Extent{West: xs[0], East: xs[0], South: ys[0], North: ys[0]}
	for k := 1; k < 4; k++ {
		ext.West = math.Min(ext.West, xs[k])
		ext.East = math.Max(ext.East, xs[k])
		ext.South = math.Min(ext.South, ys[k])
		ext.North = math.Max(ext.North, ys[k])
	}
	return ext
}

// makeGrid allocates a pair of ny-by-nx grids.
func makeGrid(ny, nx int) ([][]float64, [][]float64) {
	lons := make([][]float64, ny)
	lats := make([][]float64, ny)
	for j := range lons {
		lons[j] = make([]float64, nx)
		lats[j] = make([]float64, nx)
	}
	return lons, lats
}

// inverseGrid inverse-projects the x/y axis vectors into lon/lat grids.
func inverseGrid(crs CRS, x, y []float64) ([][]float64, [][]float64) {
	lons, lats := makeGrid(len(y), len(x))
	for j, yv := range y {
		for i, xv := range x {
			lons[j][i], lats[j][i] = crs.Inverse(xv, yv)
		}
	}
	return lons, lats
}
