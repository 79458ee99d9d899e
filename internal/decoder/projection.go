package decoder

import (
	"fmt"
	"math"
)

// Projection families produced by the georeferencing engine.
const (
	// ProjLongLat is an unprojected geographic coordinate system.
	ProjLongLat = "longlat"

	// ProjMercator is a Mercator projection with a true-scale latitude.
	ProjMercator = "merc"

	// ProjLambertConic is a Lambert conformal conic projection. The AREA
	// tangent-cone navigation uses equal standard parallels at the
	// tangent latitude.
	ProjLambertConic = "lcc"
)

// CRS describes the coordinate reference system derived from an AREA
// navigation block: a sphere/ellipsoid plus projection parameters.
//
// A CRS is a pure value; Forward and Inverse hold no state beyond it.
type CRS struct {
	Proj         string
	Radius       float64 // sphere/semimajor radius, meters
	Eccentricity float64
	LatTS        float64 // true-scale latitude (Mercator)
	Lat0         float64 // latitude of origin (conic)
	Lat1         float64 // first standard parallel
	Lat2         float64 // second standard parallel
	Lon0         float64 // central longitude
}

// Projected reports whether coordinates in this CRS are in projected
// units (meters) rather than degrees.
func (c CRS) Projected() bool {
	return c.Proj != ProjLongLat
}

// String renders the CRS in PROJ parameter form.
func (c CRS) String() string {
	switch c.Proj {
	case ProjMercator:
		return fmt.Sprintf("+proj=merc +R=%g +e=%g +lat_ts=%g +lon_0=%g",
			c.Radius, c.Eccentricity, c.LatTS, c.Lon0)
	case ProjLambertConic:
		return fmt.Sprintf("+proj=lcc +R=%g +lat_0=%g +lat_1=%g +lat_2=%g +lon_0=%g",
			c.Radius, c.Lat0, c.Lat1, c.Lat2, c.Lon0)
	default:
		return fmt.Sprintf("+proj=longlat +R=%g +e=%g", c.Radius, c.Eccentricity)
	}
}

const degToRad = math.Pi / 180

// mercK0 is the Mercator scale factor at the true-scale latitude.
func (c CRS) mercK0() float64 {
	phiTS := c.LatTS * degToRad
	sinTS := math.Sin(phiTS)
	return math.Cos(phiTS) / math.Sqrt(1-c.Eccentricity*c.Eccentricity*sinTS*sinTS)
}

// lccN is the cone constant. With equal standard parallels the cone is
// tangent and n reduces to sin(lat1).
func (c CRS) lccN() float64 {
	return math.Sin(c.Lat1 * degToRad)
}

// lccF is the Lambert conic mapping constant F.
func (c CRS) lccF() float64 {
	phi1 := c.Lat1 * degToRad
	n := c.lccN()
	return math.Cos(phi1) * math.Pow(math.Tan(math.Pi/4+phi1/2), n) / n
}

// Forward maps geographic coordinates (degrees) to CRS coordinates.
// For an unprojected CRS this is the identity.
func (c CRS) Forward(lon, lat float64) (x, y float64) {
	switch c.Proj {
	case ProjMercator:
		k0 := c.mercK0()
		e := c.Eccentricity
		phi := lat * degToRad
		lam := (lon - c.Lon0) * degToRad
		esin := e * math.Sin(phi)
		t := math.Tan(math.Pi/4+phi/2) *
			math.Pow((1-esin)/(1+esin), e/2)
		return c.Radius * k0 * lam, c.Radius * k0 * math.Log(t)

	case ProjLambertConic:
		n := c.lccN()
		f := c.lccF()
		phi := lat * degToRad
		rho := 0.0
		if math.Abs(lat) < 90 {
			rho = c.Radius * f / math.Pow(math.Tan(math.Pi/4+phi/2), n)
		}
		rho0 := c.Radius * f / math.Pow(math.Tan(math.Pi/4+c.Lat0*degToRad/2), n)
		theta := n * (lon - c.Lon0) * degToRad
		return rho * math.Sin(theta), rho0 - rho*math.Cos(theta)
	}

	return lon, lat
}

// Inverse maps CRS coordinates back to geographic coordinates (degrees).
func (c CRS) Inverse(x, y float64) (lon, lat float64) {
	switch c.Proj {
	case ProjMercator:
		k0 := c.mercK0()
		e := c.Eccentricity
		lon = c.Lon0 + x/(c.Radius*k0)/degToRad

		// Ellipsoidal inverse has no closed form; iterate the standard
		// fixed point, which converges in a handful of rounds for any
		// realistic eccentricity.
		t := math.Exp(-y / (c.Radius * k0))
		phi := math.Pi/2 - 2*math.Atan(t)
		for i := 0; i < 15; i++ {
			esin := e * math.Sin(phi)
			next := math.Pi/2 - 2*math.Atan(t*math.Pow((1-esin)/(1+esin), e/2))
			if math.Abs(next-phi) < 1e-12 {
				phi = next
				break
			}
			phi = next
		}
		return lon, phi / degToRad

	case ProjLambertConic:
		n := c.lccN()
		f := c.lccF()
		rho0 := c.Radius * f / math.Pow(math.Tan(math.Pi/4+c.Lat0*degToRad/2), n)
		rho := math.Sqrt(x*x + (rho0-y)*(rho0-y))
		if n < 0 {
			rho = -rho
		}
		theta := math.Atan2(x, rho0-y)
		lon = c.Lon0 + theta/n/degToRad
		if rho == 0 {
			if n > 0 {
				return lon, 90
			}
			return lon, -90
		}
		phi := 2*math.Atan(math.Pow(c.Radius*f/rho, 1/n)) - math.Pi/2
		return lon, phi / degToRad
	}

	return x, y
}
