package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/mcidas/pkg/area"
)

// Locate the pixel closest to a geographic point.
func nearestPixel(a *area.Area, lon, lat float64) (int, int) {
	lons, lats := a.Lons(), a.Lats()

	bestJ, bestI := 0, 0
	best := distSq(lons[0][0], lats[0][0], lon, lat)
	for j := range lons {
		for i := range lons[j] {
			d := distSq(lons[j][i], lats[j][i], lon, lat)
			if d < best {
				best, bestJ, bestI = d, j, i
			}
		}
	}
	return bestJ, bestI
}

func distSq(lon1, lat1, lon2, lat2 float64) float64 {
	dlon := lon1 - lon2
	dlat := lat1 - lat2
	return dlon*dlon + dlat*dlat
}

func main() {
	a, err := area.Decode("AREA0100")
	if err != nil {
		log.Fatal(err)
	}

	// The coordinate reference system in PROJ form
	crs := a.CRS()
	fmt.Printf("CRS: %s\n", crs)
	fmt.Printf("Projected: %v\n", a.Projected())

	// Native-unit extent (degrees for geographic, meters for projected)
	ext := a.Extent()
	fmt.Printf("Extent: west=%.1f east=%.1f south=%.1f north=%.1f\n",
		ext.West, ext.East, ext.South, ext.North)

	// Per-pixel coordinates
	j, i := nearestPixel(a, -90.0, 35.0)
	fmt.Printf("Pixel nearest 35N 90W: line %d, element %d\n", j, i)
	fmt.Printf("  location: %.4f, %.4f\n", a.Lats()[j][i], a.Lons()[j][i])
	fmt.Printf("  value: %d\n", a.Image()[j][i])
}
