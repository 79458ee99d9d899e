package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/mcidas/pkg/area"
)

func main() {
	// Decode an AREA file (gzip-compressed files work too)
	a, err := area.Decode("AREA0100")
	if err != nil {
		log.Fatal(err)
	}

	// Print image info
	fmt.Printf("Sensor: %s\n", a.SensorName())
	fmt.Printf("Acquired: %s\n", a.Timestamp())
	lines, elements := a.Shape()
	fmt.Printf("Size: %dx%d, %d bands\n", lines, elements, a.SpectralBands())
	fmt.Printf("Navigation: %s\n", a.NavigationType())

	// Get geographic coverage
	bounds := a.Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinLon, bounds.MinLat,
		bounds.MaxLon, bounds.MaxLat)

	// Access pixel data
	img := a.Image()
	fmt.Printf("Upper-left pixel value: %d\n", img[0][0])
}
