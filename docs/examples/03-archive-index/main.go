package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beetlebugorg/mcidas/pkg/area"
)

func main() {
	// Index an archive directory: every AREA file is header-decoded
	// (no pixel data) in parallel and placed in an R-tree by coverage.
	opts := area.DefaultLoadOptions()
	opts.ErrorLog = os.Stderr
	opts.Progress = func(loaded, total int) {
		fmt.Printf("\rIndexing: %d/%d", loaded, total)
	}

	idx, err := area.BuildIndexFromDir("/data/areas", opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nIndexed %d files\n", idx.Count())

	// Find GOES imagery over the central US from a single day.
	day := time.Date(1994, 2, 5, 0, 0, 0, 0, time.UTC)
	matches := idx.Query(area.Bounds{
		MinLon: -105, MaxLon: -90,
		MinLat: 30, MaxLat: 45,
	}, area.QueryOptions{
		Start:           day,
		End:             day.Add(24 * time.Hour),
		NavigationTypes: []string{"RECT", "MERC"},
	})

	fmt.Printf("%d images cover the region\n", len(matches))
	for _, e := range matches {
		fmt.Printf("  %s  %s  %s\n", e.Timestamp.Format(time.RFC3339), e.SensorName, e.Path)
	}

	// Fully decode only the newest match.
	if len(matches) > 0 {
		a, err := area.Decode(matches[0].Path)
		if err != nil {
			log.Fatal(err)
		}
		lines, elements := a.Shape()
		fmt.Printf("Decoded %dx%d image from %s\n", lines, elements, a.SensorName())
	}
}
