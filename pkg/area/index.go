package area

import (
	"sort"
	"time"

	"github.com/dhconnelly/rtreego"
)

// AreaIndex provides fast spatial queries over a collection of AREA files.
//
// The index stores lightweight metadata per file (coverage bounds, sensor,
// timestamp) backed by an R-tree, so only files whose coverage intersects a
// region of interest need to be fully decoded. Entries are built from
// header-only decodes, which skip the pixel data entirely.
//
// Example:
//
//	idx, err := area.BuildIndexFromDir("/data/areas", area.DefaultLoadOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches := idx.Query(area.Bounds{
//	    MinLon: -105, MaxLon: -90,
//	    MinLat: 30, MaxLat: 45,
//	}, area.QueryOptions{})
//	fmt.Printf("%d images cover the region\n", len(matches))
type AreaIndex struct {
	entries []IndexEntry
	rtree   *rtreego.Rtree
}

// IndexEntry contains indexed metadata for a single AREA file.
type IndexEntry struct {
	Path           string    // Path the entry was decoded from
	AreaNumber     int32     // McIDAS area number
	SensorSource   int32     // Sensor-source code
	SensorName     string    // Satellite/sensor name, if known
	NavigationType string    // 4-character navigation discriminant
	Timestamp      time.Time // Image acquisition time
	GeoBounds      Bounds    // Geographic coverage
}

// Bounds implements the rtreego.Spatial interface, converting geographic
// bounds to an R-tree rectangle.
func (e IndexEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.GeoBounds.MinLon, e.GeoBounds.MinLat}

	// R-tree rectangles need non-zero dimensions; single-pixel coverage
	// gets a small epsilon.
	const epsilon = 0.0001
	lonLength := e.GeoBounds.MaxLon - e.GeoBounds.MinLon
	latLength := e.GeoBounds.MaxLat - e.GeoBounds.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// QueryOptions filters spatial query results.
type QueryOptions struct {
	// Start and End bound the acquisition time. Zero values disable the
	// respective cut.
	Start time.Time
	End   time.Time

	// SensorSources restricts results to these sensor-source codes.
	// Empty means all sensors.
	SensorSources []int32

	// NavigationTypes restricts results to these navigation discriminants
	// (e.g. "RECT", "MERC"). Empty means all types.
	NavigationTypes []string
}

// BuildIndex creates an index from already-built entries.
func BuildIndex(entries []IndexEntry) *AreaIndex {
	rtree := rtreego.NewTree(2, 25, 50)
	for _, e := range entries {
		rtree.Insert(e)
	}
	return &AreaIndex{
		entries: entries,
		rtree:   rtree,
	}
}

// BuildIndexFromDir builds an index by discovering and header-decoding
// every AREA file under root. Decoding runs in parallel per LoadOptions.
func BuildIndexFromDir(root string, opts LoadOptions) (*AreaIndex, error) {
	paths, err := DiscoverAreas(root)
	if err != nil {
		return nil, err
	}

	entries, errs := loadEntries(paths, opts)
	if len(entries) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}

	return BuildIndex(entries), nil
}

// Query returns entries intersecting the given bounds, newest first.
func (idx *AreaIndex) Query(bounds Bounds, opts QueryOptions) []IndexEntry {
	point := rtreego.Point{bounds.MinLon, bounds.MinLat}
	lengths := []float64{
		bounds.MaxLon - bounds.MinLon,
		bounds.MaxLat - bounds.MinLat,
	}
	queryRect, _ := rtreego.NewRect(point, lengths)

	var result []IndexEntry
	for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
		entry := spatial.(IndexEntry)

		if !opts.Start.IsZero() && entry.Timestamp.Before(opts.Start) {
			continue
		}
		if !opts.End.IsZero() && entry.Timestamp.After(opts.End) {
			continue
		}
		if len(opts.SensorSources) > 0 && !containsInt32(opts.SensorSources, entry.SensorSource) {
			continue
		}
		if len(opts.NavigationTypes) > 0 && !containsString(opts.NavigationTypes, entry.NavigationType) {
			continue
		}

		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return result
}

// Count returns the total number of entries in the index.
func (idx *AreaIndex) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all entry bounds in the index.
func (idx *AreaIndex) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}
	bounds := idx.entries[0].GeoBounds
	for i := 1; i < len(idx.entries); i++ {
		bounds = bounds.Union(idx.entries[i].GeoBounds)
	}
	return bounds
}

// All returns all entries in the index.
func (idx *AreaIndex) All() []IndexEntry {
	return idx.entries
}

func containsInt32(slice []int32, v int32) bool {
	for _, s := range slice {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(slice []string, v string) bool {
	for _, s := range slice {
		if s == v {
			return true
		}
	}
	return false
}
