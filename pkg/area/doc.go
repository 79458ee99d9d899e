// Package area decodes McIDAS AREA satellite imagery files.
//
// An AREA file is a fixed-layout binary container: a 64-word directory
// block describing the image geometry and block offsets, an optional
// type-tagged navigation block describing the viewing geometry, and
// row-oriented pixel data. Decoding produces five outputs: the pixel
// grid, per-axis coordinate vectors, a per-pixel longitude/latitude grid,
// a coordinate reference system descriptor, and the acquisition time.
//
// # Basic Usage
//
//	a, err := area.Decode("AREA0100")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ny, nx := a.Shape()
//	fmt.Printf("%s %dx%d %s\n", a.SensorName(), nx, ny, a.Timestamp())
//	fmt.Printf("CRS: %s\n", a.CRS())
//
// # Georeferencing
//
// The navigation block's discriminant selects the projection math. RECT
// (equirectangular), MERC (Mercator) and TANC (tangent cone) navigation
// produce full georeferencing; the remaining catalog types fail the
// decode with a capability error naming the type.
//
//	for j, row := range a.Image() {
//	    for i := range row {
//	        fmt.Printf("%.3f,%.3f=%d ", a.Lons()[j][i], a.Lats()[j][i], row[i])
//	    }
//	}
//
// # Archive Indexing
//
// Collections of AREA files can be indexed spatially without decoding
// pixel data:
//
//	idx, err := area.BuildIndexFromDir("/data/areas", area.DefaultLoadOptions())
//	matches := idx.Query(area.Bounds{
//	    MinLon: -105, MaxLon: -90, MinLat: 30, MaxLat: 45,
//	}, area.QueryOptions{})
package area
