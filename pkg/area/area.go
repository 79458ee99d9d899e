// Package area provides a clean public API for decoding McIDAS AREA
// satellite imagery files.
package area

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beetlebugorg/mcidas/internal/decoder"
)

// CRS describes the coordinate reference system derived from an AREA
// file's navigation block: a projection family plus its sphere and
// placement parameters.
type CRS struct {
	// Proj is the projection family: "longlat", "merc" or "lcc".
	Proj string

	Radius       float64 // sphere/semimajor radius, meters
	Eccentricity float64
	LatTS        float64 // true-scale latitude (Mercator)
	Lat0         float64 // latitude of origin (conic)
	Lat1         float64 // first standard parallel
	Lat2         float64 // second standard parallel
	Lon0         float64 // central longitude
}

// String renders the CRS in PROJ parameter form.
func (c CRS) String() string {
	return decoder.CRS(c).String()
}

// Extent is the axis-aligned bounding box of the image in its native
// coordinate space: degrees for geographic navigation, meters for
// projected navigation.
type Extent struct {
	West  float64
	East  float64
	South float64
	North float64
}

// Area is a decoded AREA file.
//
// All fields are private to maintain encapsulation; access the decoded
// outputs via methods. An Area is immutable once returned and shares no
// state with other decodes, so independent goroutines may decode and use
// separate Areas freely.
type Area struct {
	image       [][]uint32
	skippedRows int

	x, y       []float64
	lons, lats [][]float64
	crs        CRS
	extent     Extent
	projected  bool

	timestamp time.Time
	created   time.Time
	bounds    Bounds
	path      string

	sensorSource    int32
	sensorName      string
	memo            string
	areaNumber      int32
	navigationType  string
	spectralBands   int32
	sourceType      string
	calibrationType string
	lineRes         int32
	elementRes      int32
	bytesPerPoint   int32
}

// Decode reads and decodes an AREA file with default options.
//
// Gzip-compressed files are transparently decompressed.
//
// Example:
//
//	a, err := area.Decode("AREA0100")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s at %s\n", a.SensorName(), a.Timestamp())
func Decode(path string) (*Area, error) {
	return DecodeWithOptions(path, DefaultDecodeOptions())
}

// DecodeWithOptions reads and decodes an AREA file with custom options.
func DecodeWithOptions(path string, opts DecodeOptions) (*Area, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open area file: %w", err)
	}
	defer f.Close()

	a, err := DecodeReader(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// DecodeReader decodes an AREA record from an open source.
//
// The source is read fully before decoding; AREA offsets are relative to
// the start of the record, so the whole record must be addressable.
func DecodeReader(r io.Reader, opts DecodeOptions) (*Area, error) {
	data, err := readSource(r)
	if err != nil {
		return nil, err
	}

	f, err := decoder.DecodeFile(data, decoder.Options{SkipImage: opts.SkipImage})
	if err != nil {
		return nil, err
	}

	return convertFile(f), nil
}

// readSource slurps the source, transparently decompressing gzip input.
func readSource(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip source: %w", err)
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("gzip source: %w", err)
		}
	}

	return data, nil
}

// convertFile builds the public Area from the internal decode result.
func convertFile(f *decoder.File) *Area {
	dir := f.Directory

	a := &Area{
		x:         f.Georef.X,
		y:         f.Georef.Y,
		lons:      f.Georef.Lons,
		lats:      f.Georef.Lats,
		crs:       CRS(f.Georef.CRS),
		extent:    Extent(f.Georef.Extent),
		projected: f.Georef.Projected,
		timestamp: f.Timestamp,

		sensorSource:    dir.SensorSource,
		memo:            dir.Memo,
		areaNumber:      dir.AreaNumber,
		spectralBands:   dir.SpectralBands,
		sourceType:      dir.SourceType,
		calibrationType: dir.CalibrationType,
		lineRes:         dir.LineResolution,
		elementRes:      dir.ElementResolution,
		bytesPerPoint:   dir.BytesPerPoint,
	}

	if name, ok := decoder.SensorSourceName(dir.SensorSource); ok {
		a.sensorName = name
	}
	// Creation words are often zero in archived files; a zero Created
	// time means the file does not record one.
	if created, err := decoder.DecodeTimestamp(dir.CreationDate, dir.CreationTime); err == nil {
		a.created = created
	}
	if f.Navigation != nil {
		a.navigationType = f.Navigation.Type
	}
	if f.Image != nil {
		a.image = f.Image.Data
		a.skippedRows = f.Image.SkippedRows
	}

	a.bounds = gridBounds(a.lons, a.lats)
	return a
}

// gridBounds scans the lon/lat grid for its geographic bounding box.
func gridBounds(lons, lats [][]float64) Bounds {
	if len(lons) == 0 || len(lons[0]) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinLon: lons[0][0], MaxLon: lons[0][0],
		MinLat: lats[0][0], MaxLat: lats[0][0],
	}
	for j := range lons {
		for i := range lons[j] {
			lon, lat := lons[j][i], lats[j][i]
			if lon < b.MinLon {
				b.MinLon = lon
			}
			if lon > b.MaxLon {
				b.MaxLon = lon
			}
			if lat < b.MinLat {
				b.MinLat = lat
			}
			if lat > b.MaxLat {
				b.MaxLat = lat
			}
		}
	}
	return b
}

// Image returns the pixel grid, shape [lines][elements]. Nil when the
// decode skipped image data.
func (a *Area) Image() [][]uint32 { return a.image }

// Shape returns the image dimensions as (lines, elements).
func (a *Area) Shape() (int, int) {
	if len(a.lons) == 0 {
		return 0, 0
	}
	return len(a.lons), len(a.lons[0])
}

// SkippedRows returns the number of image rows left zero because their
// line prefix failed the validity check.
func (a *Area) SkippedRows() int { return a.skippedRows }

// X returns the per-column coordinates, in the CRS's units.
func (a *Area) X() []float64 { return a.x }

// Y returns the per-row coordinates, in the CRS's units.
func (a *Area) Y() []float64 { return a.y }

// Lons returns the per-pixel longitude grid, shape [lines][elements].
func (a *Area) Lons() [][]float64 { return a.lons }

// Lats returns the per-pixel latitude grid, shape [lines][elements].
func (a *Area) Lats() [][]float64 { return a.lats }

// CRS returns the derived coordinate reference system.
func (a *Area) CRS() CRS { return a.crs }

// Projected reports whether X/Y and the extent are in projected meters
// rather than degrees.
func (a *Area) Projected() bool { return a.projected }

// Extent returns the image bounding box in the CRS's native units.
func (a *Area) Extent() Extent { return a.extent }

// Bounds returns the geographic bounding box of the lon/lat grid.
func (a *Area) Bounds() Bounds { return a.bounds }

// Timestamp returns the image acquisition time.
func (a *Area) Timestamp() time.Time { return a.timestamp }

// Created returns the file creation time, or the zero time when the
// directory does not record one.
func (a *Area) Created() time.Time { return a.created }

// SensorSource returns the sensor-source code from the directory block.
func (a *Area) SensorSource() int32 { return a.sensorSource }

// SensorName returns the satellite/sensor name for the sensor-source
// code, or the empty string for unknown codes.
func (a *Area) SensorName() string { return a.sensorName }

// Memo returns the directory's free-text memo field.
func (a *Area) Memo() string { return a.memo }

// AreaNumber returns the McIDAS area number.
func (a *Area) AreaNumber() int32 { return a.areaNumber }

// NavigationType returns the 4-character navigation discriminant, or the
// empty string when the file has no navigation block.
func (a *Area) NavigationType() string { return a.navigationType }

// SpectralBands returns the number of spectral bands in the file.
func (a *Area) SpectralBands() int32 { return a.spectralBands }

// SourceType returns the directory's source type string (e.g. "VISR").
func (a *Area) SourceType() string { return a.sourceType }

// CalibrationType returns the directory's calibration type string.
func (a *Area) CalibrationType() string { return a.calibrationType }

// Resolution returns the (line, element) resolution of the image.
func (a *Area) Resolution() (int32, int32) { return a.lineRes, a.elementRes }

// BytesPerPoint returns the sample width in bytes.
func (a *Area) BytesPerPoint() int32 { return a.bytesPerPoint }

// Path returns the file path the area was decoded from, when it was
// loaded by path rather than from a reader.
func (a *Area) Path() string { return a.path }
