package decoder

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

// buildRECTArea assembles a complete synthetic AREA record: a 64-word
// directory, a RECT navigation block, and a 2x2 one-byte-per-point
// image. The grid anchors (50N, 100W) at the upper-left pixel with one
// degree per pixel.
func buildRECTArea(order binary.ByteOrder) []byte {
	data := make([]byte, 304)

	// Directory words are 1-indexed per the format documentation.
	dirWord := func(w int, v uint32) {
		order.PutUint32(data[(w-1)*4:], v)
	}
	dirWord(2, 4)      // byte-order sentinel
	dirWord(3, 70)     // sensor source: GOES-8
	dirWord(4, 94036)  // date, YDDD
	dirWord(5, 120000) // time, HHMMSS
	dirWord(6, 1)      // upper-left line
	dirWord(7, 1)      // upper-left element
	dirWord(9, 2)      // image lines
	dirWord(10, 2)     // data per line
	dirWord(11, 1)     // bytes per point
	dirWord(12, 1)     // line resolution
	dirWord(13, 1)     // element resolution
	dirWord(14, 1)     // spectral bands
	dirWord(33, 1234)  // area number
	dirWord(34, 300)   // data offset
	dirWord(35, 256)   // navigation offset

	// Navigation block.
	copy(data[256:], "RECT")
	navWord := func(w int, v uint32) {
		order.PutUint32(data[256+w*4:], v)
	}
	navWord(1, 1)       // image row number
	navWord(2, 500000)  // row latitude, 1e4 degrees
	navWord(3, 1)       // image column number
	navWord(4, 1000000) // column longitude, 1e4 degrees
	navWord(5, 10000)   // dy
	navWord(6, 10000)   // dx
	navWord(7, 6371200) // sphere radius
	// eccentricity, coordinate type and longitude convention stay zero.

	copy(data[300:], []byte{10, 20, 30, 40})
	return data
}

// TestDecodeFileEndToEnd tests the full pipeline on the synthetic RECT
// record in both byte orders; the decoded results must be identical.
func TestDecodeFileEndToEnd(t *testing.T) {
	orders := map[string]binary.ByteOrder{
		"big endian":    binary.BigEndian,
		"little endian": binary.LittleEndian,
	}

	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			f, err := DecodeFile(buildRECTArea(order), Options{})
			if err != nil {
				t.Fatalf("DecodeFile failed: %v", err)
			}

			dir := f.Directory
			if dir.SensorSource != 70 {
				t.Errorf("SensorSource = %d, want 70", dir.SensorSource)
			}
			if name, ok := SensorSourceName(dir.SensorSource); !ok || name != "GOES-8" {
				t.Errorf("Sensor name = %q, want GOES-8", name)
			}
			if dir.AreaNumber != 1234 {
				t.Errorf("AreaNumber = %d, want 1234", dir.AreaNumber)
			}
			if dir.ImageLines != 2 || dir.DataPerLine != 2 || dir.BytesPerPoint != 1 {
				t.Errorf("Geometry = %dx%dx%d, want 2x2x1",
					dir.ImageLines, dir.DataPerLine, dir.BytesPerPoint)
			}

			if f.Navigation == nil || f.Navigation.Type != NavRECT {
				t.Fatalf("Expected RECT navigation, got %+v", f.Navigation)
			}

			g := f.Georef
			if g.Projected {
				t.Error("RECT georeference should be unprojected")
			}
			wantLons := [][]float64{{-100, -99}, {-100, -99}}
			wantLats := [][]float64{{50, 50}, {49, 49}}
			for j := 0; j < 2; j++ {
				for i := 0; i < 2; i++ {
					if !approx(g.Lons[j][i], wantLons[j][i], 1e-9) ||
						!approx(g.Lats[j][i], wantLats[j][i], 1e-9) {
						t.Errorf("Pixel [%d][%d] = (%g, %g), want (%g, %g)",
							j, i, g.Lons[j][i], g.Lats[j][i], wantLons[j][i], wantLats[j][i])
					}
				}
			}
			wantExtent := Extent{West: -100, East: -98, South: 48, North: 50}
			if g.Extent != wantExtent {
				t.Errorf("Extent = %+v, want %+v", g.Extent, wantExtent)
			}

			wantTime := time.Date(1994, 2, 5, 12, 0, 0, 0, time.UTC)
			if !f.Timestamp.Equal(wantTime) {
				t.Errorf("Timestamp = %v, want %v", f.Timestamp, wantTime)
			}

			wantPixels := [][]uint32{{10, 20}, {30, 40}}
			for j := range wantPixels {
				for i := range wantPixels[j] {
					if f.Image.Data[j][i] != wantPixels[j][i] {
						t.Errorf("Image[%d][%d] = %d, want %d",
							j, i, f.Image.Data[j][i], wantPixels[j][i])
					}
				}
			}
		})
	}
}

// TestDecodeFileSkipImage tests header-only decoding
func TestDecodeFileSkipImage(t *testing.T) {
	// Pixel data absent entirely: header-only decode must not touch it.
	data := buildRECTArea(binary.BigEndian)[:300]

	f, err := DecodeFile(data, Options{SkipImage: true})
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if f.Image != nil {
		t.Error("Expected nil image with SkipImage set")
	}
	if f.Georef == nil || f.Navigation == nil {
		t.Error("Header-only decode should still carry navigation and georeference")
	}
}

// TestDecodeFileNoNavigation tests that a zero navigation offset leaves
// no navigation block and therefore no georeference.
func TestDecodeFileNoNavigation(t *testing.T) {
	data := buildRECTArea(binary.BigEndian)
	binary.BigEndian.PutUint32(data[34*4:], 0) // clear navigation offset

	_, err := DecodeFile(data, Options{})
	var unsupported *ErrUnsupportedNavigation
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected ErrUnsupportedNavigation, got %v", err)
	}
	if unsupported.Type != "none" {
		t.Errorf("Expected error type \"none\", got %q", unsupported.Type)
	}
}

// TestDecodeFileTruncatedDirectory tests failure on a record too short
// for the directory block.
func TestDecodeFileTruncatedDirectory(t *testing.T) {
	data := buildRECTArea(binary.BigEndian)[:100]

	_, err := DecodeFile(data, Options{})
	if err == nil {
		t.Fatal("Expected error for truncated directory")
	}

	var format *ErrFormat
	if !errors.As(err, &format) {
		t.Fatalf("Expected ErrFormat, got %T", err)
	}
	if format.Block != "directory" {
		t.Errorf("Expected directory block error, got %q", format.Block)
	}
}

// TestDetectByteOrder tests sentinel-driven order selection
func TestDetectByteOrder(t *testing.T) {
	le := make([]byte, 8)
	binary.LittleEndian.PutUint32(le[4:], 4)
	s := NewByteStream(le)
	if err := detectByteOrder(s, 0); err != nil {
		t.Fatalf("detectByteOrder failed: %v", err)
	}
	if s.ByteOrder() != binary.LittleEndian {
		t.Error("Expected little-endian selection")
	}

	be := make([]byte, 8)
	binary.BigEndian.PutUint32(be[4:], 4)
	s = NewByteStream(be)
	if err := detectByteOrder(s, 0); err != nil {
		t.Fatalf("detectByteOrder failed: %v", err)
	}
	if s.ByteOrder() != binary.BigEndian {
		t.Error("Expected big-endian selection")
	}
}
