package decoder

// Image is the decoded pixel grid: unsigned samples of the directory's
// bytes_per_point width, shape [image_lines][data_per_line]. Rows whose
// prefix validity code mismatched remain all-zero.
type Image struct {
	Data [][]uint32

	// SkippedRows counts rows left zero because their prefix validity
	// code did not match the directory's. The zero-fill itself is silent,
	// matching the historical decoder; callers who need to distinguish
	// "no data" from "zero data" can check this count.
	SkippedRows int
}

// DecodeImage streams the row-oriented pixel data at the directory's data
// offset.
//
// Each row is optionally prefixed with a 4-byte validity code plus
// documentation, calibration and band sub-fields whose lengths come from
// the directory. A row whose validity code does not match is dropped
// without consuming the rest of the row; the row stays zero.
func DecodeImage(s *ByteStream, mark int, dir *Directory) (*Image, error) {
	s.JumpTo(mark, int(dir.DataOffset))

	ny := int(dir.ImageLines)
	nx := int(dir.DataPerLine)
	bpp := int(dir.BytesPerPoint)
	prefixLen := int(dir.LinePrefixLength)

	img := &Image{Data: make([][]uint32, ny)}
	for j := range img.Data {
		img.Data[j] = make([]uint32, nx)
	}

	for j := 0; j < ny; j++ {
		if prefixLen > 0 {
			valCode, err := s.ReadUint(4)
			if err != nil {
				return nil, err
			}
			if valCode != uint32(dir.ValidityCode) {
				img.SkippedRows++
				continue
			}
			if _, err := s.ReadASCII(int(dir.PrefixDocLength)); err != nil {
				return nil, err
			}
			if _, err := s.ReadIntArray(int(dir.PrefixCalibrationLength), 4); err != nil {
				return nil, err
			}
			if _, err := s.ReadIntArray(int(dir.PrefixBandLength), 4); err != nil {
				return nil, err
			}
		}

		row, err := s.ReadUintArray(nx, bpp)
		if err != nil {
			return nil, err
		}
		copy(img.Data[j], row)
	}

	return img, nil
}
