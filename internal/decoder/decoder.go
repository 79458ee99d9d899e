// Package decoder implements the McIDAS AREA container format: byte-order
// detection, field-table-driven block decoding, navigation-type dispatch,
// and derivation of the georeferencing model from the navigation block.
package decoder

import (
	"encoding/binary"
	"time"
)

// Options configures a single decode.
type Options struct {
	// SkipImage leaves File.Image nil, decoding only the directory,
	// navigation, georeference and timestamp. Useful for indexing.
	SkipImage bool
}

// File is the result of decoding one AREA record. All fields are built by
// DecodeFile and immutable afterwards; nothing is shared across decodes.
type File struct {
	Directory  *Directory
	Navigation *Navigation // nil when the directory has no navigation offset
	Georef     *Georeference
	Image      *Image // nil when Options.SkipImage is set
	Timestamp  time.Time
}

// DecodeFile decodes a fully-read AREA record.
//
// The pipeline is strictly sequential: sentinel byte-order detection,
// directory block, navigation block (when present), georeference,
// timestamp, then pixel data. Any structural anomaly aborts the decode;
// the only tolerated data-level anomaly is a row failing its prefix
// validity check, which zero-fills that row.
func DecodeFile(data []byte, opts Options) (*File, error) {
	s := NewByteStream(data)
	mark := s.SetMark()

	if err := detectByteOrder(s, mark); err != nil {
		return nil, err
	}

	dir, err := DecodeDirectory(s, mark)
	if err != nil {
		return nil, err
	}

	f := &File{Directory: dir}

	// A zero navigation offset means no navigation block exists.
	if dir.NavigationOffset != 0 {
		f.Navigation, err = DecodeNavigation(s, mark, int(dir.NavigationOffset))
		if err != nil {
			return nil, err
		}
	}

	f.Georef, err = BuildGeoreference(dir, f.Navigation)
	if err != nil {
		return nil, err
	}

	f.Timestamp, err = DecodeTimestamp(dir.Date, dir.Time)
	if err != nil {
		return nil, err
	}

	if !opts.SkipImage {
		f.Image, err = DecodeImage(s, mark, dir)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

// detectByteOrder reads directory word 2, which always holds the integer 4,
// and fixes the stream's byte order for the rest of the decode. The order
// is never re-derived mid-stream.
func detectByteOrder(s *ByteStream, mark int) error {
	s.JumpTo(mark, 0)
	check, err := s.ReadBytes(8)
	if err != nil {
		return err
	}

	if binary.LittleEndian.Uint32(check[4:]) == 4 {
		s.SetByteOrder(binary.LittleEndian)
	} else {
		s.SetByteOrder(binary.BigEndian)
	}

	s.JumpTo(mark, 0)
	return nil
}
