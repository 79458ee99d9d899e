package decoder

import (
	"encoding/binary"
	"strings"
)

// ByteStream reads typed values from an in-memory AREA record.
//
// All offsets in an AREA file are relative to the first byte of the record,
// not the physical source, so the stream tracks a saved origin ("mark") and
// supports absolute jumps relative to it. Byte order is detected once from
// the directory sentinel and applied to every subsequent multi-byte read.
type ByteStream struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

// NewByteStream wraps a fully-read AREA record.
//
// The byte order defaults to little-endian until SetByteOrder is called
// after sentinel detection.
func NewByteStream(data []byte) *ByteStream {
	return &ByteStream{
		data:  data,
		order: binary.LittleEndian,
	}
}

// SetByteOrder fixes the byte order for all subsequent multi-byte reads.
func (s *ByteStream) SetByteOrder(order binary.ByteOrder) {
	s.order = order
}

// ByteOrder returns the byte order in effect.
func (s *ByteStream) ByteOrder() binary.ByteOrder {
	return s.order
}

// SetMark saves the current position as an origin for JumpTo.
func (s *ByteStream) SetMark() int {
	return s.pos
}

// JumpTo positions the stream at mark+offset.
func (s *ByteStream) JumpTo(mark, offset int) {
	s.pos = mark + offset
}

// Remaining returns the number of unread bytes.
func (s *ByteStream) Remaining() int {
	return len(s.data) - s.pos
}

// ReadBytes consumes and returns the next n bytes.
func (s *ByteStream) ReadBytes(n int) ([]byte, error) {
	if n < 0 || s.pos+n > len(s.data) {
		return nil, &ErrTruncated{Needed: n, Remaining: s.Remaining()}
	}
	b := s.data[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}

// ReadInt reads a width-byte integer in the stream's byte order.
//
// Supported widths are 1, 2 and 4 bytes. Signed values are sign-extended
// into the returned int32.
func (s *ByteStream) ReadInt(width int, signed bool) (int32, error) {
	b, err := s.ReadBytes(width)
	if err != nil {
		return 0, err
	}

	var v uint32
	switch width {
	case 1:
		v = uint32(b[0])
	case 2:
		v = uint32(s.order.Uint16(b))
	case 4:
		v = s.order.Uint32(b)
	default:
		return 0, &ErrFormat{Block: "stream", Reason: "unsupported integer width"}
	}

	if signed {
		switch width {
		case 1:
			return int32(int8(v)), nil
		case 2:
			return int32(int16(v)), nil
		}
	}
	return int32(v), nil
}

// ReadUint reads a width-byte unsigned integer in the stream's byte order.
func (s *ByteStream) ReadUint(width int) (uint32, error) {
	b, err := s.ReadBytes(width)
	if err != nil {
		return 0, err
	}
	switch width {
	case 1:
		return uint32(b[0]), nil
	case 2:
		return uint32(s.order.Uint16(b)), nil
	case 4:
		return s.order.Uint32(b), nil
	}
	return 0, &ErrFormat{Block: "stream", Reason: "unsupported integer width"}
}

// ReadASCII reads n bytes and returns them as a string with trailing
// NUL bytes removed.
func (s *ByteStream) ReadASCII(n int) (string, error) {
	b, err := s.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\x00"), nil
}

// ReadIntArray reads count integers of elementWidth bytes each.
func (s *ByteStream) ReadIntArray(count, elementWidth int) ([]int32, error) {
	out := make([]int32, count)
	for i := range out {
		v, err := s.ReadInt(elementWidth, true)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadUintArray reads count unsigned integers of elementWidth bytes each.
func (s *ByteStream) ReadUintArray(count, elementWidth int) ([]uint32, error) {
	out := make([]uint32, count)
	for i := range out {
		v, err := s.ReadUint(elementWidth)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
