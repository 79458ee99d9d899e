package decoder

import (
	"fmt"
)

// ErrTruncated indicates the source ended before a required read completed.
type ErrTruncated struct {
	Needed    int
	Remaining int
}

func (e *ErrTruncated) Error() string {
	return fmt.Sprintf("truncated input: need %d bytes, %d remaining", e.Needed, e.Remaining)
}

// ErrFormat indicates a block's field table could not be fully consumed.
type ErrFormat struct {
	Block  string
	Reason string
}

func (e *ErrFormat) Error() string {
	return fmt.Sprintf("malformed %s block: %s", e.Block, e.Reason)
}

// ErrUnknownNavigation indicates a navigation discriminant with no schema
// in the catalog. The tag is preserved so callers can report or patch it.
type ErrUnknownNavigation struct {
	Type string
}

func (e *ErrUnknownNavigation) Error() string {
	return fmt.Sprintf("unknown navigation type %q", e.Type)
}

// ErrUnsupportedNavigation indicates a recognized navigation type whose
// georeferencing math is not implemented.
type ErrUnsupportedNavigation struct {
	Type string
}

func (e *ErrUnsupportedNavigation) Error() string {
	return fmt.Sprintf("navigation type %q not supported for georeferencing", e.Type)
}

// ErrInvalidTimestamp indicates the packed date/time header words do not
// compose into a valid calendar instant.
type ErrInvalidTimestamp struct {
	Date   int32
	Time   int32
	Reason string
}

func (e *ErrInvalidTimestamp) Error() string {
	return fmt.Sprintf("invalid timestamp: date=%d time=%d (%s)", e.Date, e.Time, e.Reason)
}
