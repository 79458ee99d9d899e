package decoder

import (
	"fmt"
	"time"
)

// DecodeTimestamp composes the directory's packed date and time words into
// a calendar instant.
//
// The date word is YDDD: a 3-digit offset from 1900 concatenated with a
// 3-digit day of year. The time word is HHMMSS. Day-of-year and time
// values that do not form a valid instant fail with ErrInvalidTimestamp.
func DecodeTimestamp(date, timeOfDay int32) (time.Time, error) {
	if date < 0 || timeOfDay < 0 {
		return time.Time{}, &ErrInvalidTimestamp{
			Date: date, Time: timeOfDay, Reason: "negative packed field",
		}
	}
	dstr := fmt.Sprintf("%06d", date)
	tstr := fmt.Sprintf("%06d", timeOfDay)
	if len(dstr) != 6 || len(tstr) != 6 {
		return time.Time{}, &ErrInvalidTimestamp{
			Date: date, Time: timeOfDay, Reason: "field overflows packed format",
		}
	}

	var yearOffset int
	if _, err := fmt.Sscanf(dstr[:3], "%d", &yearOffset); err != nil {
		return time.Time{}, &ErrInvalidTimestamp{
			Date: date, Time: timeOfDay, Reason: err.Error(),
		}
	}
	year := 1900 + yearOffset

	// Day-of-year layout "002" makes time.Parse do the range checking,
	// including leap years.
	composed := fmt.Sprintf("%04d%s%s", year, dstr[3:], tstr)
	ts, err := time.Parse("2006002150405", composed)
	if err != nil {
		return time.Time{}, &ErrInvalidTimestamp{
			Date: date, Time: timeOfDay, Reason: err.Error(),
		}
	}
	return ts, nil
}
