package decoder

import (
	"fmt"
	"math"
	"strconv"
)

// DMSToDecimal converts a packed DDDMMSS coordinate to decimal degrees.
//
// The integer is interpreted as a 7-digit zero-padded string split into
// degrees, minutes and seconds: d + m/60 + s/3600.
func DMSToDecimal(dms int32) float64 {
	s := fmt.Sprintf("%07d", dms)
	d, _ := strconv.ParseFloat(s[:3], 64)
	m, _ := strconv.ParseFloat(s[3:5], 64)
	sec, _ := strconv.ParseFloat(s[5:], 64)
	return d + m/60 + sec/3600
}

// dmsDecimal is the field transform form of DMSToDecimal.
func dmsDecimal(raw any) any {
	return DMSToDecimal(raw.(int32))
}

// RangeLongitude re-ranges a 0-360 longitude into -180-180.
func RangeLongitude(lon float64) float64 {
	return math.Mod(math.Mod(lon+180, 360)+360, 360) - 180
}
