package util

import (
	"errors"
	"math"
)

// Coordinates dereferences and range-checks a latitude/longitude pair.
func Coordinates(lat, lon *float64) (float64, float64, error) {
	if lat == nil || lon == nil {
		return 0, 0, errors.New("lat and lon are required")
	}
	if math.IsNaN(*lat) || *lat < -90 || *lat > 90 {
		return 0, 0, errors.New("lat must be between -90 and 90")
	}
	if math.IsNaN(*lon) || *lon < -180 || *lon > 180 {
		return 0, 0, errors.New("lon must be between -180 and 180")
	}
	return *lat, *lon, nil
}
