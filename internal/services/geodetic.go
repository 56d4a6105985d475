package services

import (
	"conversion-service/internal/domain"
	"math"
)

// WGS84 ellipsoid parameters.
const (
	wgs84SemiMajorAxis = 6378137.0
	wgs84Flattening    = 1.0 / 298.257222101
)

// First eccentricity squared: e² = 2f − f².
const wgs84ESquared = wgs84Flattening * (2.0 - wgs84Flattening)

// GeodeticToCartesian converts geodetic coordinates (degrees, degrees,
// meters) to earth-centered Cartesian XYZ in meters.
//
// The function performs no input validation: out-of-range latitudes or
// longitudes are neither clamped nor rejected, and the result for them is
// whatever the ellipsoid formulas produce. Callers needing range checks
// must apply them before calling (see UTMZoneFor for the checked path).
func GeodeticToCartesian(lat, lon, height float64) domain.CartesianPoint {
	latRad := lat * math.Pi / 180.0
	lonRad := lon * math.Pi / 180.0

	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)

	// Prime-vertical radius of curvature.
	n := wgs84SemiMajorAxis / math.Sqrt(1.0-wgs84ESquared*sinLat*sinLat)

	return domain.CartesianPoint{
		X: (n + height) * cosLat * math.Cos(lonRad),
		Y: (n + height) * cosLat * math.Sin(lonRad),
		Z: (n*(1.0-wgs84ESquared) + height) * sinLat,
	}
}
