package services

import (
	"conversion-service/internal/domain"
	"math"
)

// MGRS latitude band letters in order, 'I' and 'O' excluded. Band 0 ('C')
// starts at latitude -80; each band spans 8°, except 'X' which stretches to
// the 84° upper limit.
const bandLetters = "CDEFGHJKLMNPQRSTUVWX"

// LatitudeBand returns the MGRS latitude band letter for lat. The accepted
// domain is [-80, 84); anything outside fails closed.
func LatitudeBand(lat float64) (byte, error) {
	if lat < -80.0 || lat >= 84.0 {
		return 0, domain.ErrInvalidLatitude(lat)
	}

	idx := int(math.Floor((lat + 80.0) / 8.0))
	// Latitudes in [80, 84) fall past the last 8° boundary; they belong to
	// the extended 'X' band.
	if idx >= len(bandLetters) {
		idx = len(bandLetters) - 1
	}
	return bandLetters[idx], nil
}

// ZoneNumber returns the UTM zone number in [1,60] for the coordinate.
// Latitude is checked against [-90,90] before longitude is checked against
// [-180,180], so a doubly-invalid input reports the latitude failure.
//
// The irregular zones around southwest Norway and Svalbard are handled
// before the regular 6°-per-zone rule; their ranges are disjoint so the
// order among them carries no ambiguity.
func ZoneNumber(lat, lon float64) (int, error) {
	if lat < -90.0 || lat > 90.0 {
		return 0, domain.ErrInvalidLatitude(lat)
	}
	if lon < -180.0 || lon > 180.0 {
		return 0, domain.ErrInvalidLongitude(lon)
	}

	switch {
	case lat > 55.0 && lat < 64.0 && lon > 2.0 && lon < 6.0:
		// Southwest Norway: zone 32 is widened westward.
		return 32, nil
	case lat > 71.0 && lon >= 6.0 && lon < 9.0:
		return 31, nil
	case lat > 71.0 && (lon >= 9.0 && lon < 12.0 || lon >= 18.0 && lon < 21.0):
		return 33, nil
	case lat > 71.0 && (lon >= 21.0 && lon < 24.0 || lon >= 30.0 && lon < 33.0):
		return 35, nil
	}

	// The mod folds longitude 180 back into zone 1.
	return int(math.Floor((lon+180.0)/6.0))%60 + 1, nil
}

// UTMZoneFor resolves the UTM zone number and MGRS band letter for a
// geographic coordinate. The zone stage accepts the full latitude range
// [-90,90] while the band stage only accepts [-80,84), so a latitude of 85°
// passes the first stage and fails with the band stage's error.
func UTMZoneFor(lat, lon float64) (domain.UTMLocator, error) {
	zone, err := ZoneNumber(lat, lon)
	if err != nil {
		return domain.UTMLocator{}, err
	}

	band, err := LatitudeBand(lat)
	if err != nil {
		return domain.UTMLocator{}, err
	}

	return domain.UTMLocator{Zone: zone, Band: band}, nil
}
