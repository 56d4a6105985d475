package services

import (
	"conversion-service/internal/domain"
	"errors"
	"testing"
)

func TestUTMZoneFor(t *testing.T) {
	cases := []struct {
		lat, lon float64
		zone     int
		band     byte
	}{
		{40.0, -75.0, 18, 'T'},  // Philadelphia
		{-33.0, 151.0, 56, 'H'}, // Sydney
		{60.0, 5.0, 32, 'V'},    // Bergen, widened zone 32
		{72.0, 7.0, 31, 'X'},    // Svalbard exception
		{72.0, 9.0, 33, 'X'},
		{72.0, 20.0, 33, 'X'},
		{72.0, 21.0, 35, 'X'},
		{72.0, 31.0, 35, 'X'},
		{0.0, 0.0, 31, 'N'},
		{-80.0, 0.0, 31, 'C'},  // inclusive lower band bound
		{83.9, 15.0, 33, 'X'},  // extended X band
		{0.0, -180.0, 1, 'N'},  // western edge of zone 1
		{0.0, 180.0, 1, 'N'},   // antimeridian folds back to zone 1
		{55.0, 4.0, 31, 'U'},   // just south of the Norway exception
		{64.0, 4.0, 31, 'W'},   // just north of it
	}

	for _, c := range cases {
		locator, err := UTMZoneFor(c.lat, c.lon)
		if err != nil {
			t.Errorf("UTMZoneFor(%v, %v) unexpected error: %v", c.lat, c.lon, err)
			continue
		}
		if locator.Zone != c.zone || locator.Band != c.band {
			t.Errorf("UTMZoneFor(%v, %v) = %s, want %d%c", c.lat, c.lon, locator, c.zone, c.band)
		}
	}
}

func TestUTMZoneForOutOfRange(t *testing.T) {
	cases := []struct {
		lat, lon float64
		kind     domain.ErrorKind
	}{
		{90.1, 0.0, domain.KindInvalidLatitude},
		{-90.1, 0.0, domain.KindInvalidLatitude},
		{0.0, 181.0, domain.KindInvalidLongitude},
		{0.0, -180.5, domain.KindInvalidLongitude},
		// Latitude is checked first, so a doubly-bad input reports it.
		{91.0, 200.0, domain.KindInvalidLatitude},
		// These pass the zone stage's [-90,90] but fail the band stage.
		{84.0, 15.0, domain.KindInvalidLatitude},
		{85.0, 0.0, domain.KindInvalidLatitude},
		{-80.1, 0.0, domain.KindInvalidLatitude},
	}

	for _, c := range cases {
		_, err := UTMZoneFor(c.lat, c.lon)
		if err == nil {
			t.Errorf("UTMZoneFor(%v, %v) expected error, got none", c.lat, c.lon)
			continue
		}
		if !errors.Is(err, &domain.ConversionError{Kind: c.kind}) {
			t.Errorf("UTMZoneFor(%v, %v) error = %v, want kind %d", c.lat, c.lon, err, c.kind)
		}
	}
}

func TestLatitudeBandDomain(t *testing.T) {
	if _, err := LatitudeBand(-80.0); err != nil {
		t.Errorf("LatitudeBand(-80) should succeed, got %v", err)
	}
	if _, err := LatitudeBand(83.999); err != nil {
		t.Errorf("LatitudeBand(83.999) should succeed, got %v", err)
	}
	if _, err := LatitudeBand(84.0); err == nil {
		t.Error("LatitudeBand(84) should fail, the upper bound is exclusive")
	}
}

func TestLatitudeBandNeverIOrO(t *testing.T) {
	for lat := -80.0; lat < 84.0; lat += 0.25 {
		band, err := LatitudeBand(lat)
		if err != nil {
			t.Fatalf("LatitudeBand(%v) unexpected error: %v", lat, err)
		}
		if band == 'I' || band == 'O' {
			t.Fatalf("LatitudeBand(%v) = %c, letters I and O are reserved", lat, band)
		}
		if band < 'C' || band > 'X' {
			t.Fatalf("LatitudeBand(%v) = %c, outside C..X", lat, band)
		}
	}
}

func TestZoneNumberRange(t *testing.T) {
	for lon := -180.0; lon <= 180.0; lon += 1.5 {
		zone, err := ZoneNumber(0.0, lon)
		if err != nil {
			t.Fatalf("ZoneNumber(0, %v) unexpected error: %v", lon, err)
		}
		if zone < 1 || zone > 60 {
			t.Fatalf("ZoneNumber(0, %v) = %d, outside [1,60]", lon, zone)
		}
	}
}
