package domain

import "fmt"

// Immutable geodetic coordinates on the WGS84 ellipsoid.
// Latitude and longitude are in degrees, height in meters above the ellipsoid.
type GeodeticPoint struct {
	Lat    float64
	Lon    float64
	Height float64
}

// Earth-centered Cartesian coordinates in meters, derived from a GeodeticPoint.
// Carries no invariants of its own; it is a deterministic function of its source.
type CartesianPoint struct {
	X float64
	Y float64
	Z float64
}

// CoordsToList returns the point as [x, y, z] for external API compatibility.
func (p CartesianPoint) CoordsToList() []float64 { return []float64{p.X, p.Y, p.Z} }

// UTM grid locator: zone number in [1,60] plus the MGRS latitude band letter
// ('C'..'X', never 'I' or 'O').
type UTMLocator struct {
	Zone int
	Band byte
}

// String renders the locator in the usual compact form, e.g. "18T".
func (u UTMLocator) String() string {
	return fmt.Sprintf("%d%c", u.Zone, u.Band)
}
