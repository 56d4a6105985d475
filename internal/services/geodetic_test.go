package services

import (
	"math"
	"testing"
)

func TestGeodeticToCartesianEquator(t *testing.T) {
	const tol = 1e-6

	cases := []struct {
		lat, lon, height    float64
		wantX, wantY, wantZ float64
	}{
		// On the equator at the prime meridian the X axis carries the full
		// semi-major axis.
		{0, 0, 0, 6378137.0, 0, 0},
		{0, 90, 0, 0, 6378137.0, 0},
		{0, 180, 0, -6378137.0, 0, 0},
		{0, 0, 100, 6378237.0, 0, 0},
	}

	for _, c := range cases {
		p := GeodeticToCartesian(c.lat, c.lon, c.height)
		if math.Abs(p.X-c.wantX) > tol {
			t.Errorf("GeodeticToCartesian(%v,%v,%v).X = %v, want %v", c.lat, c.lon, c.height, p.X, c.wantX)
		}
		if math.Abs(p.Y-c.wantY) > tol {
			t.Errorf("GeodeticToCartesian(%v,%v,%v).Y = %v, want %v", c.lat, c.lon, c.height, p.Y, c.wantY)
		}
		if math.Abs(p.Z-c.wantZ) > tol {
			t.Errorf("GeodeticToCartesian(%v,%v,%v).Z = %v, want %v", c.lat, c.lon, c.height, p.Z, c.wantZ)
		}
	}
}

func TestGeodeticToCartesianPoles(t *testing.T) {
	// Z at the poles is the semi-minor axis b = a*(1-f); X and Y collapse
	// to (numerically near) zero.
	const a = 6378137.0
	const f = 1.0 / 298.257222101
	b := a * (1 - f)

	north := GeodeticToCartesian(90, 0, 0)
	if math.Abs(north.Z-b) > 1e-6 {
		t.Errorf("north pole Z = %v, want %v", north.Z, b)
	}
	if math.Abs(north.X) > 1e-3 || math.Abs(north.Y) > 1e-3 {
		t.Errorf("north pole X,Y = %v,%v, want ~0", north.X, north.Y)
	}

	south := GeodeticToCartesian(-90, 0, 0)
	if math.Abs(south.Z+b) > 1e-6 {
		t.Errorf("south pole Z = %v, want %v", south.Z, -b)
	}
}

func TestGeodeticToCartesianNoValidation(t *testing.T) {
	// The transform deliberately accepts out-of-range coordinates and
	// still produces finite values.
	p := GeodeticToCartesian(123.0, 400.0, -5000.0)
	for i, v := range p.CoordsToList() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("component %d = %v, want finite", i, v)
		}
	}
}
