package domain

import "time"

// Operation names recorded in the conversion history.
const (
	OpBinaryToDecimal     = "binary_to_decimal"
	OpDecimalToBinary     = "decimal_to_binary"
	OpGeodeticToCartesian = "geodetic_to_cartesian"
	OpUTMZone             = "utm_zone"
)

// A single served conversion, kept as an audit trail by the HTTP boundary.
// Records are write-only from the handlers' point of view; the conversion
// functions themselves never read them.
type ConversionRecord struct {
	ID        string
	Operation string
	Input     string
	Output    string
	CreatedAt time.Time
}
