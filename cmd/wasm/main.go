//go:build js && wasm

package main

import (
	"conversion-service/internal/domain"
	"conversion-service/internal/services"
	"errors"
	"strconv"
	"syscall/js"
)

// The wasm entrypoint registers the conversion functions on the JS global
// object and parks. Exported names and the collapsed string results match
// the surface the web page was originally written against: success and
// failure both come back as a display string, so the distinction lives
// only in the message text. The typed API stays in internal/services; this
// file is the one place allowed to flatten it.
func main() {
	js.Global().Set("calculate_twos_complement", js.FuncOf(calculateTwosComplement))
	js.Global().Set("decimal_to_twos_complement", js.FuncOf(decimalToTwosComplement))
	js.Global().Set("geodetic_to_cartesian", js.FuncOf(geodeticToCartesian))
	js.Global().Set("utm_zone_for", js.FuncOf(utmZoneFor))

	select {}
}

func calculateTwosComplement(this js.Value, args []js.Value) any {
	if len(args) != 1 {
		return "Invalid input: Enter only 0s and 1s."
	}

	value, err := services.TwosComplementToDecimal(args[0].String())
	if err != nil {
		return displayMessage(err)
	}
	return strconv.FormatInt(int64(value), 10)
}

func decimalToTwosComplement(this js.Value, args []js.Value) any {
	if len(args) != 2 {
		return "Error: Size must be greater than 0."
	}

	decimal := int32(args[0].Int())
	size := args[1].Int()
	if size < 0 {
		size = 0
	}

	binary, err := services.DecimalToTwosComplement(decimal, uint(size))
	if err != nil {
		return displayMessage(err)
	}
	return binary
}

func geodeticToCartesian(this js.Value, args []js.Value) any {
	if len(args) != 3 {
		return js.Null()
	}

	p := services.GeodeticToCartesian(args[0].Float(), args[1].Float(), args[2].Float())
	return []any{p.X, p.Y, p.Z}
}

func utmZoneFor(this js.Value, args []js.Value) any {
	if len(args) != 2 {
		return "Error: Latitude is out of range."
	}

	locator, err := services.UTMZoneFor(args[0].Float(), args[1].Float())
	if err != nil {
		return displayMessage(err)
	}
	return locator.String()
}

// displayMessage renders a conversion error the way the original web page
// expects to see it.
func displayMessage(err error) string {
	var convErr *domain.ConversionError
	if !errors.As(err, &convErr) {
		return "Error: " + err.Error()
	}

	switch convErr.Kind {
	case domain.KindInvalidInput:
		return "Invalid input: Enter only 0s and 1s."
	case domain.KindParse:
		return "Error: Number does not fit in 32 bits."
	case domain.KindInvalidSize:
		return "Error: Size must be greater than 0."
	case domain.KindOverflow:
		return "Error: Number does not fit in the specified size."
	case domain.KindInvalidLatitude:
		return "Error: Latitude is out of range."
	case domain.KindInvalidLongitude:
		return "Error: Longitude is out of range."
	default:
		return "Error: " + convErr.Error()
	}
}
