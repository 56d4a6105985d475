package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestConversionErrorMatchesByKind(t *testing.T) {
	cases := []struct {
		err  error
		kind ErrorKind
	}{
		{ErrInvalidInput(), KindInvalidInput},
		{ErrParse(fmt.Errorf("boom")), KindParse},
		{ErrInvalidSize(), KindInvalidSize},
		{ErrOverflow(), KindOverflow},
		{ErrInvalidLatitude(95), KindInvalidLatitude},
		{ErrInvalidLongitude(190), KindInvalidLongitude},
		{ErrCalculation("nope"), KindCalculation},
	}

	for _, c := range cases {
		if !errors.Is(c.err, &ConversionError{Kind: c.kind}) {
			t.Errorf("%v should match kind %d", c.err, c.kind)
		}

		// Each kind matches only itself.
		other := (c.kind + 1) % (KindCalculation + 1)
		if errors.Is(c.err, &ConversionError{Kind: other}) {
			t.Errorf("%v should not match kind %d", c.err, other)
		}
	}
}

func TestConversionErrorMessagesStable(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrInvalidInput(), "invalid input: binary string must be non-empty and contain only 0s and 1s"},
		{ErrInvalidSize(), "invalid size: bit width must be at least 1"},
		{ErrOverflow(), "overflow: value does not fit in the requested bit width"},
		{ErrInvalidLatitude(95), "invalid latitude: 95 is outside the accepted range"},
		{ErrInvalidLongitude(-200.5), "invalid longitude: -200.5 is outside the accepted range"},
		{ErrCalculation("division by zero"), "calculation error: division by zero"},
		{ErrParse(fmt.Errorf("value out of range")), "parse binary string: value out of range"},
	}

	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("message = %q, want %q", got, c.want)
		}
	}
}

func TestConversionErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("out of range")
	err := ErrParse(cause)

	if !errors.Is(err, cause) {
		t.Fatal("parse error should unwrap to its cause")
	}
}

func TestUTMLocatorString(t *testing.T) {
	loc := UTMLocator{Zone: 18, Band: 'T'}
	if got := loc.String(); got != "18T" {
		t.Errorf("String() = %q, want %q", got, "18T")
	}
}
