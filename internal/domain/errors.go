package domain

import "fmt"

// ErrorKind identifies the cause of a conversion failure. The set is closed:
// callers switch on the kind rather than matching message text.
type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota
	KindParse
	KindInvalidSize
	KindOverflow
	KindInvalidLatitude
	KindInvalidLongitude
	KindCalculation
)

// ConversionError is the single error type returned by the conversion
// functions. Each kind carries only the payload its message needs, so the
// rendered text is stable across calls with the same inputs.
type ConversionError struct {
	Kind    ErrorKind
	Value   float64 // offending coordinate for the latitude/longitude kinds
	Message string  // free-form detail for KindCalculation
	Cause   error   // underlying parse failure for KindParse
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case KindInvalidInput:
		return "invalid input: binary string must be non-empty and contain only 0s and 1s"
	case KindParse:
		return fmt.Sprintf("parse binary string: %v", e.Cause)
	case KindInvalidSize:
		return "invalid size: bit width must be at least 1"
	case KindOverflow:
		return "overflow: value does not fit in the requested bit width"
	case KindInvalidLatitude:
		return fmt.Sprintf("invalid latitude: %v is outside the accepted range", e.Value)
	case KindInvalidLongitude:
		return fmt.Sprintf("invalid longitude: %v is outside the accepted range", e.Value)
	case KindCalculation:
		return fmt.Sprintf("calculation error: %s", e.Message)
	default:
		return "unknown conversion error"
	}
}

func (e *ConversionError) Unwrap() error { return e.Cause }

// Is matches by kind only, so tests and callers can compare against a bare
// &ConversionError{Kind: ...} sentinel without reproducing payloads.
func (e *ConversionError) Is(target error) bool {
	t, ok := target.(*ConversionError)
	return ok && t.Kind == e.Kind
}

func ErrInvalidInput() error { return &ConversionError{Kind: KindInvalidInput} }

func ErrParse(cause error) error { return &ConversionError{Kind: KindParse, Cause: cause} }

func ErrInvalidSize() error { return &ConversionError{Kind: KindInvalidSize} }

func ErrOverflow() error { return &ConversionError{Kind: KindOverflow} }

func ErrInvalidLatitude(v float64) error {
	return &ConversionError{Kind: KindInvalidLatitude, Value: v}
}

func ErrInvalidLongitude(v float64) error {
	return &ConversionError{Kind: KindInvalidLongitude, Value: v}
}

// ErrCalculation is reserved for derived-computation failures not otherwise
// classified. None of the current algorithms produce it.
func ErrCalculation(msg string) error {
	return &ConversionError{Kind: KindCalculation, Message: msg}
}
