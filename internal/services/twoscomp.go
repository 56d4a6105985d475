package services

import (
	"conversion-service/internal/domain"
	"strconv"
	"strings"
)

// TwosComplementToDecimal decodes a two's-complement binary string into a
// signed 32-bit integer. The string's length is its bit width and the first
// character is the sign bit.
//
// A leading '1' means the value is negative: the bits are inverted, the
// inverted string is read as an unsigned magnitude, and the result is
// -(magnitude + 1). Strings whose (possibly inverted) magnitude exceeds the
// signed 32-bit range fail with a parse error rather than wrapping around.
func TwosComplementToDecimal(binary string) (int32, error) {
	if binary == "" {
		return 0, domain.ErrInvalidInput()
	}
	for i := 0; i < len(binary); i++ {
		if binary[i] != '0' && binary[i] != '1' {
			return 0, domain.ErrInvalidInput()
		}
	}

	bits := binary
	negative := binary[0] == '1'
	if negative {
		bits = invertBits(binary)
	}

	magnitude, err := strconv.ParseInt(bits, 2, 32)
	if err != nil {
		return 0, domain.ErrParse(err)
	}

	if negative {
		return int32(-(magnitude + 1)), nil
	}
	return int32(magnitude), nil
}

// DecimalToTwosComplement renders value as a two's-complement binary string
// of exactly size characters. Values outside [-2^(size-1), 2^(size-1)-1]
// fail with an overflow error.
func DecimalToTwosComplement(value int32, size uint) (string, error) {
	if size < 1 {
		return "", domain.ErrInvalidSize()
	}

	if !fitsInWidth(int64(value), size) {
		return "", domain.ErrOverflow()
	}

	if value >= 0 {
		return padBits(strconv.FormatInt(int64(value), 2), size), nil
	}

	// Standard two's-complement negation on the requested width:
	// render |value|, invert every bit, add one with carry wrap.
	magnitude := padBits(strconv.FormatInt(-int64(value), 2), size)
	return addOne(invertBits(magnitude)), nil
}

// fitsInWidth reports whether v lies in the two's-complement range of a
// size-bit field. Widths of 32 or more hold every int32.
func fitsInWidth(v int64, size uint) bool {
	if size >= 32 {
		return true
	}
	max := int64(1)<<(size-1) - 1
	min := -(int64(1) << (size - 1))
	return v >= min && v <= max
}

func invertBits(bits string) string {
	var b strings.Builder
	b.Grow(len(bits))
	for i := 0; i < len(bits); i++ {
		if bits[i] == '0' {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// addOne increments a binary string as an unsigned integer of its own width.
// A carry out of the top bit is dropped, which is the modular behavior
// two's complement requires.
func addOne(bits string) string {
	out := []byte(bits)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == '0' {
			out[i] = '1'
			return string(out)
		}
		out[i] = '0'
	}
	return string(out)
}

func padBits(bits string, size uint) string {
	if uint(len(bits)) >= size {
		return bits
	}
	return strings.Repeat("0", int(size)-len(bits)) + bits
}
